package editor

import (
	"go.uber.org/zap"

	"exc/exam"
)

// undoDepth bounds how many edits the history keeps.
const undoDepth = 100

// Selection is a cursor or range over flattened document positions.
type Selection struct {
	Anchor int
	Head   int
}

// Caret returns a collapsed selection at pos.
func Caret(pos int) Selection {
	return Selection{Anchor: pos, Head: pos}
}

type snapshot struct {
	doc *exam.Document
	sel Selection
}

// Editor drives interactive structural edits over a live exam tree. All
// commands run on a single-threaded editing loop: each one either commits a
// new tree state plus selection as one undo unit, or reports false and leaves
// everything untouched.
type Editor struct {
	doc *Doc
	sel Selection

	// DefaultSpace is applied to newly inserted solutions.
	DefaultSpace string

	undo []snapshot
	redo []snapshot
	log  *zap.Logger
}

// NewEditor creates an editor over the document with the caret at the start.
func NewEditor(d *exam.Document, log *zap.Logger) *Editor {
	return &Editor{doc: FromDocument(d), log: log}
}

// Document returns the current state of the tree as an exam model.
func (e *Editor) Document() *exam.Document {
	return e.doc.Document()
}

// Selection returns the current selection.
func (e *Editor) Selection() Selection {
	return e.sel
}

// SetSelection moves the selection, clamping it to document bounds.
func (e *Editor) SetSelection(sel Selection) {
	sel.Anchor = e.doc.clampPos(sel.Anchor)
	sel.Head = e.doc.clampPos(sel.Head)
	e.sel = sel
}

// Role reports the structural role of the container enclosing the caret,
// derived from nesting depth at call time.
func (e *Editor) Role() exam.Role {
	cur := e.doc.containerOf(e.sel.Head)
	if cur == noNode {
		return exam.RoleNone
	}
	return e.doc.roleOf(cur)
}

// commit records the pre-edit state as a single undo unit. Call before the
// first mutation of a command that is known to proceed.
func (e *Editor) commit() {
	e.undo = append(e.undo, snapshot{doc: e.doc.Document(), sel: e.sel})
	if len(e.undo) > undoDepth {
		e.undo = e.undo[len(e.undo)-undoDepth:]
	}
	e.redo = nil
}

// Undo reverts the latest committed edit. Returns false when there is
// nothing to revert.
func (e *Editor) Undo() bool {
	if len(e.undo) == 0 {
		return false
	}
	last := e.undo[len(e.undo)-1]
	e.undo = e.undo[:len(e.undo)-1]
	e.redo = append(e.redo, snapshot{doc: e.doc.Document(), sel: e.sel})
	e.doc = FromDocument(last.doc)
	e.sel = last.sel
	return true
}

// Redo reapplies the latest undone edit. Returns false when there is nothing
// to reapply.
func (e *Editor) Redo() bool {
	if len(e.redo) == 0 {
		return false
	}
	last := e.redo[len(e.redo)-1]
	e.redo = e.redo[:len(e.redo)-1]
	e.undo = append(e.undo, snapshot{doc: e.doc.Document(), sel: e.sel})
	e.doc = FromDocument(last.doc)
	e.sel = last.sel
	return true
}
