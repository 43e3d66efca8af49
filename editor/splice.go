package editor

import (
	"go.uber.org/zap"

	"exc/exam"
)

// Indent and outdent splices. Both follow the same shape: check every
// precondition first, capture the caret offset relative to the start of the
// subtree about to move, splice the subtree, then re-anchor the caret against
// the subtree's new start. Nothing is mutated until all checks pass, so a
// false return guarantees an untouched tree.

// Indent moves the container enclosing the caret into its nearest preceding
// container sibling, as that sibling's new last child. Intervening
// non-container siblings are skipped when locating the target. Reports false
// when the caret is not inside a container or no such sibling exists.
func (e *Editor) Indent() bool {
	cur := e.doc.containerOf(e.sel.Head)
	if cur == noNode {
		return false
	}

	parent := e.doc.nodes[cur].parent
	idx := e.doc.childIndex(parent, cur)

	target := noNode
	for i := idx - 1; i >= 0; i-- {
		if sibling := e.doc.nodes[parent].children[i]; e.doc.nodes[sibling].kind == exam.BlockContainer {
			target = sibling
			break
		}
	}
	if target == noNode {
		return false
	}

	e.commit()
	rel := e.sel.Head - e.doc.nodeStart(cur)

	e.doc.detach(cur)
	e.doc.insert(target, cur, len(e.doc.nodes[target].children))

	e.restoreCaret(cur, rel)
	e.log.Debug("Indented container", zap.String("id", e.doc.nodes[cur].container.ID), zap.Stringer("role", e.doc.roleOf(cur)))
	return true
}

// Outdent moves the container enclosing the caret out of its parent
// container, re-inserting it as a sibling immediately following that parent.
// Reports false when the caret is not inside a container or the parent is not
// itself a container.
func (e *Editor) Outdent() bool {
	cur := e.doc.containerOf(e.sel.Head)
	if cur == noNode {
		return false
	}

	parent := e.doc.nodes[cur].parent
	if parent == e.doc.root || e.doc.nodes[parent].kind != exam.BlockContainer {
		return false
	}
	grandparent := e.doc.nodes[parent].parent

	e.commit()
	rel := e.sel.Head - e.doc.nodeStart(cur)

	e.doc.detach(cur)
	e.doc.insert(grandparent, cur, e.doc.childIndex(grandparent, parent)+1)

	e.restoreCaret(cur, rel)
	e.log.Debug("Outdented container", zap.String("id", e.doc.nodes[cur].container.ID), zap.Stringer("role", e.doc.roleOf(cur)))
	return true
}

// restoreCaret re-applies a subtree-relative caret offset after a splice,
// clamped to stay within the moved subtree's content bounds.
func (e *Editor) restoreCaret(id nodeID, rel int) {
	start := e.doc.nodeStart(id)
	pos := clamp(start+rel, start+1, start+e.doc.size(id)-1)
	e.sel = Caret(pos)
}
