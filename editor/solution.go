package editor

import (
	"go.uber.org/zap"

	"exc/exam"
)

// InsertSolution inserts an empty solution into the container enclosing the
// caret, right after the child block the caret sits in (or as the container's
// last child when the caret is on the container itself). Reports false when
// the caret is outside any container or already inside a solution - a
// solution's ancestor chain never includes another solution.
func (e *Editor) InsertSolution() bool {
	cur := e.doc.containerOf(e.sel.Head)
	if cur == noNode {
		return false
	}
	if e.doc.solutionOf(e.sel.Head) != noNode {
		return false
	}

	// Locate the direct child of cur covering the caret, if any.
	idx := len(e.doc.nodes[cur].children)
	for at := e.doc.nodeAt(e.sel.Head); at != e.doc.root && at != noNode; at = e.doc.nodes[at].parent {
		if e.doc.nodes[at].parent == cur {
			idx = e.doc.childIndex(cur, at) + 1
			break
		}
	}

	e.commit()
	sol := e.doc.alloc(node{
		parent:   noNode,
		kind:     exam.BlockSolution,
		solution: &exam.Solution{Space: exam.NormalizeSpace(e.DefaultSpace)},
	})
	e.doc.insert(cur, sol, idx)
	e.sel = Caret(e.doc.contentStart(sol))

	e.log.Debug("Inserted solution", zap.String("space", e.doc.nodes[sol].solution.Space))
	return true
}

// ToggleSolution flips the collapsed presentation flag on the solution
// enclosing the caret. Reports false when the caret is not inside a solution.
// The flag is persisted but has no effect on nesting.
func (e *Editor) ToggleSolution() bool {
	sol := e.doc.solutionOf(e.sel.Head)
	if sol == noNode {
		return false
	}

	e.commit()
	e.doc.nodes[sol].solution.Collapsed = !e.doc.nodes[sol].solution.Collapsed
	return true
}
