package editor

import (
	"testing"

	"exc/exam"
)

func TestInsertSolution(t *testing.T) {
	t.Run("inserted after the block under the caret", func(t *testing.T) {
		// q1 opens 0, "aa" paragraph spans 1..4, "bb" spans 5..8
		e := newTestEditor(t,
			cont("q1", para("aa"), para("bb")),
		)
		e.SetSelection(Caret(2))

		if !e.InsertSolution() {
			t.Fatal("InsertSolution() = false, want true")
		}

		children := e.Document().Blocks[0].Container.Children
		if len(children) != 3 {
			t.Fatalf("got %d children, want 3", len(children))
		}
		if children[1].Kind != exam.BlockSolution {
			t.Errorf("children[1].Kind = %v, want solution", children[1].Kind)
		}
		// caret lands inside the fresh solution, right after the first paragraph
		if head := e.Selection().Head; head != 6 {
			t.Errorf("caret = %d, want 6", head)
		}
	})

	t.Run("caret on container itself appends", func(t *testing.T) {
		e := newTestEditor(t, cont("q1", para("aa")))
		// position 1 is inside q1 but on the paragraph boundary
		e.SetSelection(Caret(1))

		if !e.InsertSolution() {
			t.Fatal("InsertSolution() = false, want true")
		}
		children := e.Document().Blocks[0].Container.Children
		if children[len(children)-1].Kind != exam.BlockSolution {
			t.Error("solution was not appended as last child")
		}
	})

	t.Run("default space applied", func(t *testing.T) {
		e := newTestEditor(t, cont("q1", para("aa")))
		e.DefaultSpace = " 1in "
		e.SetSelection(Caret(2))

		if !e.InsertSolution() {
			t.Fatal("InsertSolution() = false, want true")
		}
		s := e.Document().Blocks[0].Container.Children[1].Solution
		if s.Space != "1in" {
			t.Errorf("Space = %q, want %q", s.Space, "1in")
		}
	})

	t.Run("outside any container", func(t *testing.T) {
		e := newTestEditor(t, para("aa"))
		e.SetSelection(Caret(2))

		if e.InsertSolution() {
			t.Error("InsertSolution() = true, want false")
		}
		if e.Undo() {
			t.Error("failed command left an undo entry")
		}
	})

	t.Run("inside a solution", func(t *testing.T) {
		// q1 opens 0, solution opens 1, "aa" paragraph opens 2, runes 3,4
		e := newTestEditor(t, cont("q1", sol("", para("aa"))))
		e.SetSelection(Caret(3))

		if e.InsertSolution() {
			t.Error("InsertSolution() = true, want false")
		}
	})

	t.Run("inside a container nested in a solution", func(t *testing.T) {
		// a part that lives under a solution is still under a solution
		e := newTestEditor(t, cont("q1", sol("", cont("p1", para("aa")))))
		e.SetSelection(Caret(4))

		if e.InsertSolution() {
			t.Error("InsertSolution() = true, want false")
		}
	})
}

func TestToggleSolution(t *testing.T) {
	t.Run("flips collapsed flag", func(t *testing.T) {
		e := newTestEditor(t, cont("q1", sol("", para("aa"))))
		e.SetSelection(Caret(3))

		if !e.ToggleSolution() {
			t.Fatal("ToggleSolution() = false, want true")
		}
		if !e.Document().Blocks[0].Container.Children[0].Solution.Collapsed {
			t.Error("Collapsed = false, want true")
		}

		if !e.ToggleSolution() {
			t.Fatal("second ToggleSolution() = false, want true")
		}
		if e.Document().Blocks[0].Container.Children[0].Solution.Collapsed {
			t.Error("Collapsed = true, want false")
		}
	})

	t.Run("outside a solution", func(t *testing.T) {
		e := newTestEditor(t, cont("q1", para("aa")))
		e.SetSelection(Caret(2))

		if e.ToggleSolution() {
			t.Error("ToggleSolution() = true, want false")
		}
	})

	t.Run("undoable", func(t *testing.T) {
		e := newTestEditor(t, cont("q1", sol("", para("aa"))))
		e.SetSelection(Caret(3))

		e.ToggleSolution()
		if !e.Undo() {
			t.Fatal("Undo() = false, want true")
		}
		if e.Document().Blocks[0].Container.Children[0].Solution.Collapsed {
			t.Error("Collapsed = true after undo, want false")
		}
	})
}
