package exam

import (
	"exc/utils/debug"
)

type treeWriter struct {
	*debug.TreeWriter
}

// String returns a readable tree of the parsed exam. Roles shown next to
// containers are derived on the fly the same way the transformation derives
// them. It exists solely for manual inspection during debugging.
func (d *Document) String() string {
	if d == nil {
		return "<nil Document>"
	}
	tw := treeWriter{debug.NewTreeWriter()}
	tw.Line(0, "Exam id=%q title=%q", d.ID, d.Title)
	tw.blocks(1, d.Blocks, 0)
	return tw.TreeWriter.String()
}

func (tw treeWriter) blocks(indent int, blocks []Block, depth int) {
	for i := range blocks {
		tw.block(indent, blocks[i], depth)
	}
}

func (tw treeWriter) block(indent int, b Block, depth int) {
	switch b.Kind {
	case BlockContainer:
		c := b.Container
		tw.Line(indent, "Container[%s] id=%q title=%q points=%q", RoleAt(depth+1), c.ID, c.Title, c.Points)
		tw.blocks(indent+1, c.Children, depth+1)
	case BlockSolution:
		s := b.Solution
		tw.Line(indent, "Solution space=%q collapsed=%t", s.Space, s.Collapsed)
		tw.blocks(indent+1, s.Children, depth)
	case BlockPara:
		tw.TextBlock(indent, "Para", b.Para.Text)
	case BlockGroup:
		tw.Line(indent, "Group tag=%q attrs=%d", b.Group.Tag, len(b.Group.Attrs))
		tw.blocks(indent+1, b.Group.Children, depth)
	}
}
