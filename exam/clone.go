package exam

import "maps"

// Deep copy helpers. Normalization passes and editor undo snapshots both rely
// on clones so the source tree is never shared.

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	return &Document{
		ID:     d.ID,
		Title:  d.Title,
		Blocks: CloneBlocks(d.Blocks),
	}
}

// CloneBlocks returns a deep copy of a block flow.
func CloneBlocks(blocks []Block) []Block {
	if blocks == nil {
		return nil
	}
	result := make([]Block, len(blocks))
	for i := range blocks {
		result[i] = cloneBlock(blocks[i])
	}
	return result
}

func cloneBlock(b Block) Block {
	out := Block{Kind: b.Kind}
	switch b.Kind {
	case BlockContainer:
		if b.Container != nil {
			c := *b.Container
			c.Children = CloneBlocks(b.Container.Children)
			out.Container = &c
		}
	case BlockSolution:
		if b.Solution != nil {
			s := *b.Solution
			s.Children = CloneBlocks(b.Solution.Children)
			out.Solution = &s
		}
	case BlockPara:
		if b.Para != nil {
			p := *b.Para
			out.Para = &p
		}
	case BlockGroup:
		if b.Group != nil {
			g := *b.Group
			g.Attrs = maps.Clone(b.Group.Attrs)
			g.Children = CloneBlocks(b.Group.Children)
			out.Group = &g
		}
	}
	return out
}
