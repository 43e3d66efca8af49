// Package editor implements direct structural edits on a live exam tree:
// indent/outdent splices, solution insertion and selection bookkeeping.
package editor

import (
	"exc/exam"
)

// The live tree is a flat indexed store: nodes stay put in the arena and
// splices only rewrite parent/children links. Positions are derived flattened
// offsets over the tree (every block contributes an opening and a closing
// token, paragraph text contributes one position per rune), so they never
// have to survive a mutation - they are recomputed from the links on demand.

type nodeID int

const noNode nodeID = -1

type node struct {
	parent   nodeID
	kind     exam.BlockKind
	children []nodeID

	// attribute payloads; child links live in the arena, not in these
	container *exam.Container
	solution  *exam.Solution
	group     *exam.Group
	para      *exam.Para
}

// Doc is a live editable exam tree.
type Doc struct {
	id    string
	title string
	nodes []node
	root  nodeID
}

// FromDocument builds a live tree from the exam model. The model is not
// retained - block payloads are copied.
func FromDocument(d *exam.Document) *Doc {
	doc := &Doc{id: d.ID, title: d.Title}
	doc.root = doc.alloc(node{parent: noNode, kind: exam.BlockGroup})
	for _, b := range exam.CloneBlocks(d.Blocks) {
		doc.attach(doc.root, b)
	}
	return doc
}

func (d *Doc) alloc(n node) nodeID {
	d.nodes = append(d.nodes, n)
	return nodeID(len(d.nodes) - 1)
}

// attach converts a model block into arena nodes under the given parent.
func (d *Doc) attach(parent nodeID, b exam.Block) nodeID {
	n := node{parent: parent, kind: b.Kind}
	var children []exam.Block
	switch b.Kind {
	case exam.BlockContainer:
		c := *b.Container
		children, c.Children = c.Children, nil
		n.container = &c
	case exam.BlockSolution:
		s := *b.Solution
		children, s.Children = s.Children, nil
		n.solution = &s
	case exam.BlockGroup:
		g := *b.Group
		children, g.Children = g.Children, nil
		n.group = &g
	case exam.BlockPara:
		p := *b.Para
		n.para = &p
	}
	id := d.alloc(n)
	d.nodes[parent].children = append(d.nodes[parent].children, id)
	for _, child := range children {
		d.attach(id, child)
	}
	return id
}

// Document converts the live tree back into the exam model.
func (d *Doc) Document() *exam.Document {
	return &exam.Document{
		ID:     d.id,
		Title:  d.title,
		Blocks: d.blocksOf(d.root),
	}
}

func (d *Doc) blocksOf(id nodeID) []exam.Block {
	var blocks []exam.Block
	for _, child := range d.nodes[id].children {
		blocks = append(blocks, d.blockOf(child))
	}
	return blocks
}

func (d *Doc) blockOf(id nodeID) exam.Block {
	n := &d.nodes[id]
	b := exam.Block{Kind: n.kind}
	switch n.kind {
	case exam.BlockContainer:
		c := *n.container
		c.Children = d.blocksOf(id)
		b.Container = &c
	case exam.BlockSolution:
		s := *n.solution
		s.Children = d.blocksOf(id)
		b.Solution = &s
	case exam.BlockGroup:
		g := *n.group
		g.Children = d.blocksOf(id)
		b.Group = &g
	case exam.BlockPara:
		p := *n.para
		b.Para = &p
	}
	return b
}

// size returns the flattened width of the node: opening token, content,
// closing token. The synthetic root contributes no tokens of its own.
func (d *Doc) size(id nodeID) int {
	n := &d.nodes[id]
	inner := 0
	if n.kind == exam.BlockPara {
		inner = len([]rune(n.para.Text))
	} else {
		for _, child := range n.children {
			inner += d.size(child)
		}
	}
	if id == d.root {
		return inner
	}
	return inner + 2
}

// contentStart returns the flattened offset where the node's content begins.
func (d *Doc) contentStart(id nodeID) int {
	if id == d.root {
		return 0
	}
	return d.nodeStart(id) + 1
}

// nodeStart returns the flattened offset of the node's opening token.
func (d *Doc) nodeStart(id nodeID) int {
	parent := d.nodes[id].parent
	pos := d.contentStart(parent)
	for _, sibling := range d.nodes[parent].children {
		if sibling == id {
			return pos
		}
		pos += d.size(sibling)
	}
	// node is detached; should not happen on a consistent tree
	return pos
}

// nodeAt returns the deepest node whose content span contains pos.
// Positions sitting on a node boundary resolve to the parent.
func (d *Doc) nodeAt(pos int) nodeID {
	id := d.root
	for {
		n := &d.nodes[id]
		if n.kind == exam.BlockPara {
			return id
		}
		descended := false
		for _, child := range n.children {
			start := d.nodeStart(child)
			size := d.size(child)
			if pos > start && pos < start+size {
				id = child
				descended = true
				break
			}
		}
		if !descended {
			return id
		}
	}
}

// clampPos keeps pos inside the document bounds.
func (d *Doc) clampPos(pos int) int {
	return clamp(pos, 0, d.size(d.root))
}

// containerOf walks up from the node at pos to the nearest enclosing
// container.
func (d *Doc) containerOf(pos int) nodeID {
	return d.ancestorOf(pos, exam.BlockContainer)
}

// solutionOf walks up from the node at pos to the nearest enclosing solution.
func (d *Doc) solutionOf(pos int) nodeID {
	return d.ancestorOf(pos, exam.BlockSolution)
}

func (d *Doc) ancestorOf(pos int, kind exam.BlockKind) nodeID {
	for id := d.nodeAt(pos); id != noNode && id != d.root; id = d.nodes[id].parent {
		if d.nodes[id].kind == kind {
			return id
		}
	}
	return noNode
}

// roleOf derives the structural role of a container node by counting
// container ancestors, the node itself included.
func (d *Doc) roleOf(id nodeID) exam.Role {
	depth := 0
	for ; id != noNode && id != d.root; id = d.nodes[id].parent {
		if d.nodes[id].kind == exam.BlockContainer {
			depth++
		}
	}
	return exam.RoleAt(depth)
}

// childIndex returns the position of child in parent's children list.
func (d *Doc) childIndex(parent, child nodeID) int {
	for i, c := range d.nodes[parent].children {
		if c == child {
			return i
		}
	}
	return -1
}

// detach removes the node from its parent's children, keeping the subtree
// intact in the arena.
func (d *Doc) detach(id nodeID) {
	parent := d.nodes[id].parent
	if parent == noNode {
		return
	}
	idx := d.childIndex(parent, id)
	if idx < 0 {
		return
	}
	children := d.nodes[parent].children
	d.nodes[parent].children = append(children[:idx:idx], children[idx+1:]...)
	d.nodes[id].parent = noNode
}

// insert places the subtree rooted at id into parent's children at idx.
func (d *Doc) insert(parent, id nodeID, idx int) {
	children := d.nodes[parent].children
	if idx < 0 || idx > len(children) {
		idx = len(children)
	}
	out := make([]nodeID, 0, len(children)+1)
	out = append(out, children[:idx]...)
	out = append(out, id)
	out = append(out, children[idx:]...)
	d.nodes[parent].children = out
	d.nodes[id].parent = parent
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
