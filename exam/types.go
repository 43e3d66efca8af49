package exam

// Type definitions for the exam document model.
//
// A document is an ordered tree of blocks. Containers represent
// question/part/subpart/subsubpart nodes - which of those a container actually
// is gets derived from its nesting depth at the moment of traversal and is
// never stored (see depth.go).

// BlockKind distinguishes the different kinds of block content.
type BlockKind string

const (
	BlockContainer BlockKind = "container"
	BlockSolution  BlockKind = "solution"
	BlockPara      BlockKind = "para"
	BlockGroup     BlockKind = "group"
)

// Block stores a single piece of document content, keeping the original ordering.
type Block struct {
	Kind      BlockKind
	Container *Container
	Solution  *Solution
	Para      *Para
	Group     *Group
}

// Container is a generic question-like node. Title and Points hold normalized
// values: empty string means the attribute is absent.
type Container struct {
	ID       string
	Title    string
	Points   string
	Children []Block
}

// Solution is an answer-space block nested directly under a container.
// It never nests inside another solution. Space is a normalized reserved
// answer space specification (caller-supplied length, not validated here),
// empty means no explicit space. Collapsed is a pure presentation flag.
type Solution struct {
	Space     string
	Collapsed bool
	Children  []Block
}

// Para is a leaf content block.
type Para struct {
	Text string
}

// Group is a composite wrapper block the engine does not interpret. Its
// children are still traversed so containers nested inside unrelated wrappers
// are picked up.
type Group struct {
	Tag      string
	Attrs    map[string]string
	Children []Block
}

// Document is the root of the parsed exam.
type Document struct {
	ID     string
	Title  string
	Blocks []Block
}

// Containers reports how many container blocks the flow holds, at any depth.
func Containers(blocks []Block) int {
	count := 0
	for i := range blocks {
		switch blocks[i].Kind {
		case BlockContainer:
			count++
			count += Containers(blocks[i].Container.Children)
		case BlockSolution:
			count += Containers(blocks[i].Solution.Children)
		case BlockGroup:
			count += Containers(blocks[i].Group.Children)
		}
	}
	return count
}
