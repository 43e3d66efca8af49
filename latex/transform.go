package latex

import (
	"go.uber.org/zap"

	"exc/exam"
)

// Batch tree transformation. The input tree is never mutated - the transformer
// walks it top-down, deriving each container's role from the traversal depth,
// and emits the output token stream.

// Options controls document-level rendering behavior.
type Options struct {
	// IncludeSolutions emits solution environments. When false solutions are
	// omitted from the output entirely.
	IncludeSolutions bool
}

// Transformer converts exam block flows into token streams.
type Transformer struct {
	opts Options
	log  *zap.Logger
}

// New creates a transformer with the given options.
func New(opts Options, log *zap.Logger) *Transformer {
	return &Transformer{opts: opts, log: log}
}

// Transform converts a block flow observed at the given container depth into
// output tokens. Depth is the number of container ancestors of the flow: the
// top-level document flow sits at depth zero, children of a question at depth
// one and so on.
//
// Maximal runs of consecutive container blocks are wrapped in exactly one
// begin/end environment pair named after the children's role. The rule is
// adjacency-dependent only: a single container still gets a pair, and a
// non-container block between two containers splits one run into two pairs.
// Top-level questions are the exception - they are bracketed by the
// document-wide questions environment supplied by Generate, not grouped here.
func (t *Transformer) Transform(blocks []exam.Block, depth int) []Token {
	childRole := exam.RoleAt(depth + 1)
	wrapRuns := childRole > exam.RoleQuestion

	var out []Token
	for i := 0; i < len(blocks); {
		if blocks[i].Kind != exam.BlockContainer {
			out = append(out, t.transformBlock(blocks[i], depth)...)
			i++
			continue
		}

		// Collect the maximal run of consecutive containers.
		j := i
		for j < len(blocks) && blocks[j].Kind == exam.BlockContainer {
			j++
		}
		if wrapRuns {
			out = append(out, Begin(childRole.EnvName()))
		}
		for ; i < j; i++ {
			out = append(out, t.transformContainer(blocks[i].Container, depth)...)
		}
		if wrapRuns {
			out = append(out, End(childRole.EnvName()))
		}
	}
	return out
}

func (t *Transformer) transformBlock(b exam.Block, depth int) []Token {
	switch b.Kind {
	case exam.BlockSolution:
		if !t.opts.IncludeSolutions {
			t.log.Debug("Omitting solution from output")
			return nil
		}
		// A solution does not add a nesting level.
		out := []Token{BeginOpt("solution", exam.NormalizeSpace(b.Solution.Space))}
		out = append(out, t.Transform(b.Solution.Children, depth)...)
		return append(out, End("solution"))
	case exam.BlockPara:
		return []Token{Verbatim(b.Para.Text)}
	case exam.BlockGroup:
		// Wrapper blocks have no output identity of their own, but containers
		// nested inside them still must be found and transformed.
		return t.Transform(b.Group.Children, depth)
	default:
		return nil
	}
}

func (t *Transformer) transformContainer(c *exam.Container, depth int) []Token {
	newDepth := depth + 1
	role := exam.RoleAt(newDepth)

	cmd := Command(role.Command())
	cmd.Opt = exam.NormalizePoints(c.Points)

	// Title selects the titled command variant at the question level only.
	// Below it the exam document class takes no title argument, so the title
	// stays informational and is deliberately not rendered.
	if title := exam.NormalizeTitle(c.Title); title != "" && role == exam.RoleQuestion {
		cmd.Name = role.TitledCommand()
		cmd.Arg = title
	}

	out := []Token{cmd}
	return append(out, t.Transform(c.Children, newDepth)...)
}
