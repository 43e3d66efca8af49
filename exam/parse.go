package exam

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// XML parsing for the attributed-container exam representation. We want
// exhaustive parsing - it is not very effective but ensures full correctness,
// gives us detailed debug output and keeps the result easy to extend.
//
// The wire shape is deliberately role-free: a container is a <block> element
// whose class list carries the role-marker class, and its actual role
// (question/part/subpart/subsubpart) is derived from nesting depth on every
// traversal, never read from the file.

// RoleMarkerClass is the class marking a generic block as a container.
const RoleMarkerClass = "exam-part"

// ParseDocument walks the etree DOM and constructs the typed exam document.
func ParseDocument(doc *etree.Document, log *zap.Logger) (*Document, error) {
	if doc == nil {
		return nil, fmt.Errorf("nil document")
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}
	if root.Tag != "exam" {
		return nil, fmt.Errorf("unexpected root element %q", root.Tag)
	}

	d := &Document{
		ID:    root.SelectAttrValue("id", ""),
		Title: NormalizeTitle(root.SelectAttrValue("title", "")),
	}
	d.Blocks = parseBlocks(root, false, log)
	return d, nil
}

// parseBlocks converts child tokens of an element into a block flow.
// insideSolution tracks the solution ancestor chain so a solution nested in
// another solution is downgraded to a plain group instead of violating the
// nesting invariant.
func parseBlocks(el *etree.Element, insideSolution bool, log *zap.Logger) []Block {
	var blocks []Block
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			if text := strings.TrimSpace(t.Data); text != "" {
				blocks = append(blocks, Block{Kind: BlockPara, Para: &Para{Text: text}})
			}
		case *etree.Element:
			blocks = append(blocks, parseElement(t, insideSolution, log))
		}
	}
	return blocks
}

func parseElement(el *etree.Element, insideSolution bool, log *zap.Logger) Block {
	switch el.Tag {
	case "block":
		if hasClass(el, RoleMarkerClass) {
			return Block{Kind: BlockContainer, Container: parseContainer(el, insideSolution, log)}
		}
		return Block{Kind: BlockGroup, Group: parseGroup(el, insideSolution, log)}
	case "solution":
		if insideSolution {
			log.Warn("Solution nested inside another solution, keeping content as plain group")
			return Block{Kind: BlockGroup, Group: parseGroup(el, insideSolution, log)}
		}
		return Block{Kind: BlockSolution, Solution: parseSolution(el, log)}
	case "para":
		return Block{Kind: BlockPara, Para: &Para{Text: strings.TrimSpace(el.Text())}}
	default:
		// Unknown composite wrapper - keep it, containers may hide inside.
		return Block{Kind: BlockGroup, Group: parseGroup(el, insideSolution, log)}
	}
}

func parseContainer(el *etree.Element, insideSolution bool, log *zap.Logger) *Container {
	c := &Container{
		ID:     el.SelectAttrValue("id", ""),
		Title:  NormalizeTitle(el.SelectAttrValue("title", "")),
		Points: el.SelectAttrValue("points", ""),
	}
	if raw := c.Points; raw != "" {
		c.Points = NormalizePoints(raw)
		if c.Points == "" {
			log.Debug("Dropping invalid points value", zap.String("points", raw), zap.String("id", c.ID))
		}
	}
	c.Children = parseBlocks(el, insideSolution, log)
	return c
}

func parseSolution(el *etree.Element, log *zap.Logger) *Solution {
	return &Solution{
		Space:     NormalizeSpace(el.SelectAttrValue("space", "")),
		Collapsed: el.SelectAttrValue("collapsed", "") == "true",
		Children:  parseBlocks(el, true, log),
	}
}

func parseGroup(el *etree.Element, insideSolution bool, log *zap.Logger) *Group {
	g := &Group{Tag: el.Tag}
	for _, attr := range el.Attr {
		if g.Attrs == nil {
			g.Attrs = make(map[string]string)
		}
		g.Attrs[attr.Key] = attr.Value
	}
	g.Children = parseBlocks(el, insideSolution, log)
	return g
}

func hasClass(el *etree.Element, class string) bool {
	for _, c := range strings.Fields(el.SelectAttrValue("class", "")) {
		if c == class {
			return true
		}
	}
	return false
}
