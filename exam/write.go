package exam

import (
	"sort"

	"github.com/beevik/etree"
)

// Serialization back into the attributed-container XML shape. Writing the
// result of ParseDocument and parsing it again yields the same model, so the
// editor can round-trip documents freely.

// BuildDocument constructs an etree document from the exam model.
func (d *Document) BuildDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("exam")
	if d.ID != "" {
		root.CreateAttr("id", d.ID)
	}
	if d.Title != "" {
		root.CreateAttr("title", d.Title)
	}
	writeBlocks(root, d.Blocks)
	return doc
}

func writeBlocks(parent *etree.Element, blocks []Block) {
	for i := range blocks {
		writeBlock(parent, blocks[i])
	}
}

func writeBlock(parent *etree.Element, b Block) {
	switch b.Kind {
	case BlockContainer:
		el := parent.CreateElement("block")
		el.CreateAttr("class", RoleMarkerClass)
		if b.Container.ID != "" {
			el.CreateAttr("id", b.Container.ID)
		}
		if b.Container.Title != "" {
			el.CreateAttr("title", b.Container.Title)
		}
		if b.Container.Points != "" {
			el.CreateAttr("points", b.Container.Points)
		}
		writeBlocks(el, b.Container.Children)
	case BlockSolution:
		el := parent.CreateElement("solution")
		if b.Solution.Space != "" {
			el.CreateAttr("space", b.Solution.Space)
		}
		if b.Solution.Collapsed {
			el.CreateAttr("collapsed", "true")
		}
		writeBlocks(el, b.Solution.Children)
	case BlockPara:
		el := parent.CreateElement("para")
		el.SetText(b.Para.Text)
	case BlockGroup:
		el := parent.CreateElement(b.Group.Tag)
		keys := make([]string, 0, len(b.Group.Attrs))
		for k := range b.Group.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			el.CreateAttr(k, b.Group.Attrs[k])
		}
		writeBlocks(el, b.Group.Children)
	}
}
