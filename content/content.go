package content

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"exc/exam"
	"exc/state"
)

// Content encapsulates both the raw XML document and the structured
// normalized exam representation derived from it.
type Content struct {
	SrcName string
	Doc     *etree.Document

	Exam *exam.Document
}

// Prepare reads, parses, and prepares exam content for compilation.
func Prepare(ctx context.Context, r io.Reader, srcName string, log *zap.Logger) (*Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	env := state.EnvFromContext(ctx)

	doc := etree.NewDocument()
	doc.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}
	// Authored files come from many editors, some saved in legacy encodings
	// and with sloppy XML - be permissive on input.
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		ValidateInput: false,
		Permissive:    true,
	}

	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to read exam source: %w", err)
	}

	d, err := exam.ParseDocument(doc, log)
	if err != nil {
		return nil, fmt.Errorf("unable to parse exam source: %w", err)
	}

	baseSrcName := filepath.Base(srcName)

	// Save parsed document for debugging
	env.Rpt.StoreData(fmt.Sprintf("parsed/%s", baseSrcName), []byte(d.String()))

	// Make sure the document and every container carry stable IDs
	d = d.NormalizeIDs(log)
	// Fill in configured default answer space on bare solutions
	d = d.NormalizeSolutionSpace(env.Cfg.Document.Solutions.DefaultSpace, log)

	// Save prepared document for debugging
	env.Rpt.StoreData(fmt.Sprintf("prepared/%s", baseSrcName), []byte(d.String()))

	return &Content{
		SrcName: srcName,
		Doc:     doc,
		Exam:    d,
	}, nil
}
