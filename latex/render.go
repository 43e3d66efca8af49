package latex

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"exc/exam"
)

// Render writes the token stream, one token per line. Verbatim content is
// written as is, so passthrough paragraphs keep their own text exactly.
func Render(w io.Writer, tokens []Token) error {
	bw := bufio.NewWriter(w)
	for _, tok := range tokens {
		if _, err := bw.WriteString(tok.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Tokens produces the complete output stream for a document: the transformed
// flow bracketed by the document-wide questions environment, with the preface
// relocation pass applied at the end.
func (t *Transformer) Tokens(d *exam.Document) []Token {
	tokens := make([]Token, 0, 16)
	tokens = append(tokens, Begin("questions"))
	tokens = append(tokens, t.Transform(d.Blocks, 0)...)
	tokens = append(tokens, End("questions"))
	return RelocatePreface(tokens)
}

// Generate transforms the document and writes the resulting exam body to the
// output path.
func (t *Transformer) Generate(ctx context.Context, d *exam.Document, outputPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tokens := t.Tokens(d)

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer f.Close()

	if err := Render(f, tokens); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to finalize output: %w", err)
	}

	t.log.Debug("Generated exam body", zap.String("file", outputPath), zap.Int("tokens", len(tokens)), zap.Int("containers", exam.Containers(d.Blocks)))
	return nil
}
