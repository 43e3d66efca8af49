package latex

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"exc/exam"
)

func TestTokenString(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want string
	}{
		{"bare command", Command("question"), `\question`},
		{"command with option", CommandOpt("question", "10"), `\question[10]`},
		{"brace group before bracket group", Token{Kind: TokenCommand, Name: "titledquestion", Arg: "Warm-up", Opt: "2.5"}, `\titledquestion{Warm-up}[2.5]`},
		{"begin", Begin("parts"), `\begin{parts}`},
		{"begin with option", BeginOpt("solution", "2in"), `\begin{solution}[2in]`},
		{"end", End("parts"), `\end{parts}`},
		{"verbatim passthrough", Verbatim(`already \LaTeX{} text`), `already \LaTeX{} text`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	var sb strings.Builder
	tokens := []Token{
		Begin("questions"),
		Command("question"),
		Verbatim("Compute."),
		End("questions"),
	}
	if err := Render(&sb, tokens); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "\\begin{questions}\n\\question\nCompute.\n\\end{questions}\n"
	if sb.String() != want {
		t.Errorf("Render() = %q, want %q", sb.String(), want)
	}
}

func TestTokens(t *testing.T) {
	tr := newTransformer(t, Options{IncludeSolutions: true})

	t.Run("flow bracketed by questions environment", func(t *testing.T) {
		d := &exam.Document{Blocks: []exam.Block{cont("", "", para("Compute."))}}
		assertLines(t, tr.Tokens(d), []string{
			`\begin{questions}`,
			`\question`,
			`Compute.`,
			`\end{questions}`,
		})
	})

	t.Run("preface relocated", func(t *testing.T) {
		d := &exam.Document{Blocks: []exam.Block{
			para("Read everything first."),
			cont("", "", para("Compute.")),
		}}
		assertLines(t, tr.Tokens(d), []string{
			`Read everything first.`,
			`\begin{questions}`,
			`\question`,
			`Compute.`,
			`\end{questions}`,
		})
	})

	t.Run("empty document keeps bare environment", func(t *testing.T) {
		d := &exam.Document{}
		assertLines(t, tr.Tokens(d), []string{
			`\begin{questions}`,
			`\end{questions}`,
		})
	})
}

func TestGenerate(t *testing.T) {
	tr := newTransformer(t, Options{IncludeSolutions: true})

	d := &exam.Document{Blocks: []exam.Block{cont("Warm-up", "2.5", para("Compute."))}}

	out := filepath.Join(t.TempDir(), "midterm.tex")
	if err := tr.Generate(context.Background(), d, out); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Unable to read output: %v", err)
	}
	want := "\\begin{questions}\n\\titledquestion{Warm-up}[2.5]\nCompute.\n\\end{questions}\n"
	if string(data) != want {
		t.Errorf("output = %q, want %q", string(data), want)
	}
}

func TestGenerate_CancelledContext(t *testing.T) {
	tr := newTransformer(t, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := filepath.Join(t.TempDir(), "midterm.tex")
	if err := tr.Generate(ctx, &exam.Document{}, out); err == nil {
		t.Error("Expected error for cancelled context")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("Output file should not have been created")
	}
}
