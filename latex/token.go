// Package latex turns the exam block tree into a stream of exam-class
// commands and environments.
package latex

import "strings"

// TokenKind distinguishes output token flavors.
type TokenKind int

const (
	// TokenCommand is a literal command, optionally with a brace argument
	// and a bracket argument.
	TokenCommand TokenKind = iota
	// TokenBegin opens an environment, optionally with a bracket argument.
	TokenBegin
	// TokenEnd closes an environment.
	TokenEnd
	// TokenVerbatim is passthrough content emitted as is.
	TokenVerbatim
)

// Token is a single element of the transformation output.
type Token struct {
	Kind TokenKind
	Name string // command or environment name, without the leading backslash
	Arg  string // brace argument, empty means none
	Opt  string // bracket argument, empty means none
	Text string // verbatim content
}

func Command(name string) Token             { return Token{Kind: TokenCommand, Name: name} }
func CommandOpt(name, opt string) Token     { return Token{Kind: TokenCommand, Name: name, Opt: opt} }
func Begin(name string) Token               { return Token{Kind: TokenBegin, Name: name} }
func BeginOpt(name, opt string) Token       { return Token{Kind: TokenBegin, Name: name, Opt: opt} }
func End(name string) Token                 { return Token{Kind: TokenEnd, Name: name} }
func Verbatim(text string) Token            { return Token{Kind: TokenVerbatim, Text: text} }

// String renders the exact literal shape of the token. The brace group always
// comes before the bracket group, so a titled question with points renders as
// \titledquestion{title}[points].
func (t Token) String() string {
	var b strings.Builder
	switch t.Kind {
	case TokenCommand:
		b.WriteByte('\\')
		b.WriteString(t.Name)
		if t.Arg != "" {
			b.WriteByte('{')
			b.WriteString(t.Arg)
			b.WriteByte('}')
		}
		if t.Opt != "" {
			b.WriteByte('[')
			b.WriteString(t.Opt)
			b.WriteByte(']')
		}
	case TokenBegin:
		b.WriteString(`\begin{`)
		b.WriteString(t.Name)
		b.WriteByte('}')
		if t.Opt != "" {
			b.WriteByte('[')
			b.WriteString(t.Opt)
			b.WriteByte(']')
		}
	case TokenEnd:
		b.WriteString(`\end{`)
		b.WriteString(t.Name)
		b.WriteByte('}')
	case TokenVerbatim:
		return t.Text
	}
	return b.String()
}
