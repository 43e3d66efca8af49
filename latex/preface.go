package latex

// RelocatePreface fixes up the top-level output stream so preface content
// does not end up inside the questions environment. The stream arrives with
// the always-present \begin{questions} marker at the front; when any
// non-question content sits between that marker and the first question
// command, the marker is moved to immediately precede the command. The
// displaced preface keeps its relative order in front of the marker.
//
// Applying the pass twice yields the same result as applying it once.
func RelocatePreface(tokens []Token) []Token {
	begin := -1
	for i, tok := range tokens {
		if tok.Kind == TokenBegin && tok.Name == "questions" {
			begin = i
			break
		}
	}
	if begin < 0 {
		return tokens
	}

	first := -1
	for i := begin + 1; i < len(tokens); i++ {
		if isQuestionCommand(tokens[i]) {
			first = i
			break
		}
	}
	if first < 0 || first == begin+1 {
		// No questions at all, or nothing displaced - stream is already fine.
		return tokens
	}

	out := make([]Token, 0, len(tokens))
	out = append(out, tokens[:begin]...)
	out = append(out, tokens[begin+1:first]...)
	out = append(out, tokens[begin])
	out = append(out, tokens[first:]...)
	return out
}

func isQuestionCommand(t Token) bool {
	return t.Kind == TokenCommand && (t.Name == "question" || t.Name == "titledquestion")
}
