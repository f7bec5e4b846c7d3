package branchstatus

import "regexp"

const tokenPatternConstant = `\[[^\]]*\]|\S+`

var tokenExpression = regexp.MustCompile(tokenPatternConstant)

// Line holds the tokens of one raw output line together with the raw text.
type Line struct {
	raw    string
	tokens []string
}

// TokenizeLine splits a raw line into bracketed spans and runs of non-whitespace.
// A bracketed span ends at the first closing bracket and keeps its brackets.
func TokenizeLine(rawLine string) Line {
	return Line{raw: rawLine, tokens: tokenExpression.FindAllString(rawLine, -1)}
}

// Raw returns the unmodified line text.
func (line Line) Raw() string {
	return line.raw
}

// Tokens returns a copy of the ordered tokens.
func (line Line) Tokens() []string {
	return append([]string(nil), line.tokens...)
}

// IsBlank reports whether the line produced no tokens.
func (line Line) IsBlank() bool {
	return len(line.tokens) == 0
}
