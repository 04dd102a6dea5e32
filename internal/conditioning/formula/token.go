package formula

import (
	"fmt"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokRef
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of formula"
	case tokNumber:
		return "number"
	case tokRef:
		return "metric reference"
	case tokPlus:
		return "'+'"
	case tokMinus:
		return "'-'"
	case tokStar:
		return "'*'"
	case tokSlash:
		return "'/'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	default:
		return "unknown"
	}
}

type token struct {
	kind tokenKind
	pos  int
	num  float64
	name string
}

// tokenize splits the formula into tokens. Whitespace is skipped,
// everything inside [ ] is taken verbatim as a metric name.
func tokenize(src string) ([]token, error) {
	var tokens []token
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '+':
			tokens = append(tokens, token{kind: tokPlus, pos: i})
			i++
		case c == '-':
			tokens = append(tokens, token{kind: tokMinus, pos: i})
			i++
		case c == '*':
			tokens = append(tokens, token{kind: tokStar, pos: i})
			i++
		case c == '/':
			tokens = append(tokens, token{kind: tokSlash, pos: i})
			i++
		case c == '(':
			tokens = append(tokens, token{kind: tokLParen, pos: i})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokRParen, pos: i})
			i++
		case c == '[':
			end := strings.IndexByte(src[i+1:], ']')
			if end < 0 {
				return nil, &SyntaxError{Pos: i, Err: ErrUnterminatedRef}
			}
			name := src[i+1 : i+1+end]
			if strings.TrimSpace(name) == "" {
				return nil, &SyntaxError{Pos: i, Err: ErrEmptyRef}
			}
			if strings.ContainsRune(name, '[') {
				return nil, &SyntaxError{Pos: i, Err: ErrUnterminatedRef}
			}
			tokens = append(tokens, token{kind: tokRef, pos: i, name: name})
			i += end + 2
		case c == ']':
			return nil, &SyntaxError{Pos: i, Err: fmt.Errorf("%w: ']'", ErrUnexpectedChar)}
		case isDigit(c) || c == '.':
			start := i
			seenDot := false
			for i < len(src) && (isDigit(src[i]) || src[i] == '.') {
				if src[i] == '.' {
					if seenDot {
						return nil, &SyntaxError{Pos: i, Err: ErrBadNumber}
					}
					seenDot = true
				}
				i++
			}
			lit := src[start:i]
			if lit == "." {
				return nil, &SyntaxError{Pos: start, Err: ErrBadNumber}
			}
			num, err := strconv.ParseFloat(lit, 64)
			if err != nil {
				return nil, &SyntaxError{Pos: start, Err: ErrBadNumber}
			}
			tokens = append(tokens, token{kind: tokNumber, pos: start, num: num})
		default:
			return nil, &SyntaxError{Pos: i, Err: fmt.Errorf("%w: %q", ErrUnexpectedChar, c)}
		}
	}
	tokens = append(tokens, token{kind: tokEOF, pos: len(src)})
	return tokens, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
