package formula

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmpty           = errors.New("empty formula")
	ErrUnexpectedChar  = errors.New("unexpected character")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnterminatedRef = errors.New("unterminated metric reference")
	ErrEmptyRef        = errors.New("empty metric reference")
	ErrBadNumber       = errors.New("malformed number")
	ErrUnbalancedParen = errors.New("unbalanced parentheses")
)

type SyntaxError struct {
	Pos int
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("formula syntax error at %d: %s", e.Pos, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Expr is a parsed formula, ready to be evaluated any number of times.
type Expr struct {
	src  string
	root Node
	refs []string
}

// Parse turns a formula such as "[Kilo] / (([Boy]/100) * ([Boy]/100))"
// into an expression tree.
func Parse(src string) (*Expr, error) {
	tokens, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 1 {
		return nil, &SyntaxError{Pos: 0, Err: ErrEmpty}
	}

	p := &parser{tokens: tokens}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		if tok.kind == tokRParen {
			return nil, &SyntaxError{Pos: tok.pos, Err: ErrUnbalancedParen}
		}
		return nil, &SyntaxError{Pos: tok.pos, Err: fmt.Errorf("%w: %s", ErrUnexpectedToken, tok.kind)}
	}

	return &Expr{
		src:  src,
		root: root,
		refs: p.refs,
	}, nil
}

// Refs returns the referenced metric names, in order of first appearance.
func (e *Expr) Refs() []string {
	refs := make([]string, len(e.refs))
	copy(refs, e.refs)
	return refs
}

func (e *Expr) Source() string {
	return e.src
}

func (e *Expr) String() string {
	return e.root.String()
}

// Eval walks the tree. It reports false when a referenced value is missing
// or the result is not a finite number.
func (e *Expr) Eval(r Resolver) (float64, bool) {
	res, ok := e.root.eval(r)
	if !ok || math.IsNaN(res) || math.IsInf(res, 0) {
		return 0, false
	}
	return res, true
}

type parser struct {
	tokens []token
	pos    int
	refs   []string
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokPlus && tok.kind != tokMinus {
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		op := byte('+')
		if tok.kind == tokMinus {
			op = '-'
		}
		left = Binary{Op: op, L: left, R: right}
	}
}

func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokStar && tok.kind != tokSlash {
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		op := byte('*')
		if tok.kind == tokSlash {
			op = '/'
		}
		left = Binary{Op: op, L: left, R: right}
	}
}

func (p *parser) parseUnary() (Node, error) {
	tok := p.peek()
	switch tok.kind {
	case tokPlus, tokMinus:
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		op := byte('+')
		if tok.kind == tokMinus {
			op = '-'
		}
		return Unary{Op: op, X: x}, nil
	default:
		return p.parsePrimary()
	}
}

func (p *parser) parsePrimary() (Node, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		return Number{Value: tok.num}, nil
	case tokRef:
		p.addRef(tok.name)
		return Ref{Name: tok.name}, nil
	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, &SyntaxError{Pos: closing.pos, Err: ErrUnbalancedParen}
		}
		return inner, nil
	case tokRParen:
		return nil, &SyntaxError{Pos: tok.pos, Err: ErrUnbalancedParen}
	default:
		return nil, &SyntaxError{Pos: tok.pos, Err: fmt.Errorf("%w: %s", ErrUnexpectedToken, tok.kind)}
	}
}

func (p *parser) addRef(name string) {
	for _, r := range p.refs {
		if r == name {
			return
		}
	}
	p.refs = append(p.refs, name)
}
