package formula

import (
	"fmt"
	"math"
	"strconv"
)

// Resolver supplies the numeric value of a referenced metric.
// The second return value is false when the value is not known.
type Resolver interface {
	Resolve(name string) (float64, bool)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(name string) (float64, bool)

func (f ResolverFunc) Resolve(name string) (float64, bool) {
	return f(name)
}

// Node is a single node of a parsed formula tree.
type Node interface {
	eval(r Resolver) (float64, bool)
	String() string
}

type Number struct {
	Value float64
}

func (n Number) eval(Resolver) (float64, bool) {
	return n.Value, true
}

func (n Number) String() string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// Ref is a bracketed metric reference, e.g. [Weight].
type Ref struct {
	Name string
}

func (n Ref) eval(r Resolver) (float64, bool) {
	if r == nil {
		return 0, false
	}
	return r.Resolve(n.Name)
}

func (n Ref) String() string {
	return "[" + n.Name + "]"
}

type Unary struct {
	Op byte
	X  Node
}

func (n Unary) eval(r Resolver) (float64, bool) {
	x, ok := n.X.eval(r)
	if !ok {
		return 0, false
	}
	if n.Op == '-' {
		return -x, true
	}
	return x, true
}

func (n Unary) String() string {
	return fmt.Sprintf("(%c%s)", n.Op, n.X)
}

type Binary struct {
	Op   byte
	L, R Node
}

func (n Binary) eval(r Resolver) (float64, bool) {
	l, ok := n.L.eval(r)
	if !ok {
		return 0, false
	}
	rv, ok := n.R.eval(r)
	if !ok {
		return 0, false
	}

	var res float64
	switch n.Op {
	case '+':
		res = l + rv
	case '-':
		res = l - rv
	case '*':
		res = l * rv
	case '/':
		res = l / rv
	default:
		return 0, false
	}
	if math.IsNaN(res) || math.IsInf(res, 0) {
		return 0, false
	}
	return res, true
}

func (n Binary) String() string {
	return fmt.Sprintf("(%s %c %s)", n.L, n.Op, n.R)
}
