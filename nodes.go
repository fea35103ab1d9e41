package calcr

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an equation.
type node struct {
	kind nodeKind

	// name is the literal text of a nodeNum, the looked-up name of a
	// nodeConst or nodeVar, the function name of a nodeCall, and the target
	// variable of a nodeAssign.
	name string
	// val is the parsed value of a nodeNum.
	val float64
	fn  Func

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum   // literal; val holds the value
	nodeConst // named constant, resolved against the environment
	nodeVar   // variable reference, resolved against the environment

	nodeCall // apply fn to left

	nodeNeg  // negate left
	nodeFact // factorial of left
	nodeAdd  // evaluate left, add right
	nodeSub  // evaluate left, sub right
	nodeMul  // evaluate left, mul right
	nodeDiv  // evaluate left, div by right
	nodePow  // evaluate left, exp by right

	nodeAssign // evaluate left, store as name
)

var nodeNames = [...]string{
	"None", "Num", "Const", "Var", "Call",
	"Neg", "Fact", "Add", "Sub", "Mul", "Div", "Pow",
	"Assign",
}

func (k nodeKind) String() string {
	if k >= 0 && int(k) < len(nodeNames) {
		return nodeNames[k]
	}
	return "nodeKind(" + strconv.Itoa(int(k)) + ")"
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes a fully parenthesized rendering of the tree, for debugging and
// Expr.String.
func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b)
		}
		b.WriteByte('$')
	case nodeNum, nodeConst, nodeVar:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeNeg:
		b.WriteString("(-")
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeFact:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteString("!)")
	case nodeAdd:
		n.binfmt(b, " + ")
	case nodeSub:
		n.binfmt(b, " - ")
	case nodeMul:
		n.binfmt(b, " * ")
	case nodeDiv:
		n.binfmt(b, " / ")
	case nodePow:
		n.binfmt(b, " ^ ")
	case nodeAssign:
		b.WriteString(n.name)
		b.WriteString(" = ")
		n.left.fmt(b)
	default:
		panic("calcr: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *node) binfmt(b *strings.Builder, op string) {
	b.WriteByte('(')
	n.left.fmt(b)
	b.WriteString(op)
	n.right.fmt(b)
	b.WriteByte(')')
}
