package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/btouchard/plume/internal/compiler/ast"
)

// Format serializes a parsed template back to source text in canonical
// form: expressions padded with a single space inside the delimiters,
// operators spaced. Reparsing the result yields a structurally
// identical tree.
func Format(root *ast.List) string {
	return root.String()
}

// Dump writes an indented one-node-per-line view of the tree, used by
// the ast CLI command.
func Dump(w io.Writer, node ast.Node) {
	dump(w, node, 0)
}

func dump(w io.Writer, node ast.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	pos := node.Pos()

	switch n := node.(type) {
	case *ast.List:
		fmt.Fprintf(w, "%sList (%d children)\n", indent, n.Len())
		for _, c := range n.Children {
			dump(w, c, depth+1)
		}
	case *ast.Text:
		fmt.Fprintf(w, "%sText @%d %q\n", indent, pos.Offset, n.Value)
	case *ast.VariableBlock:
		fmt.Fprintf(w, "%sVariableBlock @%d\n", indent, pos.Offset)
		dump(w, n.Expr, depth+1)
	case *ast.Math:
		fmt.Fprintf(w, "%sMath @%d %q\n", indent, pos.Offset, n.Operator)
		dump(w, n.Left, depth+1)
		dump(w, n.Right, depth+1)
	case *ast.Ident:
		fmt.Fprintf(w, "%sIdent @%d %s\n", indent, pos.Offset, n.Name)
	case *ast.IntLit:
		fmt.Fprintf(w, "%sInt @%d %d\n", indent, pos.Offset, n.Value)
	case *ast.FloatLit:
		fmt.Fprintf(w, "%sFloat @%d %s\n", indent, pos.Offset, n.String())
	case *ast.BoolLit:
		fmt.Fprintf(w, "%sBool @%d %s\n", indent, pos.Offset, n.String())
	default:
		fmt.Fprintf(w, "%s%T @%d\n", indent, node, pos.Offset)
	}
}
