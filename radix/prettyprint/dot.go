package prettyprint

import (
	"fmt"
	"io"
	"strings"

	"github.com/aglyzov/go-radix/radix"
)

// Dot outputs the tree below root in Graphviz DOT format.
func Dot[V any](w io.Writer, root radix.Node[V]) error {
	var (
		b      strings.Builder
		nextID = 1
	)

	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")

	var visit func(node radix.Node[V]) int

	visit = func(node radix.Node[V]) int {
		id := nextID
		nextID++

		label := node.Edge().String()
		if node.EdgeLen() == 0 {
			label = "○"
		}

		shape := "ellipse"
		if val := node.Value(); val.Exists() {
			label += "\n" + val.String()
			shape = "box"
		}

		fmt.Fprintf(&b, "\t\"%d\" [label=%q shape=%s];\n", id, label, shape)

		for _, child := range node.Children().Slice() {
			childID := visit(child)
			fmt.Fprintf(&b, "\t\"%d\" -> \"%d\";\n", id, childID)
		}

		return id
	}

	visit(root)

	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}
