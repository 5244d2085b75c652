// Package prettyprint renders the structure of a radix tree for debugging.
//
// It only reads nodes through the radix.Node contract. On a tree with
// restricted concurrency it must not run while a write is in flight.
package prettyprint

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/aglyzov/go-radix/radix"
)

type printer struct {
	colored    bool
	hideValues bool
	edges      *color.Color
	values     *color.Color
}

// Option configures the printer.
type Option func(*printer)

// WithColor highlights edges and values with terminal colors.
func WithColor(on bool) Option {
	return func(p *printer) {
		p.colored = on
	}
}

// WithValues controls whether stored values follow the edges. They are shown
// by default.
func WithValues(on bool) Option {
	return func(p *printer) {
		p.hideValues = !on
	}
}

func newPrinter(opts []Option) *printer {
	p := &printer{
		edges:  color.New(color.FgCyan),
		values: color.New(color.FgYellow),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.colored {
		// force colors even when the output is not a terminal
		p.edges.EnableColor()
		p.values.EnableColor()
	} else {
		p.edges.DisableColor()
		p.values.DisableColor()
	}

	return p
}

// Sprint returns the tree below root as text, one node per line:
//
//	○
//	└── ○ B (1)
//	    ├── ○ A (2)
//	    │   └── ○ NANA (3)
//	    └── ○ OO (4)
func Sprint[V any](root radix.Node[V], opts ...Option) string {
	var (
		b strings.Builder
		p = newPrinter(opts)
	)

	printNode(p, &b, root, "", true, true)

	return b.String()
}

// Fprint writes the tree below root to w.
func Fprint[V any](w io.Writer, root radix.Node[V], opts ...Option) error {
	_, err := io.WriteString(w, Sprint(root, opts...))
	return err
}

// Print writes the tree below root to stdout, colored when stdout is a
// terminal.
func Print[V any](root radix.Node[V]) error {
	colored := term.IsTerminal(int(os.Stdout.Fd()))
	return Fprint(os.Stdout, root, WithColor(colored))
}

func printNode[V any](p *printer, b *strings.Builder, node radix.Node[V], prefix string, isTail, isRoot bool) {
	b.WriteString(prefix)

	switch {
	case isRoot:
		b.WriteString("○")
		if node.EdgeLen() > 0 {
			b.WriteByte(' ')
		}
	case isTail:
		b.WriteString("└── ○ ")
	default:
		b.WriteString("├── ○ ")
	}

	b.WriteString(p.edges.Sprint(node.Edge().String()))

	if val := node.Value(); val.Exists() && !p.hideValues {
		b.WriteString(" (" + p.values.Sprint(val.String()) + ")")
	}

	b.WriteByte('\n')

	var childPrefix string

	switch {
	case isRoot:
		childPrefix = prefix
	case isTail:
		childPrefix = prefix + "    "
	default:
		childPrefix = prefix + "│   "
	}

	children := node.Children().Slice()

	for i, child := range children {
		printNode(p, b, child, childPrefix, i == len(children)-1, false)
	}
}
