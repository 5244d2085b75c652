package radix

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

// allFactories builds trees with every factory in both concurrency modes.
func allFactories() []struct {
	Name     string
	Factory  NodeFactory[int]
	Restrict bool
} {
	var cases []struct {
		Name     string
		Factory  NodeFactory[int]
		Restrict bool
	}

	for _, f := range []struct {
		name    string
		factory NodeFactory[int]
	}{
		{"view", CharSequenceFactory[int]{}},
		{"runes", CharArrayFactory[int]{}},
		{"smart", SmartArrayFactory[int]{}},
	} {
		for _, restrict := range []bool{false, true} {
			name := f.name + "/lock-free"
			if restrict {
				name = f.name + "/restricted"
			}
			cases = append(cases, struct {
				Name     string
				Factory  NodeFactory[int]
				Restrict bool
			}{name, f.factory, restrict})
		}
	}

	return cases
}

// requireInvariants checks the structural invariants of the whole tree.
func requireInvariants[V any](t *testing.T, tree *Tree[V]) {
	t.Helper()

	requireNodeInvariants(t, tree.Root(), true, "")
}

func requireNodeInvariants[V any](t *testing.T, node Node[V], isRoot bool, path string) {
	t.Helper()

	var (
		children = node.Children()
		edge     = node.Edge().String()
	)

	path += edge

	if !isRoot {
		require.NotZero(t, node.EdgeLen(), "empty edge at %q", path)
		require.Equal(t, []rune(edge)[0], node.FirstChar(), "first char at %q", path)

		switch children.Len() {
		case 0:
			require.True(t, node.Value().Exists(), "valueless leaf at %q", path)
		case 1:
			require.True(t, node.Value().Exists(), "uncompressed chain at %q", path)
		}
	}

	for i := 0; i < children.Len(); i++ {
		child := children.At(i)

		if i > 0 {
			require.Less(t, children.At(i-1).FirstChar(), child.FirstChar(), "children order at %q", path)
		}

		require.Same(t, child, node.Child(child.FirstChar()), "child lookup at %q", path)

		requireNodeInvariants(t, child, false, path)
	}
}

// fakeKeys returns unique keys mixing ASCII words, Latin-1 and wider scripts.
func fakeKeys(seed int64, total int) []string {
	var (
		fake   = gofakeit.New(seed)
		seen   = make(map[string]bool, total)
		keys   = make([]string, 0, total)
		extras = []string{"", "é", "ß", "Ж", "日本", "→"}
	)

	for len(keys) < total {
		var key string

		switch fake.Number(0, 3) {
		case 0:
			key = fake.Word()
		case 1:
			key = fake.Word() + fake.Word()
		case 2:
			key = fake.Word() + extras[fake.Number(0, len(extras)-1)]
		default:
			key = fake.HipsterSentence(3)
		}

		if key == "" || seen[key] {
			continue
		}

		seen[key] = true
		keys = append(keys, key)
	}

	return keys
}
