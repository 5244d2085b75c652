package radix

import (
	"hash/maphash"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_States(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Name      string
		Val       Value[int]
		ExpAbsent bool
		ExpVoid   bool
		ExpExists bool
		ExpString string
	}{
		{"absent", Absent[int](), true, false, false, "<absent>"},
		{"void", Void[int](), false, true, true, "-"},
		{"present", Present(42), false, false, true, "42"},
		{"zero", Present(0), false, false, true, "0"},
	} {
		tcase := tcase

		t.Run(tcase.Name, func(t *testing.T) {
			assert.Equal(t, tcase.ExpAbsent, tcase.Val.IsAbsent())
			assert.Equal(t, tcase.ExpVoid, tcase.Val.IsVoid())
			assert.Equal(t, tcase.ExpExists, tcase.Val.Exists())
			assert.Equal(t, !tcase.ExpAbsent && !tcase.ExpVoid, tcase.Val.IsPresent())
			assert.Equal(t, tcase.ExpString, tcase.Val.String())
		})
	}
}

func TestValue_Get(t *testing.T) {
	t.Parallel()

	val, ok := Present("x").Get()
	assert.Equal(t, "x", val)
	assert.True(t, ok)

	val, ok = Void[string]().Get()
	assert.Equal(t, "", val)
	assert.False(t, ok)

	assert.Equal(t, Void[string](), Void[string]())
	assert.NotEqual(t, Void[string](), Absent[string]())
}

func TestKeyValuePair(t *testing.T) {
	t.Parallel()

	var (
		a = KeyValuePair[int]{Key: "FOO", Value: Present(1)}
		b = KeyValuePair[int]{Key: "FOO", Value: Present(2)}
		c = KeyValuePair[int]{Key: "BAR", Value: Present(1)}
	)

	seed := maphash.MakeSeed()

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(seed), b.Hash(seed))
	assert.False(t, a.Equal(c))
	assert.Equal(t, "(FOO, 1)", a.String())
	assert.Equal(t, "(BAR, -)", KeyValuePair[int]{Key: "BAR", Value: Void[int]()}.String())
}
