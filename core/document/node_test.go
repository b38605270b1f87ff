package document

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshal(t *testing.T, n *Node) string {
	t.Helper()
	b, err := n.MarshalJSON()
	require.NoError(t, err)
	return string(b)
}

func TestParse(t *testing.T) {
	t.Run("KeepsKeyOrder", func(t *testing.T) {
		n, err := Parse([]byte(`{"b": 1, "a": 2, "c": {"z": 1, "y": 2}}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a", "c"}, n.Keys())
		assert.Equal(t, []string{"z", "y"}, n.Get("c").Keys())
	})

	t.Run("KeepsNumberLiterals", func(t *testing.T) {
		n, err := Parse([]byte(`{"hash": 18446744073709551615, "neg": -3, "f": 1.50}`))
		require.NoError(t, err)
		assert.Equal(t, "18446744073709551615", n.Get("hash").Text())
		assert.Equal(t, `{"hash":18446744073709551615,"neg":-3,"f":1.50}`, marshal(t, n))

		i, ok := n.Get("neg").Int()
		assert.True(t, ok)
		assert.Equal(t, int64(-3), i)

		_, ok = n.Get("f").Int()
		assert.False(t, ok)
	})

	t.Run("Scalars", func(t *testing.T) {
		n, err := Parse([]byte(`[null, true, false, "x", 2]`))
		require.NoError(t, err)
		assert.Equal(t, 5, n.Len())
		assert.True(t, n.Index(0).IsNull())
		b, ok := n.Index(1).Bool()
		assert.True(t, ok)
		assert.True(t, b)
		s, ok := n.Index(3).Str()
		assert.True(t, ok)
		assert.Equal(t, "x", s)
		assert.Nil(t, n.Index(5))
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := Parse([]byte(`{"a": `))
		assert.Error(t, err)

		_, err = Parse(nil)
		assert.Error(t, err)
	})

	t.Run("UnescapesStrings", func(t *testing.T) {
		n, err := Parse([]byte(`{"kA": "line\nbreak \"q\""}`))
		require.NoError(t, err)
		s, _ := n.Get("kA").Str()
		assert.Equal(t, "line\nbreak \"q\"", s)
	})
}

func TestNilSafeAccessors(t *testing.T) {
	var n *Node
	assert.Nil(t, n.Get("a").Index(3).Get("b"))
	assert.Equal(t, Null, n.Kind())
	assert.Equal(t, "", n.Text())
	assert.Equal(t, 0, n.Len())
	assert.False(t, n.Has("a"))
}

func TestSetKeepsPosition(t *testing.T) {
	n := NewObject()
	n.Set("a", NewInt(1)).Set("b", NewInt(2)).Set("a", NewString("x"))
	assert.Equal(t, `{"a":"x","b":2}`, marshal(t, n))

	assert.True(t, n.Delete("a"))
	assert.False(t, n.Delete("a"))
	assert.Equal(t, `{"b":2}`, marshal(t, n))
	assert.Equal(t, NewInt(2), n.Get("b"))
}

func TestMarshalJSON(t *testing.T) {
	t.Run("DoesNotEscapeHTML", func(t *testing.T) {
		n := NewObject().Set("t", NewString(`<color=#FFD780FF>A & B</color>`))
		assert.Equal(t, `{"t":"<color=#FFD780FF>A & B</color>"}`, marshal(t, n))
	})

	t.Run("EscapesControlCharacters", func(t *testing.T) {
		n := NewString("a\"b\\c\n\t\x01")
		assert.Equal(t, `"a\"b\\c\n\t\u0001"`, marshal(t, n))
	})

	t.Run("ReplacesInvalidUTF8", func(t *testing.T) {
		n := NewObject().Set("k\xff", NewString("\u2028ok"))
		assert.Equal(t, `{"k\ufffd":"\u2028ok"}`, marshal(t, n))
	})

	t.Run("RoundTrip", func(t *testing.T) {
		src := `{"en":{"1":"a","2":["b",{"c":null}]},"ja":{},"list":[],"ok":true}`
		assert.Equal(t, src, marshal(t, MustParse(src)))
	})
}

func TestRenameKeys(t *testing.T) {
	t.Run("RenamesAtEveryDepth", func(t *testing.T) {
		n := MustParse(`{"XQZ": [{"ABC": 2, "DEF": 1}, {"ABC": 4, "DEF": 2}], "other": {"ABC": "v"}}`)
		n.RenameKeys(map[string]string{"XQZ": "Data", "ABC": "Rarity"})

		want := `{"Data":[{"Rarity":2,"DEF":1},{"Rarity":4,"DEF":2}],"other":{"Rarity":"v"}}`
		if diff := cmp.Diff(want, marshal(t, n)); diff != "" {
			t.Errorf("renamed document mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("DoesNotTouchValues", func(t *testing.T) {
		n := MustParse(`{"ABC": "ABC", "list": ["ABC"]}`)
		n.RenameKeys(map[string]string{"ABC": "Rarity"})
		assert.Equal(t, `{"Rarity":"ABC","list":["ABC"]}`, marshal(t, n))
	})

	t.Run("DoesNotChain", func(t *testing.T) {
		n := MustParse(`{"A": 1, "B": 2}`)
		n.RenameKeys(map[string]string{"A": "B", "B": "C"})
		assert.Equal(t, `{"B":1,"C":2}`, marshal(t, n))
	})

	t.Run("CollisionKeepsRenamedField", func(t *testing.T) {
		n := MustParse(`{"Level": 9, "QWE": 1}`)
		n.RenameKeys(map[string]string{"QWE": "Level"})
		assert.Equal(t, `{"Level":1}`, marshal(t, n))
		v, _ := n.Get("Level").Int()
		assert.Equal(t, int64(1), v)
	})

	t.Run("RoundTripReadsCanonicalKey", func(t *testing.T) {
		n := MustParse(`{"x": {"deep": [1, 2]}}`)
		before := marshal(t, n.Get("x"))
		n.RenameKeys(map[string]string{"x": "a"})
		assert.Nil(t, n.Get("x"))
		assert.Equal(t, before, marshal(t, n.Get("a")))
	})
}

func TestClone(t *testing.T) {
	n := MustParse(`{"a": {"b": [1, {"c": 2}]}}`)
	c := n.Clone()
	c.Get("a").Set("new", NewBool(true))
	c.Get("a").Get("b").Index(1).Set("c", NewInt(3))

	assert.Equal(t, `{"a":{"b":[1,{"c":2}]}}`, marshal(t, n))
	assert.Equal(t, `{"a":{"b":[1,{"c":3}],"new":true}}`, marshal(t, c))
}
