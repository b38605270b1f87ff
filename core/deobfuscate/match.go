package deobfuscate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"json-cooker/core/document"
)

// Match is a sentinel test applied to a candidate value.
type Match struct {
	// Desc describes the sentinel, e.g. "== 2".
	Desc string
	Test func(v *document.Node) bool
}

// Equals matches integer values equal to want.
func Equals(want int64) Match {
	return Match{
		Desc: fmt.Sprintf("== %d", want),
		Test: func(v *document.Node) bool {
			got, ok := v.Int()
			return ok && got == want
		},
	}
}

// EqualsString matches string values equal to want.
func EqualsString(want string) Match {
	return Match{
		Desc: fmt.Sprintf("== %q", want),
		Test: func(v *document.Node) bool {
			s, ok := v.Str()
			return ok && s == want
		},
	}
}

// IsList matches array values.
func IsList() Match {
	return Match{
		Desc: "is list",
		Test: func(v *document.Node) bool { return v.IsArray() },
	}
}

// StrLen matches string values of exactly n characters.
func StrLen(n int) Match {
	return Match{
		Desc: fmt.Sprintf("len == %d", n),
		Test: func(v *document.Node) bool {
			s, ok := v.Str()
			return ok && utf8.RuneCountInString(s) == n
		},
	}
}

// HasPrefix matches string values starting with prefix.
func HasPrefix(prefix string) Match {
	return Match{
		Desc: fmt.Sprintf("starts with %q", prefix),
		Test: func(v *document.Node) bool {
			s, ok := v.Str()
			return ok && strings.HasPrefix(s, prefix)
		},
	}
}

// HasSuffix matches string values ending with suffix.
func HasSuffix(suffix string) Match {
	return Match{
		Desc: fmt.Sprintf("ends with %q", suffix),
		Test: func(v *document.Node) bool {
			s, ok := v.Str()
			return ok && strings.HasSuffix(s, suffix)
		},
	}
}
