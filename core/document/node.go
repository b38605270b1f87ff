package document

import (
	"fmt"
	"math"
	"strconv"

	"github.com/tidwall/gjson"
)

// Kind identifies the variant held by a Node.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// Field is one key/value pair of an object node.
type Field struct {
	Key   string
	Value *Node
}

// Node is a generic JSON value. Objects keep their keys in document order.
// Numbers keep the literal they were parsed from so large ids are not rounded.
//
// All accessors are nil-safe: a nil *Node behaves like JSON null, which lets
// callers chain lookups through optional fields.
type Node struct {
	kind   Kind
	b      bool
	s      string
	items  []*Node
	fields []Field
	index  map[string]int
}

// Parse decodes a JSON document into a Node tree.
func Parse(data []byte) (*Node, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON document (%d bytes)", len(data))
	}
	return fromResult(gjson.ParseBytes(data)), nil
}

// MustParse is like Parse but panics on malformed input. Intended for fixtures.
func MustParse(s string) *Node {
	n, err := Parse([]byte(s))
	if err != nil {
		panic(err)
	}
	return n
}

func fromResult(r gjson.Result) *Node {
	switch r.Type {
	case gjson.Null:
		return NewNull()
	case gjson.False:
		return NewBool(false)
	case gjson.True:
		return NewBool(true)
	case gjson.Number:
		return NewNumber(r.Raw)
	case gjson.String:
		return NewString(r.Str)
	}

	if r.IsArray() {
		arr := NewArray()
		r.ForEach(func(_, v gjson.Result) bool {
			arr.items = append(arr.items, fromResult(v))
			return true
		})
		return arr
	}

	obj := NewObject()
	r.ForEach(func(k, v gjson.Result) bool {
		obj.Set(k.Str, fromResult(v))
		return true
	})
	return obj
}

func NewNull() *Node { return &Node{kind: Null} }

func NewBool(b bool) *Node { return &Node{kind: Bool, b: b} }

func NewString(s string) *Node { return &Node{kind: String, s: s} }

func NewInt(i int64) *Node { return &Node{kind: Number, s: strconv.FormatInt(i, 10)} }

// NewNumber wraps a JSON number literal as-is. The literal is not validated.
func NewNumber(literal string) *Node { return &Node{kind: Number, s: literal} }

func NewArray(items ...*Node) *Node {
	return &Node{kind: Array, items: append([]*Node(nil), items...)}
}

func NewObject() *Node { return &Node{kind: Object, index: map[string]int{}} }

func (n *Node) Kind() Kind {
	if n == nil {
		return Null
	}
	return n.kind
}

func (n *Node) IsNull() bool   { return n.Kind() == Null }
func (n *Node) IsArray() bool  { return n.Kind() == Array }
func (n *Node) IsObject() bool { return n.Kind() == Object }

// Len returns the number of elements of an array or fields of an object.
func (n *Node) Len() int {
	switch n.Kind() {
	case Array:
		return len(n.items)
	case Object:
		return len(n.fields)
	}
	return 0
}

// Get returns the value stored under key, or nil if n is not an object or the key is absent.
func (n *Node) Get(key string) *Node {
	if n.Kind() != Object {
		return nil
	}
	if i, ok := n.index[key]; ok {
		return n.fields[i].Value
	}
	return nil
}

// Has reports whether n is an object holding key.
func (n *Node) Has(key string) bool {
	if n.Kind() != Object {
		return false
	}
	_, ok := n.index[key]
	return ok
}

// Index returns the i-th element of an array, or nil when out of range.
func (n *Node) Index(i int) *Node {
	if n.Kind() != Array || i < 0 || i >= len(n.items) {
		return nil
	}
	return n.items[i]
}

// Items returns the elements of an array node. The slice must not be modified.
func (n *Node) Items() []*Node {
	if n.Kind() != Array {
		return nil
	}
	return n.items
}

// Keys returns object keys in document order.
func (n *Node) Keys() []string {
	if n.Kind() != Object {
		return nil
	}
	keys := make([]string, len(n.fields))
	for i, f := range n.fields {
		keys[i] = f.Key
	}
	return keys
}

// Fields returns object fields in document order. The slice must not be modified.
func (n *Node) Fields() []Field {
	if n.Kind() != Object {
		return nil
	}
	return n.fields
}

// Each calls fn for every field of an object in document order until fn returns false.
func (n *Node) Each(fn func(key string, v *Node) bool) {
	for _, f := range n.Fields() {
		if !fn(f.Key, f.Value) {
			return
		}
	}
}

// Str returns the value of a string node.
func (n *Node) Str() (string, bool) {
	if n.Kind() != String {
		return "", false
	}
	return n.s, true
}

// Int returns the value of a number node that holds an integer.
func (n *Node) Int() (int64, bool) {
	if n.Kind() != Number {
		return 0, false
	}
	if i, err := strconv.ParseInt(n.s, 10, 64); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(n.s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func (n *Node) Float() (float64, bool) {
	if n.Kind() != Number {
		return 0, false
	}
	f, err := strconv.ParseFloat(n.s, 64)
	return f, err == nil
}

func (n *Node) Bool() (bool, bool) {
	if n.Kind() != Bool {
		return false, false
	}
	return n.b, true
}

// Text renders a scalar as a plain string: strings unquoted, numbers as their
// source literal. Containers and null render as "".
func (n *Node) Text() string {
	switch n.Kind() {
	case String, Number:
		return n.s
	case Bool:
		return strconv.FormatBool(n.b)
	}
	return ""
}

// Set stores v under key. Replacing an existing key keeps its position.
func (n *Node) Set(key string, v *Node) *Node {
	if n.Kind() != Object {
		panic(fmt.Sprintf("document: Set on %s node", n.Kind()))
	}
	if v == nil {
		v = NewNull()
	}
	if i, ok := n.index[key]; ok {
		n.fields[i].Value = v
		return n
	}
	n.index[key] = len(n.fields)
	n.fields = append(n.fields, Field{Key: key, Value: v})
	return n
}

// Append adds items to an array node.
func (n *Node) Append(items ...*Node) *Node {
	if n.Kind() != Array {
		panic(fmt.Sprintf("document: Append on %s node", n.Kind()))
	}
	n.items = append(n.items, items...)
	return n
}

// Delete removes key from an object node. It reports whether the key was present.
func (n *Node) Delete(key string) bool {
	if n.Kind() != Object {
		return false
	}
	i, ok := n.index[key]
	if !ok {
		return false
	}
	n.fields = append(n.fields[:i], n.fields[i+1:]...)
	n.reindex()
	return true
}

func (n *Node) reindex() {
	n.index = make(map[string]int, len(n.fields))
	for i, f := range n.fields {
		n.index[f.Key] = i
	}
}

// RenameKeys renames, in place and at every depth, each object key found in
// renames to its mapped name. Keys are matched by their original name only, so
// a rename never chains into another. When the new name already exists as an
// unrenamed key of the same object, that key is dropped and the renamed field
// keeps its position.
func (n *Node) RenameKeys(renames map[string]string) {
	if n == nil || len(renames) == 0 {
		return
	}
	switch n.kind {
	case Array:
		for _, item := range n.items {
			item.RenameKeys(renames)
		}
	case Object:
		produced := map[string]bool{}
		for _, f := range n.fields {
			if to, ok := renames[f.Key]; ok && to != f.Key {
				produced[to] = true
			}
		}
		if len(produced) > 0 {
			kept := n.fields[:0]
			for _, f := range n.fields {
				if to, ok := renames[f.Key]; ok {
					f.Key = to
				} else if produced[f.Key] {
					continue
				}
				kept = append(kept, f)
			}
			n.fields = kept
			n.reindex()
		}
		for _, f := range n.fields {
			f.Value.RenameKeys(renames)
		}
	}
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{kind: n.kind, b: n.b, s: n.s}
	switch n.kind {
	case Array:
		c.items = make([]*Node, len(n.items))
		for i, item := range n.items {
			c.items[i] = item.Clone()
		}
	case Object:
		c.fields = make([]Field, len(n.fields))
		for i, f := range n.fields {
			c.fields[i] = Field{Key: f.Key, Value: f.Value.Clone()}
		}
		c.reindex()
	}
	return c
}

// Text values carry markup such as <color=#FFD780FF> that must reach the
// output unescaped.
func init() {
	gjson.DisableEscapeHTML = true
}

// MarshalJSON encodes n compactly, keeping object key order. HTML characters
// are not escaped.
func (n *Node) MarshalJSON() ([]byte, error) {
	return n.appendJSON(nil), nil
}

func (n *Node) appendJSON(dst []byte) []byte {
	switch n.Kind() {
	case Null:
		return append(dst, "null"...)
	case Bool:
		return strconv.AppendBool(dst, n.b)
	case Number:
		return append(dst, n.s...)
	case String:
		return gjson.AppendJSONString(dst, n.s)
	case Array:
		dst = append(dst, '[')
		for i, item := range n.items {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = item.appendJSON(dst)
		}
		return append(dst, ']')
	case Object:
		dst = append(dst, '{')
		for i, f := range n.fields {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = gjson.AppendJSONString(dst, f.Key)
			dst = append(dst, ':')
			dst = f.Value.appendJSON(dst)
		}
		return append(dst, '}')
	}
	return dst
}
