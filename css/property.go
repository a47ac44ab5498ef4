package css

import (
	"sort"
	"strconv"
	"strings"
)

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// IsImportant checks wether a property value carries an "!important" flag.
func (p Property) IsImportant() bool {
	return strings.HasSuffix(strings.TrimSpace(string(p)), "!important")
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// KV is a shortcut for creating a KeyValue.
func KV(key string, value Property) KeyValue {
	return KeyValue{Key: key, Value: value}
}

func (kv KeyValue) String() string {
	return kv.Key + ": " + string(kv.Value) + ";"
}

// --- Properties ------------------------------------------------------------

// Properties is a set of CSS declarations, i.e. key-value pairs of style
// properties. Keys are unique. Iteration and rendering follow insertion
// order; overwriting an existing key keeps its position.
//
// The zero value is an empty set, ready to use. nil is a legal, empty, but
// read-only property set.
type Properties struct {
	keys  []string
	props map[string]Property
}

// NewProperties creates a property set from a list of key-value pairs,
// keeping their order. Later pairs overwrite earlier ones with the same key.
func NewProperties(kv ...KeyValue) *Properties {
	pset := &Properties{}
	for _, p := range kv {
		pset.Set(p.Key, p.Value)
	}
	return pset
}

// PropertiesFromMap creates a property set from a map. As Go maps are
// unordered, the properties are inserted in lexical order of their keys.
func PropertiesFromMap(m map[string]string) *Properties {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pset := &Properties{}
	for _, k := range keys {
		pset.Set(k, Property(m[k]))
	}
	return pset
}

// Set a property's value. Overwrites an existing value, if present.
func (pset *Properties) Set(key string, p Property) {
	if pset.props == nil {
		pset.props = make(map[string]Property)
	}
	if _, exists := pset.props[key]; !exists {
		pset.keys = append(pset.keys, key)
	}
	pset.props[key] = p
}

// Unset removes a property. Unsetting a property which is not present
// does nothing.
func (pset *Properties) Unset(key string) {
	if pset == nil {
		return
	}
	if _, exists := pset.props[key]; !exists {
		return
	}
	delete(pset.props, key)
	for i, k := range pset.keys {
		if k == key {
			pset.keys = append(pset.keys[:i], pset.keys[i+1:]...)
			break
		}
	}
}

// Get a property's value.
func (pset *Properties) Get(key string) (Property, bool) {
	if pset == nil || pset.props == nil {
		return NullStyle, false
	}
	p, ok := pset.props[key]
	return p, ok
}

// Has is a predicate wether a property is set.
func (pset *Properties) Has(key string) bool {
	_, ok := pset.Get(key)
	return ok
}

// HasValue is a predicate wether any of the properties has value p.
func (pset *Properties) HasValue(p Property) bool {
	if pset == nil {
		return false
	}
	for _, v := range pset.props {
		if v == p {
			return true
		}
	}
	return false
}

// Len returns the number of properties.
func (pset *Properties) Len() int {
	if pset == nil {
		return 0
	}
	return len(pset.keys)
}

// IsEmpty is true for a set without properties.
func (pset *Properties) IsEmpty() bool {
	return pset.Len() == 0
}

// IsNotEmpty is true if at least one property is set.
func (pset *Properties) IsNotEmpty() bool {
	return pset.Len() > 0
}

// Keys returns the property keys in order.
func (pset *Properties) Keys() []string {
	if pset == nil {
		return nil
	}
	keys := make([]string, len(pset.keys))
	copy(keys, pset.keys)
	return keys
}

// Values returns the property values, in the order of their keys.
func (pset *Properties) Values() []Property {
	if pset == nil {
		return nil
	}
	values := make([]Property, len(pset.keys))
	for i, k := range pset.keys {
		values[i] = pset.props[k]
	}
	return values
}

// Entries returns all properties as key-value pairs.
func (pset *Properties) Entries() []KeyValue {
	if pset == nil {
		return nil
	}
	r := make([]KeyValue, len(pset.keys))
	for i, k := range pset.keys {
		r[i] = KeyValue{k, pset.props[k]}
	}
	return r
}

// Clone returns a deep copy of pset.
func (pset *Properties) Clone() *Properties {
	return NewProperties(pset.Entries()...)
}

// Equal returns true if both sets contain the same properties with the same
// values. Order does not matter.
func (pset *Properties) Equal(other *Properties) bool {
	if pset.Len() != other.Len() {
		return false
	}
	for _, k := range pset.Keys() {
		v, ok := other.Get(k)
		if !ok || v != pset.props[k] {
			return false
		}
	}
	return true
}

// Key returns a canonical representation of the property set, independent
// of insertion order. Equal property sets have identical keys.
func (pset *Properties) Key() string {
	entries := pset.Entries()
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	var b strings.Builder
	for _, kv := range entries {
		b.WriteString(strconv.Quote(kv.Key))
		b.WriteByte(':')
		b.WriteString(strconv.Quote(string(kv.Value)))
		b.WriteByte(';')
	}
	return b.String()
}

// Render concatenates all properties as "key: value;", without separators.
func (pset *Properties) Render() string {
	var b strings.Builder
	for _, kv := range pset.Entries() {
		b.WriteString(kv.String())
	}
	return b.String()
}

// RenderPretty outputs one "key: value;" line per property.
func (pset *Properties) RenderPretty() string {
	entries := pset.Entries()
	lines := make([]string, len(entries))
	for i, kv := range entries {
		lines[i] = kv.String()
	}
	return strings.Join(lines, "\n")
}

func (pset *Properties) String() string {
	return pset.Render()
}
