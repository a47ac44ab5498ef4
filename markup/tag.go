package markup

import (
	"sort"
	"strings"

	"github.com/npillmayer/webdoc/css"
	"github.com/npillmayer/webdoc/maybe"
)

// Tag is an HTML element without content. It always renders self-closing:
//
//     <img id="logo" class="small,round" style="width: 10px;" src="./icon.png"/>
//
// The identifier, classes and inline style are fields of their own, output
// in this order, followed by all other attributes in order of insertion.
type Tag struct {
	name    string
	id      maybe.Maybe[string]
	classes ClassSet
	attrs   attributes
	style   *css.Properties
}

// Option configures a tag during construction.
type Option func(*tagConfig)

type tagConfig struct {
	id         maybe.Maybe[string]
	classes    []string
	attrs      []Attribute
	style      *css.Properties
	content    []Node
	hasContent bool
}

// ID sets the identifier of a tag.
func ID(id string) Option {
	return func(c *tagConfig) {
		c.id = maybe.Just(id)
	}
}

// Classes adds classes to a tag.
func Classes(names ...string) Option {
	return func(c *tagConfig) {
		c.classes = append(c.classes, names...)
	}
}

// Attr adds an attribute to a tag.
func Attr(key, value string) Option {
	return func(c *tagConfig) {
		c.attrs = append(c.attrs, Attribute{Key: key, Value: value})
	}
}

// Attrs adds attributes from a map. As Go maps are unordered, attributes
// are added in lexical order of their keys.
func Attrs(m map[string]string) Option {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return func(c *tagConfig) {
		for _, k := range keys {
			c.attrs = append(c.attrs, Attribute{Key: k, Value: m[k]})
		}
	}
}

// Style sets the inline style of a tag. The tag takes ownership of props.
func Style(props *css.Properties) Option {
	return func(c *tagConfig) {
		c.style = props
	}
}

// Content adds child nodes to a ContentTag. It is an error to use it for a
// Tag without content.
func Content(nodes ...Node) Option {
	return func(c *tagConfig) {
		c.content = append(c.content, nodes...)
		c.hasContent = true
	}
}

func configure(name string, opts []Option) (*tagConfig, error) {
	if err := checkTagName(name); err != nil {
		return nil, err
	}
	c := &tagConfig{id: maybe.Nothing[string]()}
	for _, opt := range opts {
		opt(c)
	}
	for _, a := range c.attrs {
		if err := checkAttribute(a.Key); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (t *Tag) init(name string, c *tagConfig) {
	t.name = name
	t.id = c.id
	t.classes.Add(c.classes...)
	for _, a := range c.attrs {
		t.attrs.set(a.Key, a.Value)
	}
	t.style = c.style
	if t.style == nil {
		t.style = &css.Properties{}
	}
}

// NewTag creates a tag without content.
//
// NewTag fails with a *ReservedNameError if name is "script" or "style",
// or if any of the attributes is "id", "class" or "style". It fails with
// ErrContentNotAllowed if option Content is given.
func NewTag(name string, opts ...Option) (*Tag, error) {
	c, err := configure(name, opts)
	if err != nil {
		return nil, err
	}
	if c.hasContent {
		return nil, ErrContentNotAllowed
	}
	t := &Tag{}
	t.init(name, c)
	return t, nil
}

// Name returns the name of the tag, e.g. "div".
func (t *Tag) Name() string {
	return t.name
}

// SetName renames the tag. Renaming to "script" or "style" fails with a
// *ReservedNameError and leaves the tag unchanged.
func (t *Tag) SetName(name string) error {
	if err := checkTagName(name); err != nil {
		return err
	}
	t.name = name
	return nil
}

// ID returns the identifier of the tag, if set.
func (t *Tag) ID() maybe.Maybe[string] {
	return t.id
}

// SetID sets the identifier of the tag.
func (t *Tag) SetID(id string) {
	t.id = maybe.Just(id)
}

// UnsetID removes the identifier of the tag.
func (t *Tag) UnsetID() {
	t.id = maybe.Nothing[string]()
}

// Classes returns the classes of the tag. Clients may modify them.
func (t *Tag) Classes() *ClassSet {
	return &t.classes
}

// Style returns the inline style of the tag. Clients may modify it.
func (t *Tag) Style() *css.Properties {
	return t.style
}

// Get returns the value of an attribute.
func (t *Tag) Get(key string) (string, bool) {
	return t.attrs.get(key)
}

// Set sets the value of an attribute. Setting "id", "class" or "style"
// fails with a *ReservedNameError.
func (t *Tag) Set(key, value string) error {
	if err := checkAttribute(key); err != nil {
		return err
	}
	t.attrs.set(key, value)
	return nil
}

// Unset removes an attribute. Removing an attribute which is not set
// does nothing.
func (t *Tag) Unset(key string) {
	t.attrs.unset(key)
}

// Attributes returns all attributes, except for id, classes and style, in
// order of insertion.
func (t *Tag) Attributes() []Attribute {
	return t.attrs.list()
}

// Render outputs the tag in self-closing form.
func (t *Tag) Render() string {
	return "<" + t.head() + "/>"
}

// RenderPretty is the same as Render.
func (t *Tag) RenderPretty() string {
	return t.Render()
}

func (t *Tag) String() string {
	return t.Render()
}

// head outputs the name and all attributes of the tag.
func (t *Tag) head() string {
	var b strings.Builder
	b.WriteString(t.name)
	var id string
	switch m := t.id.Match(); m {
	case m.Just(&id):
		writeAttr(&b, "id", id)
	case m.Nothing():
	}
	if t.classes.Len() > 0 {
		writeAttr(&b, "class", strings.Join(t.classes.Names(), ","))
	}
	if t.style.IsNotEmpty() {
		writeAttr(&b, "style", t.style.Render())
	}
	for _, a := range t.attrs.list() {
		writeAttr(&b, a.Key, a.Value)
	}
	return b.String()
}

func writeAttr(b *strings.Builder, key, value string) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteString(`="`)
	b.WriteString(value)
	b.WriteByte('"')
}

var _ Node = &Tag{}

// --- Attributes ------------------------------------------------------------

// Attribute is a key-value pair of an HTML element.
type Attribute struct {
	Key   string
	Value string
}

// attributes is an insertion-ordered map of attributes.
type attributes struct {
	keys   []string
	values map[string]string
}

func (as *attributes) get(key string) (string, bool) {
	v, ok := as.values[key]
	return v, ok
}

func (as *attributes) set(key, value string) {
	if as.values == nil {
		as.values = make(map[string]string)
	}
	if _, ok := as.values[key]; !ok {
		as.keys = append(as.keys, key)
	}
	as.values[key] = value
}

func (as *attributes) unset(key string) {
	if _, ok := as.values[key]; !ok {
		return
	}
	delete(as.values, key)
	for i, k := range as.keys {
		if k == key {
			as.keys = append(as.keys[:i], as.keys[i+1:]...)
			break
		}
	}
}

func (as *attributes) list() []Attribute {
	r := make([]Attribute, len(as.keys))
	for i, k := range as.keys {
		r[i] = Attribute{Key: k, Value: as.values[k]}
	}
	return r
}

// --- Classes ---------------------------------------------------------------

// ClassSet is a set of class names. Names are unique and kept in order of
// insertion.
type ClassSet struct {
	names []string
}

// Add inserts class names, skipping names already present.
func (cs *ClassSet) Add(names ...string) {
	for _, n := range names {
		if !cs.Has(n) {
			cs.names = append(cs.names, n)
		}
	}
}

// Remove deletes a class name. It returns false if the name isn't present.
func (cs *ClassSet) Remove(name string) bool {
	for i, n := range cs.names {
		if n == name {
			cs.names = append(cs.names[:i], cs.names[i+1:]...)
			return true
		}
	}
	return false
}

// Has checks for a class name.
func (cs *ClassSet) Has(name string) bool {
	for _, n := range cs.names {
		if n == name {
			return true
		}
	}
	return false
}

// Len returns the number of classes.
func (cs *ClassSet) Len() int {
	return len(cs.names)
}

// Names returns the class names, in order of insertion.
func (cs *ClassSet) Names() []string {
	names := make([]string, len(cs.names))
	copy(names, cs.names)
	return names
}

// Clear removes all class names.
func (cs *ClassSet) Clear() {
	cs.names = nil
}
