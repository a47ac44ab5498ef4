package markup

import (
	"errors"
	"fmt"

	"golang.org/x/net/html/atom"
)

// ErrReservedName is matched by every *ReservedNameError, i.e.
//
//     errors.Is(err, ErrReservedName)
//
// holds for errors caused by the use of a reserved tag name or attribute.
var ErrReservedName = errors.New("reserved name")

// ErrContentNotAllowed is returned when content is given for an element
// without content.
var ErrContentNotAllowed = errors.New("content not allowed for tag without content")

// Kinds of reserved names.
const (
	KindTagName   = "tag name"
	KindAttribute = "attribute"
)

// ReservedNameError reports the use of a name reserved for a dedicated field
// or node type.
type ReservedNameError struct {
	Name string // the offending name
	Kind string // KindTagName or KindAttribute
	Hint string // what to use instead
}

func (e *ReservedNameError) Error() string {
	return fmt.Sprintf("cannot use %s %q, use %s instead", e.Kind, e.Name, e.Hint)
}

// Is makes ReservedNameError match ErrReservedName.
func (e *ReservedNameError) Is(target error) bool {
	return target == ErrReservedName
}

func checkTagName(name string) error {
	switch atom.Lookup([]byte(name)) {
	case atom.Script:
		return &ReservedNameError{Name: name, Kind: KindTagName, Hint: "ScriptTag"}
	case atom.Style:
		return &ReservedNameError{Name: name, Kind: KindTagName, Hint: "StyleTag"}
	}
	return nil
}

func checkAttribute(key string) error {
	switch key {
	case "id":
		return &ReservedNameError{Name: key, Kind: KindAttribute, Hint: "option ID or Tag.SetID"}
	case "class":
		return &ReservedNameError{Name: key, Kind: KindAttribute, Hint: "option Classes or Tag.Classes"}
	case "style":
		return &ReservedNameError{Name: key, Kind: KindAttribute, Hint: "option Style or Tag.Style"}
	}
	return nil
}
