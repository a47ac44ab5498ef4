package css

import (
	"github.com/npillmayer/webdoc/render"
)

// Stylesheet is a set of top-level scopes, i.e. all the CSS of a document
// (or of a single <style> element).
//
//     h1 {
//         color: red;
//     }
//
//     @media screen and (max-width: 800px) {
//         h1 {
//             font-size: 1rem;
//         }
//     }
//
// Like nested scopes, the scopes of a stylesheet form a set with structural
// equality. They are rendered in order of insertion.
type Stylesheet struct {
	scopes scopeSet
}

// NewStylesheet creates a stylesheet from a list of scopes.
// Duplicate scopes are dropped.
func NewStylesheet(scopes ...*Scope) *Stylesheet {
	sheet := &Stylesheet{}
	sheet.Add(scopes...)
	return sheet
}

// Add inserts scopes into the stylesheet, skipping scopes already present.
// It returns the number of scopes actually inserted.
func (sheet *Stylesheet) Add(scopes ...*Scope) int {
	return sheet.scopes.add(scopes...)
}

// Remove deletes the scope structurally equal to sc, if present.
func (sheet *Stylesheet) Remove(sc *Scope) bool {
	return sheet.scopes.remove(sc)
}

// Contains checks if a scope structurally equal to sc is present.
func (sheet *Stylesheet) Contains(sc *Scope) bool {
	return sheet.scopes.indexOf(sc) >= 0
}

// Scopes returns the top-level scopes of the stylesheet.
func (sheet *Stylesheet) Scopes() []*Scope {
	if sheet == nil {
		return nil
	}
	return sheet.scopes.slice()
}

// Len returns the number of top-level scopes.
func (sheet *Stylesheet) Len() int {
	if sheet == nil {
		return 0
	}
	return len(sheet.scopes)
}

// IsEmpty checks if this stylesheet contains any scopes. Clients may use
// it to decide wether to output a <style> element at all.
func (sheet *Stylesheet) IsEmpty() bool {
	return sheet.Len() == 0
}

// IsNotEmpty is the negation of IsEmpty.
func (sheet *Stylesheet) IsNotEmpty() bool {
	return sheet.Len() > 0
}

// Merge adds all scopes of other to sheet.
func (sheet *Stylesheet) Merge(other *Stylesheet) int {
	return sheet.Add(other.Scopes()...)
}

// Render concatenates the compact renderings of all scopes.
func (sheet *Stylesheet) Render() string {
	if sheet == nil {
		return ""
	}
	return render.JoinCompact(sheet.scopes)
}

// RenderPretty joins the pretty renderings of all scopes, separated by
// blank lines.
func (sheet *Stylesheet) RenderPretty() string {
	if sheet == nil {
		return ""
	}
	return render.JoinPretty(sheet.scopes, "\n\n")
}

func (sheet *Stylesheet) String() string {
	return sheet.Render()
}

var _ render.Renderer = &Stylesheet{}
