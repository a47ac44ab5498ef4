/*
Package cssom provides a read-only, rule-based view of CSS stylesheets.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. Package css
models stylesheets as trees of nested scopes, which is convenient for
constructing CSS. Other tools (parsers, minifiers, style engines) usually
see a stylesheet as a flat list of rules. Interfaces StyleSheet and Rule
de-couple these views: package cssom offers a Rule-view on a css.Stylesheet
(View) and imports any StyleSheet into a css.Stylesheet (Import).

Concrete implementations of the interfaces for foreign stylesheet
representations may be found in sub-packages, e.g. package douceuradapter,
which enables parsing CSS text.

Flattening nested scopes follows CSS nesting rules: a nested selector is
combined with its parent's selector as a descendant, unless it contains
the nesting selector '&', which is then replaced by the parent selector.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'webdoc.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("webdoc.cssom")
}
