/*
Package css provides an object model for CSS stylesheets.

Overview

Clients build CSS from the bottom up: properties are collected in a
Properties set, a set of properties together with a header forms a Scope,
and scopes are collected into a Stylesheet. Scopes may be nested, following
the rules of CSS nesting:

   .card {
       display: flex;

       .title {
           font-weight: bold;
       }
   }

The header of a scope is an open interface. Package css provides target
selectors (Target) and media queries (Media); Scope never inspects the
concrete kind of its header. A header type only has to render itself;
implementing KeyedHeader is optional and gives it an identity independent
of its rendering.

Scopes are kept in sets: adding a scope which is structurally equal to a
scope already present (same header, properties and children) is a no-op.
Scopes form a tree: a scope cannot be nested into itself or into one of
its descendants.
Properties, scopes and stylesheets all keep insertion order, so output is
deterministic.

Every type implements render.Renderer.

Status

The API is small and should be stable.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'webdoc.css'.
func tracer() tracing.Trace {
	return tracing.Select("webdoc.css")
}
