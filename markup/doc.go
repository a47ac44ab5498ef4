/*
Package markup provides typed objects for constructing HTML documents.

Overview

Instead of concatenating strings, clients build a tree of nodes and render
it, either compact or indented:

    title := markup.Must(markup.NewContentTag("h1",
        markup.Classes("title"),
        markup.Content(markup.Text("Fish & Chips"))))
    page := markup.Must(markup.NewContentTag("div", markup.ID("main"), markup.Content(title)))
    page.Render()        // <div id="main"><h1 class="title">Fish &amp; Chips</h1></div>
    page.RenderPretty()  // <div id="main">
                         //     <h1 class="title">
                         //         Fish &amp; Chips
                         //     </h1>
                         // </div>

Node types are:

    Text        escaped text
    Raw         unescaped, pre-rendered markup (never use it for untrusted input)
    Tag         an element without content, e.g. <img src="…"/>
    ContentTag  an element with an ordered list of child nodes
    StyleTag    a <style> element, wrapping a css.Stylesheet
    ScriptTag   a <script> element
    NodeList    a sequence of sibling nodes without a wrapping element

Identifier, classes and inline style of an element are modelled as fields of
their own. It is an error to use "id", "class" or "style" as plain
attributes, or to create a plain Tag named "script" or "style" (use
ScriptTag and StyleTag instead). These errors are reported as
*ReservedNameError.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'webdoc.markup'.
func tracer() tracing.Trace {
	return tracing.Select("webdoc.markup")
}
