/*
Package script embeds a JavaScript sandbox that can read and mutate the
shared structural document tree.

The sandbox exposes a minimal document API:

	document.getElementById(id)            // element handle or null
	element.innerHTML                      // serialize / re-parse children
	element.tagName

Assigning to innerHTML runs the assigned markup through the regular
markup parser and replaces the element's children with the result, then
fires the runtime's mutation hook. A renderer typically registers the
hook to re-run the styling pipeline.

The engine (goja) is a pure-Go interpreter and needs no process-wide
one-time initialization. The runtime itself is not safe for concurrent
use; callers that share the document with a renderer must serialize
access around Execute.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package script

import (
	"fmt"

	"github.com/dop251/goja"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/weft/dom"
)

// tracer traces to 'weft.script'.
func tracer() tracing.Trace {
	return tracing.Select("weft.script")
}

// Runtime is a JavaScript sandbox bound to one document tree. State
// (globals, functions) persists across Execute calls.
type Runtime struct {
	vm       *goja.Runtime
	document *dom.Node
	onMutate func()
}

// NewRuntime creates a sandbox bound to the given document root.
func NewRuntime(document *dom.Node) *Runtime {
	rt := &Runtime{vm: goja.New(), document: document}
	rt.bindDocument()
	return rt
}

// OnMutate registers a hook to be called after a script mutated the
// document tree.
func (rt *Runtime) OnMutate(fn func()) {
	rt.onMutate = fn
}

// Execute runs a script and returns the string form of its final value.
// Script errors (including exceptions thrown by the script) are returned
// as Go errors carrying the script name.
func (rt *Runtime) Execute(name, src string) (string, error) {
	tracer().Debugf("script %s: executing %d bytes", name, len(src))
	v, err := rt.vm.RunScript(name, src)
	if err != nil {
		if ex, ok := err.(*goja.Exception); ok {
			return "", fmt.Errorf("%s: %v", name, ex.Value())
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}
	if v == nil {
		return "", nil
	}
	return v.String(), nil
}

func (rt *Runtime) bindDocument() {
	doc := rt.vm.NewObject()
	doc.Set("getElementById", func(call goja.FunctionCall) goja.Value {
		id := call.Argument(0).String()
		node := dom.FindByID(rt.document, id)
		if node == nil {
			tracer().Debugf("script: no element with id=%s", id)
			return goja.Null()
		}
		return rt.wrapElement(node)
	})
	rt.vm.Set("document", doc)
}

// wrapElement builds a script-side handle for an element node.
func (rt *Runtime) wrapElement(node *dom.Node) *goja.Object {
	obj := rt.vm.NewObject()
	if e, ok := node.Type.(dom.Element); ok {
		obj.Set("tagName", e.TagName)
	}
	getter := rt.vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return rt.vm.ToValue(node.InnerHTML())
	})
	setter := rt.vm.ToValue(func(call goja.FunctionCall) goja.Value {
		markup := call.Argument(0).String()
		children, err := dom.ParseNodes(markup)
		if err != nil {
			panic(rt.vm.NewGoError(err))
		}
		node.Children = children
		if rt.onMutate != nil {
			rt.onMutate()
		}
		return goja.Undefined()
	})
	obj.DefineAccessorProperty("innerHTML", getter, setter, goja.FLAG_FALSE, goja.FLAG_TRUE)
	return obj
}
