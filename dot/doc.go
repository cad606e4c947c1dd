// Package dot exports a core.Graph as Graphviz DOT and optionally renders it
// to PNG with the external `dot` tool.
//
// Output shape:
//
//	digraph G {
//	  rankdir=LR;
//	  "the" -> "data" [label="2"];
//	  "the" -> "scientist" [color=red, penwidth=2.0, label="1"];
//	}
//
// Edges appear in (From, To) order. Edges lying on a highlighted path are
// drawn red and thicker. Words are quoted with %q so any byte is safe.
//
// Rendering is optional and isolated: nothing else in the module depends on
// Graphviz being installed. A missing binary surfaces as ErrRendererNotFound.
package dot
