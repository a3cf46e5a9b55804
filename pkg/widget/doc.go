// Package widget defines the widget contract and the containers that hold
// widgets in a tree.
//
// A widget is any type implementing Widget[S], where S is the widget's style
// schema: a struct decoded from the stylesheet rules matching the widget's
// class list. Widgets never talk to the style engine themselves. They are
// wrapped by Erase (done by New) into a Dyn, which resolves *S from the
// engine before each styled call.
//
// Every widget lives in a Pod together with its Data: children, layout
// results, flex factor, classes and pointer state. Pods are shared by
// pointer between a parent's child list and any typed Handle the application
// holds. A Pod may not be entered twice at once; re-entrant dispatch panics
// with a *errors.BorrowError instead of corrupting state.
package widget
