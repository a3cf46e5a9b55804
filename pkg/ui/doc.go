// Package ui ties the toolkit together. A UI owns the registered specs and
// stylesheets, the windows and their widget trees, and the queue of
// messages sent by widgets.
//
// A typical frame looks like:
//
//	u.HandleInput(in, scale)      // for every pending host input
//	ui.HandleMessages(u, onClick) // react, mutate widgets through handles
//	u.Render(canvas, size)
//
// Windows are layers, not native windows. They share one canvas and are
// painted from the lowest z-index to the highest. Within a window the
// overlay pass runs after the normal paint pass, so dropdowns and tooltips
// cover the window's own content but not windows stacked above it.
package ui
