package main

import (
	"github.com/go-duit/duit/pkg/ui"
	"github.com/go-duit/duit/pkg/widget"
)

// Demo represents a showcase demo page.
type Demo struct {
	Name     string
	Title    string
	Subtitle string
	// Build creates the demo's widget tree and returns the frame hook that
	// reacts to its messages.
	Build func(u *ui.UI) (root *widget.Pod, update func(*ui.UI), err error)
}

// demos is the registry of all showcase demo pages.
// Add new demos here to make them available from the command line.
var demos = []Demo{
	{"counter", "Counter", "Buttons bound from a spec", buildCounter},
	{"controls", "Controls", "Slider, progress bar and text input", buildControls},
}

func findDemo(name string) (Demo, bool) {
	for _, d := range demos {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}
