package main

import (
	"fmt"
	"math"

	"github.com/go-duit/duit/pkg/ui"
	"github.com/go-duit/duit/pkg/widget"
	"github.com/go-duit/duit/pkg/widgets"
)

type (
	volumeChanged float64
	nameChanged   string
)

func buildControls(u *ui.UI) (*widget.Pod, func(*ui.UI), error) {
	inst, root, err := u.CreateInstance("controls")
	if err != nil {
		return nil, nil, err
	}
	var w struct {
		VolumeLabel widget.Handle[*widgets.Text]        `duit:"volume_label"`
		Volume      widget.Handle[*widgets.Slider]      `duit:"volume"`
		Level       widget.Handle[*widgets.ProgressBar] `duit:"level"`
		Name        widget.Handle[*widgets.TextInput]   `duit:"name"`
		Greeting    widget.Handle[*widgets.Text]        `duit:"greeting"`
	}
	if err := ui.Bind(inst, &w); err != nil {
		return nil, nil, err
	}
	w.Volume.Get().SetValue(0.5).OnChange(func(v float64) any { return volumeChanged(v) })
	w.Level.Get().SetProgress(0.5)
	w.Name.Get().SetMaxLen(20).OnChange(func(s string) any { return nameChanged(s) })

	update := func(u *ui.UI) {
		ui.HandleMessages(u, func(v volumeChanged) {
			w.VolumeLabel.Get().SetText(fmt.Sprintf("Volume: %d%%", int(math.Round(float64(v)*100))))
			w.Level.Get().SetProgress(float64(v))
		})
		ui.HandleMessages(u, func(name nameChanged) {
			if name == "" {
				w.Greeting.Get().SetText("Hello, stranger")
				return
			}
			w.Greeting.Get().SetText(fmt.Sprintf("Hello, %s", name))
		})
	}
	return root, update, nil
}
