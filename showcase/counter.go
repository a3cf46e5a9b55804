package main

import (
	"fmt"

	"github.com/go-duit/duit/pkg/ui"
	"github.com/go-duit/duit/pkg/widget"
	"github.com/go-duit/duit/pkg/widgets"
)

// counterStep is sent by the counter's buttons.
type counterStep int

func buildCounter(u *ui.UI) (*widget.Pod, func(*ui.UI), error) {
	inst, root, err := u.CreateInstance("counter")
	if err != nil {
		return nil, nil, err
	}
	var w struct {
		Count     widget.Handle[*widgets.Text]      `duit:"count"`
		Increment widget.Handle[*widgets.Clickable] `duit:"increment"`
		Decrement widget.Handle[*widgets.Clickable] `duit:"decrement"`
	}
	if err := ui.Bind(inst, &w); err != nil {
		return nil, nil, err
	}
	widgets.OnClickMessage(w.Increment.Get(), func() counterStep { return 1 })
	widgets.OnClickMessage(w.Decrement.Get(), func() counterStep { return -1 })

	count := 0
	update := func(u *ui.UI) {
		ui.HandleMessages(u, func(step counterStep) {
			count += int(step)
			w.Count.Get().SetText(fmt.Sprintf("Count: %d", count))
		})
	}
	return root, update, nil
}
