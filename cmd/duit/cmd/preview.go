package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/go-duit/duit/pkg/backend/term"
	duiterrors "github.com/go-duit/duit/pkg/errors"
	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/style"
	"github.com/go-duit/duit/pkg/ui"
	"github.com/go-duit/duit/pkg/widget"
)

func init() {
	RegisterCommand(&Command{
		Name:  "preview",
		Short: "Show a spec in the terminal",
		Long: `Show a spec in the terminal. Without an argument the project's root
spec is shown, or the first spec in name order when no root is configured.

The mouse and keyboard drive the widgets as they would in an application.
Messages sent by widgets are listed on the last line. Press Ctrl-C or
Ctrl-Q to quit.`,
		Usage: "duit preview [spec]",
		Run:   runPreview,
	})
}

func runPreview(args []string) (err error) {
	defer duiterrors.Recover("duit.preview", &err)
	if len(args) > 1 {
		return fmt.Errorf("preview takes at most one spec name")
	}
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errors.New("preview needs an interactive terminal")
	}

	cfg, err := resolveProject()
	if err != nil {
		return err
	}
	p, results := openProject(cfg, ui.WithShaper(term.Shaper()))
	for _, r := range results {
		if r.Err != nil {
			return fmt.Errorf("%s %s: %w", r.What, p.rel(r.Path), r.Err)
		}
	}

	name := ""
	if len(args) == 1 {
		name = args[0]
	} else if name, err = p.rootSpec(); err != nil {
		return err
	}
	_, root, err := p.ui.CreateInstance(name)
	if err != nil {
		return err
	}
	p.ui.CreateWindow(root, ui.FillPositioner{}, 0)
	bar := &messageBar{}
	p.ui.CreateWindow(widget.New[style.NoStyle](bar), bottomLine, 1)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := term.NewApp(screen, p.ui, term.WithFrameHook(bar.collect))
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// bottomLine places a window on the last cell row.
var bottomLine = ui.PositionerFunc(func(available rendering.Size) rendering.Rect {
	return rendering.RectFromLTWH(0, available.Height-term.CellHeight, available.Width, term.CellHeight)
})

const messageBarSize = 5

// messageBar shows the most recent widget messages of a preview.
type messageBar struct {
	widget.Base[style.NoStyle]
	last []string
}

func (b *messageBar) BaseClass() string { return "message_bar" }

// collect drains every queued message.
func (b *messageBar) collect(u *ui.UI) {
	ui.HandleMessages(u, func(msg any) {
		b.last = append(b.last, fmt.Sprintf("%T(%v)", msg, msg))
		if len(b.last) > messageBarSize {
			b.last = b.last[1:]
		}
	})
}

func (b *messageBar) text() string {
	if len(b.last) == 0 {
		return "no messages  ·  Ctrl-Q quits"
	}
	return strings.Join(b.last, "  ")
}

func (b *messageBar) Layout(_ *style.NoStyle, data *widget.Data, _ *widget.Context, max rendering.Size) {
	data.SetSize(max)
}

func (b *messageBar) Paint(_ *style.NoStyle, data *widget.Data, cx *widget.Context) {
	cx.Canvas.DrawRect(data.Bounds(), rendering.FillPaint(rendering.RGB(48, 48, 48)))
	layout := cx.ShapeText(b.text(), rendering.TextStyle{Color: rendering.ColorWhite}, 0)
	cx.Canvas.DrawText(layout, rendering.Offset{})
}
