package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/go-duit/duit/pkg/backend/term"
	"github.com/go-duit/duit/pkg/ui"
)

func main() {
	name := "counter"
	if len(os.Args) > 1 {
		name = os.Args[1]
	}
	demo, ok := findDemo(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown demo %q, choose one of:\n", name)
		for _, d := range demos {
			fmt.Fprintf(os.Stderr, "  %-10s %s\n", d.Name, d.Subtitle)
		}
		os.Exit(2)
	}

	u, err := newUI(ui.WithShaper(term.Shaper()))
	if err != nil {
		log.Fatal(err)
	}
	update, err := start(u, demo)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := term.NewApp(screen, u, term.WithFrameHook(update))
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}
