// Package term renders a UI into a terminal through tcell.
//
// Each terminal cell stands for a block of logical pixels, CellWidth by
// CellHeight by default. Widgets lay out in pixels as usual. The canvas
// maps their drawing onto cells, and the input converter reports mouse
// positions at cell centers. Use Shaper so text measures in whole cells.
//
//	screen, _ := tcell.NewScreen()
//	u := ui.New(ui.WithShaper(term.Shaper()))
//	app := term.NewApp(screen, u, term.WithFrameHook(func(u *ui.UI) {
//		ui.HandleMessages(u, onClick)
//	}))
//	err := app.Run(ctx)
package term
