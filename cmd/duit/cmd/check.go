package cmd

import (
	"fmt"

	"github.com/go-duit/duit/pkg/rendering"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate stylesheets and specs",
		Long: `Load every stylesheet, spec file and texture of the project, then
instantiate each spec and lay it out once at the configured window size.

Errors that would only surface at run time, such as a widget whose style
is missing a required field, are reported here. The command fails if any
file or spec has an error.`,
		Usage: "duit check [spec...]",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	cfg, err := resolveProject()
	if err != nil {
		return err
	}
	p, results := openProject(cfg)
	pal := newPalette(stdout)

	fmt.Fprintf(stdout, "%s %s\n\n", pal.paint(pal.title, cfg.AppName), pal.paint(pal.faint, cfg.Root))

	failures := 0
	for _, r := range results {
		if r.Err != nil {
			failures++
			fmt.Fprintf(stdout, "  %s %-10s %s\n      %v\n", pal.paint(pal.fail, "FAIL"), r.What, p.rel(r.Path), r.Err)
			continue
		}
		fmt.Fprintf(stdout, "  %s %-10s %s\n", pal.paint(pal.ok, "ok  "), r.What, p.rel(r.Path))
	}
	if len(cfg.Specs) == 0 {
		fmt.Fprintf(stdout, "  %s no spec files found\n", pal.paint(pal.warn, "warn"))
	}

	names := args
	if len(names) == 0 {
		names = p.ui.SpecNames()
	}
	if len(names) > 0 {
		fmt.Fprintln(stdout)
	}
	size := rendering.Size{Width: float64(cfg.WindowWidth), Height: float64(cfg.WindowHeight)}
	for _, name := range names {
		if err := p.layOut(name, size); err != nil {
			failures++
			fmt.Fprintf(stdout, "  %s %s\n      %v\n", pal.paint(pal.fail, "FAIL"), name, err)
			continue
		}
		fmt.Fprintf(stdout, "  %s %s\n", pal.paint(pal.ok, "ok  "), name)
	}

	if failures > 0 {
		return fmt.Errorf("%d problem(s) found", failures)
	}
	return nil
}
