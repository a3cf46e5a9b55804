package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-duit/duit/pkg/spec"
	"github.com/go-duit/duit/pkg/ui"
)

func init() {
	RegisterCommand(&Command{
		Name:  "dump",
		Short: "Print the widget tree of specs",
		Long: `Print the widget tree of the named specs, or of every spec in the
project. Each line shows the widget kind followed by its #id, its .classes
and its flex factor.`,
		Usage: "duit dump [spec...]",
		Run:   runDump,
	})
}

func runDump(args []string) error {
	cfg, err := resolveProject()
	if err != nil {
		return err
	}
	p, results := openProject(cfg)
	for _, r := range results {
		if r.What == "spec" && r.Err != nil {
			return fmt.Errorf("%s: %w", p.rel(r.Path), r.Err)
		}
	}

	names := args
	if len(names) == 0 {
		names = p.ui.SpecNames()
	}
	pal := newPalette(stdout)
	for i, name := range names {
		s, ok := p.ui.Spec(name)
		if !ok {
			return &ui.UnknownSpecError{Name: name}
		}
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		fmt.Fprintf(stdout, "%s %s\n", pal.paint(pal.title, s.Name), pal.paint(pal.faint, "("+p.rel(p.sources[name])+")"))
		dumpNode(stdout, pal, s.Child, "", "")
	}
	return nil
}

// dumpNode writes node and its subtree. first prefixes the node's own line
// and rest prefixes the lines of its children.
func dumpNode(w io.Writer, pal *palette, node *spec.Node, first, rest string) {
	fmt.Fprintf(w, "%s%s\n", first, describe(pal, node))
	children := node.Children()
	for i, child := range children {
		if i == len(children)-1 {
			dumpNode(w, pal, child, rest+"└── ", rest+"    ")
		} else {
			dumpNode(w, pal, child, rest+"├── ", rest+"│   ")
		}
	}
}

func describe(pal *palette, node *spec.Node) string {
	parts := []string{pal.paint(pal.kind, node.Kind)}
	base := node.Base()
	if base.ID != "" {
		parts = append(parts, pal.paint(pal.id, "#"+base.ID))
	}
	for _, class := range base.Classes {
		parts = append(parts, pal.paint(pal.class, "."+class))
	}
	if base.Flex != nil {
		parts = append(parts, pal.paint(pal.prop, "flex="+strconv.FormatFloat(*base.Flex, 'g', -1, 64)))
	}
	if text, ok := node.Props.(*spec.TextSpec); ok && text.Text != "" {
		parts = append(parts, strconv.Quote(text.Text))
	}
	return strings.Join(parts, " ")
}
