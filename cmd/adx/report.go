package main

import (
	"io"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/grimkey/adx/src/id"
)

// printReport writes a locale-formatted gradient table: one row per
// variable name known to names, sorted alphabetically so output is
// stable across runs.
func printReport(out io.Writer, output float64, grads map[id.Id]float64, names map[string]id.Id) {
	p := message.NewPrinter(language.English)

	p.Fprintf(out, "output = %v\n\n", output)
	p.Fprintf(out, "%-16s %18s\n", "variable", "d(output)/d(var)")

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	for _, name := range sorted {
		g := grads[names[name]]
		p.Fprintf(out, "%-16s %18.6f\n", name, g)
	}
}
