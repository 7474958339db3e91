// Command adx loads a small expression program from a YAML file,
// differentiates it, prints a gradient report, and optionally renders
// a DOT graph and/or a gradient bar chart alongside it.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/goccy/go-graphviz"

	"github.com/grimkey/adx/src/expr"
	"github.com/grimkey/adx/src/id"
	"github.com/grimkey/adx/src/visualize"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML expression program")
	font := flag.String("font", "DejaVuSans.ttf", "system font used for the gradient chart")
	flag.Parse()

	if *configPath == "" {
		log.Fatal("adx: -config is required")
	}

	if err := run(*configPath, *font); err != nil {
		log.Fatalf("adx: %v", err)
	}
}

func run(configPath, fontName string) error {
	p, err := loadProgram(configPath)
	if err != nil {
		return err
	}

	e, names, err := p.build()
	if err != nil {
		return err
	}

	grads := expr.Grads(e)
	flatGrads := make(map[id.Id]float64, len(grads))
	for vid, g := range grads {
		flatGrads[vid] = g.Float64()
	}

	printReport(os.Stdout, e.Output().Float64(), flatGrads, names)

	if p.Dot != "" {
		png, err := visualize.RenderDOT(context.Background(), e, graphviz.PNG)
		if err != nil {
			return err
		}
		if err := os.WriteFile(p.Dot, png, 0o644); err != nil {
			return err
		}
	}

	if p.Chart != "" {
		png, err := visualize.RenderGradientChart(grads, func(f scalars) float64 { return f.Float64() }, fontName)
		if err != nil {
			return err
		}
		if err := os.WriteFile(p.Chart, png, 0o644); err != nil {
			return err
		}
	}

	return nil
}
