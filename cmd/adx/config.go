package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/grimkey/adx/src/expr"
	"github.com/grimkey/adx/src/id"
	"github.com/grimkey/adx/src/scalarf64"
)

// program is the YAML-driven description of a small scalar expression
// to differentiate: a set of named inputs and a sequence of binary/unary
// steps referencing them by name. It exists so the demo CLI has
// something to load besides a hardcoded expression (spec.md's core
// never reads configuration itself; this is purely cmd/adx's own
// ambient concern).
type program struct {
	Variables []struct {
		Name  string  `yaml:"name"`
		Value float64 `yaml:"value"`
	} `yaml:"variables"`
	Steps []struct {
		Op     string   `yaml:"op"`
		Args   []string `yaml:"args"`
		Result string   `yaml:"result"`
	} `yaml:"program"`
	Output string `yaml:"output"`
	Chart  string `yaml:"chart"`
	Dot    string `yaml:"dot"`
}

func loadProgram(path string) (program, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return program{}, fmt.Errorf("read config: %w", err)
	}
	var p program
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return program{}, fmt.Errorf("parse config: %w", err)
	}
	return p, nil
}

type scalars = scalarf64.Float64

// build evaluates p into a single expression. It also returns a map
// from the YAML variable names to the ids minted for them, so a caller
// can label a gradient map back to the names the user actually wrote
// instead of the opaque group#seq id.Id.String() form.
func (p program) build() (expr.Expr[scalars], map[string]id.Id, error) {
	g := id.NewGroup("cmd")
	env := make(map[string]expr.Expr[scalars], len(p.Variables)+len(p.Steps))
	names := make(map[string]id.Id, len(p.Variables))

	for _, v := range p.Variables {
		vid := g.Next()
		env[v.Name] = expr.Var(vid, scalars(v.Value))
		names[v.Name] = vid
	}

	for _, s := range p.Steps {
		operand := func(i int) (expr.Expr[scalars], error) {
			if i >= len(s.Args) {
				return expr.Expr[scalars]{}, fmt.Errorf("step %q: missing operand %d", s.Result, i)
			}
			name := s.Args[i]
			v, ok := env[name]
			if !ok {
				return expr.Expr[scalars]{}, fmt.Errorf("step %q: unknown operand %q", s.Result, name)
			}
			return v, nil
		}

		a, err := operand(0)
		if err != nil {
			return expr.Expr[scalars]{}, nil, err
		}

		var result expr.Expr[scalars]
		switch s.Op {
		case "add", "sub", "mul", "div":
			b, err := operand(1)
			if err != nil {
				return expr.Expr[scalars]{}, nil, err
			}
			switch s.Op {
			case "add":
				result = expr.Add(a, b)
			case "sub":
				result = expr.Sub(a, b)
			case "mul":
				result = expr.Mul(a, b)
			case "div":
				result = expr.Div(a, b)
			}
		case "neg":
			result = expr.Neg(a)
		case "sqrt":
			result = expr.Sqrt(a)
		case "exp":
			result = expr.Exp(a)
		case "log":
			result = expr.Log(a)
		default:
			return expr.Expr[scalars]{}, nil, fmt.Errorf("step %q: unknown op %q", s.Result, s.Op)
		}

		if s.Result == "" {
			return expr.Expr[scalars]{}, nil, fmt.Errorf("step with op %q has no result name", s.Op)
		}
		env[s.Result] = result
	}

	out, ok := env[p.Output]
	if !ok {
		return expr.Expr[scalars]{}, nil, fmt.Errorf("unknown output %q", p.Output)
	}
	return out, names, nil
}
