package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/prop-format/go-prop/encode"
	"github.com/signadot/prop-format/go-prop/eval"
	"github.com/signadot/prop-format/go-prop/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func pEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachExpr(cfg.MainConfig, cc, args, func(w io.Writer, e *ir.Node) error {
		return encode.Encode(eval.Evaluate(e, cfg.Env), w, cfg.encOpts(w)...)
	})
}

func envFunc(env eval.Bindings, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected name=val", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return err
	}
	e, err := eval.BindingNode(v)
	if err != nil {
		return fmt.Errorf("%w: binding %q: %w", cli.ErrUsage, key, err)
	}
	env[key] = e
	return nil
}

func bindFile(env eval.Bindings, file string) error {
	d, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", file, err)
	}
	bound, err := eval.ParseBindings(d)
	if err != nil {
		return fmt.Errorf("error in bindings %q: %w", file, err)
	}
	for name, e := range bound {
		env[name] = e
	}
	return nil
}
