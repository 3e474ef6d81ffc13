package main

import (
	"github.com/signadot/prop-format/go-prop/eval"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: prop/p, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: prop/p, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "p").
		WithSynopsis("p [opts] command [opts]").
		WithDescription("p is a tool for working with propositional formulas.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			SimplifyCommand(cfg),
			EvalCommand(cfg),
			VarsCommand(cfg),
			DiffCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("fmt").
		WithAliases("f", "view").
		WithSynopsis("fmt [files]").
		WithDescription("parse formulas and re-encode them").
		WithRun(func(cc *cli.Context, args []string) error {
			return pFmt(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func SimplifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SimplifyConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("simplify").
		WithAliases("s").
		WithSynopsis("simplify [files]").
		WithDescription("reduce formulas to canonical form").
		WithRun(func(cc *cli.Context, args []string) error {
			return pSimplify(cfg, cc, args)
		})
	cfg.Simplify = cmd
	return cmd
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Env: eval.Bindings{}}
	opts := []*cli.Opt{
		&cli.Opt{
			Name:        "e",
			Description: "bind a variable, eg -e a=1 or -e b=x&y",
			Type:        cli.NamedFuncOpt(envOptTypeFunc(cfg.Env), "(name=val)"),
		},
		&cli.Opt{
			Name:        "b",
			Description: "yaml/json file of bindings",
			Type:        cli.NamedFuncOpt(bindFileOptTypeFunc(cfg.Env), "(filepath)"),
		},
	}
	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-e name=val [-e name=val]...] [-b bindings] [files]").
		WithDescription("substitute bindings into formulas and simplify").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pEval(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func envOptTypeFunc(env eval.Bindings) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func bindFileOptTypeFunc(env eval.Bindings) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := bindFile(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func VarsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VarsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("vars").
		WithAliases("v").
		WithSynopsis("vars [files]").
		WithDescription("list free variables of formulas").
		WithRun(func(cc *cli.Context, args []string) error {
			return pVars(cfg, cc, args)
		})
	cfg.Vars = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <file1> <file2>").
		WithDescription("compare the canonical forms of two formulas").
		WithRun(func(cc *cli.Context, args []string) error {
			return pDiff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
