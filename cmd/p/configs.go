package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/prop-format/go-prop/encode"
	"github.com/signadot/prop-format/go-prop/eval"
	"github.com/signadot/prop-format/go-prop/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Spaced bool `cli:"name=spaced desc='pad operators with spaces'"`

	P bool `cli:"name=p aliases=prop desc='do i/o in the prop grammar'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) inFormat() format.Format {
	var fmat format.Format
	switch {
	case cfg.P:
		fmat = format.PropFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return fmat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmat format.Format
	switch {
	case cfg.P:
		fmat = format.PropFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeSpaced(cfg.Spaced),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}

type SimplifyConfig struct {
	*MainConfig

	Simplify *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env eval.Bindings

	Eval *cli.Command
}

type VarsConfig struct {
	*MainConfig

	Vars *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
