package main

import (
	"io"
	"os"

	"github.com/signadot/go-nested/ir"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='print events in color'"`
	Gops  bool `cli:"name=gops desc='start a gops diagnostics agent'"`

	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	File *FileConfig

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// asJSON reports whether documents are output as json: -j and -y win over
// the configuration file.
func (cfg *MainConfig) asJSON() bool {
	switch {
	case cfg.J:
		return true
	case cfg.Y:
		return false
	}
	return cfg.File.Format == FormatJSON
}

func (cfg *MainConfig) encode(w io.Writer, node *ir.Node) error {
	d, err := ir.EncodeYAML(node, cfg.asJSON())
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// colors returns the colors to print events with on w, or nil.
func (cfg *MainConfig) colors(w io.Writer) *Colors {
	if cfg.Color {
		return NewColors()
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
		return nil
	}
	if cfg.File.Color != nil {
		if *cfg.File.Color {
			return NewColors()
		}
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return NewColors()
	}
	return nil
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type RunConfig struct {
	*MainConfig
	Script string `cli:"name=f desc='script file, - for stdin'"`
	Filter string `cli:"name=filter desc='only print events matching this expression'"`
	Diff   bool   `cli:"name=diff desc='print a line diff of the document instead of the result'"`
	ID     string `cli:"name=id desc='fetch the document from the configured store and save it back'"`
	Quiet  bool   `cli:"name=q desc='do not print events'"`

	Exprs []string

	Run *cli.Command
}

func (cfg *RunConfig) exprOpt(_ *cli.Context, v string) (any, error) {
	cfg.Exprs = append(cfg.Exprs, v)
	return v, nil
}

type PatchConfig struct {
	*MainConfig
	String bool   `cli:"name=s desc='patch arg as string'"`
	Filter string `cli:"name=filter desc='only print events matching this expression'"`

	Patch *cli.Command
}

type PathConfig struct {
	*MainConfig
	Path *cli.Command
}
