package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/go-nested/event"
	"github.com/signadot/go-nested/ir"
	"github.com/signadot/go-nested/libdiff"
	"github.com/signadot/go-nested/nested"
	"github.com/signadot/go-nested/store"

	"github.com/scott-cotton/cli"
)

func run(cfg *RunConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Run.Parse(cc, args)
	if err != nil {
		cfg.Run.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: run takes at most one document, got %v", cli.ErrUsage, args)
	}
	ops, err := cfg.script(cc)
	if err != nil {
		return err
	}
	if len(ops) == 0 {
		return fmt.Errorf("%w: no operations, use -f or -e", cli.ErrUsage)
	}
	filter, err := compileFilter(cfg.Filter, cfg.File.Filter)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	ctx := context.Background()
	m, err := cfg.model(ctx, cc, args)
	if err != nil {
		return err
	}
	before, err := ir.EncodeYAML(m.Export(), cfg.asJSON())
	if err != nil {
		return err
	}

	w := cc.Out
	printer := newEventPrinter(w, cfg.colors(w), filter)
	if !cfg.Quiet {
		sub := m.On(event.All, printer.handle)
		defer sub.Off()
	}
	for i := range ops {
		op := &ops[i]
		if err := op.apply(m); err != nil {
			return fmt.Errorf("line %d: %s: %w", op.Line, op, err)
		}
		if printer.err != nil {
			return printer.err
		}
	}
	if cfg.ID != "" {
		if err := m.Save(ctx); err != nil {
			return err
		}
	}

	after, err := ir.EncodeYAML(m.Export(), cfg.asJSON())
	if err != nil {
		return err
	}
	if !cfg.Quiet {
		if _, err := w.Write([]byte("---\n")); err != nil {
			return err
		}
	}
	if cfg.Diff {
		_, err = w.Write([]byte(libdiff.Text(string(before), string(after))))
		return err
	}
	_, err = w.Write(after)
	return err
}

// script returns the operations of the -f file followed by those given
// with -e.
func (cfg *RunConfig) script(cc *cli.Context) ([]scriptOp, error) {
	var res []scriptOp
	if cfg.Script != "" {
		d, err := readArg(cc, cfg.Script)
		if err != nil {
			return nil, err
		}
		ops, err := parseScript(string(d), 1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.Script, err)
		}
		res = append(res, ops...)
	}
	for i, e := range cfg.Exprs {
		ops, err := parseScript(strings.TrimSpace(e), 1)
		if err != nil {
			return nil, fmt.Errorf("-e #%d: %w", i+1, err)
		}
		res = append(res, ops...)
	}
	return res, nil
}

// model loads the document to run on: the file argument or stdin, or with
// -id the stored document, empty when there is none yet.
func (cfg *RunConfig) model(ctx context.Context, cc *cli.Context, args []string) (*nested.Model, error) {
	if cfg.ID == "" {
		file := "-"
		if len(args) == 1 {
			file = args[0]
		}
		if file == "-" && cfg.Script == "-" {
			return nil, fmt.Errorf("%w: script and document cannot both be read from stdin", cli.ErrUsage)
		}
		return loadModel(cc, cfg.MainConfig, file)
	}
	st, err := cfg.File.openStore()
	if err != nil {
		return nil, fmt.Errorf("%w: -id: %w", cli.ErrUsage, err)
	}
	opts := []nested.ModelOption{nested.WithStore(st), nested.WithID(cfg.ID)}
	if len(args) == 1 {
		return loadModel(cc, cfg.MainConfig, args[0], opts...)
	}
	m := nested.New(append(cfg.File.modelOpts(), opts...)...)
	if err := m.Fetch(ctx); err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	return m, nil
}
