package main

import (
	"fmt"

	"github.com/signadot/go-nested/event"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch and at most one document", cli.ErrUsage)
	}
	var p []byte
	if cfg.String {
		p = []byte(args[0])
	} else {
		p, err = readArg(cc, args[0])
		if err != nil {
			return err
		}
	}
	file := "-"
	if len(args) == 2 {
		file = args[1]
	}
	filter, err := compileFilter(cfg.Filter, cfg.File.Filter)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	m, err := loadModel(cc, cfg.MainConfig, file)
	if err != nil {
		return err
	}
	w := cc.Out
	printer := newEventPrinter(w, cfg.colors(w), filter)
	m.On(event.All, printer.handle)
	if err := m.ApplyPatch(p); err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	if printer.err != nil {
		return printer.err
	}
	if _, err := w.Write([]byte("---\n")); err != nil {
		return err
	}
	return cfg.encode(w, m.Export())
}
