package main

import (
	"fmt"

	"github.com/signadot/go-nested/attrpath"

	"github.com/scott-cotton/cli"
)

func path(cfg *PathConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Path.Parse(cc, args)
	if err != nil {
		cfg.Path.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: path requires at least one argument", cli.ErrUsage)
	}
	for _, arg := range args {
		p, err := attrpath.ResolveNonEmpty(arg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%q -> %q\n", arg, p.String())
		for _, seg := range p {
			switch seg.Kind {
			case attrpath.ArrayEntry:
				fmt.Fprintf(cc.Out, "  %s %d\n", seg.Kind, seg.Index)
			default:
				fmt.Fprintf(cc.Out, "  %s %q\n", seg.Kind, seg.Name)
			}
		}
	}
	return nil
}
