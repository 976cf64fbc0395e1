package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an attribute path", cli.ErrUsage)
	}
	path := args[0]
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		m, err := loadModel(cc, cfg.MainConfig, file)
		if err != nil {
			return err
		}
		if i > 0 && !cfg.asJSON() {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		// absent values print as null
		if err := cfg.encode(cc.Out, m.Get(path)); err != nil {
			return fmt.Errorf("error encoding %s of %s: %w", path, file, err)
		}
	}
	return nil
}
