package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-nested/attrpath"
	"github.com/signadot/go-nested/ir"
	"github.com/signadot/go-nested/nested"

	"github.com/scott-cotton/cli"
)

func readArg(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getObjFile(cc *cli.Context, path string) (*ir.Node, error) {
	d, err := readArg(cc, path)
	if err != nil {
		return nil, err
	}
	return ir.Parse(d)
}

// loadModel reads the document at path, "-" for stdin, into a model.
func loadModel(cc *cli.Context, cfg *MainConfig, path string, opts ...nested.ModelOption) (*nested.Model, error) {
	doc, err := getObjFile(cc, path)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	if doc.Type == ir.NullType {
		doc = ir.NewObject()
	}
	if doc.Type != ir.ObjectType {
		return nil, fmt.Errorf("%s: document must be an object, got %s", path, doc.Type)
	}
	// keys are attribute names, not paths
	m := nested.New(append(cfg.File.modelOpts(), opts...)...)
	for i, f := range doc.Fields {
		if err := m.Set(attrpath.New(attrpath.Field(f.String)), doc.Values[i], nested.Silent()); err != nil {
			return nil, err
		}
	}
	return m, nil
}
