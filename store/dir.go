package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/signadot/go-nested/debug"
	"github.com/signadot/go-nested/ir"
)

const (
	YAMLSuffix = ".yaml"
	JSONSuffix = ".json"
)

// Dir stores each record as <id><suffix> in a directory.
type Dir struct {
	Root string
	// JSON selects JSON files instead of YAML.
	JSON bool

	mu sync.Mutex
}

// OpenDir returns a Dir rooted at path, creating the directory if needed.
func OpenDir(path string, asJSON bool) (*Dir, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("could not create store dir %q: %w", path, err)
	}
	return &Dir{Root: path, JSON: asJSON}, nil
}

func (d *Dir) suffix() string {
	if d.JSON {
		return JSONSuffix
	}
	return YAMLSuffix
}

func (d *Dir) path(id string) (string, error) {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return filepath.Join(d.Root, id+d.suffix()), nil
}

func (d *Dir) Read(ctx context.Context, id string) (*ir.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := d.path(id)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	data, err := os.ReadFile(p)
	d.mu.Unlock()
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", p, err)
	}
	doc, err := ir.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", p, err)
	}
	if debug.Store() {
		debug.Logf("store read %s: %s\n", p, debug.Node{Node: doc})
	}
	return doc, nil
}

// Write replaces the file for id atomically.
func (d *Dir) Write(ctx context.Context, id string, doc *ir.Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := d.path(id)
	if err != nil {
		return err
	}
	data, err := ir.EncodeYAML(doc, d.JSON)
	if err != nil {
		return fmt.Errorf("could not encode %q: %w", id, err)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, p); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not rename %q: %w", tmp, err)
	}
	if debug.Store() {
		debug.Logf("store wrote %s\n", p)
	}
	return nil
}

func (d *Dir) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := d.path(id)
	if err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	err = os.Remove(p)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return err
}
