package store

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"

	"github.com/signadot/go-nested/ir"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrInvalidID = errors.New("invalid record id")
)

// Store reads, writes and deletes attribute trees by record id.
// Implementations must be safe for concurrent use; they receive and return
// trees they do not share with the caller.
type Store interface {
	Read(ctx context.Context, id string) (*ir.Node, error)
	Write(ctx context.Context, id string, doc *ir.Node) error
	Delete(ctx context.Context, id string) error
}

// Memory is an in-memory Store.
type Memory struct {
	mu   sync.Mutex
	docs map[string]*ir.Node
}

func NewMemory() *Memory {
	return &Memory{docs: map[string]*ir.Node{}}
}

func (m *Memory) Read(ctx context.Context, id string) (*ir.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return doc.Clone(), nil
}

func (m *Memory) Write(ctx context.Context, id string, doc *ir.Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if id == "" {
		return ErrInvalidID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[id] = doc.Clone()
	return nil
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[id]; !ok {
		return ErrNotFound
	}
	delete(m.docs, id)
	return nil
}

// IDs returns the stored ids in sorted order.
func (m *Memory) IDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Sorted(maps.Keys(m.docs))
}
