package nested

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/go-nested/ir"
	"github.com/signadot/go-nested/record"
	"github.com/signadot/go-nested/store"
)

func TestPersistence(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	child := newModel(t, map[string]any{"id": "c", "v": 1}, WithStore(st))
	parent := newModel(t, map[string]any{"id": "p"}, WithStore(st))
	if err := parent.Set("child", child); err != nil {
		t.Fatal(err)
	}

	if err := parent.Save(ctx); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"c", "p"}, st.IDs()); diff != "" {
		t.Errorf("ids (-want +got):\n%s", diff)
	}
	doc, err := st.Read(ctx, "p")
	if err != nil {
		t.Fatal(err)
	}
	if got := jsonOf(t, doc); got != `{"id":"p","child":{"id":"c","v":1}}` {
		t.Errorf("stored parent = %s", got)
	}

	if err := st.Write(ctx, "c", ir.MustFromAny(map[string]any{"id": "c", "v": 2})); err != nil {
		t.Fatal(err)
	}
	if err := st.Write(ctx, "p", ir.MustFromAny(map[string]any{
		"id":    "p",
		"name":  "x",
		"child": map[string]any{"v": 99},
	})); err != nil {
		t.Fatal(err)
	}
	l := watch(parent)
	if err := parent.Fetch(ctx); err != nil {
		t.Fatal(err)
	}
	checkGet(t, parent, "name", `"x"`)
	checkGet(t, parent, "child.v", `2`)
	if parent.Child("child") != child {
		t.Error("fetch should keep the embedded model")
	}
	if l.find("sync") == nil || l.find("sync:child") == nil {
		t.Errorf("missing sync events in %v", l.names)
	}

	if err := parent.Destroy(ctx); err != nil {
		t.Fatal(err)
	}
	if ids := st.IDs(); len(ids) != 0 {
		t.Errorf("store still holds %v", ids)
	}
	if l.find("destroy:child") == nil {
		t.Errorf("missing destroy events in %v", l.names)
	}
}

func TestSaveWithoutStore(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	child := newModel(t, map[string]any{"id": "c"}, WithStore(st))
	transient := New()
	parent := New()
	if err := parent.SetAttrs(map[string]any{"child": child, "other": transient}); err != nil {
		t.Fatal(err)
	}
	err := parent.Save(ctx)
	if !errors.Is(err, record.ErrNoStore) {
		t.Errorf("got %v, want ErrNoStore", err)
	}
	if diff := cmp.Diff([]string{"c"}, st.IDs()); diff != "" {
		t.Errorf("children are saved anyway (-want +got):\n%s", diff)
	}
}

func TestFetchMissing(t *testing.T) {
	ctx := context.Background()
	m := New(WithStore(store.NewMemory()), WithID("nope"))
	l := watch(m)
	if err := m.Fetch(ctx); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
	if l.find("error") == nil {
		t.Errorf("missing error event in %v", l.names)
	}
}

func TestDirStore(t *testing.T) {
	ctx := context.Background()
	st, err := store.OpenDir(t.TempDir(), false)
	if err != nil {
		t.Fatal(err)
	}
	m := newModel(t, map[string]any{"a": []any{1, map[string]any{"b": "c"}}}, WithStore(st), WithID("doc"))
	if err := m.Save(ctx); err != nil {
		t.Fatal(err)
	}
	other := New(WithStore(st), WithID("doc"))
	if err := other.Fetch(ctx); err != nil {
		t.Fatal(err)
	}
	checkGet(t, other, "a[1].b", `"c"`)
}

func TestPersistTransientChild(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	leaf := newModel(t, map[string]any{"id": "leaf", "n": 1}, WithStore(st))
	child := newModel(t, map[string]any{"v": 1})
	if err := child.Set("leaf", leaf); err != nil {
		t.Fatal(err)
	}
	parent := newModel(t, map[string]any{"id": "p"}, WithStore(st))
	if err := parent.Set("child", child); err != nil {
		t.Fatal(err)
	}

	if err := parent.Save(ctx); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"leaf", "p"}, st.IDs()); diff != "" {
		t.Errorf("ids (-want +got):\n%s", diff)
	}

	if err := st.Write(ctx, "leaf", ir.MustFromAny(map[string]any{"id": "leaf", "n": 2})); err != nil {
		t.Fatal(err)
	}
	if err := parent.Fetch(ctx); err != nil {
		t.Fatal(err)
	}
	checkGet(t, parent, "child.v", `1`)
	checkGet(t, parent, "child.leaf.n", `2`)

	pl, cl := watch(parent), watch(child)
	if err := parent.Destroy(ctx); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{
		"destroy",
		"destroy", "destroy:child",
		"destroy", "destroy:child",
		"destroy:child.leaf", "destroy:child",
	}, pl.names); diff != "" {
		t.Errorf("parent events (-want +got):\n%s", diff)
	}
	if cl.find("destroy") == nil {
		t.Errorf("child events %v", cl.names)
	}
	if ids := st.IDs(); len(ids) != 0 {
		t.Errorf("store still holds %v", ids)
	}
}
