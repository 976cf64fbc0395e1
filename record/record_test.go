package record

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/go-nested/event"
	"github.com/signadot/go-nested/ir"
	"github.com/signadot/go-nested/store"
)

func recordEvents(r *Record) *[]string {
	var log []string
	r.On(event.All, func(e *event.Event) { log = append(log, e.Name()) })
	return &log
}

func TestSetEvents(t *testing.T) {
	r := New()
	log := recordEvents(r)
	if err := r.Set(ir.MustFromAny(map[string]any{"a": 1, "b": 2})); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"change:a", "change:b", "change"}, *log); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	*log = nil
	if err := r.Set(ir.MustFromAny(map[string]any{"a": 1, "b": 3})); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"change:b", "change"}, *log); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b"}, r.Changed().Keys()); diff != "" {
		t.Errorf("changed (-want +got):\n%s", diff)
	}
	*log = nil
	if err := r.Set(ir.MustFromAny(map[string]any{"a": 1})); err != nil {
		t.Fatal(err)
	}
	if len(*log) != 0 {
		t.Errorf("unchanged set raised %v", *log)
	}
}

func TestSetSeesFinalState(t *testing.T) {
	r := New()
	var seen any
	r.On("change:a", func(e *event.Event) { seen = ir.ToAny(r.Get("b")) })
	if err := r.Set(ir.MustFromAny(map[string]any{"a": 1, "b": 2})); err != nil {
		t.Fatal(err)
	}
	if seen != int64(2) {
		t.Errorf("handler saw b = %v, want 2", seen)
	}
}

func TestUnsetAndSilent(t *testing.T) {
	r := New()
	log := recordEvents(r)
	if err := r.SetKey("a", ir.FromInt(1), Silent()); err != nil {
		t.Fatal(err)
	}
	if len(*log) != 0 {
		t.Errorf("silent set raised %v", *log)
	}
	if !r.Has("a") {
		t.Fatal("a should be set")
	}
	if err := r.Unset("a"); err != nil {
		t.Fatal(err)
	}
	if r.Get("a") != nil {
		t.Error("a should be deleted")
	}
	if diff := cmp.Diff([]string{"change:a", "change"}, *log); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	*log = nil
	if err := r.Unset("missing"); err != nil {
		t.Fatal(err)
	}
	if len(*log) != 0 {
		t.Errorf("unset of missing key raised %v", *log)
	}
}

func TestSetRejectsNonObject(t *testing.T) {
	if err := New().Set(ir.FromInt(1)); !errors.Is(err, ErrNotObj) {
		t.Errorf("got %v, want ErrNotObj", err)
	}
}

func TestKeepChanged(t *testing.T) {
	r := New()
	r.MarkChanged("a.b", ir.FromInt(1))
	if err := r.SetKey("c", ir.FromInt(2), KeepChanged()); err != nil {
		t.Fatal(err)
	}
	if !r.HasChanged("a.b") || !r.HasChanged("c") {
		t.Errorf("changed = %v", r.Changed().Keys())
	}
	if err := r.SetKey("c", ir.FromInt(3)); err != nil {
		t.Fatal(err)
	}
	if r.HasChanged("a.b") {
		t.Error("a new Set should start a new change set")
	}
}

func TestPersistence(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	r := New(WithStore(st))
	log := recordEvents(r)
	if err := r.Save(ctx, nil); !errors.Is(err, ErrNoID) {
		t.Fatalf("save without id: %v", err)
	}
	if err := r.Set(ir.MustFromAny(map[string]any{"id": "r1", "x": "y"})); err != nil {
		t.Fatal(err)
	}
	*log = nil
	if err := r.Save(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"r1"}, st.IDs()); diff != "" {
		t.Errorf("ids (-want +got):\n%s", diff)
	}

	other := New(WithStore(st), WithID("r1"))
	if err := other.Fetch(ctx); err != nil {
		t.Fatal(err)
	}
	if got := other.Get("x"); !ir.Equal(got, ir.FromString("y")) {
		t.Errorf("fetched x = %v", ir.ToAny(got))
	}
	if err := other.Destroy(ctx); err != nil {
		t.Fatal(err)
	}
	if len(st.IDs()) != 0 {
		t.Errorf("store still has %v", st.IDs())
	}
	if diff := cmp.Diff([]string{"sync"}, *log); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := New().Save(ctx, nil); !errors.Is(err, ErrNoStore) {
		t.Errorf("save without store: %v", err)
	}
}

func TestDestroyWithoutStore(t *testing.T) {
	r := New()
	var got []string
	r.On(event.All, func(e *event.Event) { got = append(got, e.Name()) })
	if err := r.Destroy(context.Background()); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"destroy"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestNumericID(t *testing.T) {
	r := New()
	if err := r.SetKey(IDAttribute, ir.FromInt(42)); err != nil {
		t.Fatal(err)
	}
	if r.ID() != "42" {
		t.Errorf("ID() = %q", r.ID())
	}
}
