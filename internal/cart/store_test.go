package cart

import (
	"context"
	"errors"
	"testing"

	"storefront-backend/internal/domain"
)

type stubPersister struct {
	saved   map[string][]byte
	saveErr error
	loadErr error
}

func newStubPersister() *stubPersister {
	return &stubPersister{saved: map[string][]byte{}}
}

func (p *stubPersister) Save(_ context.Context, sessionID string, snapshot []byte) error {
	if p.saveErr != nil {
		return p.saveErr
	}
	p.saved[sessionID] = snapshot
	return nil
}

func (p *stubPersister) Load(_ context.Context, sessionID string) ([]byte, error) {
	if p.loadErr != nil {
		return nil, p.loadErr
	}
	data, ok := p.saved[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return data, nil
}

var (
	shirt = domain.Product{
		ID:         "A",
		Name:       "Camiseta Básica",
		PriceCents: 5990,
		Category:   "camisetas",
		Images:     []string{"https://cdn.example.com/a.jpg"},
	}
	shorts = domain.Product{
		ID:         "B",
		Name:       "Bermuda Linho",
		PriceCents: 3990,
		Category:   "bermudas",
	}
)

func TestAddItem_MergesSameProductAndVariant(t *testing.T) {
	ctx := context.Background()
	s := New("sess", newStubPersister(), nil)

	for i := 0; i < 3; i++ {
		if err := s.AddItem(ctx, shirt, "M"); err != nil {
			t.Fatalf("AddItem: %v", err)
		}
	}

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("expected single merged line, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("quantity = %d, want 3", items[0].Quantity)
	}
	if !s.Opened() {
		t.Fatal("expected cart marked open after add")
	}
}

func TestAddItem_DifferentVariantsAreSeparateLines(t *testing.T) {
	ctx := context.Background()
	s := New("sess", newStubPersister(), nil)

	if err := s.AddItem(ctx, shirt, "M"); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := s.AddItem(ctx, shirt, "G"); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}
	if items[0].VariantKey != "M" || items[1].VariantKey != "G" {
		t.Fatalf("insertion order lost: %+v", items)
	}
}

func TestAddItem_CapturesDisplaySnapshot(t *testing.T) {
	ctx := context.Background()
	s := New("sess", newStubPersister(), nil)

	if err := s.AddItem(ctx, shirt, "M"); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	li := s.Items()[0]
	if li.Display.Name != "Camiseta Básica" {
		t.Errorf("display name = %q", li.Display.Name)
	}
	if li.Display.Image != "https://cdn.example.com/a.jpg" {
		t.Errorf("display image = %q", li.Display.Image)
	}
	if li.Display.Category != "camisetas" {
		t.Errorf("display category = %q", li.Display.Category)
	}
	if li.UnitPriceCents != 5990 {
		t.Errorf("unit price = %d", li.UnitPriceCents)
	}
}

func TestDecreaseQuantity_RemovesLineAtOne(t *testing.T) {
	ctx := context.Background()
	s := New("sess", newStubPersister(), nil)

	if err := s.AddItem(ctx, shirt, "M"); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := s.DecreaseQuantity(ctx, "A", "M"); err != nil {
		t.Fatalf("DecreaseQuantity: %v", err)
	}

	if len(s.Items()) != 0 {
		t.Fatalf("expected empty cart, got %+v", s.Items())
	}
}

func TestIncreaseAndDecrease_NoOpOnMissingLine(t *testing.T) {
	ctx := context.Background()
	p := newStubPersister()
	s := New("sess", p, nil)

	if err := s.IncreaseQuantity(ctx, "nope", "M"); err != nil {
		t.Fatalf("IncreaseQuantity: %v", err)
	}
	if err := s.DecreaseQuantity(ctx, "nope", "M"); err != nil {
		t.Fatalf("DecreaseQuantity: %v", err)
	}
	if len(p.saved) != 0 {
		t.Fatal("no-op must not trigger a snapshot write")
	}
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	s := New("sess", newStubPersister(), nil)

	if err := s.AddItem(ctx, shirt, "M"); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := s.AddItem(ctx, shorts, "P"); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := s.RemoveItem(ctx, "A", "M"); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}

	items := s.Items()
	if len(items) != 1 || items[0].ProductID != "B" {
		t.Fatalf("unexpected items %+v", items)
	}
}

func TestTotalItemCount(t *testing.T) {
	ctx := context.Background()
	s := New("sess", newStubPersister(), nil)

	_ = s.AddItem(ctx, shirt, "M")
	_ = s.AddItem(ctx, shirt, "M")
	_ = s.AddItem(ctx, shorts, "P")

	if got := s.TotalItemCount(); got != 3 {
		t.Fatalf("TotalItemCount = %d, want 3", got)
	}
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New("sess", newStubPersister(), nil)

	_ = s.AddItem(ctx, shirt, "M")
	_ = s.AddItem(ctx, shirt, "M")
	_ = s.AddItem(ctx, shorts, "P")

	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	restored := New("other", newStubPersister(), nil)
	if err := restored.Restore(snap); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	want := s.Items()
	got := restored.Items()
	if len(got) != len(want) {
		t.Fatalf("restored %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d mismatch: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestLoadSnapshot_RestoresPersistedState(t *testing.T) {
	ctx := context.Background()
	p := newStubPersister()

	s := New("sess", p, nil)
	_ = s.AddItem(ctx, shirt, "M")
	_ = s.AddItem(ctx, shorts, "P")

	fresh := New("sess", p, nil)
	if err := fresh.LoadSnapshot(ctx); err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if fresh.TotalItemCount() != 2 {
		t.Fatalf("restored count = %d, want 2", fresh.TotalItemCount())
	}
}

func TestLoadSnapshot_MissingSnapshotLeavesCartEmpty(t *testing.T) {
	s := New("sess", newStubPersister(), nil)
	if err := s.LoadSnapshot(context.Background()); err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(s.Items()) != 0 {
		t.Fatal("expected empty cart")
	}
}

func TestPersistFailure_KeepsInMemoryMutation(t *testing.T) {
	ctx := context.Background()
	p := newStubPersister()
	p.saveErr = errors.New("disk on fire")
	s := New("sess", p, nil)

	err := s.AddItem(ctx, shirt, "M")
	if !errors.Is(err, domain.ErrSnapshotWrite) {
		t.Fatalf("expected ErrSnapshotWrite, got %v", err)
	}
	if s.TotalItemCount() != 1 {
		t.Fatal("mutation must stand despite the failed write")
	}
}

func TestRestore_ReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	s := New("sess", newStubPersister(), nil)
	_ = s.AddItem(ctx, shirt, "M")

	other := New("o", newStubPersister(), nil)
	_ = other.AddItem(ctx, shorts, "P")
	snap, err := other.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	if err := s.Restore(snap); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	items := s.Items()
	if len(items) != 1 || items[0].ProductID != "B" {
		t.Fatalf("restore must replace, not merge: %+v", items)
	}
}
