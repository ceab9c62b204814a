// Package cart owns the ordered line items of one session's cart and their
// durability. The cart is client-owned state: the server never reconciles
// it against the catalog.
package cart

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"storefront-backend/internal/domain"
)

// Persister stores cart snapshots keyed by session. A Load that finds no
// snapshot returns domain.ErrNotFound.
type Persister interface {
	Save(ctx context.Context, sessionID string, snapshot []byte) error
	Load(ctx context.Context, sessionID string) ([]byte, error)
}

// Store is the sole owner of one session's cart state. Every mutation is
// followed by a write-through snapshot save; a failed save is reported as
// domain.ErrSnapshotWrite but never rolls back the in-memory mutation.
//
// Store is not safe for concurrent use. Callers serialize access per
// session.
type Store struct {
	sessionID string
	persister Persister
	logger    *log.Logger
	items     []domain.LineItem
	opened    bool
}

// New builds an empty Store for the session. Call LoadSnapshot to restore
// previously persisted state.
func New(sessionID string, persister Persister, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{sessionID: sessionID, persister: persister, logger: logger}
}

// AddItem merges the product into the cart: an existing (product, variant)
// line gains quantity 1, otherwise a new line is appended with a display
// snapshot of the product captured at this instant.
func (s *Store) AddItem(ctx context.Context, product domain.Product, variantKey string) error {
	s.opened = true
	if li := s.find(product.ID, variantKey); li != nil {
		li.Quantity++
		return s.persist(ctx)
	}

	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}
	s.items = append(s.items, domain.LineItem{
		ProductID:      product.ID,
		VariantKey:     variantKey,
		UnitPriceCents: product.PriceCents,
		Quantity:       1,
		Display: domain.LineDisplay{
			Name:     product.Name,
			Image:    image,
			Category: product.Category,
		},
	})
	return s.persist(ctx)
}

// IncreaseQuantity increments a matching line by 1. Missing lines are a
// no-op.
func (s *Store) IncreaseQuantity(ctx context.Context, productID, variantKey string) error {
	li := s.find(productID, variantKey)
	if li == nil {
		return nil
	}
	li.Quantity++
	return s.persist(ctx)
}

// DecreaseQuantity decrements a matching line by 1, removing the line
// entirely when the quantity would reach zero. Missing lines are a no-op.
func (s *Store) DecreaseQuantity(ctx context.Context, productID, variantKey string) error {
	idx := s.index(productID, variantKey)
	if idx < 0 {
		return nil
	}
	if s.items[idx].Quantity <= 1 {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
	} else {
		s.items[idx].Quantity--
	}
	return s.persist(ctx)
}

// RemoveItem drops a matching line unconditionally. Missing lines are a
// no-op.
func (s *Store) RemoveItem(ctx context.Context, productID, variantKey string) error {
	idx := s.index(productID, variantKey)
	if idx < 0 {
		return nil
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return s.persist(ctx)
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []domain.LineItem {
	out := make([]domain.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItemCount sums quantities across all lines.
func (s *Store) TotalItemCount() int {
	count := 0
	for _, li := range s.items {
		count += li.Quantity
	}
	return count
}

// Opened reports whether anything was ever added this session; the UI uses
// it to pop the cart drawer.
func (s *Store) Opened() bool {
	return s.opened
}

// Snapshot serializes the full ordered line item sequence.
func (s *Store) Snapshot() ([]byte, error) {
	return marshalSnapshot(s.items)
}

// Restore replaces cart state wholesale from a snapshot; nothing is merged.
func (s *Store) Restore(snapshot []byte) error {
	items, err := unmarshalSnapshot(snapshot)
	if err != nil {
		return fmt.Errorf("restore snapshot: %w", err)
	}
	s.items = items
	return nil
}

// LoadSnapshot restores state persisted for this session. A missing
// snapshot leaves the cart empty; a broken read degrades to an empty cart
// and reports the error.
func (s *Store) LoadSnapshot(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}
	data, err := s.persister.Load(ctx, s.sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		s.logger.Printf("cart: load snapshot session=%s error=%v", s.sessionID, err)
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return s.Restore(data)
}

func (s *Store) persist(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}
	data, err := marshalSnapshot(s.items)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSnapshotWrite, err)
	}
	if err := s.persister.Save(ctx, s.sessionID, data); err != nil {
		s.logger.Printf("cart: save snapshot session=%s error=%v", s.sessionID, err)
		return fmt.Errorf("%w: %v", domain.ErrSnapshotWrite, err)
	}
	return nil
}

func (s *Store) find(productID, variantKey string) *domain.LineItem {
	if idx := s.index(productID, variantKey); idx >= 0 {
		return &s.items[idx]
	}
	return nil
}

func (s *Store) index(productID, variantKey string) int {
	for i, li := range s.items {
		if li.ProductID == productID && li.VariantKey == variantKey {
			return i
		}
	}
	return -1
}
