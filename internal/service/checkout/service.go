// Package checkout orchestrates one cart and at most one applied coupon per
// session, from cart review through order handoff.
package checkout

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"

	"storefront-backend/internal/cart"
	"storefront-backend/internal/coupon"
	"storefront-backend/internal/domain"
	"storefront-backend/internal/order"
	"storefront-backend/internal/pricing"
)

type catalogGetter interface {
	Get(ctx context.Context, id string) (*domain.Product, error)
}

type promotionsGetter interface {
	Get(ctx context.Context) domain.Promotions
}

// Service owns per-session checkout state. Sessions are created lazily on
// first use and hydrated from the persisted cart snapshot.
type Service struct {
	catalog    catalogGetter
	promotions promotionsGetter
	persister  cart.Persister
	composer   *order.Composer
	whatsappTo string
	logger     *log.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

// session serializes access to one cart; the cart store itself is not
// concurrency-safe.
type session struct {
	mu     sync.Mutex
	store  *cart.Store
	coupon *domain.Coupon
}

func New(catalog catalogGetter, promotions promotionsGetter, persister cart.Persister, whatsappTo string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		catalog:    catalog,
		promotions: promotions,
		persister:  persister,
		composer:   order.NewComposer(),
		whatsappTo: whatsappTo,
		logger:     logger,
		sessions:   make(map[string]*session),
	}
}

// CartView is the session cart as presented to the UI. Persisted is false
// when the last snapshot write failed; the mutation itself stands.
type CartView struct {
	Items      []domain.LineItem `json:"items"`
	TotalItems int               `json:"totalItems"`
	Opened     bool              `json:"opened"`
	Persisted  bool              `json:"persisted"`
}

// Quote is the priced state of the session cart.
type Quote struct {
	SubtotalCents int64          `json:"subtotalCents"`
	DiscountCents int64          `json:"discountCents"`
	TotalCents    int64          `json:"totalCents"`
	Coupon        *domain.Coupon `json:"coupon,omitempty"`
}

// Submission is the result of a successful checkout: the immutable order,
// its rendered message, and the WhatsApp handoff link.
type Submission struct {
	Order        domain.Order `json:"order"`
	Message      string       `json:"message"`
	WhatsAppLink string       `json:"whatsappLink"`
}

// AddItem fetches the product and merges it into the session cart.
func (s *Service) AddItem(ctx context.Context, sessionID, productID, variantKey string) (*CartView, error) {
	sess := s.session(ctx, sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	product, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	return s.view(sess, sess.store.AddItem(ctx, *product, variantKey))
}

func (s *Service) IncreaseQuantity(ctx context.Context, sessionID, productID, variantKey string) (*CartView, error) {
	sess := s.session(ctx, sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.view(sess, sess.store.IncreaseQuantity(ctx, productID, variantKey))
}

func (s *Service) DecreaseQuantity(ctx context.Context, sessionID, productID, variantKey string) (*CartView, error) {
	sess := s.session(ctx, sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.view(sess, sess.store.DecreaseQuantity(ctx, productID, variantKey))
}

func (s *Service) RemoveItem(ctx context.Context, sessionID, productID, variantKey string) (*CartView, error) {
	sess := s.session(ctx, sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.view(sess, sess.store.RemoveItem(ctx, productID, variantKey))
}

// Cart returns the current session cart without mutating it.
func (s *Service) Cart(ctx context.Context, sessionID string) *CartView {
	sess := s.session(ctx, sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	view, _ := s.view(sess, nil)
	return view
}

// ApplyCoupon validates the code against the current promotions and stores
// the match as the session's applied coupon. A failed promotions read
// degrades to an empty coupon list, so unknown codes and outages both
// surface as NOT_FOUND_OR_INACTIVE.
func (s *Service) ApplyCoupon(ctx context.Context, sessionID, code string) (*domain.Coupon, error) {
	sess := s.session(ctx, sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	promos := s.promotions.Get(ctx)
	applied, err := coupon.Apply(code, promos.Coupons, sess.coupon)
	if err != nil {
		return nil, err
	}
	sess.coupon = applied
	return applied, nil
}

// Quote prices the session cart with the applied coupon, if any.
func (s *Service) Quote(ctx context.Context, sessionID string) Quote {
	sess := s.session(ctx, sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.quoteLocked(sess)
}

func (s *Service) quoteLocked(sess *session) Quote {
	subtotal := pricing.Subtotal(sess.store.Items())
	discount := pricing.Discount(subtotal, sess.coupon)
	return Quote{
		SubtotalCents: subtotal,
		DiscountCents: discount,
		TotalCents:    pricing.Total(subtotal, discount),
		Coupon:        sess.coupon,
	}
}

// Submit validates the checkout inputs and composes the final order. The
// cart is intentionally left as is after a successful submission; clearing
// it is a manual step in the WhatsApp-mediated flow.
func (s *Service) Submit(ctx context.Context, sessionID string, info domain.CustomerInfo, paymentMethod string) (*Submission, error) {
	sess := s.session(ctx, sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	method, ok := domain.ParsePaymentMethod(paymentMethod)
	if !ok && paymentMethod != "" {
		return nil, &domain.ValidationError{Fields: []string{"paymentMethod"}}
	}

	res, err := s.composer.Compose(info, sess.store.Items(), sess.coupon, method)
	if err != nil {
		return nil, err
	}
	s.logger.Printf("checkout: order composed session=%s order=%s total_cents=%d", sessionID, res.Order.ID, res.Order.TotalCents)
	return &Submission{
		Order:        res.Order,
		Message:      res.Message,
		WhatsAppLink: order.WhatsAppLink(s.whatsappTo, res.Message),
	}, nil
}

// session returns the state for sessionID, creating and hydrating it on
// first use. A failed snapshot read degrades to an empty cart.
func (s *Service) session(ctx context.Context, sessionID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[sessionID]; ok {
		return sess
	}
	store := cart.New(sessionID, s.persister, s.logger)
	if err := store.LoadSnapshot(ctx); err != nil {
		s.logger.Printf("checkout: hydrate session=%s error=%v", sessionID, err)
	}
	sess := &session{store: store}
	s.sessions[sessionID] = sess
	return sess
}

func (s *Service) view(sess *session, mutErr error) (*CartView, error) {
	persisted := true
	if mutErr != nil {
		if !errors.Is(mutErr, domain.ErrSnapshotWrite) {
			return nil, mutErr
		}
		// Write-through failed but the in-memory mutation stands.
		persisted = false
	}
	return &CartView{
		Items:      sess.store.Items(),
		TotalItems: sess.store.TotalItemCount(),
		Opened:     sess.store.Opened(),
		Persisted:  persisted,
	}, nil
}
