package repository

import (
	"context"
	"sync"
	"time"

	"github.com/hikegear/storefront/models"
)

type CartRepository interface {
	GetCart(ctx context.Context, userID string) (*models.Cart, error)
	SaveCart(ctx context.Context, cart *models.Cart) error
	DeleteCart(ctx context.Context, userID string) error
}

// MemoryCarts holds one working cart per user. Carts are session-scoped and
// never persisted; a restart empties them.
type MemoryCarts struct {
	mu    sync.RWMutex
	carts map[string]models.Cart
}

func NewMemoryCarts() *MemoryCarts {
	return &MemoryCarts{carts: make(map[string]models.Cart)}
}

var _ CartRepository = (*MemoryCarts)(nil)

// GetCart returns the user's cart, or nil when none exists yet.
func (m *MemoryCarts) GetCart(_ context.Context, userID string) (*models.Cart, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cart, ok := m.carts[userID]
	if !ok {
		return nil, nil
	}
	cp := cart
	cp.Items = append([]models.CartItem(nil), cart.Items...)
	return &cp, nil
}

func (m *MemoryCarts) SaveCart(_ context.Context, cart *models.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cart.UpdatedAt = time.Now()
	cp := *cart
	cp.Items = append([]models.CartItem(nil), cart.Items...)
	m.carts[cart.UserID] = cp
	return nil
}

func (m *MemoryCarts) DeleteCart(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.carts, userID)
	return nil
}
