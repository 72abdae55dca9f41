package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/hikegear/storefront/models"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

type CatalogRepository interface {
	FindAll(ctx context.Context, category string) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id string) error
}

// MemoryCatalog is an in-memory catalog preserving insertion order.
type MemoryCatalog struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewMemoryCatalog(seed []models.Product) *MemoryCatalog {
	products := make([]models.Product, len(seed))
	copy(products, seed)
	return &MemoryCatalog{products: products}
}

var _ CatalogRepository = (*MemoryCatalog)(nil)

// FindAll lists products, filtered by exact category match. An empty filter
// or the "All" sentinel returns everything.
func (m *MemoryCatalog) FindAll(_ context.Context, category string) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		if category != "" && category != models.CategoryAll && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *MemoryCatalog) FindByID(_ context.Context, id string) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryCatalog) Create(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.products = append(m.products, *p)
	return nil
}

// Update replaces the matching record. A missing record is a silent no-op.
func (m *MemoryCatalog) Update(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.products {
		if m.products[i].ID == p.ID {
			m.products[i] = *p
			return nil
		}
	}
	return nil
}

// Delete removes the matching record unconditionally; a missing record is
// not an error.
func (m *MemoryCatalog) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.products {
		if m.products[i].ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return nil
}
