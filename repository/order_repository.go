package repository

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/hikegear/storefront/common/logger"
	"github.com/hikegear/storefront/models"
	"github.com/hikegear/storefront/storage"
)

// ordersKey is the blob under which the full ledger is serialized.
const ordersKey = "orders"

// ordersVersion guards the ledger blob schema.
const ordersVersion = 1

type OrderRepository interface {
	Create(ctx context.Context, o *models.Order) error
	FindByID(ctx context.Context, id string) (*models.Order, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error
}

// OrderLedger is an append-only in-memory order list mirrored wholesale to
// the blob store on every mutation. The blob is read once at startup; a
// structurally incompatible stored value resets the ledger to empty.
type OrderLedger struct {
	mu     sync.RWMutex
	orders []models.Order
	store  storage.BlobStore
}

func NewOrderLedger(ctx context.Context, store storage.BlobStore) (*OrderLedger, error) {
	l := &OrderLedger{store: store}

	raw, err := store.Get(ctx, ordersKey)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return l, nil
		}
		return nil, err
	}

	var orders []models.Order
	if err := storage.DecodeBlob(raw, ordersVersion, &orders); err != nil {
		logger.Log.Warn("Order ledger blob is incompatible, resetting",
			zap.String("key", ordersKey), zap.Error(err))
		if err := l.persist(ctx); err != nil {
			return nil, err
		}
		return l, nil
	}

	l.orders = orders
	return l, nil
}

var _ OrderRepository = (*OrderLedger)(nil)

// persist writes the full ledger back; callers must hold the write lock.
func (l *OrderLedger) persist(ctx context.Context) error {
	raw, err := storage.EncodeBlob(ordersVersion, l.orders)
	if err != nil {
		return err
	}
	return l.store.Put(ctx, ordersKey, raw)
}

func (l *OrderLedger) Create(ctx context.Context, o *models.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.orders = append(l.orders, *o)
	return l.persist(ctx)
}

func (l *OrderLedger) FindByID(_ context.Context, id string) (*models.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, o := range l.orders {
		if o.ID == id {
			cp := o
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (l *OrderLedger) FindByUserID(_ context.Context, userID string) ([]models.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Order, 0)
	for _, o := range l.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (l *OrderLedger) FindAll(_ context.Context) ([]models.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Order, len(l.orders))
	copy(out, l.orders)
	return out, nil
}

func (l *OrderLedger) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.orders {
		if l.orders[i].ID == id {
			l.orders[i].Status = status
			return l.persist(ctx)
		}
	}
	return ErrNotFound
}
