package repository

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/hikegear/storefront/common/logger"
	"github.com/hikegear/storefront/data"
	"github.com/hikegear/storefront/models"
	"github.com/hikegear/storefront/storage"
)

// Blob keys for admin-editable content.
const (
	bankNumberKey  = "bankNumber"
	heroImagesKey  = "heroImages"
	aboutKey       = "aboutContent"
	contactKey     = "contactContent"
	contentVersion = 1
)

// ContentRepository holds the admin-editable content blobs in memory. Each
// key is read once at startup and written back wholesale on every edit;
// edits to different keys are independent writes with no atomicity between
// them.
type ContentRepository struct {
	mu    sync.RWMutex
	store storage.BlobStore

	bankNumber string
	heroImages []string
	about      models.AboutContent
	contact    models.ContactContent
}

func NewContentRepository(ctx context.Context, store storage.BlobStore) *ContentRepository {
	r := &ContentRepository{store: store}

	r.bankNumber = data.DefaultBankNumber
	loadBlob(ctx, store, bankNumberKey, &r.bankNumber)

	r.heroImages = data.DefaultHeroImages()
	loadBlob(ctx, store, heroImagesKey, &r.heroImages)

	r.about = data.DefaultAboutContent()
	loadBlob(ctx, store, aboutKey, &r.about)

	r.contact = data.DefaultContactContent()
	loadBlob(ctx, store, contactKey, &r.contact)

	return r
}

// loadBlob fills v from the stored blob when present and compatible. The
// blob decodes into a scratch value so a partially compatible payload cannot
// leak fields into the default; on a schema mismatch the untouched default
// is written back, which is the hard reset the content contract requires.
func loadBlob[T any](ctx context.Context, store storage.BlobStore, key string, v *T) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			logger.Log.Warn("Failed to read content blob", zap.String("key", key), zap.Error(err))
		}
		return
	}

	var stored T
	if err := storage.DecodeBlob(raw, contentVersion, &stored); err != nil {
		logger.Log.Warn("Content blob is incompatible, resetting to defaults",
			zap.String("key", key), zap.Error(err))
		writeBlob(ctx, store, key, v)
		return
	}
	*v = stored
}

func writeBlob(ctx context.Context, store storage.BlobStore, key string, v any) {
	raw, err := storage.EncodeBlob(contentVersion, v)
	if err != nil {
		logger.Log.Error("Failed to encode content blob", zap.String("key", key), zap.Error(err))
		return
	}
	if err := store.Put(ctx, key, raw); err != nil {
		logger.Log.Error("Failed to write content blob", zap.String("key", key), zap.Error(err))
	}
}

func (r *ContentRepository) BankNumber() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bankNumber
}

func (r *ContentRepository) SetBankNumber(ctx context.Context, number string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bankNumber = number
	writeBlob(ctx, r.store, bankNumberKey, &r.bankNumber)
}

func (r *ContentRepository) HeroImages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.heroImages...)
}

func (r *ContentRepository) SetHeroImages(ctx context.Context, images []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.heroImages = append([]string(nil), images...)
	writeBlob(ctx, r.store, heroImagesKey, &r.heroImages)
}

func (r *ContentRepository) About() models.AboutContent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.about
}

func (r *ContentRepository) SetAbout(ctx context.Context, content models.AboutContent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.about = content
	writeBlob(ctx, r.store, aboutKey, &r.about)
}

func (r *ContentRepository) Contact() models.ContactContent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.contact
}

func (r *ContentRepository) SetContact(ctx context.Context, content models.ContactContent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contact = content
	writeBlob(ctx, r.store, contactKey, &r.contact)
}
