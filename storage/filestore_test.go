package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hikegear/storefront/storage"
)

func TestFileStoreRoundtrip(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	assert.NoError(t, err)
	ctx := context.Background()

	assert.NoError(t, store.Put(ctx, "bankNumber", []byte(`"1234567890"`)))

	got, err := store.Get(ctx, "bankNumber")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`"1234567890"`), got)

	// Last write wins.
	assert.NoError(t, store.Put(ctx, "bankNumber", []byte(`"0987654321"`)))
	got, _ = store.Get(ctx, "bankNumber")
	assert.Equal(t, []byte(`"0987654321"`), got)
}

func TestFileStoreMissingKey(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	assert.NoError(t, err)

	_, err = store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestFileStoreDeleteIsIdempotent(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	assert.NoError(t, err)
	ctx := context.Background()

	assert.NoError(t, store.Put(ctx, "k", []byte("v")))
	assert.NoError(t, store.Delete(ctx, "k"))
	assert.NoError(t, store.Delete(ctx, "k"))

	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestEnvelopeRoundtrip(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	raw, err := storage.EncodeBlob(1, payload{Name: "hero"})
	assert.NoError(t, err)

	var out payload
	assert.NoError(t, storage.DecodeBlob(raw, 1, &out))
	assert.Equal(t, "hero", out.Name)
}

func TestEnvelopeVersionMismatch(t *testing.T) {
	raw, err := storage.EncodeBlob(2, map[string]string{"a": "b"})
	assert.NoError(t, err)

	var out map[string]string
	err = storage.DecodeBlob(raw, 1, &out)
	assert.ErrorIs(t, err, storage.ErrSchemaMismatch)
}

func TestEnvelopeMalformedBlob(t *testing.T) {
	var out map[string]string
	err := storage.DecodeBlob([]byte("{not json"), 1, &out)
	assert.ErrorIs(t, err, storage.ErrSchemaMismatch)

	// Valid envelope, incompatible inner shape.
	raw, _ := storage.EncodeBlob(1, []int{1, 2, 3})
	err = storage.DecodeBlob(raw, 1, &out)
	assert.ErrorIs(t, err, storage.ErrSchemaMismatch)
}
