package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/modkraft/internal/adapters/outbound/cache"
	"github.com/abdidvp/modkraft/internal/domain"
)

func record(kind domain.FileKind, text string) domain.FileRecord {
	return domain.NewFileRecord("app/models.py", kind, []byte(text))
}

func TestStore_PutAndGet(t *testing.T) {
	store, err := cache.New(8)
	require.NoError(t, err)

	rec := record(domain.KindModel, "class Brand:\n    pass\n")
	store.Put(rec, domain.StructuralAnalysis{FileKind: domain.KindModel, ClassCount: 1})

	got, ok := store.Get(rec)
	require.True(t, ok)
	assert.Equal(t, 1, got.ClassCount)
}

func TestStore_ContentChangeMisses(t *testing.T) {
	store, err := cache.New(8)
	require.NoError(t, err)

	store.Put(record(domain.KindModel, "a"), domain.StructuralAnalysis{ClassCount: 1})

	_, ok := store.Get(record(domain.KindModel, "b"))
	assert.False(t, ok)
}

func TestStore_KindIsPartOfKey(t *testing.T) {
	store, err := cache.New(8)
	require.NoError(t, err)

	store.Put(record(domain.KindModel, "same"), domain.StructuralAnalysis{FileKind: domain.KindModel})

	_, ok := store.Get(record(domain.KindAdmin, "same"))
	assert.False(t, ok)
}

func TestStore_EvictsOldest(t *testing.T) {
	store, err := cache.New(2)
	require.NoError(t, err)

	store.Put(record(domain.KindModel, "1"), domain.StructuralAnalysis{})
	store.Put(record(domain.KindModel, "2"), domain.StructuralAnalysis{})
	store.Put(record(domain.KindModel, "3"), domain.StructuralAnalysis{})

	assert.Equal(t, 2, store.Len())
	_, ok := store.Get(record(domain.KindModel, "1"))
	assert.False(t, ok)
}

func TestStore_NonPositiveSizeUsesDefault(t *testing.T) {
	store, err := cache.New(0)
	require.NoError(t, err)
	assert.NotNil(t, store)
}
