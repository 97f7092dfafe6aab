package cartfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shopfront/internal/adapters/cartfile"
	"go.trai.ch/shopfront/internal/core/domain"
)

func TestStore_SaveLoad(t *testing.T) {
	t.Parallel()

	lines := []domain.CartLine{
		{
			ProductID:      "sku-001",
			Variant:        domain.Variant{"size": "M", "color": "blue"},
			Quantity:       2,
			UnitPriceCents: 12000,
		},
		{
			ProductID:      "sku-002",
			Quantity:       1,
			UnitPriceCents: 4500,
		},
	}

	t.Run("save and load", func(t *testing.T) {
		t.Parallel()
		store := cartfile.NewStore(t.TempDir())

		err := store.Save(context.Background(), "default", lines)
		require.NoError(t, err)

		got, err := store.Load(context.Background(), "default")
		require.NoError(t, err)
		assert.Equal(t, lines, got)
	})

	t.Run("load missing", func(t *testing.T) {
		t.Parallel()
		store := cartfile.NewStore(t.TempDir())

		got, err := store.Load(context.Background(), "default")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("profiles are isolated", func(t *testing.T) {
		t.Parallel()
		store := cartfile.NewStore(t.TempDir())

		err := store.Save(context.Background(), "alice", lines)
		require.NoError(t, err)

		got, err := store.Load(context.Background(), "bob")
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = store.Load(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, lines, got)
	})

	t.Run("save overwrites", func(t *testing.T) {
		t.Parallel()
		store := cartfile.NewStore(t.TempDir())

		err := store.Save(context.Background(), "default", lines)
		require.NoError(t, err)
		err = store.Save(context.Background(), "default", lines[:1])
		require.NoError(t, err)

		got, err := store.Load(context.Background(), "default")
		require.NoError(t, err)
		assert.Equal(t, lines[:1], got)
	})

	t.Run("load corrupt", func(t *testing.T) {
		t.Parallel()
		tmpDir := t.TempDir()
		store := cartfile.NewStore(tmpDir)

		err := store.Save(context.Background(), "default", lines)
		require.NoError(t, err)

		// Corrupt the snapshot. We find it by listing the directory.
		entries, err := os.ReadDir(tmpDir)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		err = os.WriteFile(filepath.Join(tmpDir, entries[0].Name()), []byte("{ invalid json"), 0o600)
		require.NoError(t, err)

		_, err = store.Load(context.Background(), "default")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrSnapshotDecodeFailed.Error())
	})

	t.Run("save empty cart", func(t *testing.T) {
		t.Parallel()
		store := cartfile.NewStore(t.TempDir())

		err := store.Save(context.Background(), "default", lines)
		require.NoError(t, err)
		err = store.Save(context.Background(), "default", nil)
		require.NoError(t, err)

		got, err := store.Load(context.Background(), "default")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("no leftover temp files", func(t *testing.T) {
		t.Parallel()
		tmpDir := t.TempDir()
		store := cartfile.NewStore(tmpDir)

		err := store.Save(context.Background(), "default", lines)
		require.NoError(t, err)

		entries, err := os.ReadDir(tmpDir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, ".json", filepath.Ext(entries[0].Name()))
	})
}
