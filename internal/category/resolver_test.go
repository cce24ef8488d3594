package category

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ArnoutVos/Firedrive/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newResolver(t *testing.T) *StoreResolver {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "firedrive.db")), &gorm.Config{})
	require.NoError(t, err)

	st := store.NewGormStore(db)
	require.NoError(t, st.Migrate())

	return NewStoreResolver(st)
}

func TestStoreResolver(t *testing.T) {
	r := newResolver(t)

	// unknown id resolves to zero, not an error
	id, err := r.Resolve(context.TODO(), 42)
	require.NoError(t, err)
	assert.Zero(t, id)

	created, err := r.Create(context.TODO(), "New Folder", "en-GB")
	require.NoError(t, err)
	require.NotZero(t, created)

	id, err = r.Resolve(context.TODO(), created)
	require.NoError(t, err)
	assert.Equal(t, created, id)
}
