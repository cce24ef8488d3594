package naming

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ArnoutVos/Firedrive/internal/model"
	"github.com/ArnoutVos/Firedrive/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newGenerator(t *testing.T) (*Generator, store.Store) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "firedrive.db")), &gorm.Config{})
	require.NoError(t, err)

	st := store.NewGormStore(db)
	require.NoError(t, st.Migrate())

	return NewGenerator(st), st
}

func seed(t *testing.T, st store.Store, categoryID uint, title, alias string) {
	t.Helper()

	require.NoError(t, st.CreateDocument(context.TODO(), &model.Document{
		Title:      title,
		Alias:      alias,
		CategoryID: categoryID,
		FileName:   "files/x/" + alias + ".pdf",
	}))
}

func TestGenerator_Generate(t *testing.T) {
	g, st := newGenerator(t)

	title, alias, err := g.Generate(context.TODO(), 1, "", "Report")
	require.NoError(t, err)
	assert.Equal(t, "Report", title)
	assert.Equal(t, "report", alias)

	seed(t, st, 1, "Report", "report")

	title, alias, err = g.Generate(context.TODO(), 1, "", "Report")
	require.NoError(t, err)
	assert.Equal(t, "Report (2)", title)
	assert.Equal(t, "report-2", alias)

	seed(t, st, 1, "Report (2)", "report-2")

	title, alias, err = g.Generate(context.TODO(), 1, "report", "Report")
	require.NoError(t, err)
	assert.Equal(t, "Report (3)", title)
	assert.Equal(t, "report-3", alias)
}

func TestGenerator_ScopedToCategory(t *testing.T) {
	g, st := newGenerator(t)

	seed(t, st, 1, "Report", "report")

	// no collision in another category
	title, alias, err := g.Generate(context.TODO(), 2, "", "Report")
	require.NoError(t, err)
	assert.Equal(t, "Report", title)
	assert.Equal(t, "report", alias)
}

func TestIncrement(t *testing.T) {
	assert.Equal(t, "Report (2)", incrementTitle("Report"))
	assert.Equal(t, "Report (3)", incrementTitle("Report (2)"))
	assert.Equal(t, "report-2", incrementAlias("report"))
	assert.Equal(t, "report-3", incrementAlias("report-2"))
}
