package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ArnoutVos/Firedrive/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "firedrive.db")), &gorm.Config{})
	require.NoError(t, err)

	st := NewGormStore(db)
	require.NoError(t, st.Migrate())

	return st
}

func TestGormStore_DocumentCRUD(t *testing.T) {
	st := newTestStore(t)
	ctx := context.TODO()

	doc := &model.Document{
		Title:      "Report",
		Alias:      "report",
		CategoryID: 1,
		FileName:   "files/a/report.pdf",
		Ordering:   1,
	}
	require.NoError(t, st.CreateDocument(ctx, doc))
	require.NotZero(t, doc.ID)

	got, err := st.GetDocument(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Report", got.Title)

	got.Title = "Annual Report"
	require.NoError(t, st.UpdateDocument(ctx, got))

	got, err = st.GetDocument(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Annual Report", got.Title)

	require.NoError(t, st.DeleteDocument(ctx, doc.ID))

	_, err = st.GetDocument(ctx, doc.ID)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestGormStore_ExistsAlias(t *testing.T) {
	st := newTestStore(t)
	ctx := context.TODO()

	require.NoError(t, st.CreateDocument(ctx, &model.Document{
		Title:      "Report",
		Alias:      "report",
		CategoryID: 1,
		FileName:   "files/a/report.pdf",
	}))

	exists, err := st.ExistsAlias(ctx, 1, "report")
	require.NoError(t, err)
	assert.True(t, exists)

	// same alias in another category does not collide
	exists, err = st.ExistsAlias(ctx, 2, "report")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormStore_MaxOrdering(t *testing.T) {
	st := newTestStore(t)
	ctx := context.TODO()

	max, err := st.MaxOrdering(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, max)

	require.NoError(t, st.CreateDocument(ctx, &model.Document{
		Title:      "Report",
		Alias:      "report",
		CategoryID: 1,
		FileName:   "files/a/report.pdf",
		Ordering:   5,
	}))

	max, err = st.MaxOrdering(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, max)
}

func TestGormStore_Reservations(t *testing.T) {
	st := newTestStore(t)
	ctx := context.TODO()

	require.NoError(t, st.db.Create(&model.DocumentUser{DocumentID: 1, UserID: 9}).Error)
	require.NoError(t, st.db.Create(&model.DocumentUser{DocumentID: 1, UserID: 3}).Error)
	require.NoError(t, st.db.Create(&model.DocumentGroup{DocumentID: 1, GroupID: 5}).Error)
	require.NoError(t, st.db.Create(&model.DocumentTag{DocumentID: 1, TagID: 11}).Error)

	users, err := st.ListReservedUsers(ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{3, 9}, users)

	groups, err := st.ListReservedGroups(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, groups)

	tags, err := st.ListTagIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{11}, tags)

	users, err = st.ListReservedUsers(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestGormStore_Categories(t *testing.T) {
	st := newTestStore(t)
	ctx := context.TODO()

	_, err := st.GetCategory(ctx, 1)
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	category := &model.Category{Title: "Reports", ParentID: 1, Published: 1}
	require.NoError(t, st.CreateCategory(ctx, category))
	require.NotZero(t, category.ID)

	got, err := st.GetCategory(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Reports", got.Title)
}

func TestGormStore_ListFileNames(t *testing.T) {
	st := newTestStore(t)
	ctx := context.TODO()

	require.NoError(t, st.CreateDocument(ctx, &model.Document{
		Title: "A", Alias: "a", CategoryID: 1, FileName: "files/a/a.pdf",
	}))
	require.NoError(t, st.CreateDocument(ctx, &model.Document{
		Title: "B", Alias: "b", CategoryID: 1, FileName: "files/b/b.pdf",
	}))

	names, err := st.ListFileNames(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"files/a/a.pdf", "files/b/b.pdf"}, names)
}
