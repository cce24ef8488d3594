package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ArnoutVos/Firedrive/internal/auth"
	"github.com/ArnoutVos/Firedrive/internal/event"
	"github.com/ArnoutVos/Firedrive/internal/model"
	"github.com/ArnoutVos/Firedrive/internal/tester"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) seedDocument(t *testing.T, actor auth.Identity, catID uint, title string) *model.Document {
	t.Helper()

	path := f.newFile(t, "payload of "+title)
	doc, _, err := f.documents.Save(context.TODO(), actor, SaveRequest{
		Title:      title,
		CategoryID: catID,
		FileName:   path,
	})
	require.NoError(t, err)

	return doc
}

func TestBatchService_Copy(t *testing.T) {
	f := newFixture(t, event.Sinks{})
	actor := auth.Identity{ID: 1}
	sourceID := f.newCategory(t, "Source")
	targetID := f.newCategory(t, "Target")
	f.gate.Allow(actor, auth.ActionCreate, auth.Category(targetID))

	a := f.seedDocument(t, actor, sourceID, "Report")
	b := f.seedDocument(t, actor, sourceID, "Summary")

	newIDs, warnings, err := f.batch.Copy(context.TODO(), actor, targetID, []uint{a.ID, 999, b.ID})
	require.NoError(t, err)

	// the missing id is skipped with a warning, the others are copied
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "999")
	require.Len(t, newIDs, 2)

	for oldID, newID := range newIDs {
		original, err := f.store.GetDocument(context.TODO(), oldID)
		require.NoError(t, err)
		copied, err := f.store.GetDocument(context.TODO(), newID)
		require.NoError(t, err)

		assert.Equal(t, targetID, copied.CategoryID)
		assert.Equal(t, model.StateUnpublished, copied.State)
		assert.NotEqual(t, original.FileName, copied.FileName)
		assert.FileExists(t, copied.FileName)
	}
}

func TestBatchService_Copy_RegeneratesAliasInTarget(t *testing.T) {
	f := newFixture(t, event.Sinks{})
	actor := auth.Identity{ID: 1}
	catID := f.newCategory(t, "Reports")
	f.gate.Allow(actor, auth.ActionCreate, auth.Category(catID))

	doc := f.seedDocument(t, actor, catID, "Report")

	// copying into the same category must not collide with the source
	newIDs, _, err := f.batch.Copy(context.TODO(), actor, catID, []uint{doc.ID})
	require.NoError(t, err)

	copied, err := f.store.GetDocument(context.TODO(), newIDs[doc.ID])
	require.NoError(t, err)
	assert.Equal(t, "Report (2)", copied.Title)
	assert.Equal(t, "report-2", copied.Alias)
}

func TestBatchService_Copy_MissingCategoryIsFatal(t *testing.T) {
	f := newFixture(t, event.Sinks{})
	actor := auth.Identity{ID: 1}
	sourceID := f.newCategory(t, "Source")

	doc := f.seedDocument(t, actor, sourceID, "Report")

	newIDs, _, err := f.batch.Copy(context.TODO(), actor, 9999, []uint{doc.ID})
	assert.ErrorIs(t, err, ErrBatchCategoryNotFound)
	assert.Nil(t, newIDs)

	newIDs, _, err = f.batch.Copy(context.TODO(), actor, 0, []uint{doc.ID})
	assert.ErrorIs(t, err, ErrBatchCategoryNotFound)
	assert.Nil(t, newIDs)

	// no rows were created anywhere
	docs, err := f.store.ListDocuments(context.TODO(), sourceID)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestBatchService_Copy_RequiresCreateGrant(t *testing.T) {
	f := newFixture(t, event.Sinks{})
	actor := auth.Identity{ID: 1}
	sourceID := f.newCategory(t, "Source")
	targetID := f.newCategory(t, "Target")

	doc := f.seedDocument(t, actor, sourceID, "Report")

	_, _, err := f.batch.Copy(context.TODO(), actor, targetID, []uint{doc.ID})
	assert.ErrorIs(t, err, ErrBatchCannotCreate)

	docs, err := f.store.ListDocuments(context.TODO(), targetID)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestBatchService_Copy_AssetFailureIsFatal(t *testing.T) {
	f := newFixture(t, event.Sinks{})
	actor := auth.Identity{ID: 1}
	sourceID := f.newCategory(t, "Source")
	targetID := f.newCategory(t, "Target")
	f.gate.Allow(actor, auth.ActionCreate, auth.Category(targetID))

	doc := f.seedDocument(t, actor, sourceID, "Report")
	doc.FileName = filepath.Join(tester.StorageRoot(), "gone", "report.pdf")
	require.NoError(t, f.store.UpdateDocument(context.TODO(), doc))

	_, _, err := f.batch.Copy(context.TODO(), actor, targetID, []uint{doc.ID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), doc.FileName)

	docs, listErr := f.store.ListDocuments(context.TODO(), targetID)
	require.NoError(t, listErr)
	assert.Empty(t, docs)
}

func TestBatchService_Client_DenialLeavesNoPartialWrites(t *testing.T) {
	f := newFixture(t, event.Sinks{})
	actor := auth.Identity{ID: 1}
	openID := f.newCategory(t, "Open")
	closedID := f.newCategory(t, "Closed")
	f.gate.Allow(actor, auth.ActionEdit, auth.Category(openID))

	a := f.seedDocument(t, actor, openID, "First")
	b := f.seedDocument(t, actor, closedID, "Second")
	c := f.seedDocument(t, actor, openID, "Third")

	contexts := map[uint]auth.Resource{
		a.ID: auth.Category(openID),
		b.ID: auth.Category(closedID),
		c.ID: auth.Category(openID),
	}

	err := f.batch.Client(context.TODO(), actor, 77, []uint{a.ID, b.ID, c.ID}, contexts)
	assert.ErrorIs(t, err, ErrBatchCannotEdit)

	for _, id := range []uint{a.ID, b.ID, c.ID} {
		doc, err := f.store.GetDocument(context.TODO(), id)
		require.NoError(t, err)
		assert.Zero(t, doc.ClientID)
	}
}

func TestBatchService_Client(t *testing.T) {
	f := newFixture(t, event.Sinks{})
	actor := auth.Identity{ID: 1}
	catID := f.newCategory(t, "Reports")
	f.gate.Allow(actor, auth.ActionEdit, auth.Category(catID))

	a := f.seedDocument(t, actor, catID, "First")
	b := f.seedDocument(t, actor, catID, "Second")

	contexts := map[uint]auth.Resource{
		a.ID: auth.Category(catID),
		b.ID: auth.Category(catID),
	}

	require.NoError(t, f.batch.Client(context.TODO(), actor, 77, []uint{a.ID, b.ID}, contexts))

	for _, id := range []uint{a.ID, b.ID} {
		doc, err := f.store.GetDocument(context.TODO(), id)
		require.NoError(t, err)
		assert.Equal(t, 77, doc.ClientID)
	}
}

func TestBatchService_Language(t *testing.T) {
	f := newFixture(t, event.Sinks{})
	actor := auth.Identity{ID: 1}
	catID := f.newCategory(t, "Reports")
	f.gate.Allow(actor, auth.ActionEdit, auth.Category(catID))

	doc := f.seedDocument(t, actor, catID, "First")

	contexts := map[uint]auth.Resource{doc.ID: auth.Category(catID)}

	require.NoError(t, f.batch.Language(context.TODO(), actor, 3, []uint{doc.ID}, contexts))

	got, err := f.store.GetDocument(context.TODO(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.LanguageID)
}
