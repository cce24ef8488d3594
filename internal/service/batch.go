package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ArnoutVos/Firedrive/internal/asset"
	"github.com/ArnoutVos/Firedrive/internal/auth"
	"github.com/ArnoutVos/Firedrive/internal/cache"
	"github.com/ArnoutVos/Firedrive/internal/category"
	"github.com/ArnoutVos/Firedrive/internal/model"
	"github.com/ArnoutVos/Firedrive/internal/naming"
	"github.com/ArnoutVos/Firedrive/internal/store"
	"github.com/sirupsen/logrus"
)

// NewBatchService creates a new BatchService.
func NewBatchService(
	store store.Store,
	assets asset.Manager,
	categories category.Resolver,
	gate auth.Gate,
	invalidator cache.Invalidator,
) *BatchService {
	return &BatchService{
		store:      store,
		naming:     naming.NewGenerator(store),
		assets:     assets,
		categories: categories,
		gate:       gate,
		cache:      invalidator,
	}
}

// BatchService transforms many documents in one invocation: client and
// language reassignment, and duplication into another category. Batches
// are sequential and non-transactional; the per-error-kind abort rules
// differ between operations and are kept that way on purpose.
type BatchService struct {
	store      store.Store
	naming     *naming.Generator
	assets     asset.Manager
	categories category.Resolver
	gate       auth.Gate
	cache      cache.Invalidator
}

// Client reassigns the client scope of the given documents. Every id is
// authorized against its context before anything is written, so a single
// denial aborts with no partial success.
func (b *BatchService) Client(ctx context.Context, actor auth.Identity, value int, ids []uint, contexts map[uint]auth.Resource) error {
	return b.assign(ctx, actor, ids, contexts, func(doc *model.Document) {
		doc.ClientID = value
	})
}

// Language reassigns the language of the given documents, with the same
// semantics as Client.
func (b *BatchService) Language(ctx context.Context, actor auth.Identity, value int, ids []uint, contexts map[uint]auth.Resource) error {
	return b.assign(ctx, actor, ids, contexts, func(doc *model.Document) {
		doc.LanguageID = value
	})
}

func (b *BatchService) assign(ctx context.Context, actor auth.Identity, ids []uint, contexts map[uint]auth.Resource, set func(*model.Document)) error {
	for _, id := range ids {
		if !b.gate.Authorise(actor, auth.ActionEdit, contexts[id]) {
			return ErrBatchCannotEdit
		}
	}

	for _, id := range ids {
		doc, err := b.store.GetDocument(ctx, id)
		if err != nil {
			return err
		}

		set(doc)

		if err := b.store.UpdateDocument(ctx, doc); err != nil {
			return err
		}
	}

	if err := b.cache.Invalidate(ctx, CacheGroup); err != nil {
		logrus.Warnf("cache invalidation failed: %v", err)
	}

	return nil
}

// Copy duplicates documents into the target category and returns the
// old-to-new id mapping. The category must resolve and the actor needs a
// create grant there, both checked once up front. A missing source
// record is skipped with a warning; any store, asset, validation or
// persistence failure aborts the whole batch.
func (b *BatchService) Copy(ctx context.Context, actor auth.Identity, categoryID uint, ids []uint) (map[uint]uint, []string, error) {
	var warnings []string

	if categoryID == 0 {
		return nil, warnings, ErrBatchCategoryNotFound
	}

	resolved, err := b.categories.Resolve(ctx, categoryID)
	if err != nil {
		return nil, warnings, err
	}
	if resolved == 0 {
		return nil, warnings, ErrBatchCategoryNotFound
	}

	if !b.gate.Authorise(actor, auth.ActionCreate, auth.Category(resolved)) {
		return nil, warnings, ErrBatchCannotCreate
	}

	newIDs := make(map[uint]uint)
	queue := append([]uint(nil), ids...)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		doc, err := b.store.GetDocument(ctx, id)
		if errors.Is(err, store.ErrDocumentNotFound) {
			warnings = append(warnings, fmt.Sprintf("document %d not found, skipped", id))
			continue
		}
		if err != nil {
			return nil, warnings, err
		}

		title, alias, err := b.naming.Generate(ctx, resolved, doc.Alias, doc.Title)
		if err != nil {
			return nil, warnings, err
		}
		doc.Title = title
		doc.Alias = alias

		// Reset the id so persistence inserts a new row.
		doc.ID = 0
		doc.CategoryID = resolved

		copied, err := b.assets.Copy(doc.FileName)
		if err != nil {
			return nil, warnings, fmt.Errorf("error copying file %s: %w", doc.FileName, err)
		}
		doc.FileName = copied

		// The copy starts out unpublished.
		doc.State = model.StateUnpublished

		if err := doc.Check(); err != nil {
			return nil, warnings, err
		}

		if err := b.store.CreateDocument(ctx, doc); err != nil {
			return nil, warnings, err
		}

		newIDs[id] = doc.ID
	}

	if err := b.cache.Invalidate(ctx, CacheGroup); err != nil {
		logrus.Warnf("cache invalidation failed: %v", err)
	}

	return newIDs, warnings, nil
}
