package service

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/ArnoutVos/Firedrive/internal/asset"
	"github.com/ArnoutVos/Firedrive/internal/auth"
	"github.com/ArnoutVos/Firedrive/internal/cache"
	"github.com/ArnoutVos/Firedrive/internal/category"
	"github.com/ArnoutVos/Firedrive/internal/compress"
	"github.com/ArnoutVos/Firedrive/internal/event"
	"github.com/ArnoutVos/Firedrive/internal/model"
	"github.com/ArnoutVos/Firedrive/internal/naming"
	"github.com/ArnoutVos/Firedrive/internal/ordering"
	"github.com/ArnoutVos/Firedrive/internal/store"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"
)

const (
	// CacheGroup names the listing cache invalidated after mutations.
	CacheGroup = "documents"

	eventContext = "com_firedrive.document"
)

// NewDocumentService creates a new DocumentService.
func NewDocumentService(
	store store.Store,
	assets asset.Manager,
	categories category.Resolver,
	gate auth.Gate,
	sink event.Sink,
	invalidator cache.Invalidator,
	codec compress.Compress,
) *DocumentService {
	return &DocumentService{
		store:      store,
		naming:     naming.NewGenerator(store),
		ordering:   ordering.NewAllocator(store),
		assets:     assets,
		categories: categories,
		gate:       gate,
		sink:       sink,
		cache:      invalidator,
		codec:      codec,
	}
}

// DocumentService orchestrates the single-record document lifecycle:
// create-or-update, cascading delete and state changes.
type DocumentService struct {
	store      store.Store
	naming     *naming.Generator
	ordering   *ordering.Allocator
	assets     asset.Manager
	categories category.Resolver
	gate       auth.Gate
	sink       event.Sink
	cache      cache.Invalidator
	codec      compress.Compress
}

// SaveRequest is the payload for a create or update. A zero ID means a
// new record; AsCopy duplicates the record identified by ID instead of
// updating it.
type SaveRequest struct {
	ID            uint
	Title         string
	Alias         string
	CategoryID    uint
	CategoryLabel string
	Language      string
	ClientID      int
	LanguageID    int
	State         int
	Ordering      int
	FileName      string
	Metadata      map[string]any
	AsCopy        bool
}

// DocumentView is a document assembled for display: the row plus the
// decoded metadata and the reservation sets.
type DocumentView struct {
	Document       *model.Document
	Metadata       map[string]any
	ReservedUsers  []int64
	ReservedGroups []int64
}

// Save creates or updates a document. It resolves the target category
// (creating it from a free-text label when the actor may), generates a
// unique title and alias for new records, applies the save-as-copy
// rules, stamps the audit fields and allocates the ordering position on
// first insert. Non-fatal notices are returned as warnings.
func (s *DocumentService) Save(ctx context.Context, actor auth.Identity, req SaveRequest) (*model.Document, []string, error) {
	var warnings []string

	categoryID, err := s.resolveCategory(ctx, actor, req)
	if err != nil {
		return nil, warnings, err
	}

	title := req.Title
	alias := req.Alias

	var doc *model.Document
	switch {
	case req.AsCopy:
		original, err := s.store.GetDocument(ctx, req.ID)
		if err != nil {
			return nil, warnings, err
		}

		if title == original.Title {
			title, alias, err = s.naming.Generate(ctx, categoryID, alias, title)
			if err != nil {
				return nil, warnings, err
			}
		} else if alias == original.Alias {
			alias = ""
		}

		// The copy starts from the original row so it inherits the fields
		// the payload does not override, the file path in particular.
		clone := *original
		clone.ID = 0
		doc = &clone
	case req.ID != 0:
		doc, err = s.store.GetDocument(ctx, req.ID)
		if err != nil {
			return nil, warnings, err
		}
	default:
		doc = &model.Document{}
	}

	if doc.ID == 0 && alias == "" {
		alias = slug.Make(title)

		if !req.AsCopy {
			exists, err := s.store.ExistsAlias(ctx, categoryID, alias)
			if err != nil {
				return nil, warnings, err
			}
			if exists {
				warnings = append(warnings, fmt.Sprintf("a document with alias %q already exists in the category, saved under a new alias", alias))
			}
		}

		title, alias, err = s.naming.Generate(ctx, categoryID, alias, title)
		if err != nil {
			return nil, warnings, err
		}
	}

	doc.Title = title
	if alias != "" || doc.ID == 0 {
		doc.Alias = alias
	}
	doc.CategoryID = categoryID
	doc.ClientID = req.ClientID
	doc.LanguageID = req.LanguageID
	doc.State = req.State
	if req.FileName != "" {
		doc.FileName = req.FileName
	}
	if req.Ordering != 0 {
		doc.Ordering = req.Ordering
	}
	if req.AsCopy {
		doc.State = model.StateUnpublished
	}

	if req.Metadata != nil {
		encoded, err := s.encodeMetadata(req.Metadata)
		if err != nil {
			return nil, warnings, err
		}
		doc.Metadata = encoded
	}

	if err := s.stamp(ctx, actor, doc); err != nil {
		return nil, warnings, err
	}

	if err := doc.Check(); err != nil {
		return nil, warnings, err
	}

	if doc.ID == 0 {
		err = s.store.CreateDocument(ctx, doc)
	} else {
		err = s.store.UpdateDocument(ctx, doc)
	}
	if err != nil {
		return nil, warnings, err
	}

	return doc, warnings, nil
}

// Delete removes documents together with their owned files and folders,
// in the given order. The batch aborts on the first record that cannot
// be loaded, is not deletable or is vetoed; file cleanup failures only
// produce warnings because the row deletion is authoritative.
func (s *DocumentService) Delete(ctx context.Context, actor auth.Identity, ids []uint) ([]string, error) {
	var warnings []string

	for _, id := range ids {
		doc, err := s.store.GetDocument(ctx, id)
		if err != nil {
			return warnings, err
		}

		if !s.CanDelete(actor, doc) {
			return warnings, ErrNotPermitted
		}

		if err := s.sink.BeforeDelete(ctx, eventContext, doc); err != nil {
			return warnings, err
		}

		// The row is about to go; the path is unrecoverable afterwards.
		fileName := doc.FileName

		if err := s.store.DeleteDocument(ctx, id); err != nil {
			return warnings, err
		}

		if fileName != "" {
			if err := s.assets.Delete(fileName); err != nil {
				warnings = append(warnings, fmt.Sprintf("error deleting file: %s", fileName))
			} else if err := s.assets.DeleteFolder(filepath.Dir(fileName)); err != nil {
				logrus.Warnf("error deleting folder of %s: %v", fileName, err)
			}
		}

		s.sink.AfterDelete(ctx, eventContext, doc)
	}

	if err := s.cache.Invalidate(ctx, CacheGroup); err != nil {
		logrus.Warnf("cache invalidation failed: %v", err)
	}

	return warnings, nil
}

// Get assembles the full document view: decoded metadata with the
// associated tag ids, and the user and group reservation sets.
func (s *DocumentService) Get(ctx context.Context, id uint) (*DocumentView, error) {
	doc, err := s.store.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	metadata, err := s.decodeMetadata(doc.Metadata)
	if err != nil {
		return nil, err
	}

	tags, err := s.store.ListTagIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	metadata["tags"] = tags

	users, err := s.store.ListReservedUsers(ctx, id)
	if err != nil {
		return nil, err
	}

	groups, err := s.store.ListReservedGroups(ctx, id)
	if err != nil {
		return nil, err
	}

	return &DocumentView{
		Document:       doc,
		Metadata:       metadata,
		ReservedUsers:  asSortedSet(users),
		ReservedGroups: asSortedSet(groups),
	}, nil
}

// SetState changes the publication state of documents, fail-fast on the
// first record whose state the actor may not edit.
func (s *DocumentService) SetState(ctx context.Context, actor auth.Identity, ids []uint, state int) error {
	for _, id := range ids {
		doc, err := s.store.GetDocument(ctx, id)
		if err != nil {
			return err
		}

		if !s.CanEditState(actor, doc) {
			return ErrNotPermitted
		}

		doc.State = state
		doc.Modified = time.Now()
		doc.ModifiedBy = actor.ID

		if err := s.store.UpdateDocument(ctx, doc); err != nil {
			return err
		}
	}

	if err := s.cache.Invalidate(ctx, CacheGroup); err != nil {
		logrus.Warnf("cache invalidation failed: %v", err)
	}

	return nil
}

// CanDelete reports whether the record may be physically deleted: it
// must be trashed and the actor needs delete authorization on its
// category, or on the component when no category is set.
func (s *DocumentService) CanDelete(actor auth.Identity, doc *model.Document) bool {
	if doc.ID == 0 {
		return false
	}

	if doc.State != model.StateTrashed {
		return false
	}

	if doc.CategoryID != 0 {
		return s.gate.Authorise(actor, auth.ActionDelete, auth.Category(doc.CategoryID))
	}

	return s.gate.Authorise(actor, auth.ActionDelete, auth.Component())
}

// CanEditState reports whether the actor may change the record's
// publication state.
func (s *DocumentService) CanEditState(actor auth.Identity, doc *model.Document) bool {
	if doc.CategoryID != 0 {
		return s.gate.Authorise(actor, auth.ActionEditState, auth.Category(doc.CategoryID))
	}

	return s.gate.Authorise(actor, auth.ActionEditState, auth.Component())
}

// resolveCategory validates the payload's category id, or creates a new
// category from the free-text label when the actor may create one.
func (s *DocumentService) resolveCategory(ctx context.Context, actor auth.Identity, req SaveRequest) (uint, error) {
	categoryID := req.CategoryID

	if categoryID > 0 {
		resolved, err := s.categories.Resolve(ctx, categoryID)
		if err != nil {
			return 0, err
		}
		categoryID = resolved
	}

	if categoryID == 0 && req.CategoryLabel != "" && s.canCreateCategory(actor) {
		created, err := s.categories.Create(ctx, req.CategoryLabel, req.Language)
		if err != nil {
			return 0, err
		}
		return created, nil
	}

	if categoryID == 0 {
		return 0, ErrInvalidCategory
	}

	return categoryID, nil
}

func (s *DocumentService) canCreateCategory(actor auth.Identity) bool {
	return s.gate.Authorise(actor, auth.ActionCreate, auth.Component())
}

// stamp sets the audit fields and, on first insert only, allocates the
// ordering position.
func (s *DocumentService) stamp(ctx context.Context, actor auth.Identity, doc *model.Document) error {
	now := time.Now()

	if doc.ID == 0 {
		doc.Created = now
		doc.CreatedBy = actor.ID
		doc.DownloadLast = nil

		if doc.Ordering == 0 {
			next, err := s.ordering.Next(ctx)
			if err != nil {
				return err
			}
			doc.Ordering = next
		}

		return nil
	}

	doc.Modified = now
	doc.ModifiedBy = actor.ID

	return nil
}

func (s *DocumentService) encodeMetadata(metadata map[string]any) (string, error) {
	data, err := json.Marshal(metadata)
	if err != nil {
		return "", err
	}

	encoded, err := s.codec.Encode(data)
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

func (s *DocumentService) decodeMetadata(raw string) (map[string]any, error) {
	metadata := make(map[string]any)
	if raw == "" {
		return metadata, nil
	}

	data, err := s.codec.Decode([]byte(raw))
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, &metadata); err != nil {
		return nil, err
	}

	return metadata, nil
}

func asSortedSet(ids []int64) []int64 {
	set := mapset.NewSet[int64](ids...)

	out := set.ToSlice()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
