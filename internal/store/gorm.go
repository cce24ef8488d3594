package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ArnoutVos/Firedrive/internal/model"
	"gorm.io/gorm"
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db: db,
	}
}

var _ Store = (*GormStore)(nil)

type GormStore struct {
	db *gorm.DB
}

func (g *GormStore) CreateDocument(ctx context.Context, doc *model.Document) error {
	return g.db.WithContext(ctx).Create(doc).Error
}

func (g *GormStore) GetDocument(ctx context.Context, id uint) (*model.Document, error) {
	var doc model.Document
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

func (g *GormStore) ListDocuments(ctx context.Context, categoryID uint) ([]*model.Document, error) {
	var docs []*model.Document
	err := g.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("ordering").Find(&docs).Error
	return docs, err
}

func (g *GormStore) UpdateDocument(ctx context.Context, doc *model.Document) error {
	return g.db.WithContext(ctx).Save(doc).Error
}

func (g *GormStore) DeleteDocument(ctx context.Context, id uint) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Document{}).Error
}

func (g *GormStore) ExistsAlias(ctx context.Context, categoryID uint, alias string) (bool, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&model.Document{}).
		Where("category_id = ? AND alias = ?", categoryID, alias).
		Count(&count).Error
	return count > 0, err
}

func (g *GormStore) MaxOrdering(ctx context.Context) (int, error) {
	var max sql.NullInt64
	row := g.db.WithContext(ctx).Model(&model.Document{}).Select("MAX(ordering)").Row()
	if err := row.Scan(&max); err != nil {
		return 0, err
	}
	if !max.Valid {
		return 0, nil
	}

	return int(max.Int64), nil
}

func (g *GormStore) ListFileNames(ctx context.Context) ([]string, error) {
	var names []string
	err := g.db.WithContext(ctx).Model(&model.Document{}).Pluck("file_name", &names).Error
	return names, err
}

func (g *GormStore) ListReservedUsers(ctx context.Context, documentID uint) ([]int64, error) {
	var ids []int64
	err := g.db.WithContext(ctx).Model(&model.DocumentUser{}).
		Where("document_id = ?", documentID).
		Pluck("user_id", &ids).Error
	return ids, err
}

func (g *GormStore) ListReservedGroups(ctx context.Context, documentID uint) ([]int64, error) {
	var ids []int64
	err := g.db.WithContext(ctx).Model(&model.DocumentGroup{}).
		Where("document_id = ?", documentID).
		Pluck("group_id", &ids).Error
	return ids, err
}

func (g *GormStore) ListTagIDs(ctx context.Context, documentID uint) ([]int64, error) {
	var ids []int64
	err := g.db.WithContext(ctx).Model(&model.DocumentTag{}).
		Where("document_id = ?", documentID).
		Pluck("tag_id", &ids).Error
	return ids, err
}

func (g *GormStore) GetCategory(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}

	return &category, nil
}

func (g *GormStore) CreateCategory(ctx context.Context, category *model.Category) error {
	return g.db.WithContext(ctx).Create(category).Error
}

func (g *GormStore) Migrate() error {
	return model.Migrate(g.db)
}

func (g *GormStore) Transaction(ctx context.Context, f func(tx Store) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return f(&GormStore{db: tx})
	})
}
