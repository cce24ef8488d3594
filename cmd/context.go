package cmd

import (
	"github.com/ArnoutVos/Firedrive/internal/asset"
	"github.com/ArnoutVos/Firedrive/internal/auth"
	"github.com/ArnoutVos/Firedrive/internal/cache"
	"github.com/ArnoutVos/Firedrive/internal/category"
	"github.com/ArnoutVos/Firedrive/internal/compress"
	"github.com/ArnoutVos/Firedrive/internal/config"
	"github.com/ArnoutVos/Firedrive/internal/event"
	"github.com/ArnoutVos/Firedrive/internal/service"
	"github.com/ArnoutVos/Firedrive/internal/store"
)

// runtime bundles the wired services for a CLI invocation. The CLI is a
// trusted local surface, so it runs behind an allow-all gate.
type runtime struct {
	cfg       *config.Config
	store     store.Store
	assets    *asset.Local
	documents *service.DocumentService
	batch     *service.BatchService
}

func newRuntime() *runtime {
	cfg := config.LoadConfig()

	db := config.GetDb(cfg)
	st := store.NewGormStore(db)

	assets := asset.NewLocal(cfg.StorageRoot)
	categories := category.NewStoreResolver(st)
	gate := auth.AllowAll{}
	codec := compress.FromName(cfg.Compression)

	var invalidator cache.Invalidator = cache.NewNop()
	if cfg.RedisAddr != "" {
		invalidator = cache.NewRedis(cfg.RedisAddr)
	}

	return &runtime{
		cfg:       cfg,
		store:     st,
		assets:    assets,
		documents: service.NewDocumentService(st, assets, categories, gate, event.Sinks{event.NewLogSink()}, invalidator, codec),
		batch:     service.NewBatchService(st, assets, categories, gate, invalidator),
	}
}

func actor(userID int64) auth.Identity {
	return auth.Identity{ID: userID, Name: "cli"}
}
