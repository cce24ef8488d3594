package jobs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ArnoutVos/Firedrive/internal/asset"
	"github.com/ArnoutVos/Firedrive/internal/store"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sirupsen/logrus"
)

// OrphanSweeper removes owned folders under the storage root that no
// document references anymore, the leftovers of failed deletions.
type OrphanSweeper struct {
	store  store.DocumentStore
	assets asset.Manager
	root   string
}

func NewOrphanSweeper(store store.DocumentStore, assets asset.Manager, root string) *OrphanSweeper {
	return &OrphanSweeper{
		store:  store,
		assets: assets,
		root:   root,
	}
}

func (s *OrphanSweeper) Name() string {
	return "orphan-sweeper"
}

func (s *OrphanSweeper) Schedule() string {
	return "@daily"
}

func (s *OrphanSweeper) Run() {
	if err := s.Sweep(context.Background()); err != nil {
		logrus.Errorf("orphan sweep failed: %v", err)
	}
}

// Sweep deletes every folder in the storage root whose path is not the
// parent of any document's file.
func (s *OrphanSweeper) Sweep(ctx context.Context) error {
	names, err := s.store.ListFileNames(ctx)
	if err != nil {
		return err
	}

	referenced := mapset.NewSet[string]()
	for _, name := range names {
		referenced.Add(filepath.Clean(filepath.Dir(name)))
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return err
	}

	removed := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		folder := filepath.Clean(filepath.Join(s.root, entry.Name()))
		if referenced.Contains(folder) {
			continue
		}

		if err := s.assets.DeleteFolder(folder); err != nil {
			logrus.Warnf("error removing orphan folder %s: %v", folder, err)
			continue
		}
		removed++
	}

	logrus.Infof("orphan sweep removed %d folders", removed)

	return nil
}
