package naming

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/ArnoutVos/Firedrive/internal/store"
	"github.com/gosimple/slug"
)

var (
	titleSuffix = regexp.MustCompile(`\((\d+)\)$`)
	aliasSuffix = regexp.MustCompile(`-(\d+)$`)
)

// Generator produces a (title, alias) pair unique within a category.
// It only reads existing documents for the collision probe, it never
// writes anything itself.
type Generator struct {
	store store.DocumentStore
}

func NewGenerator(store store.DocumentStore) *Generator {
	return &Generator{
		store: store,
	}
}

// Generate returns a unique (title, alias) pair for the category. An empty
// alias is derived from the title first. On a collision both title and
// alias get a numeric suffix ("Title (2)", "title-2") until unique.
func (g *Generator) Generate(ctx context.Context, categoryID uint, alias, title string) (string, string, error) {
	if alias == "" {
		alias = slug.Make(title)
	}

	for {
		exists, err := g.store.ExistsAlias(ctx, categoryID, alias)
		if err != nil {
			return "", "", err
		}
		if !exists {
			return title, alias, nil
		}

		title = incrementTitle(title)
		alias = incrementAlias(alias)
	}
}

func incrementTitle(title string) string {
	if m := titleSuffix.FindStringSubmatch(title); m != nil {
		n, _ := strconv.Atoi(m[1])
		return titleSuffix.ReplaceAllString(title, fmt.Sprintf("(%d)", n+1))
	}

	return title + " (2)"
}

func incrementAlias(alias string) string {
	if m := aliasSuffix.FindStringSubmatch(alias); m != nil {
		n, _ := strconv.Atoi(m[1])
		return aliasSuffix.ReplaceAllString(alias, fmt.Sprintf("-%d", n+1))
	}

	return alias + "-2"
}
