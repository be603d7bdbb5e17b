// Package seed populates the catalog with the sample snippet collection.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/snippetly/song-snippetly/internal/catalog"
	"github.com/snippetly/song-snippetly/internal/snippet"
)

// Run replaces the catalog contents with the sample collection and logs a
// per-mood summary.
func Run(ctx context.Context, cat *catalog.Catalog, log *slog.Logger) error {
	snippets := SampleSnippets()
	if err := cat.Seed(ctx, snippets); err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}

	log.Info("catalog seeded", "snippets", len(snippets))
	for _, info := range snippet.MoodCatalog() {
		count := 0
		for i := range snippets {
			if snippets[i].HasMood(info.Name) {
				count++
			}
		}
		log.Info("mood summary", "mood", string(info.Name), "emoji", info.Emoji, "count", count)
	}
	return nil
}
