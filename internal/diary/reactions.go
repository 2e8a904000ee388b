package diary

import (
	"slices"

	"github.com/osse101/GrapeChallenge_Web/internal/domain"
)

// TopReactions counts interactions against the palette and returns the n most
// frequent. Ties keep palette order, zero counts and off-palette emoji are dropped.
func TopReactions(interactions []string, palette []string, n int) []domain.ReactionCount {
	counts := make([]domain.ReactionCount, len(palette))
	index := make(map[string]int, len(palette))
	for i, emoji := range palette {
		counts[i] = domain.ReactionCount{Emoji: emoji}
		index[emoji] = i
	}
	for _, emoji := range interactions {
		if i, ok := index[emoji]; ok {
			counts[i].Count++
		}
	}

	counts = slices.DeleteFunc(counts, func(rc domain.ReactionCount) bool { return rc.Count == 0 })
	slices.SortStableFunc(counts, func(a, b domain.ReactionCount) int { return b.Count - a.Count })

	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
