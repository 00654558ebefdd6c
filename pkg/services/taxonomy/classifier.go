// Package taxonomy classifies raw offer status text into the closed business
// category set. The per-category string sets are immutable package data,
// loaded once; membership is case-insensitive exact match, never substring.
package taxonomy

import (
	"strings"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
)

type categorySet struct {
	category domain.StatusCategory
	members  map[string]struct{}
}

// categorySets is probed in fixed order; the sets are pairwise disjoint.
var categorySets = []categorySet{
	{domain.CategoryInDevelopment, newSet("under study", "on offer", "proposal", "presale")},
	{domain.CategoryDelivered, newSet("follow-up", "followup", "delivered")},
	{domain.CategoryWon, newSet("won", "won-end")},
	{domain.CategoryLost, newSet("lost", "rejected")},
	{domain.CategoryCancelled, newSet("cancelled", "abandoned")},
}

func newSet(members ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(members))
	for _, m := range members {
		set[m] = struct{}{}
	}
	return set
}

// Categorize maps raw status text to its business category. The input is
// trimmed and lowercased before the exact-match lookup; anything not in a
// set maps to CategoryOther.
func Categorize(rawStatus string) domain.StatusCategory {
	status := strings.ToLower(strings.TrimSpace(rawStatus))
	for _, set := range categorySets {
		if _, ok := set.members[status]; ok {
			return set.category
		}
	}
	return domain.CategoryOther
}
