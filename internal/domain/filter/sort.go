package filter

import (
	"encoding/hex"
	"slices"

	"directorio/internal/domain/entity"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func nameCollator() *collate.Collator {
	return collate.New(language.Spanish, collate.Loose)
}

// SortByName orders list by display name using Spanish collation, ignoring case and accents.
// The sort is stable and in place.
func SortByName(list []*entity.Business) {
	// collate.Collator is not safe for concurrent use.
	col := nameCollator()

	slices.SortStableFunc(list, func(a, b *entity.Business) int {
		return col.CompareString(a.Name, b.Name)
	})
}

// NameSortKey returns the hex-encoded collation key of name. Comparing keys as plain
// strings gives the same order as SortByName.
func NameSortKey(name string) string {
	var buf collate.Buffer

	return hex.EncodeToString(nameCollator().KeyFromString(&buf, name))
}
