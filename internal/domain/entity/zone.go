package entity

import (
	"slices"
	"strings"
)

// Zone is a coarse area of the municipality.
type Zone string

const (
	ZoneCentro    Zone = "centro"
	ZoneVeredas   Zone = "veredas"
	ZoneAlrededor Zone = "alrededor"
)

//nolint:gochecknoglobals
var zoneLabels = map[Zone]string{
	ZoneCentro:    "Centro",
	ZoneVeredas:   "Veredas",
	ZoneAlrededor: "Alrededor del pueblo",
}

//nolint:gochecknoglobals
var zoneOrder = []Zone{ZoneCentro, ZoneVeredas, ZoneAlrededor}

// Zones returns every zone in display order.
func Zones() []Zone {
	return slices.Clone(zoneOrder)
}

// ParseZone accepts a tag or a label, ignoring case and accents.
func ParseZone(s string) (Zone, bool) {
	key := foldAccents(strings.ToLower(strings.TrimSpace(s)))
	for _, z := range zoneOrder {
		if string(z) == key || strings.ToLower(z.Label()) == key {
			return z, true
		}
	}

	return "", false
}

func (z Zone) String() string {
	return string(z)
}

// IsValid checks if the Zone is a member of the closed set.
func (z Zone) IsValid() bool {
	_, ok := zoneLabels[z]

	return ok
}

// Label returns the display label.
func (z Zone) Label() string {
	return zoneLabels[z]
}
