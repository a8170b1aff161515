// Package zones models the geography of the propagation dialog:
// continents, their CQ zones, and the published graph URLs.
package zones

import (
	"fmt"
	"time"

	"github.com/0x9900/sunfluxbot/internal/catalog"
)

const graphHost = "https://bsdworld.org"

// Continent is one top level choice in the propagation dialog.
type Continent struct {
	Code  string
	Label string
	// Farewell is the caption used when the full continent graph is sent.
	Farewell string
}

var continents = []Continent{
	{Code: "NA", Label: "North America", Farewell: "North America\n73 and good DXing"},
	{Code: "EU", Label: "Europe", Farewell: "Europa\n73 and good DXing"},
}

var continentZones = map[string][]int{
	"NA": {3, 4, 5},
	"EU": {14, 15, 16, 21},
}

// Continents returns the dialog's continent choices in display order.
func Continents() []Continent {
	out := make([]Continent, len(continents))
	copy(out, continents)
	return out
}

// ByCode returns the continent for a two letter code.
func ByCode(code string) (Continent, bool) {
	for _, c := range continents {
		if c.Code == code {
			return c, true
		}
	}
	return Continent{}, false
}

// ZonesFor returns the CQ zones selectable for a continent.
func ZonesFor(code string) []int {
	zones, ok := continentZones[code]
	if !ok {
		return nil
	}
	out := make([]int, len(zones))
	copy(out, zones)
	return out
}

// ZoneGraphURL returns the propagation graph for a single CQ zone,
// with the cache buster token applied.
func ZoneGraphURL(zone int, now time.Time) string {
	base := fmt.Sprintf("%s/DXCC/cqzone/%d/latest.webp", graphHost, zone)
	return catalog.FreshURL(base, catalog.PhotoWindow, now)
}

// ContinentGraphURL returns the all-zones propagation graph for a continent.
func ContinentGraphURL(code string, now time.Time) string {
	base := fmt.Sprintf("%s/DXCC/continent/%s/latest.webp", graphHost, code)
	return catalog.FreshURL(base, catalog.PhotoWindow, now)
}
