// Package catalog holds the static command to resource table: every
// slash command that maps directly to a published space weather graph.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Source is appended to every media caption.
const Source = "\nMore information at https://bsdworld.org/"

// Cache buster windows. Photos are regenerated on the publishing host
// every few minutes; videos are much heavier and refresh less often.
const (
	PhotoWindow = 900 * time.Second
	VideoWindow = 1800 * time.Second
)

// Kind distinguishes how a resource must be delivered.
type Kind int

const (
	KindPhoto Kind = iota
	KindVideo
)

// Resource describes one displayable graph.
type Resource struct {
	URL     string
	Caption string
}

var resources = map[string]Resource{
	"/aindex": {
		URL:     "https://bsdworld.org/aindex.jpg",
		Caption: "The A index show the fluctuations in the magnetic field.",
	},
	"/dxcc": {
		URL:     "https://bsdworld.org/dxcc-week-stats.jpg",
		Caption: "Daily total number of spots for each continents.",
	},
	"/enlil": {
		URL:     "https://bsdworld.org/enlil.mp4",
		Caption: "WSA-Enlil Solar Wind Prediction.",
	},
	"/flux": {
		URL:     "https://bsdworld.org/flux.jpg",
		Caption: "Solar radio flux at 10.7 cm (2800 MHz) is an indicator of solar activity.",
	},
	"/forecast": {
		URL:     "https://bsdworld.org/kpi-forecast.jpg",
		Caption: "Recently observed and a three day forecast of space weather conditions.",
	},
	"/kpindex": {
		URL:     "https://bsdworld.org/kpindex.jpg",
		Caption: "Kp is an indicator of disturbances in the Earth's magnetic field.",
	},
	"/modes": {
		URL:     "https://bsdworld.org/modes.jpg",
		Caption: "Daily total activity per mode.",
	},
	"/muf": {
		URL:     "https://bsdworld.org/muf.mp4",
		Caption: "Show the maximum usable frequency.",
	},
	"/proton": {
		URL:     "https://bsdworld.org/proton_flux.jpg",
		Caption: "Proton Flux is the number of high-energy protons coming from the Sun.",
	},
	"/sunspot": {
		URL:     "https://bsdworld.org/ssn.jpg",
		Caption: "Daily index of sunspot activity.",
	},
	"/wind": {
		URL:     "https://bsdworld.org/solarwind.jpg",
		Caption: "Density, speed, and temperature of protons and electrons plasma.",
	},
	"/xray": {
		URL:     "https://bsdworld.org/xray_flux.jpg",
		Caption: "X-ray emissions from the Sun are primarily associated with solar flares.",
	},
}

// Lookup returns the resource for a command. The lookup is pure: the
// same command always yields the same URL and caption.
func Lookup(command string) (Resource, bool) {
	res, ok := resources[command]
	return res, ok
}

// Commands returns all catalog commands, sorted.
func Commands() []string {
	cmds := make([]string, 0, len(resources))
	for cmd := range resources {
		cmds = append(cmds, cmd)
	}
	sort.Strings(cmds)
	return cmds
}

// Captions returns the command to caption mapping, used by /help.
func Captions() map[string]string {
	caps := make(map[string]string, len(resources))
	for cmd, res := range resources {
		caps[cmd] = res.Caption
	}
	return caps
}

// KindOf derives the delivery kind from the resource URL extension.
func KindOf(res Resource) (Kind, error) {
	switch {
	case strings.HasSuffix(res.URL, ".jpg"):
		return KindPhoto, nil
	case strings.HasSuffix(res.URL, ".mp4"):
		return KindVideo, nil
	}
	return 0, errors.Errorf("unknown resource type: %s", res.URL)
}

// Window returns the cache buster window for a kind.
func (k Kind) Window() time.Duration {
	if k == KindVideo {
		return VideoWindow
	}
	return PhotoWindow
}

// Bucket computes the time bucket for the cache buster token. The value
// is constant within a window and never decreases.
func Bucket(now time.Time, window time.Duration) int64 {
	secs := int64(window / time.Second)
	if secs <= 0 {
		secs = int64(PhotoWindow / time.Second)
	}
	return now.Unix() / secs
}

// FreshURL appends the cache buster token to a base URL so CDNs serve a
// recent copy without being hit on every single request.
func FreshURL(baseURL string, window time.Duration, now time.Time) string {
	return fmt.Sprintf("%s?s=%d", baseURL, Bucket(now, window))
}
