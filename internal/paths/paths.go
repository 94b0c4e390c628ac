// Package paths holds the immutable highway reference data used by the
// movement simulator: ordered waypoint lists with per-segment speed limits
// and terrain factors.
package paths

import (
	"strings"

	"github.com/ahmed-reda-301/truck-tracker/internal/geo"
	"github.com/ahmed-reda-301/truck-tracker/pkg/core"
)

// Key identifies a registered highway path.
type Key string

const (
	RiyadhJeddah Key = "riyadh-jeddah"
	RiyadhDammam Key = "riyadh-dammam"
	JeddahMakkah Key = "jeddah-makkah"
	RiyadhAbha   Key = "riyadh-abha"
)

// Path is an ordered list of named waypoints. SpeedLimits and TerrainFactors
// hold one entry per segment between consecutive waypoints, so their length
// is len(Waypoints)-1.
type Path struct {
	Key            Key
	Name           string
	Waypoints      []core.NamedPoint
	SpeedLimits    []float64 // km/h per segment
	TerrainFactors []float64 // multiplier per segment
	aliases        []string
}

// Segments returns the number of segments on the path.
func (p *Path) Segments() int {
	return len(p.Waypoints) - 1
}

// LengthKm returns the total great-circle length of the path.
func (p *Path) LengthKm() float64 {
	var total float64
	for i := 1; i < len(p.Waypoints); i++ {
		total += geo.Distance(p.Waypoints[i-1].Coordinate, p.Waypoints[i].Coordinate)
	}
	return total
}

// Nearest returns the index of the waypoint closest to c by great-circle
// distance. Ties go to the lowest index.
func (p *Path) Nearest(c core.Coordinate) int {
	best := 0
	bestDist := geo.Distance(c, p.Waypoints[0].Coordinate)
	for i := 1; i < len(p.Waypoints); i++ {
		if d := geo.Distance(c, p.Waypoints[i].Coordinate); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// NextAfter returns the index of the waypoint following i, clamped to the
// last waypoint.
func (p *Path) NextAfter(i int) int {
	if i >= len(p.Waypoints)-1 {
		return len(p.Waypoints) - 1
	}
	return i + 1
}

// SegmentSpeed returns the speed limit and terrain factor for the segment
// ending at waypoint index target.
func (p *Path) SegmentSpeed(target int) (limit, terrain float64) {
	seg := target - 1
	if seg < 0 {
		seg = 0
	}
	if seg >= len(p.SpeedLimits) {
		seg = len(p.SpeedLimits) - 1
	}
	return p.SpeedLimits[seg], p.TerrainFactors[seg]
}

// registry holds every known path in stable resolution order.
var registry = []*Path{
	{
		Key:  RiyadhJeddah,
		Name: "Riyadh - Jeddah Highway",
		Waypoints: []core.NamedPoint{
			{Name: "Riyadh", Coordinate: core.Coordinate{Lat: 24.7136, Lng: 46.6753}},
			{Name: "Al-Kharj", Coordinate: core.Coordinate{Lat: 24.5247, Lng: 46.1792}},
			{Name: "Afif", Coordinate: core.Coordinate{Lat: 23.9065, Lng: 42.9172}},
			{Name: "Taif", Coordinate: core.Coordinate{Lat: 21.2703, Lng: 40.4158}},
			{Name: "Jeddah", Coordinate: core.Coordinate{Lat: 21.4858, Lng: 39.1925}},
		},
		SpeedLimits:    []float64{100, 120, 110, 100},
		TerrainFactors: []float64{0.9, 1.0, 0.95, 0.85},
		aliases:        []string{"riyadh-jeddah", "jeddah-riyadh", "highway 40", "jeddah"},
	},
	{
		Key:  RiyadhDammam,
		Name: "Riyadh - Dammam Highway",
		Waypoints: []core.NamedPoint{
			{Name: "Riyadh", Coordinate: core.Coordinate{Lat: 24.7136, Lng: 46.6753}},
			{Name: "Khurais", Coordinate: core.Coordinate{Lat: 25.0670, Lng: 48.0800}},
			{Name: "Abqaiq", Coordinate: core.Coordinate{Lat: 25.9360, Lng: 49.6767}},
			{Name: "Dammam", Coordinate: core.Coordinate{Lat: 26.4207, Lng: 50.0888}},
		},
		SpeedLimits:    []float64{120, 120, 100},
		TerrainFactors: []float64{1.0, 1.0, 0.9},
		aliases:        []string{"riyadh-dammam", "dammam-riyadh", "highway 80", "dammam"},
	},
	{
		Key:  JeddahMakkah,
		Name: "Jeddah - Makkah Highway",
		Waypoints: []core.NamedPoint{
			{Name: "Jeddah", Coordinate: core.Coordinate{Lat: 21.4858, Lng: 39.1925}},
			{Name: "Bahrah", Coordinate: core.Coordinate{Lat: 21.4103, Lng: 39.4635}},
			{Name: "Makkah", Coordinate: core.Coordinate{Lat: 21.3891, Lng: 39.8579}},
		},
		SpeedLimits:    []float64{100, 90},
		TerrainFactors: []float64{0.85, 0.8},
		aliases:        []string{"jeddah-makkah", "makkah-jeddah", "makkah"},
	},
	{
		Key:  RiyadhAbha,
		Name: "Riyadh - Abha Highway",
		Waypoints: []core.NamedPoint{
			{Name: "Riyadh", Coordinate: core.Coordinate{Lat: 24.7136, Lng: 46.6753}},
			{Name: "Wadi ad-Dawasir", Coordinate: core.Coordinate{Lat: 20.4433, Lng: 44.6815}},
			{Name: "Khamis Mushait", Coordinate: core.Coordinate{Lat: 18.3093, Lng: 42.7662}},
			{Name: "Abha", Coordinate: core.Coordinate{Lat: 18.2465, Lng: 42.5117}},
		},
		SpeedLimits:    []float64{120, 100, 80},
		TerrainFactors: []float64{1.0, 0.9, 0.7},
		aliases:        []string{"riyadh-abha", "abha-riyadh", "abha", "khamis"},
	},
}

// keyIndex is the exact-match lookup over normalized keys and aliases.
var keyIndex = func() map[string]*Path {
	idx := make(map[string]*Path)
	for _, p := range registry {
		idx[string(p.Key)] = p
		for _, a := range p.aliases {
			idx[normalize(a)] = p
		}
	}
	return idx
}()

// All returns every registered path in stable order.
func All() []*Path {
	out := make([]*Path, len(registry))
	copy(out, registry)
	return out
}

// Get returns the path for an exact key.
func Get(k Key) (*Path, bool) {
	p, ok := keyIndex[string(k)]
	return p, ok
}

// Resolve maps a free-form route label onto a registered path. Exact key or
// alias matches win; otherwise the first path (registry order) with an alias
// contained in the label is used. A miss returns (nil, false) and callers
// fall back to direct-to-destination movement, never an error.
func Resolve(routeLabel string) (*Path, bool) {
	label := normalize(routeLabel)
	if label == "" {
		return nil, false
	}
	if p, ok := keyIndex[label]; ok {
		return p, true
	}
	for _, p := range registry {
		for _, a := range p.aliases {
			if strings.Contains(label, normalize(a)) {
				return p, true
			}
		}
	}
	return nil, false
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, " to ", "-")
	return s
}
