// Package naming maps colors to human-readable names, either from a
// built-in table or from a remote naming service.
package naming

import (
	"context"
	stdcolor "image/color"
	"sort"

	"github.com/jsvensson/huekit/internal/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Info describes a named color.
type Info struct {
	Name     string
	Hex      string         // hex of the named color, which may differ from the query
	Distance float64        // service-specific distance between query and named color
	Exact    bool           // the query is exactly the named color
	Source   string         // which namer answered
	Metadata map[string]any // extra fields the source provides
}

type namedColor struct {
	name string
	hex  string
	c    colorful.Color
}

// Offline names colors after the nearest CSS/SVG named color by CIEDE2000
// distance. It never blocks and only fails on a cancelled context.
type Offline struct {
	table []namedColor
}

// NewOffline builds the lookup table from colornames.Map.
func NewOffline() *Offline {
	names := make([]string, 0, len(colornames.Map))
	for name := range colornames.Map {
		names = append(names, name)
	}
	sort.Strings(names)

	table := make([]namedColor, 0, len(names))
	for _, name := range names {
		c := colornames.Map[name]
		table = append(table, namedColor{
			name: name,
			hex:  color.FormatHex(color.RGB{R: float64(c.R), G: float64(c.G), B: float64(c.B)}, false),
			c:    toColorful(c),
		})
	}
	return &Offline{table: table}
}

func toColorful(c stdcolor.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Lookup returns the nearest named color. Ties go to the alphabetically
// first name, so "aqua" wins over "cyan".
func (o *Offline) Lookup(ctx context.Context, rgb color.RGB) (Info, error) {
	if err := ctx.Err(); err != nil {
		return Info{}, err
	}

	rgb = rgb.ToRGB()
	query := colorful.Color{R: rgb.R / 255, G: rgb.G / 255, B: rgb.B / 255}
	hex := color.FormatHex(rgb, false)

	best := -1
	bestDist := 0.0
	for i, nc := range o.table {
		if nc.hex == hex {
			best, bestDist = i, 0
			break
		}
		d := query.DistanceCIEDE2000(nc.c)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}

	nc := o.table[best]
	return Info{
		Name:     nc.name,
		Hex:      nc.hex,
		Distance: bestDist,
		Exact:    bestDist == 0,
		Source:   "offline",
	}, nil
}
