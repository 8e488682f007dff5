package huekit

import (
	"context"
	"time"

	"github.com/jsvensson/huekit/internal/naming"
)

// DefaultLightThreshold splits light from dark colors on the brightness
// scale.
const DefaultLightThreshold = 128.0

// Brightness returns the perceived brightness in [0, 255] using the BT.601
// luma weights.
func (c *Color) Brightness() float64 {
	return (299*float64(c.r) + 587*float64(c.g) + 114*float64(c.b)) / 1000
}

// IsLight reports whether the brightness reaches threshold.
func (c *Color) IsLight(threshold float64) bool {
	return c.Brightness() >= threshold
}

// Info is what a naming service knows about a color.
type Info = naming.Info

// Namer maps a color to a human-readable name. Implementations may block,
// time out or fail; Color passes their errors through unchanged.
type Namer interface {
	Lookup(ctx context.Context, rgb RGB) (Info, error)
}

// Name returns the name n gives to c.
func (c *Color) Name(ctx context.Context, n Namer) (string, error) {
	info, err := n.Lookup(ctx, c.ToRGB())
	if err != nil {
		return "", err
	}
	return info.Name, nil
}

// Info returns everything n knows about c.
func (c *Color) Info(ctx context.Context, n Namer) (Info, error) {
	return n.Lookup(ctx, c.ToRGB())
}

// OfflineNamer returns a Namer that picks the closest CSS/SVG named color.
func OfflineNamer() Namer {
	return naming.NewOffline()
}

// NewClientNamer returns a Namer backed by a thecolorapi.com compatible
// HTTP service.
func NewClientNamer(endpoint string, timeout time.Duration) Namer {
	return naming.NewClient(endpoint, timeout)
}
