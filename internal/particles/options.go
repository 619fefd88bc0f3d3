package particles

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Options tunes the particle field.
type Options struct {
	// SmallCount particles are used below Breakpoint viewport width,
	// LargeCount otherwise.
	SmallCount int
	LargeCount int
	Breakpoint float64

	// Margin is how far past the viewport edge a particle may drift before
	// it is respawned.
	Margin float64

	// VelocityScale spans the per-axis velocity range, centred on zero.
	VelocityScale float64

	MinRadius  float64
	MaxRadius  float64
	MinOpacity float64
	MaxOpacity float64

	// Palette holds hex colours such as "#6cc3ff".
	Palette []string
}

// DefaultOptions returns the settings used on the site.
func DefaultOptions() Options {
	return Options{
		SmallCount:    40,
		LargeCount:    80,
		Breakpoint:    600,
		Margin:        50,
		VelocityScale: 0.15,
		MinRadius:     0.6,
		MaxRadius:     2.4,
		MinOpacity:    0.2,
		MaxOpacity:    0.8,
		Palette:       []string{"#6cc3ff", "#9ef5c1", "#ffffff"},
	}
}

// CountFor returns how many particles a viewport of the given width gets.
func CountFor(width float64, opts Options) int {
	if width < opts.Breakpoint {
		return opts.SmallCount
	}
	return opts.LargeCount
}

func (o Options) validate() error {
	if o.SmallCount < 0 || o.LargeCount < 0 {
		return fmt.Errorf("particle counts must not be negative (%d, %d)", o.SmallCount, o.LargeCount)
	}
	if o.MaxRadius < o.MinRadius {
		return fmt.Errorf("radius range [%v, %v) is empty", o.MinRadius, o.MaxRadius)
	}
	if o.MinOpacity <= 0 || o.MaxOpacity > 1 || o.MaxOpacity < o.MinOpacity {
		return fmt.Errorf("opacity range [%v, %v) must sit inside (0, 1]", o.MinOpacity, o.MaxOpacity)
	}
	if len(o.Palette) == 0 {
		return fmt.Errorf("palette is empty")
	}
	return nil
}

func parsePalette(hexes []string) ([]color.NRGBA, error) {
	palette := make([]color.NRGBA, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette colour %q: %w", h, err)
		}
		r, g, b := c.RGB255()
		palette = append(palette, color.NRGBA{R: r, G: g, B: b, A: 0xff})
	}
	return palette, nil
}
