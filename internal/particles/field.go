// Package particles simulates the decorative dots drifting behind the page.
//
// A Field owns a fixed set of particles inside a viewport-sized area. Each
// tick moves every particle by its own velocity and respawns the ones that
// drifted past the soft margin around the viewport. Particles never interact
// and the set never grows or shrinks after New.
package particles

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
)

// Particle is one dot. Only X and Y change after creation.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64
	Color   color.NRGBA
}

// Surface is what a Field draws onto. The alpha of c carries the particle
// opacity.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c color.NRGBA)
}

// Field is the particle simulator. It is not safe for concurrent use; drivers
// call it from their single rendering callback.
type Field struct {
	width, height float64
	opts          Options
	palette       []color.NRGBA
	rng           *rand.Rand
	particles     []Particle
}

// New creates a field for a width x height viewport. rng supplies every
// random draw so callers can seed it.
func New(width, height float64, rng *rand.Rand, opts Options) (*Field, error) {
	if rng == nil {
		return nil, fmt.Errorf("particles: nil random source")
	}
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("particles: %w", err)
	}
	palette, err := parsePalette(opts.Palette)
	if err != nil {
		return nil, fmt.Errorf("particles: %w", err)
	}

	f := &Field{
		width:   math.Max(width, 0),
		height:  math.Max(height, 0),
		opts:    opts,
		palette: palette,
		rng:     rng,
	}

	n := CountFor(f.width, opts)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = f.spawn()
	}
	return f, nil
}

func (f *Field) spawn() Particle {
	p := Particle{
		VX:      (f.rng.Float64() - 0.5) * f.opts.VelocityScale,
		VY:      (f.rng.Float64() - 0.5) * f.opts.VelocityScale,
		Radius:  f.between(f.opts.MinRadius, f.opts.MaxRadius),
		Opacity: f.between(f.opts.MinOpacity, f.opts.MaxOpacity),
		Color:   f.palette[f.rng.IntN(len(f.palette))],
	}
	p.X, p.Y = f.randomPosition()
	return p
}

func (f *Field) between(lo, hi float64) float64 {
	return lo + f.rng.Float64()*(hi-lo)
}

func (f *Field) randomPosition() (float64, float64) {
	return f.rng.Float64() * f.width, f.rng.Float64() * f.height
}

func (f *Field) outside(p *Particle) bool {
	m := f.opts.Margin
	return p.X < -m || p.X >= f.width+m || p.Y < -m || p.Y >= f.height+m
}

// Step advances every particle by one fixed step. Particles that left the
// margin are respawned at a random position inside the current viewport and
// keep their velocity, radius, colour and opacity.
func (f *Field) Step() {
	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.VX
		p.Y += p.VY
		if f.outside(p) {
			p.X, p.Y = f.randomPosition()
		}
	}
}

// Draw clears s and paints every particle. A nil surface draws nothing.
func (f *Field) Draw(s Surface) {
	if s == nil {
		return
	}
	s.Clear()
	for _, p := range f.particles {
		c := p.Color
		c.A = uint8(math.Round(p.Opacity * 0xff))
		s.FillCircle(p.X, p.Y, p.Radius, c)
	}
}

// Tick runs one rendering-pipeline frame: step, then draw.
func (f *Field) Tick(s Surface) {
	f.Step()
	f.Draw(s)
}

// Resize records new viewport bounds. Existing particles keep their positions
// and respawn into the new bounds once they cross the margin.
func (f *Field) Resize(width, height float64) {
	f.width = math.Max(width, 0)
	f.height = math.Max(height, 0)
}

// Size returns the current viewport bounds.
func (f *Field) Size() (float64, float64) {
	return f.width, f.height
}

// Len returns the number of particles.
func (f *Field) Len() int {
	return len(f.particles)
}

// Particles returns a copy of the current particle state.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}
