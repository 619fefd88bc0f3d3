package particles

import (
	"image/color"
	"math"
	"math/rand/v2"
	"testing"
)

func newTestField(t *testing.T, w, h float64, seed uint64) *Field {
	t.Helper()
	f, err := New(w, h, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), DefaultOptions())
	if err != nil {
		t.Fatalf("New(%v, %v): %v", w, h, err)
	}
	return f
}

type recordingSurface struct {
	clears  int
	circles []Particle
}

func (r *recordingSurface) Clear() {
	r.clears++
	r.circles = r.circles[:0]
}

func (r *recordingSurface) FillCircle(x, y, radius float64, c color.NRGBA) {
	r.circles = append(r.circles, Particle{X: x, Y: y, Radius: radius, Color: c})
}

func TestParticleCount(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		want  int
	}{
		{"phone", 400, 40},
		{"just below breakpoint", 599, 40},
		{"at breakpoint", 600, 80},
		{"desktop", 1200, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestField(t, tt.width, 800, 1)
			if f.Len() != tt.want {
				t.Errorf("Len() = %d, want %d", f.Len(), tt.want)
			}
			if got := CountFor(tt.width, DefaultOptions()); got != tt.want {
				t.Errorf("CountFor(%v) = %d, want %d", tt.width, got, tt.want)
			}
		})
	}
}

func TestNewAttributeRanges(t *testing.T) {
	opts := DefaultOptions()
	palette, err := parsePalette(opts.Palette)
	if err != nil {
		t.Fatal(err)
	}

	for seed := uint64(0); seed < 20; seed++ {
		f := newTestField(t, 1280, 720, seed)
		for i, p := range f.Particles() {
			if p.X < 0 || p.X >= 1280 || p.Y < 0 || p.Y >= 720 {
				t.Fatalf("seed %d particle %d: position (%v, %v) outside viewport", seed, i, p.X, p.Y)
			}
			if p.VX < -0.075 || p.VX >= 0.075 || p.VY < -0.075 || p.VY >= 0.075 {
				t.Fatalf("seed %d particle %d: velocity (%v, %v) out of range", seed, i, p.VX, p.VY)
			}
			if p.Radius < 0.6 || p.Radius >= 2.4 {
				t.Fatalf("seed %d particle %d: radius %v out of range", seed, i, p.Radius)
			}
			if p.Opacity < 0.2 || p.Opacity >= 0.8 {
				t.Fatalf("seed %d particle %d: opacity %v out of range", seed, i, p.Opacity)
			}
			found := false
			for _, c := range palette {
				if c == p.Color {
					found = true
				}
			}
			if !found {
				t.Fatalf("seed %d particle %d: colour %v not in palette", seed, i, p.Color)
			}
		}
	}
}

func TestNewSeededIsDeterministic(t *testing.T) {
	a := newTestField(t, 1000, 600, 42).Particles()
	b := newTestField(t, 1000, 600, 42).Particles()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("particle %d differs between equally seeded fields", i)
		}
	}
}

func TestStepKeepsParticlesInsideMargin(t *testing.T) {
	f := newTestField(t, 300, 200, 3)
	// Push particles fast enough to cross the margin repeatedly.
	for i := range f.particles {
		f.particles[i].VX *= 400
		f.particles[i].VY *= 400
	}

	for frame := 0; frame < 2000; frame++ {
		f.Step()
		for i, p := range f.particles {
			if p.X < -50 || p.X >= 350 || p.Y < -50 || p.Y >= 250 {
				t.Fatalf("frame %d particle %d at (%v, %v) escaped", frame, i, p.X, p.Y)
			}
		}
	}
}

func TestStepRespawnsPastRightEdge(t *testing.T) {
	f := newTestField(t, 800, 600, 5)
	p := &f.particles[0]
	p.X, p.Y = 860, 300
	p.VX, p.VY = 0.05, 0
	before := *p

	s := &recordingSurface{}
	f.Tick(s)

	after := f.particles[0]
	if after.X < 0 || after.X >= 800 || after.Y < 0 || after.Y >= 600 {
		t.Fatalf("respawned at (%v, %v), want inside the viewport", after.X, after.Y)
	}
	if after.VX != before.VX || after.VY != before.VY || after.Radius != before.Radius ||
		after.Opacity != before.Opacity || after.Color != before.Color {
		t.Error("respawn must only change the position")
	}
	if s.circles[0].X != after.X || s.circles[0].Y != after.Y {
		t.Error("the same tick should draw the respawned position")
	}
}

func TestStepMovesByVelocity(t *testing.T) {
	f := newTestField(t, 800, 600, 9)
	p := &f.particles[0]
	p.X, p.Y = 100, 100
	p.VX, p.VY = 0.05, -0.025

	f.Step()

	if got := f.particles[0]; math.Abs(got.X-100.05) > 1e-9 || math.Abs(got.Y-99.975) > 1e-9 {
		t.Errorf("position = (%v, %v), want (100.05, 99.975)", got.X, got.Y)
	}
}

func TestDrawPaintsEveryParticle(t *testing.T) {
	f := newTestField(t, 1024, 768, 11)
	s := &recordingSurface{}
	f.Tick(s)
	f.Tick(s)

	if s.clears != 2 {
		t.Errorf("clears = %d, want 2", s.clears)
	}
	if len(s.circles) != f.Len() {
		t.Fatalf("drew %d circles, want %d", len(s.circles), f.Len())
	}
	for i, p := range f.Particles() {
		want := uint8(p.Opacity*255 + 0.5)
		if s.circles[i].Color.A != want {
			t.Errorf("particle %d alpha = %d, want %d", i, s.circles[i].Color.A, want)
		}
	}
}

func TestDrawNilSurface(t *testing.T) {
	f := newTestField(t, 640, 480, 13)
	f.Draw(nil)
	f.Tick(nil)
}

func TestResizeKeepsParticles(t *testing.T) {
	f := newTestField(t, 1200, 900, 17)
	before := f.Particles()

	f.Resize(400, 300)

	if w, h := f.Size(); w != 400 || h != 300 {
		t.Errorf("Size() = (%v, %v), want (400, 300)", w, h)
	}
	after := f.Particles()
	if len(after) != len(before) {
		t.Fatalf("Len() = %d after resize, want %d", len(after), len(before))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("particle %d moved on resize", i)
		}
	}
}

func TestResizeThenStepRespawnsIntoNewBounds(t *testing.T) {
	f := newTestField(t, 1200, 900, 19)
	f.particles[0].X, f.particles[0].Y = 1100, 800
	f.Resize(400, 300)
	f.Step()

	p := f.particles[0]
	if p.X < 0 || p.X >= 400 || p.Y < 0 || p.Y >= 300 {
		t.Errorf("particle at (%v, %v), want inside the shrunk viewport", p.X, p.Y)
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	bad := DefaultOptions()
	bad.Palette = []string{"#6cc3ff", "blue-ish"}
	if _, err := New(800, 600, rng, bad); err == nil {
		t.Error("expected an error for an invalid palette colour")
	}

	bad = DefaultOptions()
	bad.MaxOpacity = 1.5
	if _, err := New(800, 600, rng, bad); err == nil {
		t.Error("expected an error for an opacity above 1")
	}

	if _, err := New(800, 600, nil, DefaultOptions()); err == nil {
		t.Error("expected an error for a nil random source")
	}
}
