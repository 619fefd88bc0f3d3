// Package main opens a desktop window showing the site's particle background.
//
// Usage:
//
//	go run ./cmd/backdrop [flags]
//
// Flags:
//
//	--width, --height   Initial window size (default 1280x720)
//	--seed              Random seed; 0 picks one from the clock
//
// The window is resizable. Resizing changes the simulated viewport the same
// way a browser resize does: particles keep drifting and respawn into the
// new bounds once they leave them.
package main

import (
	"flag"
	"image/color"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/uhey77/portfolio/internal/particles"
)

var (
	widthFlag  = flag.Int("width", 1280, "Initial window width")
	heightFlag = flag.Int("height", 720, "Initial window height")
	seedFlag   = flag.Uint64("seed", 0, "Random seed (0 = time based)")
)

var background = color.RGBA{R: 0x0b, G: 0x10, B: 0x20, A: 0xff}

// Backdrop implements ebiten.Game around a particle field.
type Backdrop struct {
	field *particles.Field
}

// screenSurface adapts an ebiten image to particles.Surface.
type screenSurface struct {
	img *ebiten.Image
}

func (s screenSurface) Clear() {
	s.img.Fill(background)
}

func (s screenSurface) FillCircle(x, y, r float64, c color.NRGBA) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), c, true)
}

// Update steps the simulation once per ebiten tick.
func (b *Backdrop) Update() error {
	b.field.Step()
	return nil
}

// Draw paints the current particle positions.
func (b *Backdrop) Draw(screen *ebiten.Image) {
	b.field.Draw(screenSurface{img: screen})
}

// Layout follows the window size so the field always covers it.
func (b *Backdrop) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := b.field.Size()
	if float64(outsideWidth) != w || float64(outsideHeight) != h {
		b.field.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	field, err := particles.New(float64(*widthFlag), float64(*heightFlag), rng, particles.DefaultOptions())
	if err != nil {
		log.Fatalf("Failed to create particle field: %v", err)
	}
	log.Printf("Particle field %dx%d with %d particles (seed %d)", *widthFlag, *heightFlag, field.Len(), seed)

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle("Portfolio Backdrop")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&Backdrop{field: field}); err != nil {
		log.Fatal(err)
	}
}
