//go:build js && wasm

package web

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand/v2"
	"syscall/js"
	"time"

	"github.com/uhey77/portfolio/internal/particles"
)

// canvasSurface draws onto a 2D canvas context.
type canvasSurface struct {
	ctx   js.Value
	field *particles.Field
}

func (s canvasSurface) Clear() {
	w, h := s.field.Size()
	s.ctx.Call("clearRect", 0, 0, w, h)
}

func (s canvasSurface) FillCircle(x, y, r float64, c color.NRGBA) {
	s.ctx.Call("beginPath")
	s.ctx.Set("globalAlpha", float64(c.A)/0xff)
	s.ctx.Set("fillStyle", fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
	s.ctx.Call("arc", x, y, r, 0, 2*math.Pi)
	s.ctx.Call("fill")
}

// setupParticles adds the background canvas. Without a 2D context the page
// simply has no background effect.
func setupParticles() {
	canvas := document.Call("createElement", "canvas")
	ctx := canvas.Call("getContext", "2d")
	if !ctx.Truthy() {
		return
	}
	canvas.Set("className", "particle-canvas")
	canvas.Get("style").Set("pointerEvents", "none")
	document.Get("body").Call("appendChild", canvas)

	width, height := viewport()
	canvas.Set("width", width)
	canvas.Set("height", height)

	seed := uint64(time.Now().UnixNano())
	field, err := particles.New(width, height, rand.New(rand.NewPCG(seed, seed>>1|1)), particles.DefaultOptions())
	if err != nil {
		log.Printf("Particle background disabled: %v", err)
		canvas.Call("remove")
		return
	}
	surface := canvasSurface{ctx: ctx, field: field}

	onResize := js.FuncOf(func(this js.Value, args []js.Value) any {
		w, h := viewport()
		canvas.Set("width", w)
		canvas.Set("height", h)
		field.Resize(w, h)
		return nil
	})
	window.Call("addEventListener", "resize", onResize)

	loop(func(time.Duration) bool {
		field.Tick(surface)
		ctx.Set("globalAlpha", 1)
		return true
	})
}

func viewport() (float64, float64) {
	return window.Get("innerWidth").Float(), window.Get("innerHeight").Float()
}
