package main

import (
	"math/rand/v2"
	"testing"

	"github.com/uhey77/portfolio/internal/particles"
)

func TestLayoutResizesField(t *testing.T) {
	field, err := particles.New(1280, 720, rand.New(rand.NewPCG(1, 1)), particles.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	b := &Backdrop{field: field}

	w, h := b.Layout(500, 400)
	if w != 500 || h != 400 {
		t.Errorf("Layout = %dx%d, want 500x400", w, h)
	}
	if fw, fh := field.Size(); fw != 500 || fh != 400 {
		t.Errorf("field size = %vx%v, want 500x400", fw, fh)
	}
	if field.Len() != 80 {
		t.Errorf("resize changed the particle count to %d", field.Len())
	}
}
