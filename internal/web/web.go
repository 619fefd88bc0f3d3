//go:build js && wasm

// Package web drives the page effects in the browser. Everything here runs on
// the page's single JavaScript thread: the animation state lives in the
// counter and particles packages and this package only feeds them
// requestAnimationFrame timestamps and DOM events.
package web

import (
	"log"
	"syscall/js"
	"time"
)

var (
	window   = js.Global()
	document = js.Global().Get("document")
)

// Run sets up every effect on the current page. It returns once setup is
// done; the effects keep running from browser callbacks.
func Run() {
	ready := func() {
		setupTransitions()
		setupReveal()
		setupCounters()
		setupParticles()
		setupVendorLibraries()
		setupSkillChart()
		setupHeader()
	}

	if document.Get("readyState").String() == "loading" {
		var onReady js.Func
		onReady = js.FuncOf(func(this js.Value, args []js.Value) any {
			onReady.Release()
			ready()
			return nil
		})
		document.Call("addEventListener", "DOMContentLoaded", onReady)
		return
	}
	ready()
}

// requestFrame schedules fn before the next repaint with the frame timestamp.
func requestFrame(fn func(now time.Duration)) {
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		cb.Release()
		fn(timestamp(args[0]))
		return nil
	})
	window.Call("requestAnimationFrame", cb)
}

// loop calls step every frame until it returns false.
func loop(step func(now time.Duration) bool) {
	var frame func(now time.Duration)
	frame = func(now time.Duration) {
		if step(now) {
			requestFrame(frame)
		}
	}
	requestFrame(frame)
}

func now() time.Duration {
	return timestamp(window.Get("performance").Call("now"))
}

// timestamp converts a DOMHighResTimeStamp in milliseconds.
func timestamp(v js.Value) time.Duration {
	return time.Duration(v.Float() * float64(time.Millisecond))
}

func setTimeout(d time.Duration, fn func()) {
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	window.Call("setTimeout", cb, d.Milliseconds())
}

func queryAll(selector string) []js.Value {
	list := document.Call("querySelectorAll", selector)
	n := list.Get("length").Int()
	out := make([]js.Value, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, list.Index(i))
	}
	return out
}

// observe creates an IntersectionObserver calling fn for every entry that
// intersects. fn returns true to stop observing the element.
func observe(threshold float64, targets []js.Value, fn func(el js.Value, ratio float64) bool) {
	var observer js.Value
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		entries := args[0]
		for i := 0; i < entries.Length(); i++ {
			entry := entries.Index(i)
			if !entry.Get("isIntersecting").Bool() {
				continue
			}
			el := entry.Get("target")
			if fn(el, entry.Get("intersectionRatio").Float()) {
				observer.Call("unobserve", el)
			}
		}
		return nil
	})

	ctor := window.Get("IntersectionObserver")
	if !ctor.Truthy() {
		log.Println("IntersectionObserver unavailable, showing everything at once")
		for _, el := range targets {
			fn(el, 1)
		}
		return
	}
	observer = ctor.New(cb, map[string]any{"threshold": threshold})
	for _, el := range targets {
		observer.Call("observe", el)
	}
}
