//go:build js && wasm

package web

import (
	"net/url"
	"syscall/js"
	"time"

	"github.com/uhey77/portfolio/internal/transition"
)

// setupTransitions plays the enter animation and delays same-site
// navigations until the exit animation has run.
func setupTransitions() {
	body := document.Get("body")
	classes := body.Get("classList")

	enter := func() {
		classes.Call("remove", "is-exiting")
		requestFrame(func(time.Duration) {
			classes.Call("add", "is-ready")
		})
	}
	classes.Call("add", "has-transition")
	enter()

	window.Call("addEventListener", "pageshow", js.FuncOf(func(this js.Value, args []js.Value) any {
		enter()
		return nil
	}))

	origin, err := url.Parse(window.Get("location").Get("href").String())
	if err != nil {
		return
	}

	for _, anchor := range queryAll("a[href]") {
		link := transition.Link{
			Href:     attr(anchor, "href"),
			Resolved: anchor.Get("href").String(),
			Target:   anchor.Get("target").String(),
			Download: anchor.Call("hasAttribute", "download").Bool(),
		}
		if !transition.Eligible(link) {
			continue
		}
		anchor.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
			event := args[0]
			l := link
			l.Modified = event.Get("metaKey").Bool() || event.Get("ctrlKey").Bool() ||
				event.Get("shiftKey").Bool() || event.Get("altKey").Bool()
			dest, ok := transition.Intercept(l, origin)
			if !ok {
				return nil
			}
			event.Call("preventDefault")
			classes.Call("add", "is-exiting")
			setTimeout(transition.NavigateDelay, func() {
				window.Get("location").Set("href", dest.String())
			})
			return nil
		}))
	}
}
