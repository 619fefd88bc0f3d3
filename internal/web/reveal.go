//go:build js && wasm

package web

import "syscall/js"

const revealThreshold = 0.1

// setupReveal fades sections, cards and timeline items in the first time
// they scroll into view.
func setupReveal() {
	var targets []js.Value
	for _, sel := range []string{".section", ".card", ".timeline-item"} {
		targets = append(targets, queryAll(sel)...)
	}
	for _, el := range targets {
		el.Get("classList").Call("add", "reveal")
	}
	observe(revealThreshold, targets, func(el js.Value, _ float64) bool {
		el.Get("classList").Call("add", "is-visible")
		return true
	})
}
