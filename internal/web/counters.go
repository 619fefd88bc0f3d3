//go:build js && wasm

package web

import (
	"strconv"
	"syscall/js"
	"time"

	"github.com/uhey77/portfolio/internal/counter"
)

const counterIDAttr = "data-counter-id"

// setupCounters starts each [data-stat-value] element once it is on screen.
func setupCounters() {
	nodes := queryAll("[" + counter.AttrValue + "]")
	if len(nodes) == 0 {
		return
	}
	for i, el := range nodes {
		el.Call("setAttribute", counterIDAttr, strconv.Itoa(i))
	}

	activator := counter.NewActivator(counter.DefaultThreshold)
	observe(counter.DefaultThreshold, nodes, func(el js.Value, ratio float64) bool {
		// The observer only reports entries that crossed its threshold, so an
		// intersecting entry counts as fully qualified even when the reported
		// ratio rounds just below it.
		if !activator.Observe(el.Call("getAttribute", counterIDAttr).String(), max(ratio, counter.DefaultThreshold)) {
			return true
		}
		animateCounter(el)
		return true
	})
}

func animateCounter(el js.Value) {
	target, suffix, duration := counter.ParseAttrs(
		attr(el, counter.AttrValue),
		attr(el, counter.AttrSuffix),
		attr(el, counter.AttrDuration),
	)
	task := counter.NewTask(target, suffix, duration, now())

	loop(func(now time.Duration) bool {
		frame, more := task.Advance(now)
		el.Set("textContent", frame.Text)
		return more
	})
}

func attr(el js.Value, name string) string {
	v := el.Call("getAttribute", name)
	if v.IsNull() || v.IsUndefined() {
		return ""
	}
	return v.String()
}
