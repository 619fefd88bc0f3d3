//go:build js && wasm

package web

import (
	"encoding/json"
	"log"
	"syscall/js"
	"time"

	"github.com/uhey77/portfolio/internal/skills"
)

const (
	scrolledOffset = 24
	toastDelay     = 280 * time.Millisecond
)

// setupVendorLibraries initializes the UI libraries the page loads, when they
// are present.
func setupVendorLibraries() {
	if m := window.Get("M"); m.Truthy() {
		m.Call("AutoInit")
	}
	if aos := window.Get("AOS"); aos.Truthy() {
		aos.Call("init", map[string]any{
			"once":     true,
			"offset":   120,
			"easing":   "ease-out-cubic",
			"duration": 700,
		})
	}
}

// setupSkillChart draws the radar chart once per canvas.
func setupSkillChart() {
	canvas := document.Call("getElementById", "skillChart")
	chart := window.Get("Chart")
	if !canvas.Truthy() || !chart.Truthy() {
		return
	}
	dataset := canvas.Get("dataset")
	if dataset.Get("chartInitialized").Truthy() {
		return
	}
	ctx := canvas.Call("getContext", "2d")
	if !ctx.Truthy() {
		return
	}

	lang := document.Get("documentElement").Get("lang").String()
	cfg, err := json.Marshal(skills.Chart(lang))
	if err != nil {
		log.Printf("Skill chart disabled: %v", err)
		return
	}
	chart.New(ctx, window.Get("JSON").Call("parse", string(cfg)))
	dataset.Set("chartInitialized", "true")
}

// setupHeader marks the header once the page scrolls and plays a short toast
// before following contact links.
func setupHeader() {
	header := document.Call("querySelector", ".site-header")
	if header.Truthy() {
		onScroll := func() {
			scrolled := window.Get("scrollY").Float() > scrolledOffset
			header.Get("classList").Call("toggle", "is-scrolled", scrolled)
		}
		window.Call("addEventListener", "scroll", js.FuncOf(func(this js.Value, args []js.Value) any {
			onScroll()
			return nil
		}))
		onScroll()
	}

	english := document.Get("documentElement").Get("lang").String() == "en"
	for _, trigger := range queryAll(".contact-trigger") {
		href := attr(trigger, "href")
		if href == "" {
			continue
		}
		trigger.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
			args[0].Call("preventDefault")
			if m := window.Get("M"); m.Truthy() && m.Get("toast").Truthy() {
				msg := "連絡先ページを開きます…"
				if english {
					msg = "Opening contact page…"
				}
				m.Call("toast", map[string]any{"html": msg, "displayLength": 1200})
			}
			setTimeout(toastDelay, func() {
				window.Get("location").Set("href", href)
			})
			return nil
		}))
	}
}
