// Package transition decides which link clicks play the page exit animation
// before navigating.
package transition

import (
	"net/url"
	"strings"
	"time"
)

// Duration is the length of the page enter/exit animation.
const Duration = 600 * time.Millisecond

// NavigateDelay is how long after the exit animation starts the browser
// navigates, leaving a little slack before the animation ends.
const NavigateDelay = Duration - 100*time.Millisecond

// Link describes an anchor and the click that activated it.
type Link struct {
	Href     string // raw href attribute
	Resolved string // absolute URL as resolved by the browser
	Target   string
	Download bool
	Modified bool // meta, ctrl, shift or alt held
}

// Intercept reports whether the click should be replaced by the exit
// animation and a delayed navigation to the returned URL.
func Intercept(l Link, origin *url.URL) (*url.URL, bool) {
	if l.Modified || !Eligible(l) || origin == nil {
		return nil, false
	}

	dest, err := url.Parse(l.Resolved)
	if err != nil || !dest.IsAbs() {
		return nil, false
	}
	if !sameOrigin(dest, origin) {
		return nil, false
	}
	return dest, true
}

// Eligible applies the per-anchor checks that do not depend on the click or
// the page origin.
func Eligible(l Link) bool {
	href := l.Href
	switch {
	case href == "", strings.HasPrefix(href, "#"):
		return false
	case l.Target != "" && l.Target != "_self":
		return false
	case l.Download:
		return false
	case strings.HasPrefix(href, "mailto:"), strings.HasPrefix(href, "tel:"):
		return false
	}
	return true
}

func sameOrigin(a, b *url.URL) bool {
	return strings.EqualFold(a.Scheme, b.Scheme) && strings.EqualFold(hostPort(a), hostPort(b))
}

func hostPort(u *url.URL) string {
	host, port := u.Hostname(), u.Port()
	if port == "" {
		switch strings.ToLower(u.Scheme) {
		case "http":
			port = "80"
		case "https":
			port = "443"
		}
	}
	return host + ":" + port
}
