// Command stats plays the site's statistic counters in the terminal, using the
// same easing and timing as the page.
//
// Usage:
//
//	go run ./cmd/stats [--content site.yaml] [--lang en|ja]
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/uhey77/portfolio/internal/content"
)

func main() {
	contentPath := flag.String("content", os.Getenv("SITE_CONTENT"), "Site content YAML (default: embedded)")
	lang := flag.String("lang", "", "Label language (en or ja)")
	flag.Parse()

	site, err := content.Load(*contentPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(site, site.Lang(*lang), time.Now()))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
