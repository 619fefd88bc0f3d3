// Package content loads the text and numbers shown on the site from a YAML
// file. A default file is embedded so the site runs without configuration.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultSite []byte

// Text is a string per language code.
type Text map[string]string

// In returns the text for lang, falling back to Japanese and then English.
func (t Text) In(lang string) string {
	if s, ok := t[lang]; ok && s != "" {
		return s
	}
	if s := t["ja"]; s != "" {
		return s
	}
	return t["en"]
}

// Site is the whole content file.
type Site struct {
	Meta     Meta    `yaml:"site"`
	Profile  Profile `yaml:"profile"`
	Stats    []Stat  `yaml:"stats"`
	Timeline []Entry `yaml:"timeline"`
	Links    []Link  `yaml:"links"`
}

type Meta struct {
	Title       string `yaml:"title"`
	GitHubUser  string `yaml:"github_user"`
	RepoCount   int    `yaml:"repo_count"`
	DefaultLang string `yaml:"default_lang"`
}

type Profile struct {
	Name  string `yaml:"name"`
	Role  Text   `yaml:"role"`
	About Text   `yaml:"about"`
}

// Stat is one animated counter. Value and Duration are kept as written so
// the page carries them verbatim in its data attributes.
type Stat struct {
	ID       string `yaml:"id"`
	Value    string `yaml:"value"`
	Suffix   string `yaml:"suffix"`
	Duration string `yaml:"duration"`
	Label    Text   `yaml:"label"`
}

type Entry struct {
	Period  string `yaml:"period"`
	Title   Text   `yaml:"title"`
	Summary Text   `yaml:"summary"`
}

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Default returns the embedded content.
func Default() (*Site, error) {
	return Parse(defaultSite)
}

// Load reads the content file at path, or the embedded default when path is
// empty.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return site, nil
}

// Parse decodes a content file and fills in defaults.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if site.Meta.DefaultLang == "" {
		site.Meta.DefaultLang = "ja"
	}
	if site.Meta.RepoCount <= 0 {
		site.Meta.RepoCount = 6
	}
	seen := make(map[string]bool, len(site.Stats))
	for i, s := range site.Stats {
		if s.ID == "" {
			site.Stats[i].ID = "stat-" + strconv.Itoa(i)
		}
		if seen[site.Stats[i].ID] {
			return nil, fmt.Errorf("duplicate stat id %q", site.Stats[i].ID)
		}
		seen[site.Stats[i].ID] = true
	}
	return &site, nil
}

// Lang picks the page language: lang when the site has English or Japanese
// text for it, the configured default otherwise.
func (s *Site) Lang(lang string) string {
	switch lang {
	case "en", "ja":
		return lang
	}
	return s.Meta.DefaultLang
}
