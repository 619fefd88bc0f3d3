package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/uhey77/portfolio/internal/counter"
)

func TestDefaultContent(t *testing.T) {
	site, err := Default()
	if err != nil {
		t.Fatalf("Default(): %v", err)
	}
	if site.Meta.GitHubUser != "uhey77" {
		t.Errorf("github user = %q", site.Meta.GitHubUser)
	}
	if len(site.Stats) == 0 {
		t.Fatal("default content has no stats")
	}
	for _, s := range site.Stats {
		target, _, d := counter.ParseAttrs(s.Value, s.Suffix, s.Duration)
		if target <= 0 || d <= 0 {
			t.Errorf("stat %s parses to target %d, duration %v", s.ID, target, d)
		}
		if s.Label.In("en") == "" || s.Label.In("ja") == "" {
			t.Errorf("stat %s is missing a label", s.ID)
		}
	}
}

func TestTextFallback(t *testing.T) {
	tests := []struct {
		name string
		text Text
		lang string
		want string
	}{
		{"exact", Text{"en": "Hello", "ja": "こんにちは"}, "en", "Hello"},
		{"unknown lang", Text{"en": "Hello", "ja": "こんにちは"}, "fr", "こんにちは"},
		{"english only", Text{"en": "Hello"}, "ja", "Hello"},
		{"empty", Text{}, "en", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.text.In(tt.lang); got != tt.want {
				t.Errorf("In(%q) = %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	data := []byte(`
site:
  github_user: someone
stats:
  - value: "12"
    suffix: "+"
  - id: uptime
    value: "99"
    suffix: "%"
    duration: "900"
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	site, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if site.Meta.DefaultLang != "ja" || site.Meta.RepoCount != 6 {
		t.Errorf("defaults not applied: %+v", site.Meta)
	}
	if site.Stats[0].ID != "stat-0" {
		t.Errorf("generated id = %q, want stat-0", site.Stats[0].ID)
	}
	if site.Stats[1].Duration != "900" {
		t.Errorf("duration = %q, want 900", site.Stats[1].Duration)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
	if _, err := Parse([]byte("stats: [")); err == nil {
		t.Error("expected an error for malformed YAML")
	}
	dup := []byte("stats:\n  - id: a\n  - id: a\n")
	if _, err := Parse(dup); err == nil {
		t.Error("expected an error for duplicate stat ids")
	}
}

func TestSiteLang(t *testing.T) {
	site := &Site{Meta: Meta{DefaultLang: "ja"}}
	if site.Lang("en") != "en" || site.Lang("") != "ja" || site.Lang("de") != "ja" {
		t.Error("Lang did not normalize as expected")
	}
}
