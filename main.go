package main

import (
	"log"
	"net/http"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/uhey77/portfolio/internal/content"
	"github.com/uhey77/portfolio/internal/github"
	"github.com/uhey77/portfolio/internal/skills"
	"github.com/uhey77/portfolio/internal/store"
)

type server struct {
	site  *content.Site
	repos *store.RepoCache
	admin *adminAuth
}

type statView struct {
	ID       string
	Value    string
	Suffix   string
	Duration string
	Label    string
}

type entryView struct {
	Period  string
	Title   string
	Summary string
}

func main() {
	cfg := loadConfig()

	site, err := content.Load(cfg.ContentPath)
	if err != nil {
		log.Fatal("Failed to load site content: ", err)
	}
	if cfg.GitHubUser != "" {
		site.Meta.GitHubUser = cfg.GitHubUser
	}

	cache, err := store.Open(cfg.CacheDSN)
	if err != nil {
		log.Fatal("Failed to open repository cache: ", err)
	}
	defer cache.Close()

	client := github.NewClient(cfg.GitHubAPI)
	client.PerPage = site.Meta.RepoCount

	s := &server{
		site:  site,
		repos: store.NewRepoCache(cache, client, cfg.CacheTTL),
		admin: newAdminAuth(cfg.AdminUsername, cfg.AdminPassword),
	}

	r := gin.Default()
	setupRoutes(r, s)
	setupAdminRoutes(r, s)

	log.Printf("Serving %s's portfolio on :%s (repo cache TTL %v)", site.Meta.GitHubUser, cfg.Port, cfg.CacheTTL)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}

func setupRoutes(r *gin.Engine, s *server) {
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// Home page route
	r.GET("/", func(c *gin.Context) {
		lang := s.site.Lang(c.Query("lang"))
		c.HTML(http.StatusOK, "index.html", gin.H{
			"lang":     lang,
			"title":    s.site.Meta.Title,
			"name":     s.site.Profile.Name,
			"role":     s.site.Profile.Role.In(lang),
			"about":    s.site.Profile.About.In(lang),
			"stats":    s.statViews(lang),
			"timeline": s.timelineViews(lang),
			"links":    s.site.Links,
		})
	})

	// HTMX fragment with one card per repository
	r.GET("/projects", func(c *gin.Context) {
		repos, err := s.repos.Repos(c.Request.Context(), s.site.Meta.GitHubUser)
		if err != nil {
			log.Printf("Error loading repositories: %v", err)
			c.HTML(http.StatusOK, "projects.html", gin.H{
				"error": github.FailureMessage,
			})
			return
		}
		c.HTML(http.StatusOK, "projects.html", gin.H{
			"repos": repos,
		})
	})

	r.GET("/api/repos", func(c *gin.Context) {
		repos, err := s.repos.Repos(c.Request.Context(), s.site.Meta.GitHubUser)
		if err != nil {
			log.Printf("Error loading repositories: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": github.FailureMessage})
			return
		}
		c.JSON(http.StatusOK, repos)
	})

	r.GET("/api/skills", func(c *gin.Context) {
		c.JSON(http.StatusOK, skills.Chart(c.Query("lang")))
	})

	setupContactRoutes(r)
}

func (s *server) statViews(lang string) []statView {
	views := make([]statView, 0, len(s.site.Stats))
	for _, st := range s.site.Stats {
		views = append(views, statView{
			ID:       st.ID,
			Value:    st.Value,
			Suffix:   st.Suffix,
			Duration: st.Duration,
			Label:    st.Label.In(lang),
		})
	}
	return views
}

func (s *server) timelineViews(lang string) []entryView {
	views := make([]entryView, 0, len(s.site.Timeline))
	for _, e := range s.site.Timeline {
		views = append(views, entryView{
			Period:  e.Period,
			Title:   e.Title.In(lang),
			Summary: e.Summary.In(lang),
		})
	}
	return views
}
