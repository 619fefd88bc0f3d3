// admin.go - token-cookie admin access for the repository cache
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type adminAuth struct {
	token    string
	salt     string
	username string
	password string
}

func newAdminAuth(username, password string) *adminAuth {
	a := &adminAuth{
		token:    generateAdminToken(),
		salt:     generateAdminToken(), // Use for IP hashing
		username: username,
		password: password,
	}

	log.Printf("Admin access available at: /admin/login")
	if gin.Mode() == gin.DebugMode {
		log.Printf("Admin token (dev only): %s", a.token)
	}
	return a
}

func generateAdminToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate admin token:", err)
	}
	return hex.EncodeToString(bytes)
}

// Hash IP address so logs never carry raw client addresses
func (a *adminAuth) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + a.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

func (a *adminAuth) validCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

// Middleware to check admin authentication
func (a *adminAuth) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Setup all admin routes
func setupAdminRoutes(r *gin.Engine, s *server) {
	a := s.admin

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if a.validCredentials(c.PostForm("username"), c.PostForm("password")) {
			// Secure cookie (24 hours)
			c.SetCookie("admin_token", a.token, 3600*24, "/admin", "", false, true)
			log.Printf("Admin login successful from %s", a.hashIP(c.ClientIP()))
			c.Redirect(http.StatusFound, "/admin/cache")
			return
		}
		log.Printf("Failed admin login attempt from %s", a.hashIP(c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"error": "Invalid credentials",
		})
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie("admin_token", "", -1, "/admin", "", false, true)
		log.Printf("Admin logout from %s", a.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(a.middleware())

	// Cached repository lists
	adminGroup.GET("/cache", func(c *gin.Context) {
		entries, err := s.repos.Store().Entries(c.Request.Context())
		if err != nil {
			log.Printf("Error listing repo cache: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cache"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user":    s.site.Meta.GitHubUser,
			"entries": entries,
		})
	})

	// Drop the cached list and fetch it again
	adminGroup.POST("/cache/refresh", func(c *gin.Context) {
		user := s.site.Meta.GitHubUser
		repos, err := s.repos.Refresh(c.Request.Context(), user)
		if err != nil {
			log.Printf("Error refreshing repositories for %s: %v", user, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Repo cache for %s refreshed by %s", user, a.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, gin.H{"message": "Cache refreshed", "repos": len(repos)})
	})
}
