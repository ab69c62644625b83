// admin.go - editor login guarding every content change, plus privacy-conscious visit logging
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ronu450/portfolio/internal/config"
)

const editorCookie = "editor_token"

type editorAuth struct {
	username string
	password string
	token    string
	locks    bool
	// salt keeps hashed client IPs stable for the life of the process only.
	salt string
}

func newEditorAuth(cfg config.Config) *editorAuth {
	a := &editorAuth{
		username: cfg.EditorUsername,
		password: cfg.EditorPassword,
		locks:    cfg.EditingLocked(),
		token:    generateToken(),
		salt:     generateToken(),
	}

	if a.locked() {
		log.Printf("Editor access available at: /editor/login")
		if gin.Mode() == gin.DebugMode {
			log.Printf("Editor token (dev only): %s", a.token)
		}
	} else {
		log.Println("WARNING: EDITOR_PASSWORD not set, every visitor can edit content.")
	}
	log.Println("Privacy: visit logging uses hashed IP addresses")
	return a
}

func generateToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate editor token:", err)
	}
	return hex.EncodeToString(bytes)
}

func (a *editorAuth) locked() bool {
	return a.locks
}

// hashIP hashes an address so visits can be told apart without storing it.
func (a *editorAuth) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + a.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// authorized reports whether the request may change content.
func (a *editorAuth) authorized(c *gin.Context) bool {
	if !a.locked() {
		return true
	}
	token, err := c.Cookie(editorCookie)
	return err == nil && subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) == 1
}

func (a *editorAuth) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

// middleware rejects content changes from visitors that are not logged in.
func (a *editorAuth) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if a.authorized(c) {
			c.Next()
			return
		}
		if c.GetHeader("HX-Request") == "true" {
			c.Header("HX-Redirect", "/editor/login")
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Redirect(http.StatusFound, "/editor/login")
		c.Abort()
	}
}

// visitLoggingMiddleware logs page views by hashed IP, honouring Do Not Track.
func visitLoggingMiddleware(a *editorAuth) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/videos/") ||
			strings.HasPrefix(path, "/media/") ||
			strings.HasPrefix(path, "/editor/") ||
			strings.HasPrefix(path, "/api/") ||
			strings.HasPrefix(path, "/favicon") {
			c.Next()
			return
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		log.Printf("visit %s %s", a.hashIP(c.ClientIP()), path)
		c.Next()
	}
}

func setupEditorRoutes(r *gin.Engine, a *editorAuth) {
	r.GET("/editor/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "editor-login.html", gin.H{
			"Title": "Editor Login",
		})
	})

	r.POST("/editor/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		if a.locked() && a.checkCredentials(username, password) {
			c.SetCookie(editorCookie, a.token, 3600*24, "/", "", false, true)
			log.Printf("Editor login successful from %s", a.hashIP(c.ClientIP()))
			c.Redirect(http.StatusFound, "/")
			return
		}

		log.Printf("Failed editor login attempt from %s", a.hashIP(c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "editor-login.html", gin.H{
			"Title": "Editor Login",
			"Error": "Invalid credentials",
		})
	})

	r.GET("/editor/logout", func(c *gin.Context) {
		c.SetCookie(editorCookie, "", -1, "/", "", false, true)
		log.Printf("Editor logout from %s", a.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/")
	})
}
