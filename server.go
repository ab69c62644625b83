package main

import (
	"embed"
	"html/template"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ronu450/portfolio/internal/config"
	"github.com/ronu450/portfolio/internal/contact"
	"github.com/ronu450/portfolio/internal/media"
	"github.com/ronu450/portfolio/internal/nav"
	"github.com/ronu450/portfolio/internal/portfolio"
	"github.com/ronu450/portfolio/internal/section"
)

//go:embed templates/*.html
var templatesFS embed.FS

// App ties the site state to the HTTP surface.
type App struct {
	cfg   config.Config
	site  *portfolio.Site
	media *media.Store
	auth  *editorAuth
	now   func() time.Time
}

func newTemplates() *template.Template {
	funcs := template.FuncMap{
		"storyDate": portfolio.FormatStoryDate,
		"markdown":  portfolio.RenderMarkdown,
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"))
}

func newRouter(app *App) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(newTemplates())
	r.MaxMultipartMemory = app.cfg.MaxUploadBytes

	r.Static("/static", app.cfg.StaticDir)
	r.Static("/videos", app.cfg.VideosDir)
	r.Use(visitLoggingMiddleware(app.auth))

	setupEditorRoutes(r, app.auth)
	edit := app.auth.middleware()

	// Full page, home unless ?section= names another one
	r.GET("/", func(c *gin.Context) {
		state := nav.New()
		if id := c.Query("section"); id != "" {
			state.Select(id)
		}
		c.HTML(http.StatusOK, "index.html", app.sectionData(c, state))
	})

	// HTMX section swap; plain requests get the whole page
	r.GET("/section/:id", func(c *gin.Context) {
		state := nav.New()
		if !state.Select(c.Param("id")) {
			c.HTML(http.StatusNotFound, "not-found", gin.H{"What": "section"})
			return
		}
		data := app.sectionData(c, state)
		if c.GetHeader("HX-Request") != "true" {
			c.HTML(http.StatusOK, "index.html", data)
			return
		}
		data["OOB"] = true
		c.HTML(http.StatusOK, "section-fragment", data)
	})

	r.GET("/nav", func(c *gin.Context) {
		state := nav.New()
		state.Select(c.Query("active"))
		state.MobileMenuOpen, _ = strconv.ParseBool(c.Query("open"))
		if c.Query("toggle") != "" {
			state.ToggleMobileMenu()
		}
		c.HTML(http.StatusOK, "nav", gin.H{"Nav": state, "Owner": OwnerName})
	})

	registerKind(r, app, edit, nav.Experience, app.site.Experience, func() portfolio.Experience {
		return portfolio.Experience{}
	})
	registerKind(r, app, edit, nav.Education, app.site.Education, func() portfolio.Education {
		return portfolio.Education{}
	})
	registerKind(r, app, edit, nav.Stories, app.site.Stories, func() portfolio.Story {
		return portfolio.NewStoryDraft(app.now())
	})
	registerKind(r, app, edit, nav.Gallery, app.site.Gallery, func() portfolio.GalleryItem {
		return portfolio.GalleryItem{}
	})

	r.GET("/preview/gallery/:id", func(c *gin.Context) {
		item, ok := app.site.Gallery.Get(c.Param("id"))
		if !ok {
			c.HTML(http.StatusNotFound, "not-found", gin.H{"What": "image"})
			return
		}
		c.HTML(http.StatusOK, "gallery-preview", gin.H{
			"Item":     item,
			"Fallback": ImageFallback,
		})
	})

	r.POST("/hero/location", edit, func(c *gin.Context) {
		app.site.Hero.SetLocation(c.Request.Context(), c.PostForm("location"))
		c.HTML(http.StatusOK, "hero", app.heroData(c))
	})

	r.POST("/hero/video", edit, func(c *gin.Context) {
		ref := c.PostForm("video")
		if header, err := c.FormFile("file"); err == nil {
			if header.Size > app.cfg.MaxUploadBytes {
				c.String(http.StatusRequestEntityTooLarge, "video too large")
				return
			}
			f, err := header.Open()
			if err != nil {
				c.String(http.StatusBadRequest, "unreadable upload")
				return
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				c.String(http.StatusBadRequest, "unreadable upload")
				return
			}
			contentType := header.Header.Get("Content-Type")
			if contentType == "" {
				contentType = http.DetectContentType(data)
			}
			ref = app.media.Create(contentType, data)
			log.Printf("Hero video uploaded: %s (%d bytes)", ref, len(data))
		}
		app.site.Hero.SetVideo(c.Request.Context(), ref)
		c.HTML(http.StatusOK, "hero", app.heroData(c))
	})

	r.GET("/media/:ref", func(c *gin.Context) {
		obj, ok := app.media.Get(c.Param("ref"))
		if !ok {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, obj.ContentType, obj.Data)
	})

	// Contact submissions are acknowledged locally; nothing is sent anywhere.
	r.POST("/contact", func(c *gin.Context) {
		var msg contact.Message
		if err := c.ShouldBind(&msg); err != nil {
			log.Printf("Contact form bind: %v", err)
		}
		app.site.Contact.SetDraft(msg)
		notice := app.site.Contact.Submit()
		log.Printf("Contact form submitted by %q", msg.Name)

		state := nav.New()
		state.Select(string(nav.Contact))
		data := app.sectionData(c, state)
		data["Notice"] = notice
		c.HTML(http.StatusOK, "contact", data)
	})

	return r
}

// registerKind wires the list, dialog and JSON routes of one record section.
func registerKind[F any](r *gin.Engine, app *App, edit gin.HandlerFunc, kind nav.Section, s *section.Section[F], blank func() F) {
	name := string(kind)

	renderList := func(c *gin.Context, status int) {
		state := nav.New()
		state.Select(name)
		c.HTML(status, name, app.sectionData(c, state))
	}
	renderDialog := func(c *gin.Context) {
		c.HTML(http.StatusOK, name+"-dialog", gin.H{
			"Kind":   name,
			"Editor": s.Editor(),
		})
	}

	r.GET("/records/"+name, func(c *gin.Context) {
		renderList(c, http.StatusOK)
	})

	r.GET("/api/records/"+name, func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Entries())
	})

	r.GET("/dialog/"+name, edit, func(c *gin.Context) {
		s.OpenCreate(blank())
		renderDialog(c)
	})

	r.GET("/dialog/"+name+"/:id", edit, func(c *gin.Context) {
		if !s.OpenEdit(c.Param("id")) {
			c.HTML(http.StatusNotFound, "not-found", gin.H{"What": name})
			return
		}
		renderDialog(c)
	})

	r.POST("/dialog/"+name+"/close", edit, func(c *gin.Context) {
		s.Cancel()
		c.Data(http.StatusOK, "text/html; charset=utf-8", nil)
	})

	r.POST("/records/"+name, edit, func(c *gin.Context) {
		var draft F
		if err := c.ShouldBind(&draft); err != nil {
			c.String(http.StatusBadRequest, "invalid form: %v", err)
			return
		}

		entry, ok := s.Commit(c.PostForm("id"), draft)
		if !ok {
			c.HTML(http.StatusNotFound, "not-found", gin.H{"What": name})
			return
		}
		log.Printf("%s %s saved by %s", s.Name(), entry.ID, app.auth.hashIP(c.ClientIP()))
		renderList(c, http.StatusOK)
	})

	r.DELETE("/records/"+name+"/:id", edit, func(c *gin.Context) {
		id := c.Param("id")
		if !s.Delete(id) {
			c.HTML(http.StatusNotFound, "not-found", gin.H{"What": name})
			return
		}
		log.Printf("%s %s deleted by %s", s.Name(), id, app.auth.hashIP(c.ClientIP()))
		renderList(c, http.StatusOK)
	})
}

type heroView struct {
	VideoSrc string
	HasVideo bool
	Location string
	Roles    []string
	Intro    string
	CanEdit  bool
}

func (app *App) heroData(c *gin.Context) gin.H {
	return gin.H{"Hero": app.heroView(c), "Owner": OwnerName}
}

func (app *App) heroView(c *gin.Context) heroView {
	video := app.site.Hero.Video()
	src := video
	if media.IsTemporary(video) {
		src = "/media/" + url.PathEscape(video)
	}
	return heroView{
		VideoSrc: src,
		HasVideo: video != "",
		Location: app.site.Hero.Location(),
		Roles:    HeroRoles,
		Intro:    HeroIntro,
		CanEdit:  app.auth.authorized(c),
	}
}

// sectionData builds the template data for the page showing state.Active.
func (app *App) sectionData(c *gin.Context, state *nav.State) gin.H {
	data := gin.H{
		"Nav":      state,
		"Owner":    OwnerName,
		"Kind":     string(state.Active),
		"CanEdit":  app.auth.authorized(c),
		"Locked":   app.auth.locked(),
		"Fallback": ImageFallback,
		"Year":     app.now().Year(),
	}

	switch state.Active {
	case nav.Home:
		data["Hero"] = app.heroView(c)
		data["AboutMe"] = AboutMe
		data["Features"] = AboutFeatures
	case nav.Experience:
		data["Entries"] = app.site.Experience.Entries()
	case nav.Education:
		data["Entries"] = app.site.Education.Entries()
	case nav.Stories:
		data["Entries"] = app.site.Stories.Entries()
	case nav.Gallery:
		data["Entries"] = app.site.Gallery.Entries()
	case nav.Contact:
		data["Draft"] = app.site.Contact.Draft()
		data["ContactInfo"] = ContactInfo
		data["SocialLinks"] = SocialLinks
	}
	return data
}
