package portfolio

import (
	"github.com/ronu450/portfolio/internal/contact"
	"github.com/ronu450/portfolio/internal/hero"
	"github.com/ronu450/portfolio/internal/section"
)

// Site owns the state of every section. Sections never reach into each
// other; the only thing they share is the id source.
type Site struct {
	Hero       *hero.Settings
	Experience *ExperienceSection
	Education  *EducationSection
	Stories    *StorySection
	Gallery    *GallerySection
	Contact    *contact.Form
}

func NewSite(content Content, h *hero.Settings, ids *section.IDSource) *Site {
	if ids == nil {
		ids = section.NewIDSource(nil)
	}
	return &Site{
		Hero:       h,
		Experience: section.New("experience", section.Append, ids, content.Experience),
		Education:  section.New("education", section.Append, ids, content.Education),
		Stories:    section.New("stories", section.Prepend, ids, content.Stories),
		Gallery:    section.New("gallery", section.Append, ids, content.Gallery),
		Contact:    contact.NewForm(),
	}
}

// Close releases resources held by the hero banner.
func (s *Site) Close() {
	if s.Hero != nil {
		s.Hero.Close()
	}
}
