// Package portfolio defines the records shown on the site and the root state
// that owns every section.
package portfolio

import (
	"time"

	"github.com/ronu450/portfolio/internal/section"
)

type Experience struct {
	Title       string `form:"title" json:"title" yaml:"title"`
	Company     string `form:"company" json:"company" yaml:"company"`
	Period      string `form:"period" json:"period" yaml:"period"`
	Description string `form:"description" json:"description" yaml:"description"`
}

type Education struct {
	Degree      string `form:"degree" json:"degree" yaml:"degree"`
	Institution string `form:"institution" json:"institution" yaml:"institution"`
	Period      string `form:"period" json:"period" yaml:"period"`
	Description string `form:"description" json:"description" yaml:"description"`
}

// Story is a dated blog-like post. Date uses the YYYY-MM-DD form.
type Story struct {
	Title    string `form:"title" json:"title" yaml:"title"`
	Date     string `form:"date" json:"date" yaml:"date"`
	Category string `form:"category" json:"category" yaml:"category"`
	Content  string `form:"content" json:"content" yaml:"content"`
}

type GalleryItem struct {
	Title       string `form:"title" json:"title" yaml:"title"`
	ImageURL    string `form:"imageUrl" json:"imageUrl" yaml:"imageUrl"`
	Description string `form:"description" json:"description" yaml:"description"`
}

const storyDateLayout = "2006-01-02"

// NewStoryDraft is the blank story form, dated today.
func NewStoryDraft(now time.Time) Story {
	return Story{Date: now.Format(storyDateLayout)}
}

// FormatStoryDate renders 2024-01-15 as "January 15, 2024". Dates that do not
// parse are returned unchanged.
func FormatStoryDate(date string) string {
	t, err := time.Parse(storyDateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}

type (
	ExperienceSection = section.Section[Experience]
	EducationSection  = section.Section[Education]
	StorySection      = section.Section[Story]
	GallerySection    = section.Section[GalleryItem]
)
