package portfolio

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ronu450/portfolio/internal/section"
)

// Content is the initial list of records for every section.
type Content struct {
	Experience []section.Entry[Experience]  `yaml:"experience"`
	Education  []section.Entry[Education]   `yaml:"education"`
	Stories    []section.Entry[Story]       `yaml:"stories"`
	Gallery    []section.Entry[GalleryItem] `yaml:"gallery"`
}

func DefaultContent() Content {
	return Content{
		Experience: []section.Entry[Experience]{
			{ID: "1", Fields: Experience{
				Title:       "Senior Developer",
				Company:     "Tech Company",
				Period:      "2022 - Present",
				Description: "Leading development of web applications and mentoring junior developers.",
			}},
			{ID: "2", Fields: Experience{
				Title:       "Full Stack Developer",
				Company:     "Startup Inc",
				Period:      "2020 - 2022",
				Description: "Built and maintained multiple client projects using modern web technologies.",
			}},
		},
		Education: []section.Entry[Education]{
			{ID: "1", Fields: Education{
				Degree:      "Bachelor of Computer Science",
				Institution: "University Name",
				Period:      "2016 - 2020",
				Description: "Focused on software engineering and web development. Graduated with honors.",
			}},
		},
		Stories: []section.Entry[Story]{
			{ID: "1", Fields: Story{
				Title:    "My Journey into Web Development",
				Date:     "2024-01-15",
				Category: "Career",
				Content:  "It all started when I built my first website. The excitement of seeing my code come to life on the screen was indescribable. From that moment, I knew I wanted to pursue a career in web development...",
			}},
			{ID: "2", Fields: Story{
				Title:    "Lessons Learned from My First Big Project",
				Date:     "2024-02-20",
				Category: "Learning",
				Content:  "Working on my first major project taught me invaluable lessons about planning, communication, and perseverance. Here are some key takeaways that shaped my approach to development...",
			}},
		},
		Gallery: []section.Entry[GalleryItem]{
			{ID: "1", Fields: GalleryItem{
				Title:       "Project Screenshot",
				ImageURL:    "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=800",
				Description: "A beautiful web application",
			}},
			{ID: "2", Fields: GalleryItem{
				Title:       "Design Mockup",
				ImageURL:    "https://images.unsplash.com/photo-1507238691740-187a5b1d37b8?w=800",
				Description: "UI/UX design work",
			}},
			{ID: "3", Fields: GalleryItem{
				Title:       "Code Editor",
				ImageURL:    "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?w=800",
				Description: "Clean and organized code",
			}},
		},
	}
}

// LoadContent reads a YAML content file. Sections missing from the file keep
// the built-in records. An empty path returns the defaults.
func LoadContent(path string) (Content, error) {
	content := DefaultContent()
	if path == "" {
		return content, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("read content %s: %w", path, err)
	}
	var file Content
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Content{}, fmt.Errorf("parse content %s: %w", path, err)
	}

	if file.Experience != nil {
		content.Experience = file.Experience
	}
	if file.Education != nil {
		content.Education = file.Education
	}
	if file.Stories != nil {
		content.Stories = file.Stories
	}
	if file.Gallery != nil {
		content.Gallery = file.Gallery
	}
	if err := content.validate(); err != nil {
		return Content{}, fmt.Errorf("content %s: %w", path, err)
	}
	return content, nil
}

func (c Content) validate() error {
	if err := uniqueIDs("experience", c.Experience); err != nil {
		return err
	}
	if err := uniqueIDs("education", c.Education); err != nil {
		return err
	}
	if err := uniqueIDs("stories", c.Stories); err != nil {
		return err
	}
	return uniqueIDs("gallery", c.Gallery)
}

func uniqueIDs[F any](name string, entries []section.Entry[F]) error {
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			return fmt.Errorf("%s: entry without id", name)
		}
		if seen[e.ID] {
			return fmt.Errorf("%s: duplicate id %q", name, e.ID)
		}
		seen[e.ID] = true
	}
	return nil
}
