package main

import (
	"html/template"

	"github.com/ronu450/portfolio/internal/contact"
)

var (
	OwnerName = "Ronu Skariah"

	HeroRoles = []string{"Full Stack Developer", "Designer", "Creative Thinker"}

	HeroIntro = `I'm a passionate developer with expertise in building beautiful and
	functional web applications. I love turning complex problems into
	simple, elegant solutions.`

	AboutMe = `I'm a developer who believes in the power of technology to transform ideas into reality.
	With years of experience in web development, I specialize in creating innovative solutions
	that make a difference.`

	AboutFeatures = []Feature{
		{Title: "Clean Code", Description: "Writing maintainable and scalable code is my priority", Color: "primary"},
		{Title: "Creative Design", Description: "Crafting beautiful user experiences that delight users", Color: "secondary"},
		{Title: "Fast Performance", Description: "Optimizing for speed and efficiency in every project", Color: "accent"},
		{Title: "Collaboration", Description: "Working effectively with teams to achieve great results", Color: "primary"},
	}

	ContactInfo = []contact.Info{
		{Label: "Email", Value: "ronu0623@gmail.com", Href: "mailto:ronu0623@gmail.com"},
		{Label: "Phone", Value: "+1 (555) 123-4567", Href: "tel:+15551234567"},
		{Label: "Location", Value: "Dublin, Ireland"},
	}

	SocialLinks = []contact.SocialLink{
		{Label: "GitHub", Href: "https://github.com/Ronu450"},
		{Label: "LinkedIn", Href: "https://www.linkedin.com/in/ronu-skariah"},
		{Label: "Twitter", Href: "https://twitter.com/yourusername"},
	}

	// Shown in place of gallery images that fail to load.
	ImageFallback = template.URL("data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iODgiIGhlaWdodD0iODgiIHhtbG5zPSJodHRwOi8vd3d3LnczLm9yZy8yMDAwL3N2ZyIgc3Ryb2tlPSIjMDAwIiBzdHJva2UtbGluZWpvaW49InJvdW5kIiBvcGFjaXR5PSIuMyIgZmlsbD0ibm9uZSIgc3Ryb2tlLXdpZHRoPSIzLjciPjxyZWN0IHg9IjE2IiB5PSIxNiIgd2lkdGg9IjU2IiBoZWlnaHQ9IjU2IiByeD0iNiIvPjxwYXRoIGQ9Im0xNiA1OCAxNi0xOCAzMiAzMiIvPjxjaXJjbGUgY3g9IjUzIiBjeT0iMzUiIHI9IjciLz48L3N2Zz4KCg==")
)

type Feature struct {
	Title       string
	Description string
	Color       string
}
