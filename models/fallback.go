package models

import "github.com/google/uuid"

func strPtr(s string) *string { return &s }

// FallbackProjects returns the built-in sample catalog served whenever the
// projects table is empty or unreachable, so the public listing never renders
// blank. IDs are fixed so repeated calls stay stable for clients.
func FallbackProjects() []*Project {
	fallback := []*Project{
		{
			ID:          uuid.MustParse("6f1f0a42-0001-4c6e-9d52-a1b1c1d1e101"),
			Title:       "AstrodevIoT Platform",
			Description: "Integrated IoT monitoring platform for weather, water/air quality, and power management with Telegram bot integration.",
			Category:    "IoT",
			DemoURL:     strPtr("https://iot.astrodev.cloud"),
			Featured:    true,
		},
		{
			ID:          uuid.MustParse("6f1f0a42-0002-4c6e-9d52-a1b1c1d1e102"),
			Title:       "E-Commerce Dashboard",
			Description: "Full-featured admin dashboard for e-commerce with real-time analytics, inventory management, and order tracking.",
			Category:    "Web App",
			DemoURL:     strPtr("#"),
			GithubURL:   strPtr("#"),
		},
		{
			ID:          uuid.MustParse("6f1f0a42-0003-4c6e-9d52-a1b1c1d1e103"),
			Title:       "Smart Home Controller",
			Description: "Mobile-responsive web app to control smart home devices with voice commands and automation rules.",
			Category:    "IoT",
			GithubURL:   strPtr("#"),
		},
		{
			ID:          uuid.MustParse("6f1f0a42-0004-4c6e-9d52-a1b1c1d1e104"),
			Title:       "Weather Station API",
			Description: "RESTful API for weather data collection and analysis with historical data and predictions.",
			Category:    "API",
			GithubURL:   strPtr("#"),
		},
	}

	tags := [][]string{
		{"React", "Supabase", "ESP32", "MQTT", "Telegram Bot"},
		{"Next.js", "TypeScript", "PostgreSQL", "Recharts"},
		{"React", "Node.js", "WebSocket", "Arduino"},
		{"Python", "FastAPI", "PostgreSQL", "Docker"},
	}
	for i, project := range fallback {
		project.DisplayOrder = i + 1
		for _, value := range tags[i] {
			project.Tags = append(project.Tags, ProjectTag{ProjectID: project.ID, Value: value})
		}
	}
	return fallback
}
