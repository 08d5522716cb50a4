// Package projects holds the showcase entries rendered on the home page.
package projects

import "html/template"

// Project is one showcase entry. LiveLink and GitHubLink are optional.
type Project struct {
	Title        string
	Description  string
	Image        string
	Bullets      []string
	Technologies []string
	LiveLink     string
	GitHubLink   string
}

// Badge is a technology tag with its icon.
type Badge struct {
	Name string
	Icon template.HTML
}

// Card is a Project ready for the template.
type Card struct {
	Project
	Badges []Badge
}

// HasLinks reports whether the card needs a link row.
func (c Card) HasLinks() bool {
	return c.LiveLink != "" || c.GitHubLink != ""
}

// Cards pairs every technology tag with its icon, keeping catalog order.
func Cards(list []Project) []Card {
	cards := make([]Card, 0, len(list))
	for _, p := range list {
		badges := make([]Badge, 0, len(p.Technologies))
		for _, tech := range p.Technologies {
			badges = append(badges, Badge{Name: tech, Icon: Icon(tech)})
		}
		cards = append(cards, Card{Project: p, Badges: badges})
	}
	return cards
}

// Catalog is the project list shown on the site.
var Catalog = []Project{
	{
		Title:       "Mail TUI",
		Description: "A terminal email client with fuzzy finding over folders and threads.",
		Image:       "/images/mail-tui.png",
		Bullets: []string{
			"IMAP sync with per-folder fuzzy search",
			"Keyboard driven compose and reply",
		},
		Technologies: []string{"Go", "Bubble Tea", "IMAP"},
		GitHubLink:   "https://github.com/Zachkp/mail-tui",
	},
	{
		Title:       "Music Stream",
		Description: "Command line YouTube Music player with a queue view and playback controls.",
		Image:       "/images/music-stream.png",
		Bullets: []string{
			"Search and queue tracks without leaving the terminal",
			"Streams through yt-dlp into mpv",
		},
		Technologies: []string{"Go", "mpv"},
		GitHubLink:   "https://github.com/Zachkp/music-stream",
	},
	{
		Title:       "Game Recommender",
		Description: "Content based game recommendations using TF-IDF vectors and cosine similarity.",
		Image:       "/images/game-recommender.png",
		Bullets: []string{
			"Interactive charts of the review corpus",
			"Filters by rating and review count",
		},
		Technologies: []string{"Python", "JavaScript", "HTML", "CSS"},
		LiveLink:     "https://games.zach.dev",
	},
	{
		Title:       "Portfolio",
		Description: "This site: server rendered pages with HTMX partials and a relayed contact form.",
		Image:       "/images/portfolio.png",
		Bullets: []string{
			"Per-session contact form state held on the server",
			"Privacy-conscious visitor counts kept in memory",
		},
		Technologies: []string{"Go", "HTMX", "Tailwind CSS", "SQLite"},
		LiveLink:     "https://zach.dev",
		GitHubLink:   "https://github.com/Zachkp/folio",
	},
}
