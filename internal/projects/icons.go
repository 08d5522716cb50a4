package projects

import "html/template"

const iconClass = `width="12" height="12" viewBox="0 0 24 24" class="w-3 h-3 md:w-4 md:h-4"`

// Built once at init and only ever read.
var techIcons = map[string]template.HTML{
	"HTML":         svg("#E34F26", `<path d="M1.5 0h21l-1.91 21.563L11.977 24l-8.564-2.438L1.5 0zm7.031 9.75l-.232-2.718 10.059.003.23-2.622L5.412 4.41l.698 8.01h9.126l-.326 3.426-2.91.804-2.955-.81-.188-2.11H6.248l.33 4.171L12 19.351l5.379-1.443.744-8.157H8.531z"/>`),
	"CSS":          svg("#1572B6", `<path d="M1.5 0h21l-1.91 21.563L11.977 24l-8.565-2.438L1.5 0zm17.09 4.413L5.41 4.41l.213 2.622 10.125.002-.255 2.716h-6.64l.24 2.573h6.182l-.366 3.523-2.91.804-2.956-.81-.188-2.11h-2.61l.29 3.855L12 19.288l5.373-1.53L18.59 4.414v-.001z"/>`),
	"JavaScript":   svg("#F7DF1E", `<path d="M0 0h24v24H0V0zm13.051 11.031h-2.248c0 1.938-.009 3.864-.009 5.805 0 1.232.063 2.363-.138 2.711-.33.689-1.18.601-1.566.48-.396-.196-.597-.466-.83-.855l-1.952 1.125c.305.63.75 1.172 1.324 1.517.855.51 2.004.675 3.207.405.783-.226 1.458-.691 1.811-1.411.51-.93.402-2.07.397-3.346.012-2.054 0-4.109 0-6.179z"/>`),
	"Tailwind CSS": svg("#06B6D4", `<path d="M12.001 4.8c-3.2 0-5.2 1.6-6 4.8 1.2-1.6 2.6-2.2 4.2-1.8.913.228 1.565.89 2.288 1.624C13.666 10.618 15.027 12 18.001 12c3.2 0 5.2-1.6 6-4.8-1.2 1.6-2.6 2.2-4.2 1.8-.913-.228-1.565-.89-2.288-1.624C16.337 6.182 14.976 4.8 12.001 4.8zm-6 7.2c-3.2 0-5.2 1.6-6 4.8 1.2-1.6 2.6-2.2 4.2-1.8.913.228 1.565.89 2.288 1.624 1.177 1.194 2.538 2.576 5.512 2.576 3.2 0 5.2-1.6 6-4.8-1.2 1.6-2.6 2.2-4.2 1.8-.913-.228-1.565-.89-2.288-1.624C10.337 13.382 8.976 12 6.001 12z"/>`),
	"Firebase":     svg("#FFCA28", `<path d="M3.89 15.672L6.255.461A.542.542 0 017.27.288l2.543 4.771zm16.794 3.692l-2.25-14a.54.54 0 00-.919-.295L3.316 19.365l7.856 4.427a1.621 1.621 0 001.588 0zM14.3 7.147l-1.82-3.482a.542.542 0 00-.96 0L3.53 17.984z"/>`),
	"React":        svg("#61DAFB", `<circle cx="12" cy="12" r="2.2"/><path fill="none" stroke="#61DAFB" d="M12 7.5c5.5 0 10 2 10 4.5s-4.5 4.5-10 4.5S2 14.5 2 12s4.5-4.5 10-4.5z"/>`),
	"Go":           svg("#00ADD8", `<path d="M1.811 10.231c-.047 0-.058-.023-.035-.059l.246-.315c.023-.035.081-.058.128-.058h4.172c.046 0 .058.035.035.07l-.199.303c-.023.036-.082.07-.117.07zM.047 11.306c-.047 0-.059-.023-.035-.058l.245-.316c.023-.035.082-.058.129-.058h5.328c.047 0 .07.035.058.07l-.093.28c-.012.047-.058.07-.105.07zm2.828 1.075c-.047 0-.059-.035-.035-.07l.163-.292c.023-.035.07-.07.117-.07h2.337c.047 0 .07.035.07.082l-.023.28c0 .047-.047.082-.082.082z"/>`),
	"HTMX":         svg("#3366CC", `<path d="M8.5 3 2 12l6.5 9h3L5 12l6.5-9zm7 0h-3L19 12l-6.5 9h3L22 12z"/>`),
	"SQLite":       svg("#003B57", `<path d="M4 3h12l4 4v14H4zm2 2v14h12V8h-3V5z"/>`),
}

var defaultIcon = svg("currentColor", `<path d="M12 2C6.48 2 2 6.48 2 12s4.48 10 10 10 10-4.48 10-10S17.52 2 12 2zm0 18c-4.41 0-8-3.59-8-8s3.59-8 8-8 8 3.59 8 8-3.59 8-8 8z"/><path d="M11 7h2v6h-2zm0 8h2v2h-2z"/>`)

func svg(fill, paths string) template.HTML {
	return template.HTML(`<svg ` + iconClass + ` fill="` + fill + `">` + paths + `</svg>`)
}

// Icon returns the badge icon for a technology tag, or a generic icon when
// the tag is not known.
func Icon(tech string) template.HTML {
	if icon, ok := techIcons[tech]; ok {
		return icon
	}
	return defaultIcon
}

// known reports whether tech has its own icon.
func known(tech string) bool {
	_, ok := techIcons[tech]
	return ok
}
