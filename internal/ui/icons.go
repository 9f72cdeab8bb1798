package ui

import (
	"fmt"
	"html/template"
	"strings"
)

// feather icon bodies (https://feathericons.com), drawn on a 24x24 stroke grid.
var icons = map[string]string{
	"list":      `<line x1="8" y1="6" x2="21" y2="6"></line><line x1="8" y1="12" x2="21" y2="12"></line><line x1="8" y1="18" x2="21" y2="18"></line><line x1="3" y1="6" x2="3.01" y2="6"></line><line x1="3" y1="12" x2="3.01" y2="12"></line><line x1="3" y1="18" x2="3.01" y2="18"></line>`,
	"code":      `<polyline points="16 18 22 12 16 6"></polyline><polyline points="8 6 2 12 8 18"></polyline>`,
	"layout":    `<rect x="3" y="3" width="18" height="18" rx="2" ry="2"></rect><line x1="3" y1="9" x2="21" y2="9"></line><line x1="9" y1="21" x2="9" y2="9"></line>`,
	"file-text": `<path d="M14 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V8z"></path><polyline points="14 2 14 8 20 8"></polyline><line x1="16" y1="13" x2="8" y2="13"></line><line x1="16" y1="17" x2="8" y2="17"></line><polyline points="10 9 9 9 8 9"></polyline>`,
	"server":    `<rect x="2" y="2" width="20" height="8" rx="2" ry="2"></rect><rect x="2" y="14" width="20" height="8" rx="2" ry="2"></rect><line x1="6" y1="6" x2="6.01" y2="6"></line><line x1="6" y1="18" x2="6.01" y2="18"></line>`,
	"shield":    `<path d="M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10z"></path>`,
	"eye":       `<path d="M1 12s4-8 11-8 11 8 11 8-4 8-11 8-11-8-11-8z"></path><circle cx="12" cy="12" r="3"></circle>`,
	"atom":      `<circle cx="12" cy="12" r="1"></circle><path d="M20.2 20.2c2.04-2.03.02-7.36-4.5-11.9-4.52-4.52-9.85-6.54-11.88-4.5-2.04 2.03-.02 7.36 4.5 11.9 4.52 4.52 9.85 6.54 11.88 4.5z"></path><path d="M15.7 15.7c4.52-4.54 6.54-9.87 4.5-11.9-2.03-2.04-7.36-.02-11.9 4.5-4.52 4.54-6.54 9.87-4.5 11.9 2.03 2.04 7.36.02 11.9-4.5z"></path>`,
}

// TagIcons maps question tags to the icon shown on their filter button.
var TagIcons = map[string]string{
	"all":           "list",
	"javascript":    "code",
	"css":           "layout",
	"html":          "file-text",
	"node":          "server",
	"security":      "shield",
	"accessibility": "eye",
	"react":         "atom",
}

// IconFor returns the icon name for tag, defaulting to "list".
func IconFor(tag string) string {
	if name, ok := TagIcons[tag]; ok {
		return name
	}
	return "list"
}

// Icon renders the named icon as an inline SVG carrying the given classes.
func Icon(name string, classes ...string) (template.HTML, error) {
	body, ok := icons[name]
	if !ok {
		return "", fmt.Errorf("unknown icon %q", name)
	}
	class := strings.Join(append([]string{"feather", "feather-" + name}, classes...), " ")
	svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" class="%s">%s</svg>`,
		template.HTMLEscapeString(class), body)
	return template.HTML(svg), nil
}
