// Package ui renders the question browser widgets. Components are pure
// functions of their props and an explicitly passed State; interaction goes
// through the Actions interface.
package ui

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/interviewqs/qbank/internal/questions"
)

// FilterButton shows an icon and narrows the browser to one tag.
type FilterButton struct {
	Type string
	Icon string
}

var filterButtonTmpl = template.Must(template.New("filter-button").Parse(
	`<button type="submit" name="type" value="{{ .Type }}" class="{{ .Class }}" data-tooltip="{{ .Tooltip }}">` +
		`{{ range .Children }}{{ . }}{{ end }}<i>{{ .Icon }}</i></button>`))

// Class returns the button's class list for state.
func (b FilterButton) Class(state State) string {
	classes := []string{"btn", "FilterButton", "is-" + b.Type}
	if state.Filter == b.Type {
		classes = append(classes, "is-active")
	}
	if b.Type == questions.AllTag {
		classes = append(classes, "is-all")
	}
	return strings.Join(classes, " ")
}

// Tooltip returns the hover text for the button.
func (b FilterButton) Tooltip() string {
	if b.Type == questions.AllTag {
		return "No filter"
	}
	return fmt.Sprintf("Display only %s questions", b.Type)
}

// Render returns the button markup. children are placed before the icon.
func (b FilterButton) Render(state State, children ...template.HTML) (template.HTML, error) {
	icon, err := Icon(b.Icon, "btn__icon")
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	err = filterButtonTmpl.Execute(&buf, struct {
		Type     string
		Class    string
		Tooltip  string
		Children []template.HTML
		Icon     template.HTML
	}{
		Type:     b.Type,
		Class:    b.Class(state),
		Tooltip:  b.Tooltip(),
		Children: children,
		Icon:     icon,
	})
	if err != nil {
		return "", fmt.Errorf("rendering filter button %s: %w", b.Type, err)
	}
	return template.HTML(buf.String()), nil
}

// Click applies the button's filter.
func (b FilterButton) Click(actions Actions) {
	actions.SetFilter(b.Type)
}

// FilterBar returns the "all" button followed by one button per tag.
func FilterBar(tags []string) []FilterButton {
	buttons := []FilterButton{{Type: questions.AllTag, Icon: IconFor(questions.AllTag)}}
	for _, tag := range tags {
		buttons = append(buttons, FilterButton{Type: tag, Icon: IconFor(tag)})
	}
	return buttons
}
