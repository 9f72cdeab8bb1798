package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/interviewqs/qbank/internal/questions"
	"github.com/interviewqs/qbank/internal/ui"
)

// Generator renders the question browser: a filter bar plus one collapsible
// card per question.
type Generator struct {
	OutputDir string
	Title     string
	TagNames  questions.TagNames

	md   goldmark.Markdown
	tmpl *template.Template
}

// NewGenerator creates a Generator writing into outputDir.
func NewGenerator(outputDir, title string, names questions.TagNames) (*Generator, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return &Generator{
		OutputDir: outputDir,
		Title:     title,
		TagNames:  names,
		md:        md,
		tmpl:      tmpl,
	}, nil
}

type tagLabel struct {
	ID   string
	Name string
}

type card struct {
	Question string
	Anchor   string
	Tags     []tagLabel
	Body     template.HTML
}

// pageData holds the data passed to the page template.
type pageData struct {
	Title      string
	Filter     string
	FilterName string
	Buttons    []template.HTML
	Cards      []card
}

// Render writes the browser page for qs under the given state.
func (g *Generator) Render(w io.Writer, qs []questions.Question, state ui.State) error {
	if state.Filter == "" {
		state.Filter = questions.AllTag
	}
	groups := questions.Group(qs)

	data := pageData{
		Title:      g.Title,
		Filter:     state.Filter,
		FilterName: g.TagNames.Display(state.Filter),
	}

	for _, b := range ui.FilterBar(groups.Tags()) {
		label := "All"
		if b.Type != questions.AllTag {
			label = g.TagNames.Display(b.Type)
		}
		btn, err := b.Render(state, template.HTML(template.HTMLEscapeString(label)))
		if err != nil {
			return err
		}
		data.Buttons = append(data.Buttons, btn)
	}

	for _, q := range questions.FilterByTag(qs, state.Filter) {
		c, err := g.card(q)
		if err != nil {
			return fmt.Errorf("rendering %q: %w", q.Question, err)
		}
		data.Cards = append(data.Cards, c)
	}

	return g.tmpl.Execute(w, data)
}

// Generate writes index.html, style.css, script.js and the questions.json
// search index into OutputDir.
// It returns the number of question cards on the page.
func (g *Generator) Generate(qs []questions.Question, state ui.State) (int, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return 0, err
	}
	if err := WriteSearchIndex(BuildSearchIndex(qs), filepath.Join(g.OutputDir, "questions.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	var buf bytes.Buffer
	if err := g.Render(&buf, qs, state); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "index.html"), buf.Bytes(), 0o644); err != nil {
		return 0, err
	}
	return len(questions.FilterByTag(qs, state.Filter)), nil
}

func (g *Generator) card(q questions.Question) (card, error) {
	var buf bytes.Buffer
	if err := g.md.Convert([]byte(answerMarkdown(q)), &buf); err != nil {
		return card{}, fmt.Errorf("converting markdown: %w", err)
	}
	c := card{
		Question: q.Question,
		Anchor:   q.Anchor(),
		Body:     template.HTML(buf.String()),
	}
	for _, tag := range q.Tags {
		c.Tags = append(c.Tags, tagLabel{ID: tag, Name: g.TagNames.Display(tag)})
	}
	return c, nil
}

// answerMarkdown lays out the answer with its supplementary lists, omitting
// empty sections.
func answerMarkdown(q questions.Question) string {
	var b strings.Builder
	b.WriteString(q.Answer)
	if len(q.GoodToHear) > 0 {
		b.WriteString("\n\n#### Good to hear\n\n")
		for _, s := range q.GoodToHear {
			b.WriteString("* " + s + "\n")
		}
	}
	if len(q.Links) > 0 {
		b.WriteString("\n\n##### Additional links\n\n")
		for _, s := range q.Links {
			b.WriteString("* " + s + "\n")
		}
	}
	return b.String()
}
