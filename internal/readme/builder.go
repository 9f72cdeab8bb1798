// Package readme assembles the question bank README: static fragments
// wrapped around per-tag tables of contents and collapsible answers.
package readme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/interviewqs/qbank/internal/logging"
	"github.com/interviewqs/qbank/internal/progress"
	"github.com/interviewqs/qbank/internal/questions"
)

const backToTop = "\n\n<br>[⬆ Back to top](#table-of-contents)\n\n"

// Builder renders questions into the README document.
type Builder struct {
	Fragments Fragments
	TagNames  questions.TagNames
	Progress  progress.Reporter
	Logger    *zap.Logger
}

// NewBuilder creates a Builder with silent progress and a no-op logger.
func NewBuilder(fragments Fragments, names questions.TagNames) *Builder {
	return &Builder{
		Fragments: fragments,
		TagNames:  names,
		Progress:  progress.Silent{},
		Logger:    logging.Nop(),
	}
}

// Build returns the full README: start fragment, one table of contents per
// tag, a divider, every answer block grouped by tag, and the end fragment.
func (b *Builder) Build(qs []questions.Question) string {
	groups := questions.Group(qs)

	var out strings.Builder
	out.WriteString(b.Fragments.Start + "\n")

	for _, tag := range groups.Tags() {
		tagged := groups.Questions(tag)
		b.Logger.Debug("writing table of contents",
			zap.String("tag", tag),
			zap.Int("questions", len(tagged)),
		)
		out.WriteString(heading(3, b.TagNames.Display(tag)))
		out.WriteString(detailsTOC("View content", tagged))
	}

	out.WriteString("\n---\n")

	b.Progress.Start(groups.Entries())
	n := 0
	for _, tag := range groups.Tags() {
		for _, q := range groups.Questions(tag) {
			n++
			b.Progress.Update(n, tag+": "+q.Question)
			out.WriteString(detailsQuestion("View answer", q))
			out.WriteString(backToTop)
		}
	}
	b.Progress.Finish()

	out.WriteString("\n" + b.Fragments.End + "\n")
	return out.String()
}

// WriteFile builds the README and writes it to path, replacing any
// existing content.
func (b *Builder) WriteFile(path string, qs []questions.Question) error {
	doc := b.Build(qs)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	b.Logger.Info("README written",
		zap.String("path", path),
		zap.Int("questions", len(qs)),
		zap.Int("bytes", len(doc)),
	)
	return nil
}

func heading(level int, text string) string {
	return "\n" + strings.Repeat("#", level) + " " + text
}

func bullets(items []string) string {
	lines := make([]string, len(items))
	for i, s := range items {
		lines[i] = "* " + s
	}
	return strings.Join(lines, "\n")
}

func detailsTOC(title string, qs []questions.Question) string {
	links := make([]string, len(qs))
	for i, q := range qs {
		links[i] = fmt.Sprintf("* [%s](#%s)", q.Question, q.Anchor())
	}
	return "\n\n<details>\n<summary>" + title + "</summary>\n\n" +
		strings.Join(links, "\n") + "\n</details>\n\n"
}

// detailsQuestion renders the collapsible answer for q. The preceding named
// anchor is the target of the table of contents link.
func detailsQuestion(title string, q questions.Question) string {
	var answer strings.Builder
	answer.WriteString(q.Answer)
	answer.WriteString("\n\n" + heading(4, "Good to hear") + "\n\n")
	answer.WriteString("\n" + bullets(q.GoodToHear))
	answer.WriteString("\n\n" + heading(5, "Additional links") + "\n\n")
	answer.WriteString("\n" + bullets(q.Links))

	return fmt.Sprintf("\n\n<a name=%q></a>", q.Anchor()) +
		"\n\n<details>\n<summary>" + title + "</summary>\n" +
		answer.String() + "\n</details>\n\n"
}
