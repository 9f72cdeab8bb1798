package questions

import (
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// tagsComment matches the tag annotation at the end of a question file:
// <!-- tags: (javascript,css) -->
var tagsComment = regexp.MustCompile(`<!--\s*tags:\s*\(([^)]*)\)\s*-->`)

type section int

const (
	sectionNone section = iota
	sectionAnswer
	sectionGoodToHear
	sectionLinks
)

func sectionFor(title string) section {
	switch strings.ToLower(strings.TrimSpace(title)) {
	case "answer":
		return sectionAnswer
	case "good to hear":
		return sectionGoodToHear
	case "additional links":
		return sectionLinks
	}
	return sectionNone
}

// LoadMarkdownDir reads one question per markdown file under root. Files are
// selected with doublestar patterns relative to root and read in path order.
func LoadMarkdownDir(root string, patterns []string) ([]Question, error) {
	fsys := os.DirFS(root)

	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("matching %q in %s: %w", pattern, root, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	sort.Strings(paths)

	qs := make([]Question, 0, len(paths))
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		q, err := ParseMarkdown(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", p, err)
		}
		qs = append(qs, q)
	}
	return qs, nil
}

// ParseMarkdown extracts a question from a markdown document of the form:
//
//	### Question text
//	#### Answer
//	...
//	#### Good to hear
//	* item
//	##### Additional links
//	* link
//	<!-- tags: (tag1,tag2) -->
func ParseMarkdown(src []byte) (Question, error) {
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var (
		q           Question
		current     = sectionNone
		answerStart = -1
		answerEnd   = -1
	)
	closeAnswer := func(at int) {
		if current == sectionAnswer && answerEnd < 0 {
			answerEnd = at
		}
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if node.Lines().Len() == 0 {
				continue
			}
			seg := node.Lines().At(0)
			title := strings.TrimSpace(string(seg.Value(src)))
			isQuestion := node.Level <= 3 && q.Question == ""
			next := sectionFor(title)
			// Headings other than the section markers belong to the answer body.
			if !isQuestion && next == sectionNone && current == sectionAnswer {
				continue
			}
			closeAnswer(lineStart(src, seg.Start))
			if isQuestion {
				q.Question = title
				current = sectionNone
				continue
			}
			current = next
			if current == sectionAnswer && answerStart < 0 {
				answerStart = lineEnd(src, seg.Stop)
			}
		case *ast.HTMLBlock:
			raw := blockText(node, src)
			m := tagsComment.FindStringSubmatch(raw)
			if m == nil {
				continue
			}
			closeAnswer(htmlBlockStart(node, src))
			current = sectionNone
			q.Tags = parseTags(m[1])
		case *ast.List:
			if current != sectionGoodToHear && current != sectionLinks {
				continue
			}
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				v := listItemText(item, src)
				if v == "" {
					continue
				}
				if current == sectionGoodToHear {
					q.GoodToHear = append(q.GoodToHear, v)
				} else {
					q.Links = append(q.Links, v)
				}
			}
		}
	}

	if q.Question == "" {
		return Question{}, fmt.Errorf("%w: missing question heading", ErrInvalid)
	}
	if answerStart >= 0 {
		if answerEnd < 0 {
			answerEnd = len(src)
		}
		q.Answer = strings.TrimSpace(string(src[answerStart:answerEnd]))
	}
	return q, nil
}

// lineStart returns the offset of the first byte of the line containing pos.
func lineStart(src []byte, pos int) int {
	for pos > 0 && src[pos-1] != '\n' {
		pos--
	}
	return pos
}

// lineEnd returns the offset just past the newline ending the line at pos.
func lineEnd(src []byte, pos int) int {
	for pos < len(src) && src[pos] != '\n' {
		pos++
	}
	if pos < len(src) {
		pos++
	}
	return pos
}

func htmlBlockStart(n *ast.HTMLBlock, src []byte) int {
	if n.Lines().Len() > 0 {
		return lineStart(src, n.Lines().At(0).Start)
	}
	return lineStart(src, n.ClosureLine.Start)
}

func blockText(n *ast.HTMLBlock, src []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	if n.HasClosure() {
		b.Write(n.ClosureLine.Value(src))
	}
	return b.String()
}

func listItemText(item ast.Node, src []byte) string {
	var parts []string
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Type() != ast.TypeBlock || c.Lines() == nil {
			continue
		}
		lines := c.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			if v := strings.TrimSpace(string(seg.Value(src))); v != "" {
				parts = append(parts, v)
			}
		}
	}
	return strings.Join(parts, " ")
}

func parseTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
