package readme

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"

	"github.com/interviewqs/qbank/internal/progress"
	"github.com/interviewqs/qbank/internal/questions"
)

var testNames = questions.TagNames{"css": "CSS", "html": "HTML", "javascript": "JavaScript"}

func TestBuildSingleQuestion(t *testing.T) {
	b := NewBuilder(Fragments{Start: "# Start", End: "The end"}, testNames)
	doc := b.Build([]questions.Question{{
		Question:   "Q1",
		Answer:     "A1",
		Tags:       []string{"css"},
		GoodToHear: []string{"x"},
		Links:      []string{"y"},
	}})

	assert.Equal(t, 1, strings.Count(doc, "\n### CSS"))
	assert.Equal(t, 1, strings.Count(doc, "* [Q1](#q-1)"))
	assert.Equal(t, 1, strings.Count(doc, "<summary>View answer</summary>"))
	assert.Equal(t, 1, strings.Count(doc, `<a name="q-1"></a>`))

	block := doc[strings.Index(doc, "<summary>View answer</summary>"):]
	block = block[:strings.Index(block, "</details>")]
	assert.Contains(t, block, "A1")
	assert.Contains(t, block, "* x")
	assert.Contains(t, block, "* y")

	assert.True(t, strings.HasPrefix(doc, "# Start\n"))
	assert.True(t, strings.HasSuffix(doc, "\nThe end\n"))
}

func TestBuildExactLayout(t *testing.T) {
	b := NewBuilder(Fragments{Start: "S", End: "E"}, testNames)
	doc := b.Build([]questions.Question{{
		Question:   "Q1",
		Answer:     "A1",
		Tags:       []string{"css"},
		GoodToHear: []string{"x"},
		Links:      []string{"y"},
	}})

	want := "S\n" +
		"\n### CSS" +
		"\n\n<details>\n<summary>View content</summary>\n\n* [Q1](#q-1)\n</details>\n\n" +
		"\n---\n" +
		"\n\n<a name=\"q-1\"></a>" +
		"\n\n<details>\n<summary>View answer</summary>\n" +
		"A1\n\n\n#### Good to hear\n\n\n* x\n\n\n##### Additional links\n\n\n* y" +
		"\n</details>\n\n" +
		"\n\n<br>[⬆ Back to top](#table-of-contents)\n\n" +
		"\nE\n"
	assert.Equal(t, want, doc)
}

func TestBuildQuestionAppearsOncePerTag(t *testing.T) {
	qs := []questions.Question{
		{Question: "Box model", Answer: "ans-box", Tags: []string{"css", "html"}},
		{Question: "Closures", Answer: "ans-closure", Tags: []string{"javascript"}},
		{Question: "Semantic markup", Answer: "ans-semantic", Tags: []string{"html"}},
		{Question: "Untagged", Answer: "ans-untagged"},
	}

	doc := NewBuilder(Fragments{}, testNames).Build(qs)

	for _, q := range qs {
		entry := "* [" + q.Question + "](#" + q.Anchor() + ")"
		assert.Equal(t, len(q.Tags), strings.Count(doc, entry), "TOC entries for %q", q.Question)
		assert.Equal(t, len(q.Tags), strings.Count(doc, q.Answer), "answer blocks for %q", q.Question)
	}
	assert.Equal(t, 4, strings.Count(doc, "<summary>View answer</summary>"))
	assert.Equal(t, 4, strings.Count(doc, "[⬆ Back to top](#table-of-contents)"))
}

func TestBuildTOCFollowsGroupOrder(t *testing.T) {
	qs := []questions.Question{
		{Question: "First HTML", Tags: []string{"html"}},
		{Question: "First CSS", Tags: []string{"css"}},
		{Question: "Second HTML", Tags: []string{"html"}},
		{Question: "Unknown tag", Tags: []string{"graphql"}},
	}

	doc := NewBuilder(Fragments{}, testNames).Build(qs)

	// Tags appear in first-seen order, unknown tags fall back to the identifier.
	htmlAt := strings.Index(doc, "### HTML")
	cssAt := strings.Index(doc, "### CSS")
	gqlAt := strings.Index(doc, "### graphql")
	require.True(t, htmlAt >= 0 && cssAt >= 0 && gqlAt >= 0)
	assert.Less(t, htmlAt, cssAt)
	assert.Less(t, cssAt, gqlAt)

	htmlTOC := doc[htmlAt:cssAt]
	assert.Less(t, strings.Index(htmlTOC, "First HTML"), strings.Index(htmlTOC, "Second HTML"))

	// Answer blocks come after the divider in the same order.
	body := doc[strings.Index(doc, "\n---\n"):]
	first := strings.Index(body, `name="first-html"`)
	second := strings.Index(body, `name="second-html"`)
	css := strings.Index(body, `name="first-css"`)
	assert.Less(t, first, second)
	assert.Less(t, second, css)
}

func TestBuildIsDeterministic(t *testing.T) {
	qs := []questions.Question{
		{Question: "What is CSS?", Tags: []string{"css", "html"}, GoodToHear: []string{"a"}},
		{Question: "XMLHttpRequest", Tags: []string{"javascript"}},
	}
	b := NewBuilder(Fragments{Start: "s", End: "e"}, testNames)
	assert.Equal(t, b.Build(qs), b.Build(qs))
}

func TestNewBuilderDefaults(t *testing.T) {
	b := NewBuilder(Fragments{}, testNames)
	require.NotNil(t, b.Logger)
	assert.False(t, b.Logger.Core().Enabled(zapcore.ErrorLevel), "default logger should discard output")
	assert.Equal(t, progress.Reporter(progress.Silent{}), b.Progress)
}

func TestBuildReportsProgress(t *testing.T) {
	var rep recordingReporter
	b := NewBuilder(Fragments{}, testNames)
	b.Progress = &rep
	b.Logger = zaptest.NewLogger(t)

	b.Build([]questions.Question{
		{Question: "A", Tags: []string{"css", "html"}},
		{Question: "B", Tags: []string{"css"}},
	})

	assert.Equal(t, 3, rep.total)
	assert.Equal(t, []string{"css: A", "css: B", "html: A"}, rep.messages)
	assert.True(t, rep.finished)
}

func TestWriteFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "docs", "README.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(out), 0o755))
	require.NoError(t, os.WriteFile(out, []byte(strings.Repeat("stale ", 1000)), 0o644))

	b := NewBuilder(Fragments{Start: "start", End: "end"}, testNames)
	qs := []questions.Question{{Question: "Q1", Answer: "A1", Tags: []string{"css"}}}
	require.NoError(t, b.WriteFile(out, qs))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, b.Build(qs), string(data))
	assert.NotContains(t, string(data), "stale")
}

func TestWriteFileCreatesParentDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "README.md")
	b := NewBuilder(Fragments{}, testNames)
	require.NoError(t, b.WriteFile(out, nil))
	_, err := os.Stat(out)
	assert.NoError(t, err)
}

func TestWriteFileFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory in place of the output file cannot be written.
	out := filepath.Join(dir, "README.md")
	require.NoError(t, os.Mkdir(out, 0o755))

	err := NewBuilder(Fragments{}, testNames).WriteFile(out, nil)
	assert.Error(t, err)
}

func TestReadFragments(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, StartFragment), []byte("# Title\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, EndFragment), []byte("bye"), 0o644))

	f, err := ReadFragments(dir)
	require.NoError(t, err)
	assert.Equal(t, "# Title\n", f.Start)
	assert.Equal(t, "bye", f.End)
}

func TestReadFragmentsMissing(t *testing.T) {
	for _, present := range []string{StartFragment, EndFragment, ""} {
		dir := t.TempDir()
		if present != "" {
			require.NoError(t, os.WriteFile(filepath.Join(dir, present), []byte("x"), 0o644))
		}
		_, err := ReadFragments(dir)
		require.Error(t, err, "only %q present", present)
		assert.True(t, errors.Is(err, ErrFragment))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	}
}

type recordingReporter struct {
	total    int
	messages []string
	finished bool
}

func (r *recordingReporter) Start(total int)          { r.total = total }
func (r *recordingReporter) Update(_ int, msg string) { r.messages = append(r.messages, msg) }
func (r *recordingReporter) Finish()                  { r.finished = true }

var _ progress.Reporter = (*recordingReporter)(nil)
