package site

import (
	"encoding/json"
	"io"
	"os"

	"github.com/interviewqs/qbank/internal/questions"
)

// SearchEntry is one question in the client-side search index.
type SearchEntry struct {
	Anchor   string   `json:"anchor"`
	Question string   `json:"question"`
	Tags     []string `json:"tags"`
	Summary  string   `json:"summary"`
}

const summaryLen = 200

// BuildSearchIndex returns one entry per question in input order.
func BuildSearchIndex(qs []questions.Question) []SearchEntry {
	entries := make([]SearchEntry, 0, len(qs))
	for _, q := range qs {
		summary := []rune(q.Answer)
		if len(summary) > summaryLen {
			summary = append(summary[:summaryLen], '…')
		}
		entries = append(entries, SearchEntry{
			Anchor:   q.Anchor(),
			Question: q.Question,
			Tags:     q.Tags,
			Summary:  string(summary),
		})
	}
	return entries
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
