// Package questions holds the question bank model: loading question records
// from JSON or markdown, grouping them by tag and deriving their anchors.
package questions

// Question is one FAQ-style entry in the question bank.
type Question struct {
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Tags       []string `json:"tags"`
	GoodToHear []string `json:"goodToHear"`
	Links      []string `json:"links"`
}

// HasTag reports whether q carries tag.
func (q Question) HasTag(tag string) bool {
	for _, t := range q.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Anchor returns the README anchor for the question.
func (q Question) Anchor() string {
	return Slug(q.Question)
}

// TagNames maps a tag identifier to its display name.
type TagNames map[string]string

// Display returns the display name for tag, or the tag itself when no name
// is registered.
func (n TagNames) Display(tag string) string {
	if name, ok := n[tag]; ok && name != "" {
		return name
	}
	return tag
}

// FilterByTag returns the questions carrying tag, in input order. The
// special tag "all" returns every question.
func FilterByTag(qs []Question, tag string) []Question {
	if tag == "" || tag == AllTag {
		return qs
	}
	var out []Question
	for _, q := range qs {
		if q.HasTag(tag) {
			out = append(out, q)
		}
	}
	return out
}

// AllTag is the pseudo-tag meaning "no filter".
const AllTag = "all"
