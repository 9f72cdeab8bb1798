package questions

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Groups maps each tag to the questions carrying it. Tags iterate in the
// order they were first seen; questions keep their input order per tag.
type Groups struct {
	m *orderedmap.OrderedMap[string, []Question]
}

// Group buckets questions by tag. A tag repeated on one question counts once.
func Group(qs []Question) *Groups {
	g := &Groups{m: orderedmap.New[string, []Question]()}
	for _, q := range qs {
		seen := make(map[string]bool, len(q.Tags))
		for _, tag := range q.Tags {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			list, _ := g.m.Get(tag)
			g.m.Set(tag, append(list, q))
		}
	}
	return g
}

// Tags returns the tags in first-insertion order.
func (g *Groups) Tags() []string {
	tags := make([]string, 0, g.m.Len())
	for pair := g.m.Oldest(); pair != nil; pair = pair.Next() {
		tags = append(tags, pair.Key)
	}
	return tags
}

// Questions returns the questions grouped under tag.
func (g *Groups) Questions(tag string) []Question {
	qs, _ := g.m.Get(tag)
	return qs
}

// Len returns the number of tags.
func (g *Groups) Len() int {
	return g.m.Len()
}

// Entries returns the total number of (tag, question) pairs.
func (g *Groups) Entries() int {
	n := 0
	for pair := g.m.Oldest(); pair != nil; pair = pair.Next() {
		n += len(pair.Value)
	}
	return n
}
