package config

// DefaultTagNames maps the tag identifiers used in the question bank to the
// headings shown in the README.
var DefaultTagNames = map[string]string{
	"javascript":    "JavaScript",
	"css":           "CSS",
	"html":          "HTML",
	"node":          "Node",
	"security":      "Security",
	"accessibility": "Accessibility",
	"react":         "React",
}

// DefaultQuestionGlobs are the patterns used to find question files when
// questions_dir is set.
var DefaultQuestionGlobs = []string{"**/*.md"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	names := make(map[string]string, len(DefaultTagNames))
	for k, v := range DefaultTagNames {
		names[k] = v
	}
	return &Config{
		Questions:      "data/questions.json",
		QuestionsGlob:  append([]string(nil), DefaultQuestionGlobs...),
		StaticPartsDir: "static-parts",
		Output:         "README.md",
		SiteDir:        "website",
		TagNames:       names,
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatConsole,
		},
	}
}
