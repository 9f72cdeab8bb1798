package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectQuestionSource looks in the current directory for a known question
// bank layout and returns suggested values for questions and questions_dir.
func detectQuestionSource() (jsonPath, dir string) {
	if _, err := os.Stat("data/questions.json"); err == nil {
		return "data/questions.json", ""
	}
	if info, err := os.Stat("questions"); err == nil && info.IsDir() {
		return "", "questions"
	}
	return "data/questions.json", ""
}

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to qbank! Let's configure your question bank.")
	fmt.Println()

	cfg := DefaultConfig()
	defaultJSON, defaultDir := detectQuestionSource()

	// 1. Question source.
	sourcePrompt := promptui.Select{
		Label: "Where are the questions stored",
		Items: []string{
			"json     — a single JSON document",
			"markdown — one markdown file per question",
		},
	}
	if defaultDir != "" {
		sourcePrompt.CursorPos = 1
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source selection: %w", err)
	}

	if sourceIdx == 0 {
		p := promptui.Prompt{Label: "Questions JSON file", Default: defaultJSON}
		if cfg.Questions, err = p.Run(); err != nil {
			return nil, fmt.Errorf("questions file: %w", err)
		}
	} else {
		if defaultDir == "" {
			defaultDir = "questions"
		}
		p := promptui.Prompt{Label: "Questions directory", Default: defaultDir}
		if cfg.QuestionsDir, err = p.Run(); err != nil {
			return nil, fmt.Errorf("questions directory: %w", err)
		}
		g := promptui.Prompt{Label: "Question file patterns (comma-separated globs)", Default: strings.Join(DefaultQuestionGlobs, ",")}
		globs, err := g.Run()
		if err != nil {
			return nil, fmt.Errorf("question patterns: %w", err)
		}
		cfg.QuestionsGlob = splitAndTrim(globs)
	}

	// 2. Static parts.
	partsPrompt := promptui.Prompt{Label: "Directory holding README-start.md and README-end.md", Default: cfg.StaticPartsDir}
	if cfg.StaticPartsDir, err = partsPrompt.Run(); err != nil {
		return nil, fmt.Errorf("static parts dir: %w", err)
	}

	// 3. Output.
	outputPrompt := promptui.Prompt{Label: "README output path", Default: cfg.Output}
	if cfg.Output, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output path: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and drops empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
