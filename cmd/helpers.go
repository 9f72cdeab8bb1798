package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/interviewqs/qbank/internal/config"
	"github.com/interviewqs/qbank/internal/logging"
	"github.com/interviewqs/qbank/internal/questions"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `qbank init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the zap logger for cfg; --verbose forces debug level.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(level, string(cfg.Log.Format))
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return logger, nil
}

// loadQuestions reads the question bank from the configured source.
func loadQuestions(cfg *config.Config) ([]questions.Question, error) {
	if cfg.UsesMarkdownDir() {
		return questions.LoadMarkdownDir(cfg.QuestionsDir, cfg.QuestionsGlob)
	}
	return questions.LoadJSON(cfg.Questions)
}
