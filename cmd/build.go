package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/interviewqs/qbank/internal/progress"
	"github.com/interviewqs/qbank/internal/questions"
	"github.com/interviewqs/qbank/internal/readme"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the README from the question bank",
	Long: `Reads the static README fragments and the question bank, groups questions
by tag and writes the README with a table of contents per tag followed by
every answer. The output file is overwritten.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "override the README output path")
	buildCmd.Flags().Bool("no-progress", false, "disable the progress bar")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = cfg.Output
	}

	qs, err := loadQuestions(cfg)
	if err != nil {
		return fmt.Errorf("loading questions: %w", err)
	}
	logger.Debug("questions loaded", zap.Int("count", len(qs)))

	fragments, err := readme.ReadFragments(cfg.StaticPartsDir)
	if err != nil {
		logger.Error("static part loading failed", zap.String("dir", cfg.StaticPartsDir), zap.Error(err))
		return fmt.Errorf("during static part loading: %w", err)
	}

	builder := readme.NewBuilder(fragments, questions.TagNames(cfg.TagNames))
	builder.Logger = logger
	if noProgress, _ := cmd.Flags().GetBool("no-progress"); !noProgress {
		builder.Progress = progress.NewReporter("Building README")
	}

	if err := builder.WriteFile(output, qs); err != nil {
		logger.Error("README generation failed", zap.Error(err))
		return fmt.Errorf("during README generation: %w", err)
	}

	fmt.Fprintf(os.Stdout, "SUCCESS! README file generated: %s\n", output)
	fmt.Fprintf(os.Stdout, "Builder: %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}
