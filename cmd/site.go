package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/interviewqs/qbank/internal/questions"
	"github.com/interviewqs/qbank/internal/site"
	"github.com/interviewqs/qbank/internal/ui"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Generate the interactive question browser",
	Long:  `Renders a static HTML question browser with tag filter buttons. With --serve, a local server keeps the filter state and applies button clicks.`,
	RunE:  runSite,
}

func init() {
	siteCmd.Flags().Bool("serve", false, "start a local HTTP server after generating")
	siteCmd.Flags().Int("port", 8080, "port for the local server")
	siteCmd.Flags().String("output", "", "override output directory (defaults to site_dir)")
	siteCmd.Flags().String("filter", questions.AllTag, "initial tag filter")
	siteCmd.Flags().String("title", "Interview Questions", "page title")
	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.SiteDir
	}
	title, _ := cmd.Flags().GetString("title")
	filter, _ := cmd.Flags().GetString("filter")

	qs, err := loadQuestions(cfg)
	if err != nil {
		return fmt.Errorf("loading questions: %w", err)
	}

	if !knownFilter(qs, filter) {
		return fmt.Errorf("unknown filter %q", filter)
	}

	generator, err := site.NewGenerator(outputDir, title, questions.TagNames(cfg.TagNames))
	if err != nil {
		return err
	}

	store := ui.NewStore()
	store.SetFilter(filter)

	count, err := generator.Generate(qs, store.State())
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}
	fmt.Printf("Question browser generated: %s (%d questions)\n", outputDir, count)

	serve, _ := cmd.Flags().GetBool("serve")
	if !serve {
		return nil
	}

	port, _ := cmd.Flags().GetInt("port")
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving at http://localhost:%d — press Ctrl+C to stop\n", port)
	server := site.NewServer(generator, qs, store, logger)
	if err := server.ListenAndServe(ctx, fmt.Sprintf(":%d", port)); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return fmt.Errorf("serving site: %w", err)
	}
	return nil
}

// knownFilter reports whether filter is "all" or a tag carried by some question.
func knownFilter(qs []questions.Question, filter string) bool {
	if filter == questions.AllTag {
		return true
	}
	for _, tag := range questions.Group(qs).Tags() {
		if tag == filter {
			return true
		}
	}
	return false
}
