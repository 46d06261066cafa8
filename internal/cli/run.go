package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"gym_page_auditor/internal/application/config"
	"gym_page_auditor/internal/domain/models"
	"gym_page_auditor/internal/report"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRunCmd(logger *log.Logger, cfg *config.AppConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Audit every gym page in the sitemap and write the reports",
		Long: `Run discovers the gym landing pages in the sitemap, audits them and writes
gyms.json, gyms.csv, index.html and summary.md to the output directory.

Nothing is written when the sitemap cannot be read.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			auditor, err := newAuditor(logger, cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			result, err := auditor.Run(ctx, cfg.Audit.SitemapURL)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			sink := report.NewFileSink(cfg.Audit.OutputDir, logger)
			if err := sink.WriteAll(result); err != nil {
				return err
			}
			printSummary(cmd, result, sink.Dir())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Audit.SitemapURL, "sitemap", cfg.Audit.SitemapURL, "Sitemap URL to read gym pages from")
	flags.StringVar(&cfg.Audit.OutputDir, "out", cfg.Audit.OutputDir, "Directory the reports are written to")
	flags.IntVar(&cfg.Audit.Concurrency, "concurrency", cfg.Audit.Concurrency, "Number of pages fetched at once")
	flags.StringVar(&cfg.Audit.FacilitiesStrategy, "strategy", cfg.Audit.FacilitiesStrategy, `Facilities check: "open" or "core"`)

	return cmd
}

func printSummary(cmd *cobra.Command, r *models.Report, dir string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Audited %d of %d candidate pages (%d skipped), reports in %s\n",
		r.IncludedCount, r.CandidateCount, len(r.Skipped), dir)
	fmt.Fprintf(out, "Fix priority: %d high, %d medium, %d low\n",
		r.Summary.FixPriority[models.FixPriorityHigh],
		r.Summary.FixPriority[models.FixPriorityMedium],
		r.Summary.FixPriority[models.FixPriorityLow])
}
