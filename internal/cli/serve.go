package cli

import (
	"os/signal"
	"syscall"

	"gym_page_auditor/internal/application/config"
	apphttp "gym_page_auditor/internal/http"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCmd(logger *log.Logger, cfg *config.AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the audit API until interrupted",
		Long: `Serve exposes POST /audit, GET /report, /report.json and /report.csv, plus
/ready. Metrics are served on the metrics host; pprof only when debug is enabled.`,
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
			return apphttp.Serve(ctx, logger, cfg, auditor)
		},
	}
}
