// Package cli is the gym-audit command line: run an audit, serve the HTTP API, print the rules.
package cli

import (
	"fmt"
	"os"

	"gym_page_auditor/internal/adaptors"
	"gym_page_auditor/internal/application/config"
	"gym_page_auditor/internal/application/rules"
	"gym_page_auditor/internal/pkg/worker_pool"
	"gym_page_auditor/internal/service"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewRootCmd(logger *log.Logger, cfg *config.AppConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gym-audit",
		Short: "Audit gym landing pages for facilities, imagery, join routes and copy",
		Long: `gym-audit reads a sitemap, fetches every gym landing page it lists and scores each
page on facility coverage, imagery, the online join route and the club description.
Results are written as JSON, CSV, HTML and Markdown.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newRunCmd(logger, cfg))
	cmd.AddCommand(newServeCmd(logger, cfg))
	cmd.AddCommand(newRulesCmd(logger, cfg))

	return cmd
}

func Execute(logger *log.Logger, cfg *config.AppConfig) {
	if err := NewRootCmd(logger, cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadRules(cfg *config.AppConfig) (*rules.Rules, error) {
	if cfg.Audit.RulesFile != "" {
		return rules.Load(cfg.Audit.RulesFile)
	}
	return rules.Default()
}

// newAuditor assembles the audit pipeline from configuration.
func newAuditor(logger *log.Logger, cfg *config.AppConfig) (*service.Auditor, error) {
	r, err := loadRules(cfg)
	if err != nil {
		return nil, err
	}
	assessor, err := service.NewAssessor(logger, r, cfg.Audit.FacilitiesStrategy)
	if err != nil {
		return nil, err
	}

	webClient := adaptors.NewWebClient(cfg.Audit.RequestTimeout, cfg.Audit.UserAgent, logger)
	return service.NewAuditor(
		logger,
		webClient,
		service.NewDiscoverer(logger, webClient, &r.Discovery),
		assessor,
		worker_pool.NewWorkerPool(cfg.Audit.Concurrency, logger),
	), nil
}
