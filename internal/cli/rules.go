package cli

import (
	"gym_page_auditor/internal/application/config"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRulesCmd(logger *log.Logger, cfg *config.AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the effective rules as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := loadRules(cfg)
			if err != nil {
				return err
			}
			out, err := r.Marshal()
			if err != nil {
				return err
			}
			logger.WithField("rules_file", cfg.Audit.RulesFile).Debug(`printing rules`)
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
