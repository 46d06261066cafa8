package config

import (
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gym_page_auditor/internal/domain/adaptors"
	"gym_page_auditor/internal/pkg/errors"
	"gym_page_auditor/internal/pkg/worker_pool"
	"gym_page_auditor/internal/service/criteria"

	"github.com/joho/godotenv"
)

// EnvFile is read before the process environment. It is optional.
const EnvFile = `config.env`

const (
	DefaultSitemapURL     = `https://www.nuffieldhealth.com/sitemap.xml`
	DefaultMetricsHost    = `:9090`
	DefaultPprofHost      = `:6060`
	DefaultOutputDir      = `public`
	DefaultRequestTimeout = 20 * time.Second
)

type AppConfig struct {
	LogLevel    string
	DebugMode   bool
	MetricsHost string
	PprofHost   string
	Audit       AuditConfig
}

type AuditConfig struct {
	SitemapURL         string
	Concurrency        int
	UserAgent          string
	RequestTimeout     time.Duration
	OutputDir          string
	RulesFile          string
	FacilitiesStrategy string
}

// LoadEnv loads files into the environment without overriding variables already set. Missing
// files are skipped.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Wrap(err, `failed to load `+f)
		}
	}
	return nil
}

func NewAppConfig() (*AppConfig, error) {
	if err := LoadEnv(EnvFile); err != nil {
		return nil, err
	}

	var problems []string
	cfg := AppConfig{
		LogLevel:    getenv("APP_LOG_LEVEL", string(adaptors.Info)),
		DebugMode:   os.Getenv("APP_ENABLE_DEBUG") == "true",
		MetricsHost: getenv("HTTP_APP_METRICS_HOST", DefaultMetricsHost),
		PprofHost:   getenv("HTTP_APP_PPROF_HOST", DefaultPprofHost),
		Audit: AuditConfig{
			SitemapURL:         getenv("AUDIT_SITEMAP_URL", DefaultSitemapURL),
			UserAgent:          os.Getenv("AUDIT_USER_AGENT"),
			OutputDir:          getenv("AUDIT_OUTPUT_DIR", DefaultOutputDir),
			RulesFile:          os.Getenv("AUDIT_RULES_FILE"),
			FacilitiesStrategy: getenv("AUDIT_FACILITIES_STRATEGY", criteria.StrategyOpen),
		},
	}

	cfg.Audit.Concurrency = worker_pool.DefaultWorkers
	if v := os.Getenv("AUDIT_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			problems = append(problems, `AUDIT_CONCURRENCY: `+err.Error())
		}
		cfg.Audit.Concurrency = n
	}

	cfg.Audit.RequestTimeout = DefaultRequestTimeout
	if v := os.Getenv("AUDIT_REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			problems = append(problems, `AUDIT_REQUEST_TIMEOUT: `+err.Error())
		}
		cfg.Audit.RequestTimeout = d
	}

	if len(problems) > 0 {
		return nil, errors.Errorf(`validation failed: %s`, strings.Join(problems, "\n"))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid field at once. It is rerun after CLI flags are applied.
func (cfg *AppConfig) Validate() error {
	var errMsg []string
	if !adaptors.LogLevel(cfg.LogLevel).Valid() {
		errMsg = append(errMsg, `log level is invalid: `+cfg.LogLevel)
	}
	if cfg.MetricsHost == "" {
		errMsg = append(errMsg, `metrics host is empty`)
	}
	if cfg.Audit.SitemapURL == "" {
		errMsg = append(errMsg, `sitemap url is empty`)
	}
	if cfg.Audit.Concurrency < 1 {
		errMsg = append(errMsg, `concurrency must be at least 1`)
	}
	if cfg.Audit.RequestTimeout <= 0 {
		errMsg = append(errMsg, `request timeout must be positive`)
	}
	if cfg.Audit.OutputDir == "" {
		errMsg = append(errMsg, `output dir is empty`)
	}
	switch cfg.Audit.FacilitiesStrategy {
	case criteria.StrategyOpen, criteria.StrategyCore:
	default:
		errMsg = append(errMsg, `facilities strategy must be "open" or "core": `+cfg.Audit.FacilitiesStrategy)
	}

	if len(errMsg) != 0 {
		return errors.Errorf(`validation failed: %s`, strings.Join(errMsg, "\n"))
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
