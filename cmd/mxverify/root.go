package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/avolkov/mxverify/internal/config"
	"github.com/avolkov/mxverify/internal/dns"
	"github.com/avolkov/mxverify/internal/logger"
	"github.com/avolkov/mxverify/internal/verifier"
)

var (
	cfgDir string

	cfg *config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mxverify",
	Short: "mxverify checks whether email domains can receive mail",
	Long: `mxverify validates batches of email addresses by looking up MX records
for each unique domain. It runs either as a one-shot file check or as a
small REST API server.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		log = logger.NewFromConfig(logger.LoggingConfig{
			Level:     cfg.Logging.Level,
			Output:    cfg.Logging.Output,
			FilePath:  cfg.Logging.FilePath,
			MaxSizeMB: cfg.Logging.MaxSizeMB,
			MaxFiles:  cfg.Logging.MaxFiles,
		})
		return nil
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "config", "directory containing config.yaml")
}

// newVerifier builds the validation engine from the loaded configuration.
func newVerifier() *verifier.Verifier {
	resolver := dns.NewResolver(dns.Config{
		Nameservers: cfg.Checker.Nameservers,
		Timeout:     cfg.Checker.DNSTimeout,
	})
	return verifier.New(resolver, cfg.Checker.Concurrency, log)
}
