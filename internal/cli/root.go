package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bryanwahyu/scamshield/internal/bootstrap"
	"github.com/bryanwahyu/scamshield/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "scamshield",
	Short: "Check messages and screenshots for scam and phishing signs",
	Long: `scamshield sends a message to the scam classifier, prints the risk
assessment with the flagged phrases marked, and keeps a searchable history
of every scan.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to config.yaml (default $CONFIG_PATH or ./config.yaml)")
	rootCmd.AddCommand(scanCmd, historyCmd, versionCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}
	return nil
}

func configPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p
	}
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "config.yaml"
}

// openApp loads config and wires the services; callers must Close the app.
func openApp(cmd *cobra.Command) (*bootstrap.App, error) {
	cfg, err := config.Load(configPath(cmd))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return bootstrap.New(cmd.Context(), cfg)
}
