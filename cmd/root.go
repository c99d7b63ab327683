package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/medassist/medassist_backend/cmd/http"
	systemcmd "github.com/medassist/medassist_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "medassist",
	Short: "MedAssist medical appointment brokerage platform.",
	Long: `MedAssist is the backend of a medical appointment brokerage platform.
Agents register patient intakes, confirmateurs work the pending queue, partner
clinics upload quote documents, and staff release quotes to patients, with
role-scoped realtime dashboards on top.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
