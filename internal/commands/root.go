package commands

import (
	"github.com/ppiankov/idlespectre/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	version string
	commit  string
	date    string
)

var rootCmd = &cobra.Command{
	Use:   "idlespectre",
	Short: "idlespectre — idle cloud resource auditor",
	Long: `idlespectre finds provisioned but idle AWS resources: stopped instances and
databases, old unattached volumes, unassociated elastic IPs, unused security
groups and load balancers without target groups.

Each finding carries a flat monthly cost estimate. Every scan writes a CSV
report and sends a summary notification.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Init(verbose)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with injected build info.
func Execute(v, c, d string) error {
	version = v
	commit = c
	date = d
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}
