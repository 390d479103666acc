package cmd

import (
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/config"
	"github.com/spf13/cobra"
)

type funcFlag func(cmd *cobra.Command)

// seedFlags converts seed flags that were set by the user into config
// options.
func seedFlags() []funcFlag {
	return []funcFlag{
		forceFlag, parentFlag, jobsFlag, noProgressFlag, metricsFlag,
	}
}

func forceFlag(cmd *cobra.Command) {
	b, _ := cmd.Flags().GetBool("force")
	if b {
		opts = append(opts, config.OptImportForce(true))
	}
}

func parentFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("parent") {
		return
	}
	s, _ := cmd.Flags().GetString("parent")
	opts = append(opts, config.OptImportParent(s))
}

func jobsFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("jobs") {
		return
	}
	i, _ := cmd.Flags().GetInt("jobs")
	opts = append(opts, config.OptJobsNumber(i))
}

func noProgressFlag(cmd *cobra.Command) {
	b, _ := cmd.Flags().GetBool("no-progress")
	if b {
		opts = append(opts, config.OptImportWithProgress(false))
	}
}

func metricsFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("metrics-file") {
		return
	}
	s, _ := cmd.Flags().GetString("metrics-file")
	opts = append(opts, config.OptImportMetricsFile(s))
}
