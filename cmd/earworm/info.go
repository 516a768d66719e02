// info.go reports the arena lifecycle state, the AES hardware dispatch
// path, and cumulative invocation counters. Adapted from the teacher's
// printSummary/compliance-report.go reporting style.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"earworm"
	"earworm/internal/aescore"
	"earworm/internal/metrics"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Report arena lifecycle, hardware dispatch path, and call counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bindPersistentFlags(cmd); err != nil {
			return err
		}

		current, history := earworm.Lifecycle()
		fmt.Printf("arena state:      %s\n", current)
		fmt.Printf("arena transitions: %v\n", history)
		fmt.Printf("aes hardware path: %s\n", aescore.DetectHardwarePath())
		fmt.Printf("configured arena exponent: %d\n", viper.GetInt("arena-exponent"))

		snap := metrics.Read()
		fmt.Printf("initialize calls:  %d (errors: %d)\n", snap.InitializeCalls, snap.InitializeErrors)
		fmt.Printf("phs calls:         %d (errors: %d)\n", snap.PHSCalls, snap.PHSErrors)
		fmt.Printf("teardown calls:    %d (errors: %d)\n", snap.TeardownCalls, snap.TeardownErrors)
		return nil
	},
}
