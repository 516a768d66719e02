// main.go - CLI Interface and Entry Point
//
// Adapted from the teacher's main.go (a flag-driven phase runner); rebuilt
// on cobra/viper subcommands and devlog structured logging in the manner of
// kgiusti-go-fdo-server's cmd/root.go, since a hashing primitive with an
// arena lifecycle, a worker-spawning demo, and a KAT-backed selftest needs
// more surface than flag.Bool switches comfortably express.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"hermannm.dev/devlog"
)

var logLevel slog.LevelVar

var rootCmd = &cobra.Command{
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Use:   "earworm",
	Short: "Earworm memory-hard password hashing function",
	Long: `earworm drives the Earworm PHF: arena construction, the
memory-hard PHS mixing loop, and PBKDF2-SHA256 pre/post key stretching.

Every subcommand that touches PHS first builds the process-wide arena; the
arena exponent is a persistent flag shared across subcommands.`,
}

func init() {
	slog.SetDefault(slog.New(devlog.NewHandler(os.Stdout, &devlog.Options{
		Level: &logLevel,
	})))

	rootCmd.PersistentFlags().Bool("debug", false, "print debug-level logs")
	rootCmd.PersistentFlags().Int("arena-exponent", 20, "log2 of the arena size in bytes")

	rootCmd.AddCommand(selftestCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(infoCmd)
}

func bindPersistentFlags(cmd *cobra.Command) error {
	if err := viper.BindPFlag("debug", cmd.Flags().Lookup("debug")); err != nil {
		return err
	}
	if err := viper.BindPFlag("arena-exponent", cmd.Flags().Lookup("arena-exponent")); err != nil {
		return err
	}
	if viper.GetBool("debug") {
		logLevel.Set(slog.LevelDebug)
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called by main once the program starts.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
