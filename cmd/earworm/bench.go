// bench.go times a single PHS call at caller-supplied cost parameters,
// adapted from the teacher's benchmarkPhase3SHA3 in main.go.
package main

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"earworm"
)

var (
	benchTCost  uint32
	benchMCost  uint32
	benchOutlen uint32
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time a single PHS call at the given cost parameters",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bindPersistentFlags(cmd); err != nil {
			return err
		}

		exponent := viper.GetInt("arena-exponent")
		slog.Info("building arena", "exponent", exponent)
		start := time.Now()
		if err := earworm.InitializeArena(exponent); err != nil {
			return err
		}
		slog.Info("arena ready", "build_time", time.Since(start))
		defer func() { _ = earworm.TeardownArena() }()

		secret := make([]byte, 16)
		salt := make([]byte, 16)
		if _, err := rand.Read(secret); err != nil {
			return err
		}
		if _, err := rand.Read(salt); err != nil {
			return err
		}

		out := make([]byte, benchOutlen)
		start = time.Now()
		if err := earworm.PHS(out, secret, salt, benchTCost, benchMCost); err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Printf("t_cost=%d m_cost=%d outlen=%d arena_exponent=%d elapsed=%s\n",
			benchTCost, benchMCost, benchOutlen, exponent, elapsed)
		return nil
	},
}

func init() {
	benchCmd.Flags().Uint32Var(&benchTCost, "t-cost", 10000, "memory-probing round count")
	benchCmd.Flags().Uint32Var(&benchMCost, "m-cost", 16, "log2 of arena blocks addressable per lane index")
	benchCmd.Flags().Uint32Var(&benchOutlen, "outlen", 32, "output length in bytes")
}
