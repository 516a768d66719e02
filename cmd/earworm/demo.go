// demo.go spawns a pool of worker goroutines that each hash a distinct
// password through PHS, throttled so the spawn rate never outpaces
// --max-spawn-rate. Adapted from the teacher's example/key-rotation.go
// worker-management style; spawn throttling itself is a CLI-only concern
// (spec.md §6 explicitly scopes thread spawning to the driver, not the
// hard core), hence golang.org/x/time/rate lives here and nowhere else.
package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"earworm"
)

var (
	demoWorkers      int
	demoMaxSpawnRate float64
	demoTCost        uint32
	demoMCost        uint32
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Hash a batch of random passwords across throttled worker goroutines",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bindPersistentFlags(cmd); err != nil {
			return err
		}

		exponent := viper.GetInt("arena-exponent")
		if err := earworm.InitializeArena(exponent); err != nil {
			return err
		}
		defer func() { _ = earworm.TeardownArena() }()

		limiter := rate.NewLimiter(rate.Limit(demoMaxSpawnRate), 1)
		ctx := context.Background()

		var wg sync.WaitGroup
		for i := 0; i < demoWorkers; i++ {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}
			wg.Add(1)
			workerID := uuid.New()
			go func(id uuid.UUID) {
				defer wg.Done()
				runWorker(id, demoTCost, demoMCost)
			}(workerID)
		}
		wg.Wait()
		return nil
	},
}

func runWorker(id uuid.UUID, tCost, mCost uint32) {
	secret := make([]byte, 16)
	salt := make([]byte, 16)
	if _, err := rand.Read(secret); err != nil {
		slog.Error("worker failed to seed secret", "worker", id, "error", err)
		return
	}
	if _, err := rand.Read(salt); err != nil {
		slog.Error("worker failed to seed salt", "worker", id, "error", err)
		return
	}

	out := make([]byte, 32)
	if err := earworm.PHS(out, secret, salt, tCost, mCost); err != nil {
		slog.Error("worker PHS failed", "worker", id, "error", err)
		return
	}
	slog.Info("worker finished", "worker", id, "output", fmt.Sprintf("%x", out))
}

func init() {
	demoCmd.Flags().IntVar(&demoWorkers, "workers", 4, "number of concurrent PHS calls to run")
	demoCmd.Flags().Float64Var(&demoMaxSpawnRate, "max-spawn-rate", 8, "maximum worker-goroutine spawns per second")
	demoCmd.Flags().Uint32Var(&demoTCost, "t-cost", 1000, "memory-probing round count")
	demoCmd.Flags().Uint32Var(&demoMCost, "m-cost", 16, "log2 of arena blocks addressable per lane index")
}
