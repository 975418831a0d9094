package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Davincible/cryptocore/internal/cli"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "cryptocore",
		Short: "Bit-level and multi-precision primitives for cipher work",
		Long: `Cryptocore exposes the primitive operations cipher and hash
implementations are built from: hex and byte-sequence conversion, block
padding schemes, Galois-Field multiplication, bit-granular packing, and
constant-time comparison.

The commands operate on hex-encoded byte sequences so results can be piped
between invocations and compared against test vectors.`,
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
	}

	rootCmd.AddCommand(
		cli.NewHexCommand(),
		cli.NewPadCommand(),
		cli.NewUnpadCommand(),
		cli.NewGFMulCommand(),
		cli.NewBitsCommand(),
		cli.NewSBoxCommand(),
		cli.NewCompareCommand(),
		cli.NewDigestCommand(),
		cli.NewRandomCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
