package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Davincible/cryptocore/pkg/conv"
	"github.com/Davincible/cryptocore/pkg/secure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type RandomResult struct {
	Length int    `json:"length"`
	Hex    string `json:"hex"`
}

func NewRandomCommand() *cobra.Command {
	var (
		length     int
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate cryptographically random bytes as hex",
		Example: `  # A 32-byte random value
  cryptocore random --length 32`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := secure.SecureRandom(length)
			if err != nil {
				return fmt.Errorf("failed to generate random bytes: %w", err)
			}

			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(RandomResult{
					Length: length,
					Hex:    conv.BytesToHex(b),
				})
			}
			color.Green("%s", conv.BytesToHex(b))
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", loadConfig().Defaults.RandomLength, "Number of random bytes")
	cmd.Flags().BoolVarP(&outputJSON, "json", "j", false, "Output in JSON format")
	return cmd
}
