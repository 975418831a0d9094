package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Davincible/cryptocore/pkg/conv"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type SBoxResult struct {
	Length int    `json:"length"`
	Hex    string `json:"hex"`
}

func NewSBoxCommand() *cobra.Command {
	var (
		length     int
		fromFile   string
		entries    bool
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "sbox [definition]",
		Short: "Parse and validate an S-box or P-box table definition",
		Long: `Parse an S-box definition into a byte table of the expected length.

The definition is either a hex string (two digits per entry) or, with
--entries, a comma-separated list of values in the hex notations found in
cipher literature: 0x63, 63h, $63 or 16#63#.`,
		Args: cobra.MaximumNArgs(1),
		Example: `  # Validate a 4-entry table given as hex
  cryptocore sbox --length 4 637c777b

  # The same table as literature-style constants
  cryptocore sbox --length 4 --entries "0x63,7Ch,\$77,16#7B#"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			switch {
			case fromFile != "":
				raw, err := os.ReadFile(fromFile)
				if err != nil {
					return fmt.Errorf("failed to read definition file: %w", err)
				}
				input = strings.TrimSpace(string(raw))
			case len(args) == 1:
				input = args[0]
			default:
				return fmt.Errorf("provide a definition argument or --file")
			}

			var def any = input
			if entries {
				parts := strings.Split(input, ",")
				list := make([]string, 0, len(parts))
				for _, p := range parts {
					list = append(list, strings.TrimSpace(p))
				}
				def = list
			}

			box, err := conv.ParseSBox(def, length)
			if err != nil {
				return fmt.Errorf("invalid s-box: %w", err)
			}

			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(SBoxResult{
					Length: len(box),
					Hex:    conv.BytesToHex(box),
				})
			}
			color.Green("valid %d-entry table", len(box))
			fmt.Println(conv.BytesToHex(box))
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", 256, "Expected number of entries")
	cmd.Flags().StringVarP(&fromFile, "file", "f", "", "Read the definition from a file")
	cmd.Flags().BoolVarP(&entries, "entries", "e", false, "Definition is a comma-separated entry list")
	cmd.Flags().BoolVarP(&outputJSON, "json", "j", false, "Output in JSON format")
	return cmd
}
