package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Davincible/cryptocore/pkg/conv"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type HexResult struct {
	Hex   string `json:"hex"`
	Bytes []int  `json:"bytes,omitempty"`
	Text  string `json:"text,omitempty"`
}

func NewHexCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hex",
		Short: "Encode and decode hex byte sequences",
	}

	cmd.AddCommand(newHexEncodeCommand(), newHexDecodeCommand())
	return cmd
}

func newHexEncodeCommand() *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "encode <text>",
		Short: "Encode a string as lowercase hex",
		Args:  cobra.ExactArgs(1),
		Example: `  # "abc" encodes to 616263
  cryptocore hex encode abc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			encoded := conv.BytesToHex(conv.StringToBytes(args[0]))

			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(HexResult{Hex: encoded})
			}
			color.Green("%s", encoded)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&outputJSON, "json", "j", false, "Output in JSON format")
	return cmd
}

func newHexDecodeCommand() *cobra.Command {
	var (
		clean      bool
		asText     bool
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode a hex string to bytes",
		Long: `Decode a hex string to bytes.

By default decoding is strict: the input must have even length and contain
only hex digits. With --clean, whitespace is ignored and odd-length input is
zero-padded on the left.`,
		Args: cobra.ExactArgs(1),
		Example: `  # 616263 decodes to bytes 61 62 63
  cryptocore hex decode 616263

  # Lenient decoding of spaced hex dumps
  cryptocore hex decode --clean "61 62 63"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				decoded []byte
				err     error
			)
			if clean {
				decoded, err = conv.CleanHexToBytes(args[0])
			} else {
				decoded, err = conv.HexToBytes(args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to decode hex: %w", err)
			}

			if outputJSON {
				res := HexResult{Hex: conv.BytesToHex(decoded)}
				for _, b := range decoded {
					res.Bytes = append(res.Bytes, int(b))
				}
				if asText {
					res.Text = conv.BytesToString(decoded)
				}
				return json.NewEncoder(os.Stdout).Encode(res)
			}

			if asText {
				color.Green("%s", conv.BytesToString(decoded))
				return nil
			}
			for i, b := range decoded {
				if i > 0 {
					fmt.Print(" ")
				}
				fmt.Printf("%02x", b)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().BoolVar(&clean, "clean", false, "Ignore whitespace and allow odd-length input")
	cmd.Flags().BoolVarP(&asText, "text", "t", false, "Print the decoded bytes as text")
	cmd.Flags().BoolVarP(&outputJSON, "json", "j", false, "Output in JSON format")
	return cmd
}
