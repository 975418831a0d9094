package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/Davincible/cryptocore/pkg/secure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readSecret reads one secret from the terminal without echo, falling back
// to plain line input when stdin is not a terminal.
func readSecret(prompt string) ([]byte, error) {
	fmt.Print(prompt)

	if term.IsTerminal(int(syscall.Stdin)) {
		secret, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return nil, err
		}
		return secret, nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return nil, err
	}
	return []byte(strings.TrimSpace(line)), nil
}

func NewCompareCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "compare [hexA] [hexB]",
		Short: "Compare two byte sequences in constant time",
		Long: `Compare two hex-encoded byte sequences without early-exit branching, so
the comparison time does not reveal the position of the first difference.

With --interactive both values are read from the terminal without echo
instead of being passed on the command line.`,
		Example: `  cryptocore compare 616263 616263

  # Read both values without echo (avoids shell history)
  cryptocore compare --interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var a, b []byte

			if interactive {
				rawA, err := readSecret("First value: ")
				if err != nil {
					return fmt.Errorf("failed to read first value: %w", err)
				}
				sa := secure.FromBytes(rawA)
				secure.Zero(rawA)
				defer sa.Destroy()

				rawB, err := readSecret("Second value: ")
				if err != nil {
					return fmt.Errorf("failed to read second value: %w", err)
				}
				sb := secure.FromBytes(rawB)
				secure.Zero(rawB)
				defer sb.Destroy()

				a, b = sa.Get(), sb.Get()
			} else {
				if len(args) != 2 {
					return fmt.Errorf("provide two hex arguments or use --interactive")
				}
				var err error
				if a, err = decodeHexInput(args[0]); err != nil {
					return fmt.Errorf("failed to decode first argument: %w", err)
				}
				if b, err = decodeHexInput(args[1]); err != nil {
					return fmt.Errorf("failed to decode second argument: %w", err)
				}
			}

			if secure.ConstantTimeCompare(a, b) {
				color.Green("equal")
				return nil
			}
			color.Red("not equal")
			os.Exit(1)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Read both values from the terminal without echo")
	return cmd
}
