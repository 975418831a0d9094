package validation

import (
	"fmt"
	"strings"

	"github.com/Davincible/cryptocore/pkg/conv"
	"github.com/Davincible/cryptocore/pkg/padding"
)

// ValidateHex delegates to the strict library codec so the CLI validator
// and conv.HexToBytes can never disagree on what counts as valid hex.
func ValidateHex(input string) error {
	if len(input) == 0 {
		return fmt.Errorf("hex string cannot be empty")
	}
	if _, err := conv.HexToBytes(input); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}
	return nil
}

func ValidateBlockSize(blockSize int) error {
	if blockSize < 1 || blockSize > 255 {
		return fmt.Errorf("block size must be 1..255, got %d", blockSize)
	}
	return nil
}

func ValidateSchemeName(name string) error {
	if _, err := padding.ByName(name); err != nil {
		return fmt.Errorf("unknown padding scheme %q (known: %s)",
			name, strings.Join(padding.Names(), ", "))
	}
	return nil
}

func ValidateBitCount(n int) error {
	if n < 1 || n > 32 {
		return fmt.Errorf("bit count must be 1..32, got %d", n)
	}
	return nil
}
