package cli

import (
	"sync"

	"github.com/Davincible/cryptocore/pkg/config"
	"github.com/Davincible/cryptocore/pkg/conv"
	"github.com/fatih/color"
)

var (
	cfgOnce sync.Once
	cfg     *config.Config
)

// loadConfig loads the user config once, falling back to defaults when the
// file is missing or unreadable.
func loadConfig() *config.Config {
	cfgOnce.Do(func() {
		loaded, err := config.Load()
		if err != nil {
			loaded = config.Default()
		}
		cfg = loaded
		color.NoColor = color.NoColor || !cfg.UI.Color
	})
	return cfg
}

// decodeHexInput decodes hex command input, strictly or leniently per the
// user's config.
func decodeHexInput(s string) ([]byte, error) {
	if loadConfig().Defaults.StrictHex {
		return conv.HexToBytes(s)
	}
	return conv.CleanHexToBytes(s)
}
