package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Options Desk Configuration

[account]
# Starting account balance in USD
starting_balance = 50000.0

[storage]
# JSON file holding the submitted order collection
orders_path = ""
# SQLite database holding the activity journal
journal_path = ""
# Reload orders when another process rewrites the order file
watch = true

[logging]
# Log level: debug, info, warn, error
level = "info"
# Log to the console
console = true
# Log to a rotated file under the config directory
file = true

[ui]
# Date format
date_format = "02-Jan-2006"
# Time format
time_format = "15:04:05"
`

func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}

	return nil
}
