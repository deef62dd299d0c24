package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"options-desk/internal/cli"
	"options-desk/internal/config"
	"options-desk/internal/logging"
)

// configDirFromArgs finds the --config flag before cobra parses anything,
// since the config is needed to build the command tree. Both the separated
// and the = form are recognized.
func configDirFromArgs(args []string) string {
	configDir := ""
	for i, arg := range args {
		if arg == "--config" && i+1 < len(args) {
			configDir = args[i+1]
		} else if strings.HasPrefix(arg, "--config=") {
			configDir = strings.TrimPrefix(arg, "--config=")
		}
	}
	return configDir
}

func main() {
	configDir := configDirFromArgs(os.Args[1:])

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logCfg := logging.DefaultLogConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Console = cfg.Logging.Console
	logCfg.File = cfg.Logging.File
	if configDir != "" {
		logCfg.FilePath = filepath.Join(configDir, "logs", "desk.log")
	}
	logger := logging.NewLoggerWithConfig(logCfg)

	rootCmd := cli.NewRootCmd(cfg, logger)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
