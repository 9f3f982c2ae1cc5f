package cmd

import (
	"fmt"
	"os"

	"github.com/tonhe/bwbar/internal/config"
	"github.com/tonhe/bwbar/tui/styles"
)

func configCmd(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: bwbar config <path|init|theme>")
		os.Exit(1)
	}

	switch args[0] {
	case "path":
		configPath()
	case "init":
		configInit()
	case "theme":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: bwbar config theme NAME")
			os.Exit(1)
		}
		configSetTheme(args[1])
	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n", args[0])
		fmt.Fprintln(os.Stderr, "Usage: bwbar config <path|init|theme>")
		os.Exit(1)
	}
}

func configPath() {
	path, err := config.GetConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(path)
}

func configInit() {
	path, err := config.GetConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Config already exists at %s\n", path)
		os.Exit(1)
	}
	saveConfig(config.DefaultConfig())
	fmt.Printf("Wrote default config to %s.\n", path)
}

func configSetTheme(name string) {
	// Validate the theme name exists
	if styles.GetThemeByName(name) == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown theme %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'bwbar themes' to see available themes.")
		os.Exit(1)
	}

	cfg := loadOrDefaultConfig()
	cfg.Theme = name
	saveConfig(cfg)

	fmt.Printf("Default theme set to %q.\n", name)
}

func themesCmd() {
	for _, name := range styles.ListThemes() {
		fmt.Println(name)
	}
}

// loadOrDefaultConfig loads the config from disk, falling back to defaults.
func loadOrDefaultConfig() *config.Config {
	path, err := config.GetConfigPath()
	if err != nil {
		return config.DefaultConfig()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Warn("ignoring unreadable config", "path", path, "error", err)
		return config.DefaultConfig()
	}
	return cfg
}

// saveConfig writes the config to disk, creating directories as needed.
func saveConfig(cfg *config.Config) {
	if err := config.EnsureDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating config directory: %v\n", err)
		os.Exit(1)
	}

	path, err := config.GetConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := config.SaveConfig(cfg, path); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
		os.Exit(1)
	}
}
