package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/tonhe/bwbar/internal/logging"
)

// Version is the program version reported by -V and `bwbar version`.
const Version = "0.1.0"

var log = logging.Logger("cmd")

// knownSubcommands is the set of CLI subcommands that bypass the status line.
var knownSubcommands = map[string]bool{
	"list":    true,
	"watch":   true,
	"config":  true,
	"themes":  true,
	"version": true,
	"help":    true,
}

// IsSubcommand returns true if the argument is a known CLI subcommand.
func IsSubcommand(arg string) bool {
	return knownSubcommands[arg]
}

// Execute dispatches to the appropriate CLI subcommand handler.
func Execute(args []string) {
	if len(args) == 0 {
		return
	}

	switch args[0] {
	case "list":
		listCmd(args[1:])
	case "watch":
		os.Exit(watchCmd(args[1:]))
	case "config":
		configCmd(args[1:])
	case "themes":
		themesCmd()
	case "version":
		fmt.Println(versionString())
	case "help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage(os.Stderr)
		os.Exit(1)
	}
}

func versionString() string {
	return "bwbar v" + Version
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `bwbar - network bandwidth status line

Usage:
  bwbar [flags]             Print one status line per refresh interval
  bwbar watch [flags]       Interactive view with rate history
  bwbar list                List network devices and counters
  bwbar config <cmd>        Manage configuration
  bwbar themes              List available themes
  bwbar version             Show version
  bwbar help                Show this help

Flags:
  -i LIST            Comma-separated interfaces to monitor
  -t SEC             Refresh time in seconds (default 1)
  -b                 Display bits per second
  -B                 Display bytes per second (default)
  -s                 Use SI (1000) instead of IEC (1024) divisor
  -W RX:TX           Warning thresholds in bytes/s, marked with ?
  -C RX:TX           Critical thresholds in bytes/s, marked with !
  --wifi-only        Only show wireless adapters
  --eth-only         Only show wired adapters
  --color MODE       none, ansi, polybar or auto (default none)
  --theme NAME       Color theme (see bwbar themes)
  --log-level LEVEL  debug, info, warn or error (logs go to stderr)
  --config PATH      Config file (default $XDG_CONFIG_HOME/bwbar/config.toml)
  -V, --version      Show version
  -h, --help         Show this help

Environment (overridden by flags):
  INTERFACES, INTERFACE      Interfaces to monitor
  REFRESH_TIME               Refresh time in seconds
  USE_BITS=1, USE_BYTES=1    Display unit
  USE_SI=1                   SI divisor
  WARN_RX, WARN_TX           Warning thresholds in bytes/s
  CRIT_RX, CRIT_TX           Critical thresholds in bytes/s
  WIFI_ONLY=1, ETH_ONLY=1    Class filters
  BWBAR_COLOR, BWBAR_THEME, BWBAR_LOG_LEVEL

Config Commands:
  bwbar config path          Show config file path
  bwbar config init          Write a default config file
  bwbar config theme NAME    Set default theme`)
}
