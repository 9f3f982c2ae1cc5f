package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/tonhe/bwbar/internal/engine"
	"github.com/tonhe/bwbar/internal/logging"
	"github.com/tonhe/bwbar/tui"
)

// watchCmd runs the interactive view. It accepts the same flags as the
// status-line monitor.
func watchCmd(args []string) int {
	cfg, code, ok := loadConfig(args, os.Stdout, os.Stderr)
	if !ok {
		return code
	}

	// Logs are discarded while the alternate screen is active.
	level, _ := logging.ParseLevel(cfg.LogLevel)
	logging.Setup(io.Discard, level)

	poller := engine.NewPoller(pollerOptions(cfg), nil, io.Discard)
	if err := tui.Run(cfg, poller, Version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitOK
}
