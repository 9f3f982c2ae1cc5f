package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/tonhe/bwbar/internal/config"
	"github.com/tonhe/bwbar/internal/engine"
	"github.com/tonhe/bwbar/internal/logging"
	"github.com/tonhe/bwbar/internal/render"
	"github.com/tonhe/bwbar/tui/styles"
	"go.uber.org/multierr"
)

// Exit statuses.
const (
	ExitOK     = 0
	ExitError  = 1
	ExitConfig = 3
)

// Monitor runs the status-line loop until SIGINT or SIGTERM and returns the
// process exit status.
func Monitor(args []string) int {
	cfg, code, ok := loadConfig(args, os.Stdout, os.Stderr)
	if !ok {
		return code
	}

	formatter := newFormatter(cfg, os.Stdout)
	p := engine.NewPoller(pollerOptions(cfg), render.NewStatusLine(formatter), os.Stdout)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		sig := <-sigs
		log.Debug("stopping", "signal", sig)
		p.Stop()
	}()

	if err := p.Run(); err != nil {
		log.Error("write failed", "error", err)
		return ExitError
	}
	return ExitOK
}

// loadConfig resolves and validates the configuration, handling help and
// version. ok is false when the caller should exit with code.
func loadConfig(args []string, stdout, stderr io.Writer) (cfg *config.Config, code int, ok bool) {
	cfg, inv, err := config.Resolve(args)
	if err != nil {
		fmt.Fprintf(stderr, "bwbar: %v\n", err)
		printUsage(stderr)
		return nil, ExitConfig, false
	}
	if inv.ShowHelp {
		printUsage(stdout)
		return nil, ExitOK, false
	}
	if inv.ShowVersion {
		fmt.Fprintln(stdout, versionString())
		return nil, ExitOK, false
	}
	if err := cfg.Validate(); err != nil {
		for _, e := range multierr.Errors(err) {
			fmt.Fprintf(stderr, "bwbar: %v\n", e)
		}
		return nil, ExitConfig, false
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logging.Setup(stderr, level)
	return cfg, ExitOK, true
}

func pollerOptions(cfg *config.Config) engine.PollerOptions {
	return engine.PollerOptions{
		Interfaces: cfg.Interfaces,
		Interval:   cfg.Refresh,
		Filter:     cfg.Filter(),
		Paths:      engine.DefaultPaths(),
	}
}

// newFormatter builds the rate formatter, resolving --color auto against out.
func newFormatter(cfg *config.Config, out io.Writer) *render.Formatter {
	mode, _ := render.ParseColorMode(cfg.Color)
	f, _ := out.(*os.File)
	mode = render.ResolveColorMode(mode, f)
	theme := styles.ThemeOrDefault(cfg.Theme)
	return render.NewFormatter(cfg.RenderOptions(), render.NewStyler(mode, theme, out))
}
