package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Invocation holds the flags that select an action rather than configure
// monitoring.
type Invocation struct {
	ConfigPath  string
	ShowVersion bool
	ShowHelp    bool
}

// Overrides are flag settings applied after the file and environment.
type Overrides []func(*Config)

func (o Overrides) Apply(cfg *Config) {
	for _, fn := range o {
		fn(cfg)
	}
}

// ParseFlags parses the monitor command line. Flags are recorded as
// overrides in the order given, so a later -b or -B wins.
func ParseFlags(args []string) (Invocation, Overrides, error) {
	var inv Invocation
	var ov Overrides
	set := func(fn func(*Config)) { ov = append(ov, fn) }

	fs := flag.NewFlagSet("bwbar", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolFunc("b", "display bits per second", func(string) error {
		set(func(c *Config) { c.Unit = "b" })
		return nil
	})
	fs.BoolFunc("B", "display bytes per second", func(string) error {
		set(func(c *Config) { c.Unit = "B" })
		return nil
	})
	fs.BoolFunc("s", "use SI (1000) divisor", func(string) error {
		set(func(c *Config) { c.SI = true })
		return nil
	})
	fs.Func("t", "refresh time in seconds", func(v string) error {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid refresh time %q", v)
		}
		set(func(c *Config) { c.Refresh = uint(n) })
		return nil
	})
	fs.Func("i", "comma-separated interfaces", func(v string) error {
		names := ParseInterfaces(v)
		set(func(c *Config) { c.Interfaces = names })
		return nil
	})
	fs.Func("W", "warning thresholds RX:TX in bytes/s", func(v string) error {
		rx, tx, err := parsePair(v)
		if err != nil {
			return err
		}
		set(func(c *Config) { c.WarnRx, c.WarnTx = rx, tx })
		return nil
	})
	fs.Func("C", "critical thresholds RX:TX in bytes/s", func(v string) error {
		rx, tx, err := parsePair(v)
		if err != nil {
			return err
		}
		set(func(c *Config) { c.CritRx, c.CritTx = rx, tx })
		return nil
	})
	fs.BoolFunc("wifi-only", "only show wireless adapters", func(string) error {
		set(func(c *Config) { c.WifiOnly = true })
		return nil
	})
	fs.BoolFunc("eth-only", "only show wired adapters", func(string) error {
		set(func(c *Config) { c.EthOnly = true })
		return nil
	})
	stringFlag := func(name, usage string, dst func(*Config) *string) {
		fs.Func(name, usage, func(v string) error {
			set(func(c *Config) { *dst(c) = v })
			return nil
		})
	}
	stringFlag("color", "color mode: none, ansi, polybar, auto", func(c *Config) *string { return &c.Color })
	stringFlag("theme", "color theme", func(c *Config) *string { return &c.Theme })
	stringFlag("log-level", "debug, info, warn, error", func(c *Config) *string { return &c.LogLevel })

	fs.StringVar(&inv.ConfigPath, "config", "", "config file path")
	fs.BoolVar(&inv.ShowVersion, "V", false, "print version")
	fs.BoolVar(&inv.ShowVersion, "version", false, "print version")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			inv.ShowHelp = true
			return inv, nil, nil
		}
		return inv, nil, err
	}
	if fs.NArg() > 0 {
		return inv, nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return inv, ov, nil
}

// parsePair parses "RX:TX".
func parsePair(v string) (uint64, uint64, error) {
	rxs, txs, ok := strings.Cut(v, ":")
	if !ok {
		return 0, 0, fmt.Errorf("threshold %q must be RX:TX", v)
	}
	rx, err := strconv.ParseUint(rxs, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid RX threshold %q", rxs)
	}
	tx, err := strconv.ParseUint(txs, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid TX threshold %q", txs)
	}
	return rx, tx, nil
}

// Resolve layers defaults, the config file, the environment and the command
// line. The result is not validated so that help and version still work
// with an incomplete configuration.
func Resolve(args []string) (*Config, Invocation, error) {
	inv, ov, err := ParseFlags(args)
	if err != nil {
		return nil, inv, err
	}
	path := inv.ConfigPath
	if path == "" {
		if path, err = GetConfigPath(); err != nil {
			log.Warn("cannot locate config dir", "error", err)
			path = ""
		}
	}
	cfg := DefaultConfig()
	if path != "" {
		if cfg, err = LoadConfig(path); err != nil {
			return nil, inv, err
		}
	}
	ApplyEnv(cfg)
	ov.Apply(cfg)
	return cfg, inv, nil
}
