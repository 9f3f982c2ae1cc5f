package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tonhe/bwbar/internal/engine"
	"github.com/tonhe/bwbar/internal/logging"
	"github.com/tonhe/bwbar/internal/render"
	"github.com/tonhe/bwbar/tui/styles"
	"go.uber.org/multierr"
)

// MaxInterfaces caps the configured interface list.
const MaxInterfaces = 32

var log = logging.Logger("config")

var (
	ErrNoInterfaces       = errors.New("no interfaces specified (use -i or INTERFACES env)")
	ErrConflictingFilters = errors.New("cannot combine --wifi-only and --eth-only")
)

// Config is the fully resolved runtime configuration. Values are layered as
// defaults, then the TOML file, then environment variables, then flags.
type Config struct {
	Interfaces []string `toml:"interfaces"`
	Refresh    uint     `toml:"refresh"`
	Unit       string   `toml:"unit"`
	SI         bool     `toml:"si"`
	WarnRx     uint64   `toml:"warn_rx"`
	WarnTx     uint64   `toml:"warn_tx"`
	CritRx     uint64   `toml:"crit_rx"`
	CritTx     uint64   `toml:"crit_tx"`
	WifiOnly   bool     `toml:"wifi_only"`
	EthOnly    bool     `toml:"eth_only"`
	Color      string   `toml:"color"`
	Theme      string   `toml:"theme"`
	LogLevel   string   `toml:"log_level"`
	MaxHistory int      `toml:"max_history"`
}

func DefaultConfig() *Config {
	return &Config{
		Refresh:    1,
		Unit:       "B",
		Color:      string(render.ColorNone),
		Theme:      styles.DefaultThemeName,
		LogLevel:   "warn",
		MaxHistory: 120,
	}
}

func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Interfaces = normalizeInterfaces(cfg.Interfaces)
	return cfg, nil
}

func SaveConfig(cfg *Config, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var err error
	if len(c.Interfaces) == 0 {
		err = multierr.Append(err, ErrNoInterfaces)
	}
	if c.WifiOnly && c.EthOnly {
		err = multierr.Append(err, ErrConflictingFilters)
	}
	if c.Refresh == 0 {
		err = multierr.Append(err, errors.New("refresh time must be at least 1 second"))
	}
	if c.Unit != "B" && c.Unit != "b" {
		err = multierr.Append(err, fmt.Errorf("unknown unit %q (want B or b)", c.Unit))
	}
	if _, cerr := render.ParseColorMode(c.Color); cerr != nil {
		err = multierr.Append(err, cerr)
	}
	if styles.GetThemeByName(c.Theme) == nil {
		err = multierr.Append(err, fmt.Errorf("unknown theme %q", c.Theme))
	}
	if _, lerr := logging.ParseLevel(c.LogLevel); lerr != nil {
		err = multierr.Append(err, lerr)
	}
	return err
}

// Filter returns the adapter class filter.
func (c *Config) Filter() engine.ClassFilter {
	switch {
	case c.WifiOnly:
		return engine.FilterWirelessOnly
	case c.EthOnly:
		return engine.FilterWiredOnly
	default:
		return engine.FilterNone
	}
}

// RenderOptions returns the formatting parameters.
func (c *Config) RenderOptions() render.Options {
	opts := render.Options{
		Unit:    render.UnitBytes,
		Divisor: render.DivisorIEC,
		Thresholds: render.Thresholds{
			WarnRx: c.WarnRx,
			WarnTx: c.WarnTx,
			CritRx: c.CritRx,
			CritTx: c.CritTx,
		},
	}
	if c.Unit == "b" {
		opts.Unit = render.UnitBits
	}
	if c.SI {
		opts.Divisor = render.DivisorSI
	}
	return opts
}

// ParseInterfaces splits a comma-separated list into at most MaxInterfaces
// names, dropping empties and truncating each to the kernel name limit.
func ParseInterfaces(raw string) []string {
	return normalizeInterfaces(strings.Split(raw, ","))
}

func normalizeInterfaces(names []string) []string {
	var out []string
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if len(n) > engine.MaxIfNameLen {
			n = n[:engine.MaxIfNameLen]
		}
		out = append(out, n)
		if len(out) == MaxInterfaces {
			break
		}
	}
	return out
}
