package config

import (
	"os"
	"strconv"
)

// ApplyEnv overrides cfg from the environment. Environment variables take
// precedence over the config file but not over command-line flags.
//
//   - USE_BITS=1, USE_BYTES=1: display unit (bytes wins when both are set)
//   - USE_SI=1: divide by 1000 instead of 1024
//   - REFRESH_TIME: refresh interval in seconds
//   - INTERFACES (or INTERFACE): comma-separated interface list
//   - WARN_RX, WARN_TX, CRIT_RX, CRIT_TX: thresholds in bytes/s
//   - WIFI_ONLY=1, ETH_ONLY=1: class filters
//   - BWBAR_COLOR, BWBAR_THEME, BWBAR_LOG_LEVEL
func ApplyEnv(cfg *Config) {
	if flagSet("USE_BITS") {
		cfg.Unit = "b"
	}
	if flagSet("USE_BYTES") {
		cfg.Unit = "B"
	}

	if v := os.Getenv("REFRESH_TIME"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			cfg.Refresh = uint(n)
		} else {
			log.Warn("ignoring invalid REFRESH_TIME", "value", v)
		}
	}

	v, ok := os.LookupEnv("INTERFACES")
	if !ok {
		v = os.Getenv("INTERFACE")
	}
	if v != "" {
		cfg.Interfaces = ParseInterfaces(v)
	}

	envUint64("WARN_RX", &cfg.WarnRx)
	envUint64("WARN_TX", &cfg.WarnTx)
	envUint64("CRIT_RX", &cfg.CritRx)
	envUint64("CRIT_TX", &cfg.CritTx)

	if flagSet("USE_SI") {
		cfg.SI = true
	}
	if flagSet("WIFI_ONLY") {
		cfg.WifiOnly = true
	}
	if flagSet("ETH_ONLY") {
		cfg.EthOnly = true
	}

	if v := os.Getenv("BWBAR_COLOR"); v != "" {
		cfg.Color = v
	}
	if v := os.Getenv("BWBAR_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("BWBAR_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// flagSet reports whether a boolean switch variable starts with '1'.
func flagSet(name string) bool {
	v := os.Getenv(name)
	return v != "" && v[0] == '1'
}

// envUint64 sets dst only when the whole value parses.
func envUint64(name string, dst *uint64) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		log.Warn("ignoring non-numeric threshold", "name", name, "value", v)
		return
	}
	*dst = n
}
