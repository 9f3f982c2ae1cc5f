package engine

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// StateDetector classifies adapter link state from sysfs and procfs.
type StateDetector struct {
	paths Paths
}

// NewStateDetector creates a StateDetector rooted at the given paths.
func NewStateDetector(paths Paths) *StateDetector {
	return &StateDetector{paths: paths}
}

// IsWireless reports whether the device exposes a wireless descriptor
// directory. Callers evaluate this once per adapter.
func (d *StateDetector) IsWireless(name string) bool {
	info, err := os.Stat(d.paths.classNet(name, "wireless"))
	return err == nil && info.IsDir()
}

// InterfaceState returns the link state of the named device. Unreadable sources
// degrade to StateUnknown.
func (d *StateDetector) InterfaceState(name string, wirelessHint bool) IfState {
	operstate, err := os.ReadFile(d.paths.classNet(name, "operstate"))
	if err != nil {
		log.Debug("operstate unreadable", "iface", name, "err", err)
		return StateUnknown
	}
	if strings.HasPrefix(string(operstate), "down") {
		return StateDisabled
	}

	// Administratively up from here on.
	carrier, err := os.ReadFile(d.paths.classNet(name, "carrier"))
	if err == nil {
		if len(carrier) > 0 && carrier[0] == '1' {
			return StateConnected
		}
		return StateDisconnected
	}

	// Some wireless drivers omit carrier.
	if wirelessHint {
		if d.wirelessLinked(name) {
			return StateConnected
		}
		return StateDisconnected
	}

	log.Debug("no carrier signal", "iface", name, "err", err)
	return StateUnknown
}

// wirelessLinked reports whether the wireless link table lists the device
// with a link quality above zero.
func (d *StateDetector) wirelessLinked(name string) bool {
	file, err := os.Open(d.paths.netWireless())
	if err != nil {
		return false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)

	// Skip first two header lines
	scanner.Scan()
	scanner.Scan()

	for scanner.Scan() {
		line := scanner.Text()
		idx := strings.IndexByte(line, ':')
		if idx <= 0 || strings.TrimSpace(line[:idx]) != name {
			continue
		}
		// Fields after the colon: status, link quality, level, noise, ...
		fields := strings.Fields(line[idx+1:])
		if len(fields) < 2 {
			return false
		}
		link, err := strconv.ParseFloat(strings.TrimSuffix(fields[1], "."), 64)
		if err != nil {
			return false
		}
		return link > 0
	}
	return false
}
