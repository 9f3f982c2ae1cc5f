package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/tonhe/bwbar/internal/engine"
)

func listCmd(args []string) {
	paths := engine.DefaultPaths()
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	fs.StringVar(&paths.Proc, "proc", paths.Proc, "procfs mount point")
	fs.StringVar(&paths.Sys, "sys", paths.Sys, "sysfs mount point")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: bwbar list [--proc DIR] [--sys DIR]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if err := listInterfaces(os.Stdout, paths); err != nil {
		fmt.Fprintf(os.Stderr, "Error listing interfaces: %v\n", err)
		os.Exit(1)
	}
}

// listInterfaces prints every device in the counter table followed by the
// aggregate of all non-loopback devices.
func listInterfaces(w io.Writer, paths engine.Paths) error {
	interfaces, total, err := engine.DiscoverInterfaces(paths)
	if err != nil {
		return err
	}

	if len(interfaces) == 0 {
		fmt.Fprintln(w, "No interfaces found.")
		return nil
	}

	sort.Slice(interfaces, func(i, j int) bool {
		return interfaces[i].Name < interfaces[j].Name
	})

	fmt.Fprintf(w, "%-15s  %-8s  %-12s  %14s  %14s\n", "Name", "Class", "State", "RX", "TX")
	fmt.Fprintf(w, "%-15s  %-8s  %-12s  %14s  %14s\n", "----", "-----", "-----", "--", "--")

	for _, iface := range interfaces {
		class := "wired"
		if iface.Wireless {
			class = "wireless"
		}
		fmt.Fprintf(w, "%-15s  %-8s  %-12s  %14s  %14s\n",
			iface.Name,
			class,
			iface.State,
			formatBytes(iface.Counters.RxBytes),
			formatBytes(iface.Counters.TxBytes),
		)
	}
	fmt.Fprintf(w, "%-15s  %-8s  %-12s  %14s  %14s\n", "total", "", "", formatBytes(total.RxBytes), formatBytes(total.TxBytes))
	return nil
}

// formatBytes formats a cumulative byte count with binary prefixes.
func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit && exp < 4; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTP"[exp])
}
