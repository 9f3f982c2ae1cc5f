package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const netDevHeader = `Inter-|   Receive                                                |  Transmit
 face |bytes    packets errs drop fifo frame compressed multicast|bytes    packets errs drop fifo colls carrier compressed
`

const netWirelessHeader = `Inter-| sta-|   Quality        |   Discarded packets               | Missed | WE
 face | tus | link level noise |  nwid  crypt   frag  retry   misc | beacon | 22
`

// fakeKernel builds a throwaway /proc and /sys tree.
type fakeKernel struct {
	t     *testing.T
	paths Paths
}

func newFakeKernel(t *testing.T) *fakeKernel {
	t.Helper()
	root := t.TempDir()
	k := &fakeKernel{
		t:     t,
		paths: Paths{Proc: filepath.Join(root, "proc"), Sys: filepath.Join(root, "sys")},
	}
	k.mkdir(filepath.Join(k.paths.Proc, "net"))
	k.mkdir(filepath.Join(k.paths.Sys, "class", "net"))
	return k
}

func (k *fakeKernel) mkdir(dir string) {
	k.t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		k.t.Fatalf("mkdir %s: %v", dir, err)
	}
}

func (k *fakeKernel) write(path, content string) {
	k.t.Helper()
	k.mkdir(filepath.Dir(path))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		k.t.Fatalf("write %s: %v", path, err)
	}
}

// devCounters maps a device name to its rx and tx byte counters.
type devCounters struct {
	name   string
	rx, tx uint64
}

func (k *fakeKernel) setNetDev(devs ...devCounters) {
	k.t.Helper()
	var sb strings.Builder
	sb.WriteString(netDevHeader)
	for _, d := range devs {
		fmt.Fprintf(&sb, "%6s: %d 10 0 0 0 0 0 0 %d 20 0 0 0 0 0 0\n", d.name, d.rx, d.tx)
	}
	k.write(k.paths.netDev(), sb.String())
}

func (k *fakeKernel) setNetDevRaw(content string) {
	k.t.Helper()
	k.write(k.paths.netDev(), netDevHeader+content)
}

func (k *fakeKernel) setOperstate(name, state string) {
	k.t.Helper()
	k.write(k.paths.classNet(name, "operstate"), state+"\n")
}

func (k *fakeKernel) setCarrier(name, carrier string) {
	k.t.Helper()
	k.write(k.paths.classNet(name, "carrier"), carrier+"\n")
}

func (k *fakeKernel) removeCarrier(name string) {
	k.t.Helper()
	if err := os.Remove(k.paths.classNet(name, "carrier")); err != nil && !os.IsNotExist(err) {
		k.t.Fatalf("remove carrier: %v", err)
	}
}

func (k *fakeKernel) markWireless(name string) {
	k.t.Helper()
	k.mkdir(k.paths.classNet(name, "wireless"))
}

func (k *fakeKernel) setWirelessLink(name string, link string) {
	k.t.Helper()
	content := netWirelessHeader +
		fmt.Sprintf("%6s: 0000   %s  -40.  -256        0      0      0      0     12        0\n", name, link)
	k.write(k.paths.netWireless(), content)
}

// staticSSID resolves every adapter to the same name and counts calls.
type staticSSID struct {
	name  string
	calls int
}

func (s *staticSSID) Resolve(string) string {
	s.calls++
	return s.name
}
