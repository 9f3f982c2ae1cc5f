package engine

import "testing"

func TestIsWireless(t *testing.T) {
	k := newFakeKernel(t)
	k.setOperstate("eth0", "up")
	k.setOperstate("wlan0", "up")
	k.markWireless("wlan0")
	// A regular file named wireless is not a descriptor directory.
	k.write(k.paths.classNet("odd0", "wireless"), "")

	d := NewStateDetector(k.paths)
	if d.IsWireless("eth0") {
		t.Error("eth0 should be wired")
	}
	if !d.IsWireless("wlan0") {
		t.Error("wlan0 should be wireless")
	}
	if d.IsWireless("odd0") {
		t.Error("odd0 has no wireless directory")
	}
	if d.IsWireless("missing0") {
		t.Error("missing device should not be wireless")
	}
}

func TestState(t *testing.T) {
	tests := []struct {
		name      string
		operstate string
		carrier   string // "" means absent
		wireless  bool
		link      string // "" means no wireless table
		want      IfState
	}{
		{"down wins over carrier", "down", "1", false, "", StateDisabled},
		{"down prefix", "downish", "", false, "", StateDisabled},
		{"up with carrier", "up", "1", false, "", StateConnected},
		{"up without carrier", "up", "0", false, "", StateDisconnected},
		{"dormant with carrier", "dormant", "1", false, "", StateConnected},
		{"unknown operstate no carrier", "unknown", "", false, "", StateUnknown},
		{"case sensitive down", "DOWN", "0", false, "", StateDisconnected},
		{"wireless fallback linked", "up", "", true, "70.", StateConnected},
		{"wireless fallback zero link", "up", "", true, "0.", StateDisconnected},
		{"wireless fallback no table", "up", "", true, "", StateDisconnected},
		{"wireless carrier preferred", "up", "0", true, "70.", StateDisconnected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := newFakeKernel(t)
			k.setOperstate("if0", tt.operstate)
			if tt.carrier != "" {
				k.setCarrier("if0", tt.carrier)
			}
			if tt.link != "" {
				k.setWirelessLink("if0", tt.link)
			}
			got := NewStateDetector(k.paths).InterfaceState("if0", tt.wireless)
			if got != tt.want {
				t.Errorf("State() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStateMissingInterface(t *testing.T) {
	k := newFakeKernel(t)
	if got := NewStateDetector(k.paths).InterfaceState("gone0", true); got != StateUnknown {
		t.Errorf("expected unknown for a vanished interface, got %s", got)
	}
}

func TestStateCarrierRemoved(t *testing.T) {
	k := newFakeKernel(t)
	k.setOperstate("wlan0", "up")
	k.setCarrier("wlan0", "0")
	k.setWirelessLink("wlan0", "55.")
	d := NewStateDetector(k.paths)

	if got := d.InterfaceState("wlan0", true); got != StateDisconnected {
		t.Fatalf("with carrier 0: got %s, want disconnected", got)
	}
	k.removeCarrier("wlan0")
	if got := d.InterfaceState("wlan0", true); got != StateConnected {
		t.Errorf("without carrier: got %s, want connected from link quality", got)
	}
	if got := d.InterfaceState("wlan0", false); got != StateUnknown {
		t.Errorf("wired without carrier: got %s, want unknown", got)
	}
}

func TestWirelessLinkOtherInterface(t *testing.T) {
	k := newFakeKernel(t)
	k.setOperstate("wlan0", "up")
	k.setWirelessLink("wlan1", "60.")
	if got := NewStateDetector(k.paths).InterfaceState("wlan0", true); got != StateDisconnected {
		t.Errorf("expected disconnected when the table lists another device, got %s", got)
	}
}
