package engine

import "bytes"

// SSIDResolver looks up the network name a wireless adapter is associated
// with. Resolve returns "" when the query fails or no name is reported.
type SSIDResolver interface {
	Resolve(name string) string
}

// NewSSIDResolver returns the platform resolver.
func NewSSIDResolver() SSIDResolver {
	return ioctlSSIDResolver{}
}

// boundSSID converts a kernel-filled buffer into a name: at most n bytes,
// never more than MaxSSIDLen, cut at the first NUL.
func boundSSID(buf []byte, n int) string {
	if n < 0 {
		n = 0
	}
	if n > len(buf) {
		n = len(buf)
	}
	if n > MaxSSIDLen {
		n = MaxSSIDLen
	}
	b := buf[:n]
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// boundIfName truncates an interface name to the kernel limit.
func boundIfName(name string) string {
	if len(name) > MaxIfNameLen {
		return name[:MaxIfNameLen]
	}
	return name
}
