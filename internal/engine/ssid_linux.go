//go:build linux

package engine

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// SIOCGIWESSID from linux/wireless.h.
const siocgiwessid = 0x8B1B

// iwPoint mirrors struct iw_point.
type iwPoint struct {
	pointer uintptr
	length  uint16
	flags   uint16
}

// iwreqDataSize is the size of union iwreq_data, set by struct sockaddr.
const iwreqDataSize = 16

// iwreq mirrors struct iwreq. The union is held as raw words so iwPoint can
// be overlaid at its natural alignment.
type iwreq struct {
	name [unix.IFNAMSIZ]byte
	data [iwreqDataSize / 8]uint64
}

func (r *iwreq) point() *iwPoint {
	return (*iwPoint)(unsafe.Pointer(&r.data))
}

type ioctlSSIDResolver struct{}

// Resolve issues SIOCGIWESSID on a transient datagram socket.
func (ioctlSSIDResolver) Resolve(name string) string {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		log.Debug("ssid socket failed", "iface", name, "err", err)
		return ""
	}
	defer unix.Close(fd)

	buf := make([]byte, MaxSSIDLen+1)
	var req iwreq
	copy(req.name[:unix.IFNAMSIZ-1], boundIfName(name))
	essid := req.point()
	essid.pointer = uintptr(unsafe.Pointer(&buf[0]))
	essid.length = uint16(len(buf))

	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), siocgiwessid, uintptr(unsafe.Pointer(&req)))
	runtime.KeepAlive(buf)
	if errno != 0 {
		log.Debug("ssid ioctl failed", "iface", name, "err", errno)
		return ""
	}
	return boundSSID(buf, int(essid.length))
}
