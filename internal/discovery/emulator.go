package discovery

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// TXT record keys.
const (
	TxtLayout  = "layout"
	TxtVersion = "version"
)

// Emulator is a running emulator found on the network.
type Emulator struct {
	// Instance is the mDNS service instance name (e.g., "tokenui-3f2a")
	Instance string

	// Host is the mDNS hostname (e.g., "workstation.local.")
	Host string

	// IP is the address of the debug link, IPv4 when available
	IP string

	// Port is the debug link port
	Port int

	// Layout is the name of the layout the emulator is showing
	Layout string

	// Version is the emulator build version
	Version string

	// DiscoveredAt is when the emulator was discovered
	DiscoveredAt time.Time
}

// String returns a human-readable description of the emulator
func (e *Emulator) String() string {
	return fmt.Sprintf("%s (%s) at %s", e.Instance, e.Layout, e.Addr())
}

// Addr returns the host:port of the debug link
func (e *Emulator) Addr() string {
	return net.JoinHostPort(e.IP, strconv.Itoa(e.Port))
}
