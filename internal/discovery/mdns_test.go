package discovery

import (
	"net"
	"testing"

	"github.com/grandcat/zeroconf"
)

func entry(instance, host string, port int, ipv4, ipv6 []net.IP, text ...string) *zeroconf.ServiceEntry {
	e := zeroconf.NewServiceEntry(instance, ServiceType, ServiceDomain)
	e.HostName = host
	e.Port = port
	e.AddrIPv4 = ipv4
	e.AddrIPv6 = ipv6
	e.Text = text
	return e
}

func TestParseServiceEntry(t *testing.T) {
	v4 := []net.IP{net.ParseIP("192.168.4.16")}
	v6 := []net.IP{net.ParseIP("fe80::1")}

	tests := []struct {
		name        string
		entry       *zeroconf.ServiceEntry
		wantNil     bool
		wantIP      string
		wantPort    int
		wantLayout  string
		wantVersion string
	}{
		{
			name:        "complete entry",
			entry:       entry("tokenui-1", "desk.local.", 21325, v4, nil, "layout=request_pin", "version=1.2.0"),
			wantIP:      "192.168.4.16",
			wantPort:    21325,
			wantLayout:  "request_pin",
			wantVersion: "1.2.0",
		},
		{
			name:     "IPv4 preferred over IPv6",
			entry:    entry("tokenui-2", "desk.local.", 9000, v4, v6),
			wantIP:   "192.168.4.16",
			wantPort: 9000,
		},
		{
			name:     "IPv6 fallback",
			entry:    entry("tokenui-3", "desk.local.", 9000, nil, v6),
			wantIP:   "fe80::1",
			wantPort: 9000,
		},
		{
			name:     "missing port uses default",
			entry:    entry("tokenui-4", "desk.local.", 0, v4, nil),
			wantIP:   "192.168.4.16",
			wantPort: DefaultPort,
		},
		{
			name:       "key without value",
			entry:      entry("tokenui-5", "desk.local.", 1, v4, nil, "layout", "extra=a=b"),
			wantIP:     "192.168.4.16",
			wantPort:   1,
			wantLayout: "",
		},
		{
			name:    "no address",
			entry:   entry("tokenui-6", "desk.local.", 1, nil, nil),
			wantNil: true,
		},
		{
			name:    "no instance",
			entry:   entry("", "desk.local.", 1, v4, nil),
			wantNil: true,
		},
		{
			name:    "nil entry",
			entry:   nil,
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseServiceEntry(tt.entry)
			if tt.wantNil {
				if got != nil {
					t.Errorf("parseServiceEntry() = %v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("parseServiceEntry() = nil")
			}
			if got.IP != tt.wantIP || got.Port != tt.wantPort {
				t.Errorf("address = %s:%d, want %s:%d", got.IP, got.Port, tt.wantIP, tt.wantPort)
			}
			if got.Layout != tt.wantLayout || got.Version != tt.wantVersion {
				t.Errorf("txt = %q/%q, want %q/%q", got.Layout, got.Version, tt.wantLayout, tt.wantVersion)
			}
			if got.Instance != tt.entry.Instance || got.Host != tt.entry.HostName {
				t.Errorf("identity = %q/%q", got.Instance, got.Host)
			}
			if got.DiscoveredAt.IsZero() {
				t.Error("DiscoveredAt not set")
			}
		})
	}
}

func TestParseText(t *testing.T) {
	txt := parseText([]string{"layout=confirm_action", "flag", "expr=a=b"})
	want := map[string]string{"layout": "confirm_action", "flag": "", "expr": "a=b"}
	if len(txt) != len(want) {
		t.Fatalf("parseText() = %v", txt)
	}
	for k, v := range want {
		if txt[k] != v {
			t.Errorf("txt[%q] = %q, want %q", k, txt[k], v)
		}
	}
}

func TestEmulator_Addr(t *testing.T) {
	tests := []struct {
		name string
		e    Emulator
		want string
	}{
		{"ipv4", Emulator{IP: "10.0.0.5", Port: 21325}, "10.0.0.5:21325"},
		{"ipv6", Emulator{IP: "fe80::1", Port: 80}, "[fe80::1]:80"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.Addr(); got != tt.want {
				t.Errorf("Addr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEmulator_String(t *testing.T) {
	e := &Emulator{Instance: "tokenui-1", Layout: "request_pin", IP: "192.168.4.16", Port: 21325}
	want := "tokenui-1 (request_pin) at 192.168.4.16:21325"
	if e.String() != want {
		t.Errorf("String() = %q, want %q", e.String(), want)
	}
}

func TestNewScanner(t *testing.T) {
	if s := NewScanner(); s.Timeout != DefaultScanTimeout {
		t.Errorf("Timeout = %v, want %v", s.Timeout, DefaultScanTimeout)
	}
}
