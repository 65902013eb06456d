package discovery

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
	"github.com/muurk/tokenui/internal/logging"
	"go.uber.org/zap"
)

const (
	// ServiceType is the mDNS service type of the emulator debug link
	ServiceType = "_tokenui-debug._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for discovery
	DefaultScanTimeout = 5 * time.Second

	// DefaultPort is assumed when an entry carries no port
	DefaultPort = 21325
)

// Advertise registers the debug link under instance until ctx is cancelled.
func Advertise(ctx context.Context, instance string, port int, txt map[string]string) error {
	records := make([]string, 0, len(txt))
	for _, key := range []string{TxtLayout, TxtVersion} {
		if v, ok := txt[key]; ok {
			records = append(records, key+"="+v)
		}
	}

	server, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, records, nil)
	if err != nil {
		return fmt.Errorf("failed to register mDNS service: %w", err)
	}
	logging.Info("Advertising debug link",
		zap.String("instance", instance),
		zap.Int("port", port),
	)

	<-ctx.Done()
	server.Shutdown()
	return nil
}

// Scanner browses for emulators
type Scanner struct {
	// Timeout is the maximum time to wait for answers
	Timeout time.Duration
}

// NewScanner creates a new mDNS scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
	}
}

// Scan collects every emulator that answers within the timeout
func (s *Scanner) Scan(ctx context.Context) ([]*Emulator, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)
	var (
		mu        sync.Mutex
		emulators = make([]*Emulator, 0)
		seen      = make(map[string]bool)
	)

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	go func() {
		for entry := range entries {
			e := parseServiceEntry(entry)
			if e == nil {
				continue
			}
			mu.Lock()
			if !seen[e.Instance] {
				seen[e.Instance] = true
				emulators = append(emulators, e)
			}
			mu.Unlock()
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	<-ctx.Done()

	mu.Lock()
	defer mu.Unlock()
	return append([]*Emulator(nil), emulators...), nil
}

// WaitFor returns the emulator with the given instance name as soon as it
// answers
func (s *Scanner) WaitFor(ctx context.Context, instance string) (*Emulator, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)
	match := make(chan *Emulator, 1)

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	go func() {
		for entry := range entries {
			e := parseServiceEntry(entry)
			if e != nil && e.Instance == instance {
				match <- e
				cancel()
				return
			}
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	select {
	case e := <-match:
		return e, nil
	case <-ctx.Done():
		select {
		case e := <-match:
			return e, nil
		default:
		}
		return nil, fmt.Errorf("emulator %s not found within timeout", instance)
	}
}

// parseServiceEntry converts a zeroconf service entry to an Emulator
// Returns nil if the entry has no instance name or no address
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Emulator {
	if entry == nil || entry.Instance == "" {
		return nil
	}

	var ip string
	if len(entry.AddrIPv4) > 0 {
		ip = entry.AddrIPv4[0].String()
	} else if len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" {
		return nil
	}

	port := entry.Port
	if port == 0 {
		port = DefaultPort
	}

	txt := parseText(entry.Text)
	return &Emulator{
		Instance:     entry.Instance,
		Host:         entry.HostName,
		IP:           ip,
		Port:         port,
		Layout:       txt[TxtLayout],
		Version:      txt[TxtVersion],
		DiscoveredAt: time.Now(),
	}
}

// parseText splits "key=value" TXT records. Keys without a value map to "".
func parseText(records []string) map[string]string {
	txt := make(map[string]string, len(records))
	for _, record := range records {
		key, value, _ := strings.Cut(record, "=")
		txt[key] = value
	}
	return txt
}
