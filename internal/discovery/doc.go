// Package discovery advertises running emulators over mDNS and finds them.
//
// An emulator started with the debug link registers a "_tokenui-debug._tcp"
// service carrying the name of the active layout and the build version in
// its TXT records. Test harnesses browse for the service to find the debug
// link address without configuration.
//
// # Usage Example
//
//	emulators, err := discovery.NewScanner().Scan(ctx)
//	if err != nil {
//	    return err
//	}
//	for _, e := range emulators {
//	    fmt.Println(e.Instance, e.Addr())
//	}
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - Firewall must allow mDNS (UDP port 5353)
package discovery
