package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/tokenui/internal/debuglink"
	"github.com/muurk/tokenui/internal/discovery"
	"github.com/muurk/tokenui/internal/ui"
)

// Discover command flags
var (
	discoverTimeout  time.Duration
	discoverInstance string
	discoverRead     bool
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find emulators advertising a debug link",
	Long: `Browse mDNS for emulators started with --advertise and list their
debug link endpoints and current layouts.`,
	Example: `  # Scan for 5 seconds (default)
  tokenui-emu discover

  # Wait for one emulator and print its component tree
  tokenui-emu discover --instance tokenui-ci-4242 --read`,
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().DurationVar(&discoverTimeout, "timeout", discovery.DefaultScanTimeout, "Scan timeout")
	discoverCmd.Flags().StringVar(&discoverInstance, "instance", "", "Wait for this instance only")
	discoverCmd.Flags().BoolVar(&discoverRead, "read", false, "Connect to each emulator and read its layout")
	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	scanner := discovery.NewScanner()
	scanner.Timeout = discoverTimeout

	var emulators []*discovery.Emulator
	if discoverInstance != "" {
		e, err := scanner.WaitFor(ctx, discoverInstance)
		if err != nil {
			fmt.Println(ui.NewFailureResult("discover", err, []string{
				"check the instance name printed by 'tokenui-emu serve --advertise'",
				"try increasing --timeout",
			}).Render())
			return err
		}
		emulators = append(emulators, e)
	} else {
		fmt.Printf("Scanning for emulators (timeout: %s)...\n\n", discoverTimeout)
		found, err := scanner.Scan(ctx)
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}
		emulators = found
	}

	if len(emulators) == 0 {
		r := ui.NewWarningResult("No emulators found")
		r.Hints = []string{
			"start one with 'tokenui-emu serve <layout> --advertise'",
			"multicast DNS must be allowed on the local network",
			"try increasing --timeout",
		}
		fmt.Println(r.Render())
		return nil
	}

	r := ui.NewSuccessResult(fmt.Sprintf("Found %d emulator(s)", len(emulators)))
	for _, e := range emulators {
		r.AddDetail(e.Instance, e.String())
		if discoverRead {
			r.AddDetail("layout", readLayout(ctx, e))
		}
	}
	fmt.Println(r.Render())
	return nil
}

// readLayout returns the component tree of e or the error that prevented
// reading it.
func readLayout(ctx context.Context, e *discovery.Emulator) string {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client, err := debuglink.Dial(ctx, e.Addr())
	if err != nil {
		return err.Error()
	}
	defer client.Close()

	resp, err := client.ReadLayout()
	if err != nil {
		return err.Error()
	}
	if !resp.OK {
		return resp.Error
	}
	return resp.Trace
}
