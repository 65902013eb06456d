package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/muurk/tokenui/internal/debuglink"
	"github.com/muurk/tokenui/internal/discovery"
	"github.com/muurk/tokenui/internal/display"
	"github.com/muurk/tokenui/internal/host"
	"github.com/muurk/tokenui/internal/logging"
	"github.com/muurk/tokenui/internal/theme"
	"github.com/muurk/tokenui/internal/ui"
	"github.com/muurk/tokenui/internal/version"
)

// resultLinger keeps the debug link up after the result so clients can
// still read it.
const resultLinger = 500 * time.Millisecond

var serveFlags layoutFlags

var serveCmd = &cobra.Command{
	Use:   "serve [pin|passphrase|confirm]",
	Short: "Run a layout headless behind the debug link",
	Long: `Run a layout without a terminal UI and expose it over the WebSocket
debug link at ws://<addr>/debuglink.

Clients send touch, tap, swipe, read_layout and wait_result requests as
JSON. The command exits once the layout produced its result.`,
	Example: `  # Serve a PIN layout on the address from the settings file
  tokenui-emu serve pin

  # Serve a confirmation on a random port and announce it over mDNS
  tokenui-emu serve confirm --action "Send 1 BTC?" --debuglink 127.0.0.1:0 --advertise`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{kindPin, kindPassphrase, kindConfirm},
	RunE:      runServe,
}

func init() {
	serveFlags.bindPin(serveCmd)
	serveFlags.bindConfirm(serveCmd)
	serveFlags.bindDebugLink(serveCmd, "")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	kind := args[0]
	f := serveFlags
	if kind == kindPassphrase && !cmd.Flags().Changed("prompt") {
		f.prompt = "Enter passphrase"
	}
	if f.debugLink == "" {
		f.debugLink = settings.DebugLink.Addr
	}
	if !cmd.Flags().Changed("advertise") {
		f.advertise = settings.DebugLink.Advertise
	}

	l, err := f.build(kind)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	svcCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	cell := theme.CellSize()
	canvas := display.NewCanvas(theme.ScreenWidth, theme.ScreenHeight, cell.X, cell.Y)
	loop := host.NewLoop(host.NewSession(l, canvas))

	g, gctx := errgroup.WithContext(svcCtx)
	g.Go(func() error {
		if err := loop.Run(gctx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	addr, err := startDebugLink(gctx, g, loop, &f, l.Name())
	if err != nil {
		cancel()
		_ = g.Wait()
		fmt.Println(ui.NewFailureResult("serve "+kind, err, []string{
			"check that no other emulator listens on " + f.debugLink,
			"pass --debuglink 127.0.0.1:0 to pick a free port",
		}).Render())
		return err
	}

	header := ui.NewHeader("Debug link emulator", "tokenui-emu serve "+kind).
		AddParam("Layout", l.Name()).
		AddParam("Endpoint", "ws://"+addr+debuglink.Path)
	if f.advertise {
		header.AddParam("mDNS", f.instanceName())
	}
	fmt.Println(header.Render())

	res, waitErr := loop.WaitResult(gctx)
	if waitErr == nil {
		time.Sleep(resultLinger)
	}
	cancel()
	if err := g.Wait(); err != nil {
		return err
	}

	if waitErr != nil {
		fmt.Println(ui.NewWarningResult(l.Name() + " interrupted").Render())
		return nil
	}
	fmt.Println(ui.NewLayoutResult(l.Name(), res).Render())
	return nil
}

// startDebugLink listens on f.debugLink and runs the debug link server, and
// the mDNS advertisement when enabled, in g. It returns the bound address.
func startDebugLink(ctx context.Context, g *errgroup.Group, d debuglink.Driver, f *layoutFlags, layoutName string) (string, error) {
	ln, err := net.Listen("tcp", f.debugLink)
	if err != nil {
		return "", fmt.Errorf("failed to listen on %s: %w", f.debugLink, err)
	}
	srv := debuglink.NewServer(d)
	g.Go(func() error { return srv.Serve(ctx, ln) })

	if f.advertise {
		port := ln.Addr().(*net.TCPAddr).Port
		instance := f.instanceName()
		g.Go(func() error {
			return discovery.Advertise(ctx, instance, port, map[string]string{
				discovery.TxtLayout:  layoutName,
				discovery.TxtVersion: version.Version,
			})
		})
	}
	logging.Debug("Debug link started",
		zap.String("addr", ln.Addr().String()),
		zap.Bool("advertise", f.advertise),
	)
	return ln.Addr().String(), nil
}

func (f *layoutFlags) instanceName() string {
	if f.instance != "" {
		return f.instance
	}
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}
	return fmt.Sprintf("tokenui-%s-%d", hostname, os.Getpid())
}
