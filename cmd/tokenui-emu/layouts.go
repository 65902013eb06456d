package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/muurk/tokenui/internal/emulator"
	"github.com/muurk/tokenui/internal/layout"
	"github.com/muurk/tokenui/internal/ui"
)

// Layout kinds accepted by serve.
const (
	kindPin        = "pin"
	kindPassphrase = "passphrase"
	kindConfirm    = "confirm"
)

// layoutFlags holds the texts of the layout being run.
type layoutFlags struct {
	prompt      string
	subprompt   string
	warning     string
	allowCancel bool
	traceLayout bool

	title       string
	action      string
	description string
	verb        string
	reverse     bool

	// debugLink is the listen address of the debug link, empty to disable it.
	debugLink string
	advertise bool
	instance  string
}

func (f *layoutFlags) bindPin(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.prompt, "prompt", "Enter PIN", "Prompt shown while no digit is entered")
	cmd.Flags().StringVar(&f.subprompt, "subprompt", "", "Secondary prompt line")
	cmd.Flags().StringVar(&f.warning, "warning", "", "Warning shown instead of the prompt")
	cmd.Flags().BoolVar(&f.allowCancel, "allow-cancel", true, "Show the cancel button while the PIN is empty")
	cmd.Flags().BoolVar(&f.traceLayout, "trace-layout", false, "Include the digit layout in debug link traces")
}

func (f *layoutFlags) bindPassphrase(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.prompt, "prompt", "Enter passphrase", "Prompt shown as the layout title")
}

func (f *layoutFlags) bindConfirm(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "CONFIRM", "Title of the frame")
	cmd.Flags().StringVar(&f.action, "action", "Confirm action?", "Action text, rendered bold")
	cmd.Flags().StringVar(&f.description, "description", "", "Description text")
	cmd.Flags().StringVar(&f.verb, "verb", layout.DefaultVerb, "Label of the confirm button")
	cmd.Flags().BoolVar(&f.reverse, "reverse", false, "Show the description before the action")
}

func (f *layoutFlags) bindDebugLink(cmd *cobra.Command, defaultAddr string) {
	cmd.Flags().StringVar(&f.debugLink, "debuglink", defaultAddr, "Debug link listen address (empty disables it)")
	cmd.Flags().BoolVar(&f.advertise, "advertise", false, "Advertise the debug link over mDNS (default from settings)")
	cmd.Flags().StringVar(&f.instance, "instance", "", "mDNS instance name (default: tokenui-<hostname>-<pid>)")
}

// build returns the layout of the given kind.
func (f *layoutFlags) build(kind string) (*layout.Layout, error) {
	switch kind {
	case kindPin:
		return layout.RequestPin(layout.RequestPinOptions{
			Prompt:      f.prompt,
			Subprompt:   f.subprompt,
			Warning:     f.warning,
			AllowCancel: f.allowCancel,
			TraceLayout: f.traceLayout,
		}), nil
	case kindPassphrase:
		return layout.RequestPassphrase(f.prompt), nil
	case kindConfirm:
		return layout.ConfirmAction(layout.ConfirmActionOptions{
			Title:       f.title,
			Action:      f.action,
			Description: f.description,
			Verb:        f.verb,
			Reverse:     f.reverse,
		}), nil
	}
	return nil, fmt.Errorf("unknown layout %q (want %s, %s or %s)", kind, kindPin, kindPassphrase, kindConfirm)
}

var (
	pinFlags        layoutFlags
	passphraseFlags layoutFlags
	confirmFlags    layoutFlags
)

var pinCmd = &cobra.Command{
	Use:   "pin",
	Short: "Run the PIN entry layout",
	Long: `Open the PIN keyboard on the emulated display.

The digit keys are shuffled on every run. The layout finishes when the PIN
is confirmed or entry is cancelled, and the result is printed on exit.`,
	Example: `  # Plain PIN entry
  tokenui-emu pin

  # Retry after a wrong PIN, without a cancel button
  tokenui-emu pin --warning "Wrong PIN, 2 tries left" --allow-cancel=false

  # Let a test drive the keyboard through the debug link
  tokenui-emu pin --debuglink 127.0.0.1:21325`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd, &pinFlags, kindPin)
	},
}

var passphraseCmd = &cobra.Command{
	Use:   "passphrase",
	Short: "Run the passphrase entry layout",
	Long: `Open the multi-tap passphrase keyboard on the emulated display.

Tap a key repeatedly to cycle its characters and swipe left or right to
switch between the four key pages.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd, &passphraseFlags, kindPassphrase)
	},
}

var confirmCmd = &cobra.Command{
	Use:   "confirm",
	Short: "Run the action confirmation layout",
	Long: `Open a confirmation screen with paginated text.

Swipe up and down to page through long descriptions. The cancel and
confirm buttons appear on the last page.`,
	Example: `  tokenui-emu confirm --title "WIPE" --action "Wipe device?" \
    --description "All data will be lost." --verb WIPE`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd, &confirmFlags, kindConfirm)
	},
}

func init() {
	pinFlags.bindPin(pinCmd)
	passphraseFlags.bindPassphrase(passphraseCmd)
	confirmFlags.bindConfirm(confirmCmd)
	for _, c := range []struct {
		cmd   *cobra.Command
		flags *layoutFlags
	}{
		{pinCmd, &pinFlags},
		{passphraseCmd, &passphraseFlags},
		{confirmCmd, &confirmFlags},
	} {
		c.flags.bindDebugLink(c.cmd, "")
		rootCmd.AddCommand(c.cmd)
	}
}

// runInteractive shows the layout in a Bubble Tea program, optionally with
// the debug link attached, and prints the result.
func runInteractive(cmd *cobra.Command, f *layoutFlags, kind string) error {
	l, err := f.build(kind)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	model := emulator.New(l, emulator.Options{
		Scale:    settings.Display.Scale,
		FadeStep: settings.Display.FadeStep,
	})
	p := tea.NewProgram(model, append(emulator.ProgramOptions(), tea.WithContext(ctx))...)

	var (
		services *errgroup.Group
		driver   *emulator.Driver
	)
	svcCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if f.debugLink != "" {
		if !cmd.Flags().Changed("advertise") {
			f.advertise = settings.DebugLink.Advertise
		}
		driver = emulator.NewDriver(model, p.Send)
		services, svcCtx = errgroup.WithContext(svcCtx)
		if _, err := startDebugLink(svcCtx, services, driver, f, l.Name()); err != nil {
			cancel()
			_ = services.Wait()
			return err
		}
	}

	final, runErr := p.Run()
	if errors.Is(runErr, tea.ErrProgramKilled) {
		runErr = nil
	}
	if services != nil {
		driver.Stop()
		if runErr == nil {
			time.Sleep(resultLinger)
		}
		cancel()
		if err := services.Wait(); err != nil && runErr == nil {
			runErr = err
		}
	}
	if runErr != nil {
		return fmt.Errorf("emulator: %w", runErr)
	}

	var (
		res layout.Result
		ok  bool
	)
	if m, isModel := final.(emulator.Model); isModel {
		res, ok = m.Result()
	}
	if !ok {
		fmt.Println(ui.NewWarningResult(l.Name() + " closed without a result").Render())
		return nil
	}
	fmt.Println(ui.NewLayoutResult(l.Name(), res).Render())
	return nil
}
