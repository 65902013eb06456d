package layout

import (
	"github.com/muurk/tokenui/internal/component"
	"github.com/muurk/tokenui/internal/geometry"
	"github.com/muurk/tokenui/internal/keyboard"
	"github.com/muurk/tokenui/internal/random"
	"github.com/muurk/tokenui/internal/theme"
	"github.com/muurk/tokenui/internal/widget"
)

// Layout names.
const (
	NameConfirmAction     = "confirm_action"
	NameRequestPin        = "request_pin"
	NameRequestPassphrase = "request_passphrase"
)

// DefaultVerb labels the confirm button when no verb is given.
const DefaultVerb = "CONFIRM"

type (
	confirmPage  = widget.SwipePage[component.Never, widget.PairMsg, *component.Paragraphs, *widget.ButtonPair]
	confirmFrame = widget.Frame[widget.PageMsg[component.Never, widget.PairMsg], *confirmPage]
)

// ConfirmActionOptions configures ConfirmAction.
type ConfirmActionOptions struct {
	Title       string
	Action      string
	Description string
	// Verb labels the confirm button. Empty means DefaultVerb.
	Verb string
	// Reverse puts the description above the action.
	Reverse bool
}

// ConfirmAction shows a titled, paginated text with a cancel and a confirm
// button on its last page.
func ConfirmAction(opts ConfirmActionOptions) *Layout {
	verb := opts.Verb
	if verb == "" {
		verb = DefaultVerb
	}

	frame := widget.NewFrame[widget.PageMsg[component.Never, widget.PairMsg]](theme.Borders(), opts.Title,
		func(area geometry.Rect) *confirmPage {
			return widget.NewSwipePage[component.Never, widget.PairMsg](area, theme.BG,
				func(area geometry.Rect) *component.Paragraphs {
					para := component.NewParagraphs(area)
					if opts.Reverse {
						return para.Add(theme.FontNormal, opts.Description).Add(theme.FontBold, opts.Action)
					}
					return para.Add(theme.FontBold, opts.Action).Add(theme.FontNormal, opts.Description)
				},
				func(area geometry.Rect) *widget.ButtonPair {
					return widget.NewButtonPair(area,
						func(area geometry.Rect) *widget.Button {
							return widget.ButtonWithIcon(area, theme.IconCancel)
						},
						func(area geometry.Rect) *widget.Button {
							return widget.ButtonWithText(area, verb).Styled(theme.ButtonConfirm())
						},
					)
				},
			)
		},
	)

	l := New[widget.PageMsg[component.Never, widget.PairMsg]](NameConfirmAction, frame,
		func(msg widget.PageMsg[component.Never, widget.PairMsg]) (Result, bool) {
			if msg.Kind != widget.PageMsgControls {
				return Result{}, false
			}
			if msg.Controls == widget.PairRight {
				return Result{Kind: Confirmed}, true
			}
			return Result{Kind: Cancelled}, true
		},
	)
	l.title = opts.Title
	return l
}

// RequestPinOptions configures RequestPin.
type RequestPinOptions struct {
	Prompt      string
	Subprompt   string
	Warning     string
	AllowCancel bool
	// Shuffler overrides the digit layout randomness. Nil uses random.Secure.
	Shuffler random.Shuffler
	// TraceLayout exposes the digit layout in Trace for automated tests.
	TraceLayout bool
}

// RequestPin asks for a PIN on a randomized keypad.
func RequestPin(opts RequestPinOptions) *Layout {
	kb := keyboard.NewPinKeyboard(theme.Borders(), keyboard.PinOptions{
		Prompt:      opts.Prompt,
		Subprompt:   opts.Subprompt,
		Warning:     opts.Warning,
		AllowCancel: opts.AllowCancel,
		Shuffler:    opts.Shuffler,
		TraceLayout: opts.TraceLayout,
	})
	l := New[keyboard.PinMsg](NameRequestPin, kb, func(msg keyboard.PinMsg) (Result, bool) {
		if msg.Kind == keyboard.PinConfirmed {
			return Result{Kind: Confirmed, Value: msg.PIN}, true
		}
		return Result{Kind: Cancelled}, true
	})
	l.title = opts.Prompt
	return l
}

// RequestPassphrase asks for a passphrase on the multi-tap keyboard. The
// keyboard has no room for the prompt; it is kept as the layout title for
// the host to show.
func RequestPassphrase(prompt string) *Layout {
	kb := keyboard.NewPassphraseKeyboard(theme.Borders())
	l := New[keyboard.PassphraseMsgKind](NameRequestPassphrase, kb, func(msg keyboard.PassphraseMsgKind) (Result, bool) {
		if msg == keyboard.PassphraseConfirmed {
			return Result{Kind: Confirmed, Value: kb.Passphrase()}, true
		}
		return Result{Kind: Cancelled}, true
	})
	l.title = prompt
	return l
}
