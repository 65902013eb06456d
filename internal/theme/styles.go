package theme

import "github.com/muurk/tokenui/internal/display"

// LabelStyle describes a single line of text.
type LabelStyle struct {
	Font            display.Font
	TextColor       display.Color
	BackgroundColor display.Color
}

// TextStyle describes flowing paragraph text. The font is chosen per
// paragraph.
type TextStyle struct {
	TextColor       display.Color
	BackgroundColor display.Color
	EllipsisColor   display.Color
}

// ButtonStyle is the look of a button in one state.
type ButtonStyle struct {
	Font            display.Font
	TextColor       display.Color
	ButtonColor     display.Color
	BackgroundColor display.Color
}

// ButtonStyleSheet holds a button style per state.
type ButtonStyleSheet struct {
	Normal   ButtonStyle
	Active   ButtonStyle
	Disabled ButtonStyle
}

func LabelDefault() LabelStyle {
	return LabelStyle{Font: FontNormal, TextColor: FG, BackgroundColor: BG}
}

func LabelKeyboard() LabelStyle {
	return LabelStyle{Font: FontBold, TextColor: FG, BackgroundColor: BG}
}

func LabelKeyboardMinor() LabelStyle {
	return LabelStyle{Font: FontNormal, TextColor: GreyLight, BackgroundColor: BG}
}

func LabelKeyboardWarning() LabelStyle {
	return LabelStyle{Font: FontBold, TextColor: Red, BackgroundColor: BG}
}

func LabelTitle() LabelStyle {
	return LabelStyle{Font: FontBold, TextColor: GreyLight, BackgroundColor: BG}
}

func TextDefault() TextStyle {
	return TextStyle{TextColor: FG, BackgroundColor: BG, EllipsisColor: GreyLight}
}

func ButtonDefault() ButtonStyleSheet {
	return ButtonStyleSheet{
		Normal:   ButtonStyle{Font: FontBold, TextColor: FG, ButtonColor: GreyDark, BackgroundColor: BG},
		Active:   ButtonStyle{Font: FontBold, TextColor: FG, ButtonColor: GreyMedium, BackgroundColor: BG},
		Disabled: ButtonStyle{Font: FontBold, TextColor: GreyLight, ButtonColor: GreyDark, BackgroundColor: BG},
	}
}

func ButtonConfirm() ButtonStyleSheet {
	return ButtonStyleSheet{
		Normal:   ButtonStyle{Font: FontBold, TextColor: FG, ButtonColor: Green, BackgroundColor: BG},
		Active:   ButtonStyle{Font: FontBold, TextColor: FG, ButtonColor: GreenDark, BackgroundColor: BG},
		Disabled: ButtonStyle{Font: FontBold, TextColor: GreyLight, ButtonColor: GreyDark, BackgroundColor: BG},
	}
}

func ButtonCancel() ButtonStyleSheet {
	return ButtonStyleSheet{
		Normal:   ButtonStyle{Font: FontBold, TextColor: FG, ButtonColor: Red, BackgroundColor: BG},
		Active:   ButtonStyle{Font: FontBold, TextColor: FG, ButtonColor: RedDark, BackgroundColor: BG},
		Disabled: ButtonStyle{Font: FontBold, TextColor: GreyLight, ButtonColor: GreyDark, BackgroundColor: BG},
	}
}

// ButtonReset is the erase button, drawn on the background until pressed.
func ButtonReset() ButtonStyleSheet {
	return ButtonStyleSheet{
		Normal:   ButtonStyle{Font: FontBold, TextColor: FG, ButtonColor: BG, BackgroundColor: BG},
		Active:   ButtonStyle{Font: FontBold, TextColor: FG, ButtonColor: GreyDark, BackgroundColor: BG},
		Disabled: ButtonStyle{Font: FontBold, TextColor: GreyDark, ButtonColor: BG, BackgroundColor: BG},
	}
}

func ButtonPin() ButtonStyleSheet {
	return ButtonStyleSheet{
		Normal:   ButtonStyle{Font: FontMono, TextColor: FG, ButtonColor: GreyDark, BackgroundColor: BG},
		Active:   ButtonStyle{Font: FontMono, TextColor: FG, ButtonColor: GreyMedium, BackgroundColor: BG},
		Disabled: ButtonStyle{Font: FontMono, TextColor: GreyMedium, ButtonColor: BG, BackgroundColor: BG},
	}
}
