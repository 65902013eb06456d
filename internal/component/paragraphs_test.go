package component

import (
	"slices"
	"testing"

	"github.com/muurk/tokenui/internal/display"
	"github.com/muurk/tokenui/internal/geometry"
	"github.com/muurk/tokenui/internal/theme"
)

// With the default 8x16 fonts the area holds 10 columns and 3 lines.
var smallArea = geometry.RectFromSize(geometry.Pt(0, 0), geometry.Off(80, 48))

func TestParagraphs_Empty(t *testing.T) {
	p := NewParagraphs(smallArea)
	if p.PageCount() != 1 {
		t.Errorf("PageCount() = %d, want 1", p.PageCount())
	}
	if got := TraceString(p); got != "<Paragraphs >" {
		t.Errorf("TraceString() = %q", got)
	}

	p.Add(theme.FontBold, "   ")
	if p.PageCount() != 1 || TraceString(p) != "<Paragraphs >" {
		t.Error("blank paragraph produced lines")
	}
}

func TestParagraphs_Pages(t *testing.T) {
	p := NewParagraphs(smallArea).
		Add(theme.FontNormal, "one two three four five six seven eight nine ten")

	if p.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", p.PageCount())
	}
	want := []string{
		"<Paragraphs one two\nthree four\nfive...\n>",
		"<Paragraphs six seven\neight nine\nten\n>",
	}
	for page, w := range want {
		p.ChangePage(page)
		if got := TraceString(p); got != w {
			t.Errorf("page %d trace = %q, want %q", page, got, w)
		}
	}
}

func TestParagraphs_EllipsisBeforeNextParagraph(t *testing.T) {
	p := NewParagraphs(smallArea).
		Add(theme.FontBold, "aa bb cc").
		Add(theme.FontNormal, "dd").
		Add(theme.FontNormal, "ee ff").
		Add(theme.FontNormal, "gg")

	want := "<Paragraphs aa bb cc\ndd\nee ff...\n>"
	if got := TraceString(p); got != want {
		t.Errorf("trace = %q, want %q", got, want)
	}
	p.ChangePage(1)
	if got := TraceString(p); got != "<Paragraphs gg\n>" {
		t.Errorf("page 1 trace = %q", got)
	}
}

func TestParagraphs_Wrapping(t *testing.T) {
	tests := []struct {
		name string
		area geometry.Rect
		text string
		want string
	}{
		{
			name: "long word is broken",
			area: geometry.RectFromSize(geometry.Pt(0, 0), geometry.Off(40, 48)),
			text: "abcdefghij",
			want: "<Paragraphs abcde\nfghij\n>",
		},
		{
			name: "explicit newlines",
			area: smallArea,
			text: "a\n\nb",
			want: "<Paragraphs a\n\nb\n>",
		},
		{
			name: "exact fit",
			area: smallArea,
			text: "abcde fghi",
			want: "<Paragraphs abcde fghi\n>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParagraphs(tt.area).Add(theme.FontNormal, tt.text)
			if got := TraceString(p); got != tt.want {
				t.Errorf("trace = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParagraphs_SetArea(t *testing.T) {
	p := NewParagraphs(smallArea).
		Add(theme.FontNormal, "one two three four five six seven eight nine ten")
	p.ChangePage(1)

	p.SetArea(geometry.RectFromSize(geometry.Pt(0, 0), geometry.Off(240, 48)))
	if p.PageCount() != 1 || p.ActivePage() != 0 {
		t.Errorf("after SetArea: PageCount() = %d, ActivePage() = %d", p.PageCount(), p.ActivePage())
	}
}

func TestParagraphs_ChangePageOutOfRange(t *testing.T) {
	p := NewParagraphs(smallArea).Add(theme.FontNormal, "short")
	defer func() {
		if recover() == nil {
			t.Error("ChangePage(1) on a single page did not panic")
		}
	}()
	p.ChangePage(1)
}

func TestParagraphs_Paint(t *testing.T) {
	area := smallArea.Translate(geometry.Off(5, 10))
	p := NewParagraphs(area).
		Add(theme.FontNormal, "one two three four five six seven eight nine ten")
	rec := display.NewRecorder()
	p.Paint(rec)

	want := []string{"one two", "three four", "five", "..."}
	if got := rec.Texts(); !slices.Equal(got, want) {
		t.Errorf("Texts() = %q, want %q", got, want)
	}
	if got := rec.Ops[0].Point; got != geometry.Pt(5, 26) {
		t.Errorf("first baseline = %v, want (5, 26)", got)
	}
	if got := rec.Ops[3].Point; got != geometry.Pt(37, 58) {
		t.Errorf("ellipsis baseline = %v, want (37, 58)", got)
	}
}
