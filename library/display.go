package library

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Renderer presents library state to a person. Implementations must not
// modify the records they are given.
type Renderer interface {
	RenderBooks(books []*Book)
	// RenderMember shows a placeholder when m is nil.
	RenderMember(m *Member)
}

// NopRenderer discards everything.
type NopRenderer struct{}

func (NopRenderer) RenderBooks([]*Book)  {}
func (NopRenderer) RenderMember(*Member) {}

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorBold  = "\033[1m"
)

// TextRenderer writes plain-text panels to w, optionally with ANSI colors.
type TextRenderer struct {
	w     io.Writer
	color bool
}

func NewTextRenderer(w io.Writer, color bool) *TextRenderer {
	return &TextRenderer{w: w, color: color}
}

func (r *TextRenderer) RenderBooks(books []*Book) {
	var sb strings.Builder
	sb.WriteString(r.paint(colorBold, "Books"))
	sb.WriteByte('\n')
	for _, b := range books {
		sb.WriteString(r.prettyBook(b))
		sb.WriteByte('\n')
	}
	io.WriteString(r.w, sb.String())
}

func (r *TextRenderer) RenderMember(m *Member) {
	if m == nil {
		fmt.Fprintln(r.w, "No member selected.")
		return
	}
	fmt.Fprintf(r.w, "%s\n%s\nFees: $%s\n", r.paint(colorBold, m.Name), m.Email, FormatFees(m.Fees))
}

// prettyBook formats a book for lists.
func (r *TextRenderer) prettyBook(b *Book) string {
	mark := r.paint(colorGreen, "✔")
	if !b.Available {
		mark = r.paint(colorRed, "✗")
	}
	return fmt.Sprintf("%s %s: %s — %s", mark, b.ID, b.Title, b.Author)
}

func (r *TextRenderer) paint(color, s string) string {
	if !r.color {
		return s
	}
	return color + s + colorReset
}

// FormatFees prints the shortest exact decimal, e.g. 0, 3.5, 7.
func FormatFees(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
