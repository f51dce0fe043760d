package pdf

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/kpauljoseph/wrapbench/pkg/models"
)

const (
	FooterOffset = -15.0
	FooterHeight = 10.0
)

var (
	FooterFont  = models.FontSpec{Family: "Arial", Style: "I", Size: 8}
	FooterColor = models.RGB{R: 50, G: 50, B: 50}
)

// Document is an A4 portrait fpdf document measured in millimetres. It
// stamps "Page N of M" on every page.
type Document struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
}

func NewDocument(title string) *Document {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreator("wrapbench", true)
	if title != "" {
		pdf.SetTitle(title, true)
	}
	pdf.AliasNbPages("")

	d := &Document{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
	pdf.SetFooterFunc(d.footer)
	return d
}

func (d *Document) footer() {
	d.pdf.SetY(FooterOffset)
	d.SetFont(FooterFont)
	d.SetTextColor(FooterColor)
	d.pdf.CellFormat(0, FooterHeight, fmt.Sprintf("Page %d of {nb}", d.pdf.PageNo()), "", 0, "C", false, 0, "")
}

func (d *Document) AddPage() {
	d.pdf.AddPage()
}

func (d *Document) MultiCell(w, h float64, text, align string) {
	d.pdf.MultiCell(w, h, d.translate(text), "", align, false)
}

// UnbreakableMultiCell moves to a fresh page first when the wrapped block
// would cross the bottom margin. A block taller than a whole page is drawn
// from the top of a page and left to the automatic page break.
func (d *Document) UnbreakableMultiCell(w, h float64, text string) {
	text = d.translate(text)

	if d.blockHeight(w, h, text) > d.spaceLeft() && !d.atPageTop() {
		d.pdf.AddPage()
	}
	d.pdf.MultiCell(w, h, text, "", "", false)
}

// blockHeight is the height MultiCell would use for text already translated
// to the core font code page. fpdf's SplitText cannot be used here: it
// decodes the single-byte text as UTF-8 again and indexes the 256-entry
// width table with U+FFFD for every accented character.
func (d *Document) blockHeight(w, h float64, text string) float64 {
	return float64(d.countLines(text, w)) * h
}

// countLines greedily packs space separated words into lines of the cell's
// inner width, breaking words wider than a line byte by byte.
func (d *Document) countLines(text string, w float64) int {
	maxWidth := d.cellWidth(w) - 2*d.pdf.GetCellMargin()
	space := d.pdf.GetStringWidth(" ")

	lines := 0
	for _, para := range strings.Split(text, "\n") {
		lines++
		used := 0.0
		for i, word := range strings.Split(para, " ") {
			ww := d.pdf.GetStringWidth(word)
			if i > 0 {
				if used+space+ww <= maxWidth {
					used += space + ww
					continue
				}
				lines++
			}
			for ww > maxWidth && maxWidth > 0 {
				n := d.fittingBytes(word, maxWidth)
				lines++
				word = word[n:]
				ww = d.pdf.GetStringWidth(word)
			}
			used = ww
		}
	}
	return lines
}

// fittingBytes is the number of leading bytes of s that fit in width, at
// least one.
func (d *Document) fittingBytes(s string, width float64) int {
	used := 0.0
	for i := 0; i < len(s); i++ {
		used += d.pdf.GetStringWidth(s[i : i+1])
		if used > width {
			return max(i, 1)
		}
	}
	return len(s)
}

func (d *Document) cellWidth(w float64) float64 {
	if w != 0 {
		return w
	}
	pageWidth, _ := d.pdf.GetPageSize()
	_, _, right, _ := d.pdf.GetMargins()
	return pageWidth - right - d.pdf.GetX()
}

func (d *Document) spaceLeft() float64 {
	_, pageHeight := d.pdf.GetPageSize()
	_, bottom := d.pdf.GetAutoPageBreak()
	return pageHeight - bottom - d.pdf.GetY()
}

func (d *Document) atPageTop() bool {
	_, top, _, _ := d.pdf.GetMargins()
	return d.pdf.GetY() <= top
}

func (d *Document) Ln(h float64) {
	d.pdf.Ln(h)
}

func (d *Document) SetTextColor(c models.RGB) {
	d.pdf.SetTextColor(c.R, c.G, c.B)
}

func (d *Document) SetFont(font models.FontSpec) {
	d.pdf.SetFont(font.Family, font.Style, font.Size)
}

func (d *Document) StringWidth(s string) float64 {
	return d.pdf.GetStringWidth(d.translate(s))
}

func (d *Document) PageCount() int {
	return d.pdf.PageNo()
}

func (d *Document) Err() error {
	return d.pdf.Error()
}

func (d *Document) WriteFile(path string) error {
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF %s: %w", path, err)
	}
	return nil
}
