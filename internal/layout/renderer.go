package layout

import "github.com/kpauljoseph/wrapbench/pkg/models"

// Renderer is the drawing surface the dispatcher lays paragraphs onto.
// Widths and heights are in the renderer's user unit. A width of 0 means
// "up to the right margin".
type Renderer interface {
	AddPage()
	MultiCell(w, h float64, text, align string)
	// UnbreakableMultiCell draws text as one block that never straddles a
	// page boundary.
	UnbreakableMultiCell(w, h float64, text string)
	Ln(h float64)
	SetTextColor(c models.RGB)
	SetFont(font models.FontSpec)
	StringWidth(s string) float64
}
