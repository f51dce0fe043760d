// Package layout runs the paragraph layout modes against a Renderer.
package layout

import (
	"github.com/kpauljoseph/wrapbench/internal/textwrap"
	"github.com/kpauljoseph/wrapbench/pkg/logger"
	"github.com/kpauljoseph/wrapbench/pkg/models"
)

const (
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	PreWrapColumns  = 160
	FixedCellWidth  = 160.0
	MeasuredColumns = 80

	UnbreakableLineHeight = 10.0
	LineHeight            = 6.0
	ParagraphGap          = 10.0

	AlignLeft = "L"
)

type Options struct {
	Font         models.FontSpec
	Palette      []models.RGB
	NeutralColor models.RGB
}

type Dispatcher struct {
	renderer     Renderer
	font         models.FontSpec
	palette      []models.RGB
	neutral      models.RGB
	avgCharWidth float64
	logger       *logger.Logger
}

// NewDispatcher activates the body font on r and measures the average
// character width once; every later run reuses that measurement.
func NewDispatcher(r Renderer, opts Options, log *logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.Discard()
	}

	r.SetFont(opts.Font)
	avg := r.StringWidth(Alphabet) / float64(len(Alphabet))
	log.Debug("Average character width for %s %.1f: %.4f", opts.Font.Family, opts.Font.Size, avg)

	palette := make([]models.RGB, len(opts.Palette))
	copy(palette, opts.Palette)

	return &Dispatcher{
		renderer:     r,
		font:         opts.Font,
		palette:      palette,
		neutral:      opts.NeutralColor,
		avgCharWidth: avg,
		logger:       log,
	}
}

func (d *Dispatcher) AvgCharWidth() float64 {
	return d.avgCharWidth
}

// MeasuredWidth is the cell width used by the measured-width and colorized
// modes.
func (d *Dispatcher) MeasuredWidth() float64 {
	return MeasuredColumns * d.avgCharWidth
}

// Run executes every requested mode in descending order and requests one
// page break after each. It returns the modes it executed.
func (d *Dispatcher) Run(modes models.ModeSet, paragraphs []string) []models.Mode {
	executed := modes.Ordered()
	for _, mode := range executed {
		d.logger.Debug("Running %s over %d paragraphs", mode, len(paragraphs))
		d.runMode(mode, paragraphs)
		d.renderer.AddPage()
	}
	return executed
}

func (d *Dispatcher) runMode(mode models.Mode, paragraphs []string) {
	switch mode {
	case models.ModeUnbreakable:
		d.unbreakable(paragraphs)
	case models.ModePreWrapped:
		d.preWrapped(paragraphs)
	case models.ModeUnwrapped:
		d.unwrapped(paragraphs)
	case models.ModeMeasuredWidth:
		d.measuredWidth(paragraphs)
	case models.ModeColorized:
		d.colorized(paragraphs)
	}
}

func (d *Dispatcher) unbreakable(paragraphs []string) {
	for i, p := range paragraphs {
		d.logger.Trace("unbreakable paragraph %d", i)
		d.renderer.UnbreakableMultiCell(0, UnbreakableLineHeight, p)
	}
}

func (d *Dispatcher) preWrapped(paragraphs []string) {
	for i, p := range paragraphs {
		d.logger.Trace("pre-wrapped paragraph %d", i)
		d.renderer.MultiCell(FixedCellWidth, LineHeight, textwrap.Fill(p, PreWrapColumns), AlignLeft)
	}
}

func (d *Dispatcher) unwrapped(paragraphs []string) {
	for i, p := range paragraphs {
		d.logger.Trace("unwrapped paragraph %d", i)
		d.renderer.MultiCell(FixedCellWidth, LineHeight, p, AlignLeft)
	}
}

func (d *Dispatcher) measuredWidth(paragraphs []string) {
	width := d.MeasuredWidth()
	for i, p := range paragraphs {
		d.logger.Trace("measured-width paragraph %d at %.2f", i, width)
		d.renderer.MultiCell(width, LineHeight, p, AlignLeft)
		d.renderer.Ln(ParagraphGap)
	}
}

func (d *Dispatcher) colorized(paragraphs []string) {
	width := d.MeasuredWidth()
	for i, p := range paragraphs {
		if len(d.palette) > 0 {
			c := d.palette[i%len(d.palette)]
			d.logger.Trace("colorized paragraph %d in (%d,%d,%d)", i, c.R, c.G, c.B)
			d.renderer.SetTextColor(c)
		}
		d.renderer.MultiCell(width, LineHeight, p, AlignLeft)
		d.renderer.Ln(ParagraphGap)
	}
	d.renderer.SetTextColor(d.neutral)
}
