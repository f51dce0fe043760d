package layout_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/wrapbench/internal/config"
	"github.com/kpauljoseph/wrapbench/internal/layout"
	"github.com/kpauljoseph/wrapbench/internal/pdf"
	"github.com/kpauljoseph/wrapbench/pkg/models"
)

var _ = Describe("Dispatcher on an fpdf document", func() {
	var (
		doc        *pdf.Document
		dispatcher *layout.Dispatcher
		font       = models.FontSpec{Family: "Arial", Size: 9}
	)

	BeforeEach(func() {
		doc = pdf.NewDocument("")
		dispatcher = layout.NewDispatcher(doc, layout.Options{
			Font:         font,
			Palette:      config.DefaultPalette(),
			NeutralColor: config.DefaultNeutralColor(),
		}, dispatcherTestLogger())
		doc.AddPage()
	})

	It("derives the measured width from the alphabet in Arial 9", func() {
		reference := pdf.NewDocument("")
		reference.SetFont(font)
		avg := reference.StringWidth(layout.Alphabet) / 52

		Expect(dispatcher.AvgCharWidth()).To(BeNumerically("~", avg, 1e-9))
		Expect(dispatcher.MeasuredWidth()).To(BeNumerically("~", 80*avg, 1e-9))
		// 80 average Arial 9 characters land between 100 and 190 mm on A4.
		Expect(dispatcher.MeasuredWidth()).To(BeNumerically(">", 100))
		Expect(dispatcher.MeasuredWidth()).To(BeNumerically("<", 190))
	})

	It("keeps the measurement when the active font changes later", func() {
		before := dispatcher.MeasuredWidth()
		doc.SetFont(models.FontSpec{Family: "Arial", Size: 20})
		Expect(dispatcher.MeasuredWidth()).To(Equal(before))
	})

	It("lays out accented paragraphs in every mode, unbreakable included", func() {
		paragraphs := []string{
			"Café déjà vu, crème brûlée à la carte.",
			"“Quoted” naïve façade – Ünïcödé text.",
		}
		run := func() {
			dispatcher.Run(models.NewModeSet(0, 1, 2, 3, 4), paragraphs)
		}
		Expect(run).NotTo(Panic())
		Expect(doc.Err()).NotTo(HaveOccurred())
		Expect(doc.PageCount()).To(Equal(6))
	})
})
