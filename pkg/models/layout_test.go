package models_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/wrapbench/pkg/models"
)

var _ = Describe("Layout Models", func() {
	Context("ModeSet", func() {
		It("orders members descending regardless of input order", func() {
			set := models.NewModeSet(models.ModePreWrapped, models.ModeColorized)
			Expect(set.Ordered()).To(Equal([]models.Mode{models.ModeColorized, models.ModePreWrapped}))
		})

		It("collapses duplicates", func() {
			set := models.NewModeSet(3, 3, 0)
			Expect(set).To(HaveLen(2))
			Expect(set.Ordered()).To(Equal([]models.Mode{models.ModeMeasuredWidth, models.ModeUnbreakable}))
		})

		It("drops modes outside the known range when ordering", func() {
			set := models.NewModeSet(7, 2)
			Expect(set.Ordered()).To(Equal([]models.Mode{models.ModeUnwrapped}))
		})

		It("returns nothing for an empty set", func() {
			Expect(models.NewModeSet().Ordered()).To(BeEmpty())
		})
	})

	Context("Mode names", func() {
		It("describes known and unknown modes", func() {
			Expect(models.ModeColorized.String()).To(Equal("mode 4 (colorized)"))
			Expect(models.Mode(9).String()).To(Equal("mode 9 (unknown)"))
		})
	})

	Context("ParseModes", func() {
		DescribeTable("parsing mode lists",
			func(input string, expected []int, shouldFail bool) {
				modes, err := models.ParseModes(input)
				if shouldFail {
					Expect(err).To(HaveOccurred())
					return
				}
				Expect(err).NotTo(HaveOccurred())
				Expect(modes).To(Equal(expected))
			},
			Entry("two modes", "4,3", []int{4, 3}, false),
			Entry("spaces and trailing comma", " 1, 4 ,", []int{1, 4}, false),
			Entry("empty list", "", nil, false),
			Entry("out of range", "5", nil, true),
			Entry("not a number", "x", nil, true),
		)
	})
})
