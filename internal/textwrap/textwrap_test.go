package textwrap_test

import (
	"strings"

	"github.com/mattn/go-runewidth"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/wrapbench/internal/paragraphs"
	"github.com/kpauljoseph/wrapbench/internal/textwrap"
)

var _ = Describe("Textwrap", func() {
	DescribeTable("Wrap",
		func(text string, width int, expected []string) {
			Expect(textwrap.Wrap(text, width)).To(Equal(expected))
		},
		Entry("fits on one line", "lorem ipsum", 20, []string{"lorem ipsum"}),
		Entry("breaks between words", "lorem ipsum dolor", 11, []string{"lorem ipsum", "dolor"}),
		Entry("turns each whitespace character into a space", "  lorem \t ipsum\n\ndolor ", 80, []string{"  lorem   ipsum  dolor"}),
		Entry("keeps interior runs of spaces", "a  b   c", 10, []string{"a  b   c"}),
		Entry("drops spaces at line edges", "lorem    ipsum", 7, []string{"lorem", "ipsum"}),
		Entry("breaks after hyphens between words", "well-known fact", 6, []string{"well-", "known", "fact"}),
		Entry("keeps hyphenated words together when they fit", "well-known fact", 15, []string{"well-known fact"}),
		Entry("does not break a leading hyphen", "-flag value", 6, []string{"-flag", "value"}),
		Entry("exact width", "abc def", 7, []string{"abc def"}),
		Entry("splits long words on an empty line", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}),
		Entry("fills the current line before splitting", "ab cdefghij", 6, []string{"ab cde", "fghij"}),
		Entry("empty text", "", 10, nil),
		Entry("whitespace only", " \n\t", 10, nil),
		Entry("wrapping disabled", "a  b ", 0, []string{"a  b"}),
		Entry("wide runes count two columns", "日本語", 4, []string{"日本", "語"}),
		Entry("a wide rune wider than the width still progresses", "日本", 1, []string{"日", "本"}),
	)

	It("joins lines with newlines", func() {
		Expect(textwrap.Fill("lorem ipsum dolor", 11)).To(Equal("lorem ipsum\ndolor"))
	})

	It("never exceeds the width on the built-in paragraphs", func() {
		for _, p := range paragraphs.Default() {
			for _, width := range []int{10, 40, 160} {
				for _, line := range textwrap.Wrap(p, width) {
					Expect(runewidth.StringWidth(line)).To(BeNumerically("<=", width))
				}
			}
		}
	})

	It("preserves every word", func() {
		p := paragraphs.Default()[0]
		wrapped := textwrap.Fill(p, 160)
		Expect(strings.Fields(wrapped)).To(Equal(strings.Fields(p)))
	})
})
