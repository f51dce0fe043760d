package config_test

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/wrapbench/internal/config"
	"github.com/kpauljoseph/wrapbench/pkg/models"
)

// paletteYAML builds a five entry palette whose first entry is first.
func paletteYAML(first string) string {
	return "palette:\n  - " + first + "\n" + strings.Repeat("  - {r: 10, g: 20, b: 30}\n", 4)
}

var _ = Describe("Config", func() {
	var testDir string

	writeConfig := func(content string) string {
		path := filepath.Join(testDir, "config.yaml")
		Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
		return path
	}

	BeforeEach(func() {
		var err error
		testDir, err = os.MkdirTemp("", "config-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(testDir)
	})

	Context("when the file does not exist", func() {
		It("returns the defaults", func() {
			cfg, err := config.Load(filepath.Join(testDir, "missing.yaml"))
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Modes).To(Equal([]int{4, 3}))
			Expect(cfg.Font).To(Equal(models.FontSpec{Family: "Arial", Size: 9}))
			Expect(cfg.Palette).To(HaveLen(5))
			Expect(cfg.Palette[0]).To(Equal(models.RGB{R: 220, G: 20, B: 60}))
			Expect(*cfg.NeutralColor).To(Equal(models.RGB{R: 42, G: 31, B: 34}))
			Expect(cfg.CopyDestination).To(BeEmpty())
			Expect(cfg.Validate()).To(Succeed())
		})
	})

	Context("when the file overrides values", func() {
		It("keeps overrides and fills the rest", func() {
			path := writeConfig(`
modes: [0, 1, 2]
copy_destination: /tmp/out
font:
  size: 11
neutral_color: {r: 0, g: 0, b: 0}
`)
			cfg, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Modes).To(Equal([]int{0, 1, 2}))
			Expect(cfg.CopyDestination).To(Equal("/tmp/out"))
			Expect(cfg.Font.Family).To(Equal("Arial"))
			Expect(cfg.Font.Size).To(Equal(11.0))
			Expect(*cfg.NeutralColor).To(Equal(models.RGB{}))
			Expect(cfg.Validate()).To(Succeed())
		})

		It("allows an explicitly empty mode list", func() {
			cfg, err := config.Load(writeConfig("modes: []\n"))
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Modes).To(BeEmpty())
			Expect(cfg.ModeSet().Ordered()).To(BeEmpty())
		})
	})

	Context("validation", func() {
		DescribeTable("rejects out of range values",
			func(content string) {
				cfg, err := config.Load(writeConfig(content))
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Validate()).To(HaveOccurred())
			},
			Entry("mode above 4", "modes: [7]\n"),
			Entry("negative mode", "modes: [-1]\n"),
			Entry("negative palette channel", paletteYAML("{r: -1, g: 0, b: 0}")),
			Entry("palette channel above 255", paletteYAML("{r: 0, g: 256, b: 0}")),
			Entry("palette with four colors", "palette:\n"+strings.Repeat("  - {r: 1, g: 2, b: 3}\n", 4)),
			Entry("palette with six colors", "palette:\n"+strings.Repeat("  - {r: 1, g: 2, b: 3}\n", 6)),
			Entry("negative font size", "font: {size: -2}\n"),
			Entry("unknown font style", "font: {style: Z}\n"),
		)
	})

	It("ships a five color default palette", func() {
		Expect(config.DefaultPalette()).To(HaveLen(5))
		Expect(config.Default().Palette).To(Equal(config.DefaultPalette()))
	})

	It("accepts a custom five color palette", func() {
		cfg, err := config.Load(writeConfig(paletteYAML("{r: 0, g: 0, b: 0}")))
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Palette).To(HaveLen(5))
		Expect(cfg.Palette[0]).To(Equal(models.RGB{}))
		Expect(cfg.Validate()).To(Succeed())
	})

	It("fails on malformed YAML", func() {
		_, err := config.Load(writeConfig("modes: [4,\n"))
		Expect(err).To(HaveOccurred())
	})

	It("builds a mode set from the configured modes", func() {
		cfg := config.Default()
		cfg.Modes = []int{1, 4, 1}
		Expect(cfg.ModeSet().Ordered()).To(Equal([]models.Mode{models.ModeColorized, models.ModePreWrapped}))
	})
})
