package output_test

import (
	"os"
	"path/filepath"
	"regexp"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/wrapbench/internal/output"
)

var _ = Describe("Naming", func() {
	stamp := time.Date(2024, time.March, 5, 7, 8, 9, 0, time.Local)

	It("formats the run timestamp into the file name", func() {
		Expect(output.FileName(stamp)).To(Equal("fpdf2_giang_experiment_20240305_070809.pdf"))
	})

	It("places the file in the temp directory", func() {
		path := output.TempPath(time.Now())
		Expect(filepath.Dir(path)).To(Equal(filepath.Clean(os.TempDir())))
		Expect(filepath.Base(path)).To(MatchRegexp(`^fpdf2_giang_experiment_\d{8}_\d{6}\.pdf$`))

		digits := regexp.MustCompile(`\d`).FindAllString(filepath.Base(path), -1)
		Expect(digits).To(HaveLen(15)) // the "2" in fpdf2 plus 14 timestamp digits
	})

	It("uses a configured directory when given", func() {
		Expect(output.PathIn("/srv/out", stamp)).To(Equal("/srv/out/fpdf2_giang_experiment_20240305_070809.pdf"))
		Expect(filepath.Dir(output.PathIn("", stamp))).To(Equal(filepath.Clean(os.TempDir())))
	})

	DescribeTable("ParseFileName",
		func(name string, ok bool) {
			t, parsed := output.ParseFileName(name)
			Expect(parsed).To(Equal(ok))
			if ok {
				Expect(t.Equal(stamp)).To(BeTrue())
			}
		},
		Entry("bare name", "fpdf2_giang_experiment_20240305_070809.pdf", true),
		Entry("full path", "/tmp/fpdf2_giang_experiment_20240305_070809.pdf", true),
		Entry("wrong prefix", "report_20240305_070809.pdf", false),
		Entry("wrong extension", "fpdf2_giang_experiment_20240305_070809.png", false),
		Entry("bad timestamp", "fpdf2_giang_experiment_2024.pdf", false),
	)
})
