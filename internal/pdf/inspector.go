package pdf

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/kpauljoseph/wrapbench/pkg/models"
)

func init() {
	// pdfcpu would otherwise install a config.yml under the user's config dir.
	model.ConfigPath = "disable"
}

type Report struct {
	Path      string
	PageCount int
	Pages     []models.PageDimensions
}

// Inspect validates a written PDF and reports its page geometry in points.
func Inspect(path string) (*Report, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	if err := api.ValidateFile(path, conf); err != nil {
		return nil, fmt.Errorf("PDF validation failed for %s: %w", path, err)
	}

	count, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to count pages: %w", err)
	}

	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get page dimensions: %w", err)
	}

	report := &Report{Path: path, PageCount: count}
	for _, dim := range dims {
		report.Pages = append(report.Pages, models.PageDimensions{
			Width:  dim.Width,
			Height: dim.Height,
		})
	}
	return report, nil
}
