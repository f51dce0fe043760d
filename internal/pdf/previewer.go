package pdf

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/gen2brain/go-fitz"
	"golang.org/x/sync/errgroup"

	"github.com/kpauljoseph/wrapbench/pkg/logger"
	"github.com/kpauljoseph/wrapbench/pkg/models"
	"github.com/kpauljoseph/wrapbench/pkg/utils"
)

// Previewer rasterizes PDF pages to PNG files for side-by-side comparison.
type Previewer struct {
	outputDir string
	logger    *logger.Logger
}

func NewPreviewer(outputDir string, logger *logger.Logger) (*Previewer, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create preview directory: %w", err)
	}
	return &Previewer{
		outputDir: outputDir,
		logger:    logger,
	}, nil
}

func (p *Previewer) OutputDir() string {
	return p.outputDir
}

// RenderPages writes one PNG per page. Rasterizing is sequential since a
// fitz document is not safe for concurrent use; hashing and encoding run in
// parallel.
func (p *Previewer) RenderPages(ctx context.Context, pdfPath string) ([]models.PreviewPage, error) {
	p.logger.Debug("Rendering previews for %s", pdfPath)

	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	pages := make([]models.PreviewPage, doc.NumPage())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	//Page numbers are zero indexed in the fitz package.
	for pageNum := 0; pageNum < doc.NumPage(); pageNum++ {
		if err := gctx.Err(); err != nil {
			break
		}

		img, err := doc.Image(pageNum)
		if err != nil {
			_ = g.Wait()
			return nil, fmt.Errorf("failed to extract image for page %d: %w", pageNum, err)
		}

		g.Go(func() error {
			hash, err := utils.GenerateImageHash(img)
			if err != nil {
				return fmt.Errorf("failed to hash page %d: %w", pageNum, err)
			}

			imagePath := filepath.Join(p.outputDir, fmt.Sprintf("%s_page_%d.png", base, pageNum+1))
			if err := saveImage(img, imagePath); err != nil {
				return fmt.Errorf("failed to save image for page %d: %w", pageNum, err)
			}

			p.logger.Trace("Page %d preview: %s (%s)", pageNum+1, imagePath, hash[:12])
			pages[pageNum] = models.PreviewPage{
				PageNum:   pageNum + 1,
				ImagePath: imagePath,
				Hash:      hash,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return pages, nil
}

func saveImage(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
