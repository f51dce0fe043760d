package pdf

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/kpauljoseph/wrapbench/pkg/logger"
)

// GutterWidth is the blank strip, in pixels, between composed pages.
const GutterWidth = 16

// Composer places two page previews next to each other so wrapping
// differences between runs can be eyeballed in one image.
type Composer struct {
	outputDir string
	logger    *logger.Logger
}

func NewComposer(outputDir string, logger *logger.Logger) (*Composer, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return &Composer{
		outputDir: outputDir,
		logger:    logger,
	}, nil
}

// SideBySide writes left and right into <outputDir>/<name>.png on a white
// background tall enough for the taller of the two.
func (c *Composer) SideBySide(left, right image.Image, name string) (string, error) {
	lb, rb := left.Bounds(), right.Bounds()
	width := lb.Dx() + GutterWidth + rb.Dx()
	height := max(lb.Dy(), rb.Dy())

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, 0, lb.Dx(), lb.Dy()), left, lb.Min, draw.Src)
	offset := lb.Dx() + GutterWidth
	draw.Draw(canvas, image.Rect(offset, 0, offset+rb.Dx(), rb.Dy()), right, rb.Min, draw.Src)

	outPath := filepath.Join(c.outputDir, name+".png")
	if err := c.saveImage(canvas, outPath); err != nil {
		return "", fmt.Errorf("failed to save composed image: %w", err)
	}

	c.logger.Debug("Created comparison image: %s", outPath)
	return outPath, nil
}

func (c *Composer) saveImage(img *image.RGBA, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
