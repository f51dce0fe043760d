package pdf

import (
	"context"

	"github.com/kpauljoseph/wrapbench/pkg/models"
)

type PagePreviewer interface {
	RenderPages(ctx context.Context, pdfPath string) ([]models.PreviewPage, error)
}
