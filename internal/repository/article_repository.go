package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

// ArticleRepository persists rows of the "first" table.
// Create sets article.ID to the generated id on success.
type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
}

// ImageRepository persists images attached to an article.
type ImageRepository interface {
	Create(ctx context.Context, image *entity.Image) error
}

// SummaryRepository persists article summaries.
type SummaryRepository interface {
	Create(ctx context.Context, summary *entity.Summary) error
}
