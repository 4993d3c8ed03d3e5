package postgres

import (
	"context"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/repository"
)

const (
	insertImageQuery   = `INSERT INTO images (first_id, image_url) VALUES ($1, $2) RETURNING id`
	insertSummaryQuery = `INSERT INTO summaries (first_id, summary_text) VALUES ($1, $2) RETURNING id`
)

type ImageRepo struct{ exec *db.Executor }

func NewImageRepo(exec *db.Executor) repository.ImageRepository {
	return &ImageRepo{exec: exec}
}

func (repo *ImageRepo) Create(ctx context.Context, image *entity.Image) error {
	id, err := repo.exec.InsertReturningID(ctx, insertImageQuery, image.FirstID, image.ImageURL)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	image.ID = id
	return nil
}

type SummaryRepo struct{ exec *db.Executor }

func NewSummaryRepo(exec *db.Executor) repository.SummaryRepository {
	return &SummaryRepo{exec: exec}
}

func (repo *SummaryRepo) Create(ctx context.Context, summary *entity.Summary) error {
	id, err := repo.exec.InsertReturningID(ctx, insertSummaryQuery, summary.FirstID, summary.SummaryText)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	summary.ID = id
	return nil
}
