package postgres

import (
	"context"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/repository"
)

const insertCategoryQuery = `INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING id`

type CategoryRepo struct{ exec *db.Executor }

func NewCategoryRepo(exec *db.Executor) repository.CategoryRepository {
	return &CategoryRepo{exec: exec}
}

func (repo *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	id, err := repo.exec.InsertReturningID(ctx, insertCategoryQuery,
		category.Name, category.Description)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	category.ID = id
	return nil
}
