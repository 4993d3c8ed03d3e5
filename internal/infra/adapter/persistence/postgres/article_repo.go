package postgres

import (
	"context"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/repository"
)

// Articles live in the "first" table.
const insertArticleQuery = `
INSERT INTO first (category_id, author_id, editor_id, datetime, title, body, link)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

type ArticleRepo struct{ exec *db.Executor }

func NewArticleRepo(exec *db.Executor) repository.ArticleRepository {
	return &ArticleRepo{exec: exec}
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	id, err := repo.exec.InsertReturningID(ctx, insertArticleQuery,
		article.CategoryID,
		article.AuthorID,
		article.EditorID,
		article.Datetime,
		article.Title,
		article.Body,
		article.Link,
	)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	article.ID = id
	return nil
}
