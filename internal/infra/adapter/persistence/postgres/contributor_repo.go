package postgres

import (
	"context"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/repository"
)

const (
	insertAuthorQuery = `INSERT INTO authors (name, email) VALUES ($1, $2) RETURNING id`
	insertEditorQuery = `INSERT INTO editors (name, email) VALUES ($1, $2) RETURNING id`
)

type AuthorRepo struct{ exec *db.Executor }

func NewAuthorRepo(exec *db.Executor) repository.AuthorRepository {
	return &AuthorRepo{exec: exec}
}

func (repo *AuthorRepo) Create(ctx context.Context, author *entity.Author) error {
	id, err := repo.exec.InsertReturningID(ctx, insertAuthorQuery, author.Name, author.Email)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	author.ID = id
	return nil
}

type EditorRepo struct{ exec *db.Executor }

func NewEditorRepo(exec *db.Executor) repository.EditorRepository {
	return &EditorRepo{exec: exec}
}

func (repo *EditorRepo) Create(ctx context.Context, editor *entity.Editor) error {
	id, err := repo.exec.InsertReturningID(ctx, insertEditorQuery, editor.Name, editor.Email)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	editor.ID = id
	return nil
}
