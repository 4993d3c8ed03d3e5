package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

type AuthorRepository interface {
	Create(ctx context.Context, author *entity.Author) error
}

type EditorRepository interface {
	Create(ctx context.Context, editor *entity.Editor) error
}
