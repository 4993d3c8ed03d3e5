// Package repository declares the persistence ports used by the use cases.
// Every repository is insert-only: one Create call commits exactly one row
// and reports the generated id back through the entity.
package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
}
