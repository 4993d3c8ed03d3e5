package postgres

import (
	"newsdesk/internal/infra/db"
	"newsdesk/internal/repository"
)

// NewRepositories wires one repository per table on top of exec.
func NewRepositories(exec *db.Executor) *repository.Set {
	return &repository.Set{
		Categories: NewCategoryRepo(exec),
		Authors:    NewAuthorRepo(exec),
		Editors:    NewEditorRepo(exec),
		Articles:   NewArticleRepo(exec),
		Images:     NewImageRepo(exec),
		Summaries:  NewSummaryRepo(exec),
	}
}
