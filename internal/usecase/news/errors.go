// Package news provides the insert use cases of the news database:
// one operation per table, plus PublishArticle which chains them for a
// complete article.
package news

import (
	"errors"
	"fmt"
)

// ErrRepositoryMissing indicates that the Service was built without the
// repository an operation needs.
var ErrRepositoryMissing = errors.New("repository not configured")

// Step names the insert at which PublishArticle stopped.
type Step string

const (
	StepCategory Step = "category"
	StepAuthor   Step = "author"
	StepEditor   Step = "editor"
	StepArticle  Step = "article"
	StepImage    Step = "image"
	StepSummary  Step = "summary"
)

// PublishError reports a failed PublishArticle call.
// Rows inserted before Step are already committed; their ids are in Committed.
// Existing rows reused through ArticleInput are never listed there.
type PublishError struct {
	Step      Step
	Committed Published
	Err       error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publish article: %s: %v", e.Step, e.Err)
}

func (e *PublishError) Unwrap() error { return e.Err }
