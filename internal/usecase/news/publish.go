package news

import (
	"context"
	"log/slog"
	"time"

	"newsdesk/internal/observability/logging"
)

// ArticleInput describes a complete article together with the rows it references.
//
// CategoryID, AuthorID and EditorID reuse existing rows when non-zero;
// otherwise a new row is inserted from the corresponding name fields.
type ArticleInput struct {
	CategoryID          int64
	CategoryName        string
	CategoryDescription string

	AuthorID    int64
	AuthorName  string
	AuthorEmail string

	EditorID    int64
	EditorName  string
	EditorEmail string

	Datetime time.Time
	Title    string
	Body     string
	Link     string

	ImageURLs []string
	Summary   string // empty: no summary row
}

// Published holds the ids of the rows written by PublishArticle.
type Published struct {
	CategoryID int64
	AuthorID   int64
	EditorID   int64
	ArticleID  int64
	ImageIDs   []int64
	SummaryID  int64
}

// PublishArticle inserts an article and everything it references, in
// dependency order: category, author, editor, article, images, summary.
// Generated ids are threaded into the dependent rows.
//
// Each insert commits on its own. When one fails PublishArticle stops and
// returns a *PublishError; rows inserted before the failing step stay
// committed and are listed in PublishError.Committed.
func (s *Service) PublishArticle(ctx context.Context, in ArticleInput) (*Published, error) {
	// out holds every id the article needs; committed only the rows inserted here.
	var out, committed Published
	fail := func(step Step, err error) (*Published, error) {
		return nil, &PublishError{Step: step, Committed: committed, Err: err}
	}

	var err error
	out.CategoryID = in.CategoryID
	if out.CategoryID == 0 {
		if out.CategoryID, err = s.InsertCategory(ctx, in.CategoryName, in.CategoryDescription); err != nil {
			return fail(StepCategory, err)
		}
		committed.CategoryID = out.CategoryID
	}
	out.AuthorID = in.AuthorID
	if out.AuthorID == 0 {
		if out.AuthorID, err = s.InsertAuthor(ctx, in.AuthorName, in.AuthorEmail); err != nil {
			return fail(StepAuthor, err)
		}
		committed.AuthorID = out.AuthorID
	}
	out.EditorID = in.EditorID
	if out.EditorID == 0 {
		if out.EditorID, err = s.InsertEditor(ctx, in.EditorName, in.EditorEmail); err != nil {
			return fail(StepEditor, err)
		}
		committed.EditorID = out.EditorID
	}

	out.ArticleID, err = s.InsertFirst(ctx, out.CategoryID, out.AuthorID, out.EditorID,
		in.Datetime, in.Title, in.Body, in.Link)
	if err != nil {
		return fail(StepArticle, err)
	}
	committed.ArticleID = out.ArticleID

	for _, u := range in.ImageURLs {
		id, err := s.InsertImage(ctx, out.ArticleID, u)
		if err != nil {
			return fail(StepImage, err)
		}
		out.ImageIDs = append(out.ImageIDs, id)
		committed.ImageIDs = append(committed.ImageIDs, id)
	}

	if in.Summary != "" {
		if out.SummaryID, err = s.InsertSummary(ctx, out.ArticleID, in.Summary); err != nil {
			return fail(StepSummary, err)
		}
	}

	logging.FromContext(ctx).InfoContext(ctx, "article published",
		slog.Int64("article_id", out.ArticleID),
		slog.Int64("category_id", out.CategoryID),
		slog.Int("images", len(out.ImageIDs)),
		slog.Bool("summary", out.SummaryID != 0))
	return &out, nil
}
