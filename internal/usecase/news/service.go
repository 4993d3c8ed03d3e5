package news

import (
	"context"
	"fmt"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// Service inserts news rows. Every call commits one row and returns its id.
// Identical calls insert identical, distinct rows.
type Service struct {
	Repos *repository.Set
}

// NewService returns a Service backed by repos.
func NewService(repos *repository.Set) *Service {
	return &Service{Repos: repos}
}

// InsertCategory inserts a category and returns its id.
func (s *Service) InsertCategory(ctx context.Context, name, description string) (int64, error) {
	if s.Repos == nil || s.Repos.Categories == nil {
		return 0, fmt.Errorf("insert category: %w", ErrRepositoryMissing)
	}
	c := &entity.Category{Name: name, Description: description}
	if err := s.Repos.Categories.Create(ctx, c); err != nil {
		return 0, fmt.Errorf("insert category: %w", err)
	}
	return c.ID, nil
}

// InsertAuthor inserts an author and returns its id.
func (s *Service) InsertAuthor(ctx context.Context, name, email string) (int64, error) {
	if s.Repos == nil || s.Repos.Authors == nil {
		return 0, fmt.Errorf("insert author: %w", ErrRepositoryMissing)
	}
	a := &entity.Author{Name: name, Email: email}
	if err := s.Repos.Authors.Create(ctx, a); err != nil {
		return 0, fmt.Errorf("insert author: %w", err)
	}
	return a.ID, nil
}

// InsertEditor inserts an editor and returns its id.
func (s *Service) InsertEditor(ctx context.Context, name, email string) (int64, error) {
	if s.Repos == nil || s.Repos.Editors == nil {
		return 0, fmt.Errorf("insert editor: %w", ErrRepositoryMissing)
	}
	e := &entity.Editor{Name: name, Email: email}
	if err := s.Repos.Editors.Create(ctx, e); err != nil {
		return 0, fmt.Errorf("insert editor: %w", err)
	}
	return e.ID, nil
}

// InsertFirst inserts an article into the "first" table and returns its id.
// The referenced category, author and editor must already exist.
func (s *Service) InsertFirst(ctx context.Context, categoryID, authorID, editorID int64,
	datetime time.Time, title, body, link string) (int64, error) {
	if s.Repos == nil || s.Repos.Articles == nil {
		return 0, fmt.Errorf("insert first: %w", ErrRepositoryMissing)
	}
	a := &entity.Article{
		CategoryID: categoryID,
		AuthorID:   authorID,
		EditorID:   editorID,
		Datetime:   datetime,
		Title:      title,
		Body:       body,
		Link:       link,
	}
	if err := s.Repos.Articles.Create(ctx, a); err != nil {
		return 0, fmt.Errorf("insert first: %w", err)
	}
	return a.ID, nil
}

// InsertImage attaches an image to the article firstID and returns its id.
func (s *Service) InsertImage(ctx context.Context, firstID int64, imageURL string) (int64, error) {
	if s.Repos == nil || s.Repos.Images == nil {
		return 0, fmt.Errorf("insert image: %w", ErrRepositoryMissing)
	}
	img := &entity.Image{FirstID: firstID, ImageURL: imageURL}
	if err := s.Repos.Images.Create(ctx, img); err != nil {
		return 0, fmt.Errorf("insert image: %w", err)
	}
	return img.ID, nil
}

// InsertSummary attaches a summary to the article firstID and returns its id.
func (s *Service) InsertSummary(ctx context.Context, firstID int64, summaryText string) (int64, error) {
	if s.Repos == nil || s.Repos.Summaries == nil {
		return 0, fmt.Errorf("insert summary: %w", ErrRepositoryMissing)
	}
	sum := &entity.Summary{FirstID: firstID, SummaryText: summaryText}
	if err := s.Repos.Summaries.Create(ctx, sum); err != nil {
		return 0, fmt.Errorf("insert summary: %w", err)
	}
	return sum.ID, nil
}
