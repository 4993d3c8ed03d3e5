// Package fixtures provides reusable news rows for tests.
// Every constructor returns a fresh value with ID unset, ready to be inserted.
package fixtures

import (
	"strings"
	"time"
	"unicode/utf8"

	"newsdesk/internal/domain/entity"
)

// PublishedAt is the fixed timestamp used for fixture articles.
var PublishedAt = time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)

// Category returns the "Politics" category.
func Category() *entity.Category {
	return &entity.Category{Name: "Politics", Description: "All first related to politics"}
}

// Author returns an author whose name starts with a single quote,
// useful for checking that values are bound rather than interpolated.
func Author() *entity.Author {
	return &entity.Author{Name: "'jonny", Email: "jon@mail.com"}
}

// Editor returns a sample editor.
func Editor() *entity.Editor {
	return &entity.Editor{Name: "Mary Major", Email: "mary@mail.com"}
}

// Article returns an article that references the given category, author and editor ids.
func Article(categoryID, authorID, editorID int64) *entity.Article {
	return &entity.Article{
		CategoryID: categoryID,
		AuthorID:   authorID,
		EditorID:   editorID,
		Datetime:   PublishedAt,
		Title:      "Parliament passes budget",
		Body:       Body(400),
		Link:       "https://news.example.com/politics/budget",
	}
}

// Image returns an image attached to the article firstID.
func Image(firstID int64) *entity.Image {
	return &entity.Image{FirstID: firstID, ImageURL: "https://img.example.com/budget.jpg"}
}

// Summary returns a summary of the article firstID.
func Summary(firstID int64) *entity.Summary {
	return &entity.Summary{FirstID: firstID, SummaryText: "The budget passed after a late-night vote."}
}

// Body generates article text of roughly length characters (±10%).
func Body(length int) string {
	sentences := []string{
		"Parliament approved the annual budget after a lengthy debate.",
		"The opposition criticised the spending plans for regional transport.",
		"Ministers argued that the measures would reduce public debt within five years.",
		"Several amendments on healthcare funding were rejected in the final vote.",
		"Analysts expect the central bank to comment on the plan next week.",
		"Local councils will receive their allocations at the start of the fiscal year.",
	}

	var b strings.Builder
	for i := 0; utf8.RuneCountInString(b.String()) < length; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(sentences[i%len(sentences)])
	}

	body := []rune(b.String())
	if len(body) > length*11/10 {
		body = body[:length]
	}
	return strings.TrimSpace(string(body))
}
