package repository

// Set bundles one repository per table so callers can wire them in one step.
type Set struct {
	Categories CategoryRepository
	Authors    AuthorRepository
	Editors    EditorRepository
	Articles   ArticleRepository
	Images     ImageRepository
	Summaries  SummaryRepository
}
