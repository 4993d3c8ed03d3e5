package entity

// Author is the writer credited on an article.
type Author struct {
	ID    int64
	Name  string
	Email string
}

// Editor is the person who reviewed an article before publication.
type Editor struct {
	ID    int64
	Name  string
	Email string
}
