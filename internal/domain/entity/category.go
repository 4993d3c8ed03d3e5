package entity

// Category groups articles by topic (e.g. "Politics").
type Category struct {
	ID          int64
	Name        string
	Description string
}
