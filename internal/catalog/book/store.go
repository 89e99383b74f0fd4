package book

import "context"

type Repository interface {
	ListBookEditions(context context.Context, f Filter, limit, offset int) ([]*BookEdition, int, error)
	GetBookEdition(context context.Context, id int64) (*BookEdition, error)
	// FindByISBN matches canonical against both the isbn and isbn13 columns.
	// Returns dberr.ErrNotFound when neither column matches.
	FindByISBN(context context.Context, canonical string) (*BookEdition, error)
	CreateBookEdition(context context.Context, b *BookEdition) error
	LinkStoryEdition(context context.Context, link *StoryEditionLink) error
	ListStoryEditionLinks(context context.Context, bookEditionID int64) ([]*StoryEditionLink, error)
}
