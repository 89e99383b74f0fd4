package person

import "context"

type Repository interface {
	ListProsoponyms(context context.Context, f Filter, limit, offset int) ([]*Prosoponym, int, error)
	GetProsoponym(context context.Context, id int64) (*Prosoponym, error)
	// CreatePersonWithName persists a new Person, the given Prosoponym, and
	// the link between them in one transaction. IDs are set on p and the
	// returned Person.
	CreatePersonWithName(context context.Context, p *Prosoponym, link NameLink) (*Person, error)
	ListNameLinks(context context.Context, prosoponymID int64) ([]*NameLink, error)
}
