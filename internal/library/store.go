package library

import "context"

type Repository interface {
	ListUsers(context context.Context, limit, offset int) ([]*User, int, error)
	GetUser(context context.Context, id int64) (*User, error)
	CreateUser(context context.Context, u *User) error

	ListStorages(context context.Context, limit, offset int) ([]*PhysicalStorage, int, error)
	GetStorage(context context.Context, id int64) (*PhysicalStorage, error)
	CreateStorage(context context.Context, s *PhysicalStorage) error

	ListCollections(context context.Context, userID int64, limit, offset int) ([]*Collection, int, error)
	GetCollection(context context.Context, id int64) (*Collection, error)
	CreateCollection(context context.Context, c *Collection) error
	// AddCollectionItem links a book edition into a collection. Duplicate
	// additions surface as a conflict from the composite primary key.
	AddCollectionItem(context context.Context, item *CollectionItem) error
	ListCollectionItems(context context.Context, collectionID int64) ([]*CollectionItem, error)
}
