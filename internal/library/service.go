package library

import (
	"context"
	"log/slog"

	"github.com/chalkfarm/folio/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListUsers(context context.Context, limit, offset int) ([]*User, int, error) {
	return service.repo.ListUsers(context, limit, offset)
}

func (service *Service) GetUser(context context.Context, id int64) (*User, error) {
	return service.repo.GetUser(context, id)
}

func (service *Service) CreateUser(context context.Context, u *User) error {
	validator := &validate.Validator{}
	validator.Required(FieldUsername, u.Username).MaxLen(FieldUsername, u.Username, 64)
	validator.Required(FieldEmail, u.Email).Email(FieldEmail, u.Email)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateUser(context, u); err != nil {
		return err
	}

	service.logger.Info("user_created",
		slog.Int64("user_id", u.ID),
		slog.String("username", u.Username),
	)
	return nil
}

func (service *Service) ListStorages(context context.Context, limit, offset int) ([]*PhysicalStorage, int, error) {
	return service.repo.ListStorages(context, limit, offset)
}

func (service *Service) GetStorage(context context.Context, id int64) (*PhysicalStorage, error) {
	return service.repo.GetStorage(context, id)
}

func (service *Service) CreateStorage(context context.Context, s *PhysicalStorage) error {
	validator := &validate.Validator{}
	validator.Required(FieldStorageType, s.Type).MaxLen(FieldStorageType, s.Type, 80)
	validator.Required(FieldHumanName, s.HumanReadableName).MaxLen(FieldHumanName, s.HumanReadableName, 120)
	validator.Required(FieldMachineName, s.MachineReadableName).MaxLen(FieldMachineName, s.MachineReadableName, 120)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateStorage(context, s); err != nil {
		return err
	}

	service.logger.Info("physical_storage_created", slog.Int64("storage_id", s.ID))
	return nil
}

func (service *Service) ListCollections(context context.Context, userID int64, limit, offset int) ([]*Collection, int, error) {
	return service.repo.ListCollections(context, userID, limit, offset)
}

func (service *Service) GetCollection(context context.Context, id int64) (*Collection, error) {
	return service.repo.GetCollection(context, id)
}

func (service *Service) CreateCollection(context context.Context, c *Collection) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, c.Name).MaxLen(FieldName, c.Name, 255)
	validator.Custom(FieldUserID, c.UserID == 0, "Collection must belong to a user")
	if err := validator.Err(); err != nil {
		return err
	}

	// The owner must exist; the FK would catch this anyway but the explicit
	// check gives the client a 404 instead of a 500.
	if _, err := service.repo.GetUser(context, c.UserID); err != nil {
		return err
	}

	if err := service.repo.CreateCollection(context, c); err != nil {
		return err
	}

	service.logger.Info("collection_created",
		slog.Int64("collection_id", c.ID),
		slog.Int64("user_id", c.UserID),
	)
	return nil
}

func (service *Service) AddCollectionItem(context context.Context, item *CollectionItem) error {
	if _, err := service.repo.GetCollection(context, item.CollectionID); err != nil {
		return err
	}

	if err := service.repo.AddCollectionItem(context, item); err != nil {
		return err
	}

	service.logger.Info("collection_item_added",
		slog.Int64("collection_id", item.CollectionID),
		slog.Int64("book_edition_id", item.BookEditionID),
	)
	return nil
}

func (service *Service) ListCollectionItems(context context.Context, collectionID int64) ([]*CollectionItem, error) {
	return service.repo.ListCollectionItems(context, collectionID)
}
