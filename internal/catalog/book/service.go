package book

import (
	"context"
	"log/slog"

	"github.com/chalkfarm/folio/internal/platform/constants"
	"github.com/chalkfarm/folio/internal/platform/validate"
	"github.com/chalkfarm/folio/pkg/isbn"
	"github.com/chalkfarm/folio/pkg/pointer"
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

func (service *Service) ListBookEditions(context context.Context, filter Filter, limit, offset int) ([]*BookEdition, int, error) {
	// Accept loosely formatted identifiers in the filter; the columns store
	// canonical digits only.
	if filter.ISBN != "" {
		canonical, err := isbn.Normalize(filter.ISBN)
		if err != nil {
			return nil, 0, validate.RequiredError(FieldISBN, "Must be a 10 or 13 digit ISBN")
		}
		filter.ISBN = canonical
	}

	return service.repo.ListBookEditions(context, filter, limit, offset)
}

func (service *Service) GetBookEdition(context context.Context, id int64) (*BookEdition, error) {
	return service.repo.GetBookEdition(context, id)
}

// CreateBookEdition catalogs an edition by hand, for printings the remote
// bibliographic service does not know. Identifiers are optional; an edition
// created without any is marked isbn_unknown unless the curator flags that
// one should exist.
func (service *Service) CreateBookEdition(context context.Context, edition *BookEdition) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, pointer.Val(edition.Name))
	validator.MaxLen(FieldName, pointer.Val(edition.Name), 120)

	if edition.ISBN != "" {
		canonical, err := isbn.Normalize(edition.ISBN)
		validator.Custom(FieldISBN, err != nil || len(canonical) != isbn.LengthISBN10,
			"Must be a 10 digit ISBN")
		if err == nil {
			edition.ISBN = canonical
		}
	}
	if edition.ISBN13 != "" {
		canonical, err := isbn.Normalize(edition.ISBN13)
		validator.Custom(FieldISBN13, err != nil || len(canonical) != isbn.LengthISBN13,
			"Must be a 13 digit ISBN")
		if err == nil {
			edition.ISBN13 = canonical
		}
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if edition.ISBN == "" && edition.ISBN13 == "" && !edition.ISBNShouldExist {
		edition.ISBNUnknown = true
	}

	if err := service.repo.CreateBookEdition(context, edition); err != nil {
		return err
	}

	service.logger.Info("book_edition_created",
		slog.Int64("book_edition_id", edition.ID),
		slog.Bool("isbn_unknown", edition.ISBNUnknown),
	)
	return nil
}

// LinkStoryEdition attaches a story edition to an already cataloged book
// edition.
func (service *Service) LinkStoryEdition(context context.Context, link *StoryEditionLink) error {
	validator := &validate.Validator{}

	validator.Custom(FieldStoryEditionID, link.StoryEditionID <= 0, "A story edition id is required")
	if link.Confidence != nil {
		validator.Range(FieldConfidence, *link.Confidence, 0, 100)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	// A dangling book edition id yields 404 here; the story edition FK is
	// checked by the database.
	if _, err := service.repo.GetBookEdition(context, link.BookEditionID); err != nil {
		return err
	}

	if link.Confidence == nil {
		link.Confidence = pointer.To(constants.DefaultAssociationConfidence)
	}

	if err := service.repo.LinkStoryEdition(context, link); err != nil {
		return err
	}

	service.logger.Info("story_edition_linked",
		slog.Int64("book_edition_id", link.BookEditionID),
		slog.Int64("story_edition_id", link.StoryEditionID),
	)
	return nil
}

func (service *Service) ListStoryEditionLinks(context context.Context, bookEditionID int64) ([]*StoryEditionLink, error) {
	// Ensure the edition exists so a dangling id yields 404 rather than an
	// empty list.
	if _, err := service.repo.GetBookEdition(context, bookEditionID); err != nil {
		return nil, err
	}

	return service.repo.ListStoryEditionLinks(context, bookEditionID)
}
