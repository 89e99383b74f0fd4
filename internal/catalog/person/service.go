package person

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

func (service *Service) ListProsoponyms(context context.Context, filter Filter, limit, offset int) ([]*Prosoponym, int, error) {
	return service.repo.ListProsoponyms(context, filter, limit, offset)
}

func (service *Service) GetProsoponym(context context.Context, id int64) (*Prosoponym, error) {
	return service.repo.GetProsoponym(context, id)
}

func (service *Service) ListNameLinks(context context.Context, prosoponymID int64) ([]*NameLink, error) {
	if _, err := service.repo.GetProsoponym(context, prosoponymID); err != nil {
		return nil, err
	}
	return service.repo.ListNameLinks(context, prosoponymID)
}

// CreatePersonWithName registers a new credited name backed by a fresh Person
// identity. Linking an additional name to an existing Person is a manual
// curation task outside this service.
func (service *Service) CreatePersonWithName(context context.Context, prosoponym *Prosoponym, link NameLink) (*Person, error) {
	validator := &validate.Validator{}

	validator.Required(FieldName, prosoponym.Name).MaxLen(FieldName, prosoponym.Name, 2046)
	validator.MaxLen(FieldStyle, prosoponym.Style, 120)
	if link.Confidence != nil {
		validator.Range("confidence", *link.Confidence, 0, 100)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	owner, err := service.repo.CreatePersonWithName(context, prosoponym, link)
	if err != nil {
		return nil, err
	}

	service.logger.Info("prosoponym_created",
		slog.String("name", prosoponym.Name),
		slog.Int64("person_id", owner.ID),
	)
	return owner, nil
}
