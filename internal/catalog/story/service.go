package story

import (
	"context"
	"log/slog"

	"github.com/chalkfarm/folio/internal/platform/validate"
	"github.com/chalkfarm/folio/pkg/slug"
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

func (service *Service) ListStories(context context.Context, filter Filter, limit, offset int) ([]*Story, int, error) {
	return service.repo.ListStories(context, filter, limit, offset)
}

func (service *Service) GetStory(context context.Context, id int64) (*Story, error) {
	return service.repo.GetStory(context, id)
}

func (service *Service) CreateStory(context context.Context, story *Story) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, story.Name).MaxLen(FieldName, story.Name, 2046)
	validator.Custom(FieldBasedOn, story.BasedOn != nil && *story.BasedOn == story.ID && story.ID != 0,
		"Story cannot be based on itself")

	if err := validator.Err(); err != nil {
		return err
	}

	// A derivation target must exist before it can be referenced.
	if story.BasedOn != nil {
		if _, err := service.repo.GetStory(context, *story.BasedOn); err != nil {
			return err
		}
	}

	story.Slug = slug.From(story.Name)

	if err := service.repo.CreateStory(context, story); err != nil {
		return err
	}

	service.logger.Info("story_created",
		slog.Int64("story_id", story.ID),
		slog.String("name", story.Name),
	)
	return nil
}

func (service *Service) CreateStoryEdition(context context.Context, edition *StoryEdition) error {
	validator := &validate.Validator{}

	if edition.Language != nil {
		validator.MaxLen(FieldLanguage, *edition.Language, 120)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	// The owning story must exist; the FK would also catch this, but a clean
	// 404 beats a constraint error.
	if _, err := service.repo.GetStory(context, edition.StoryID); err != nil {
		return err
	}

	if err := service.repo.CreateStoryEdition(context, edition); err != nil {
		return err
	}

	service.logger.Info("story_edition_created",
		slog.Int64("story_edition_id", edition.ID),
		slog.Int64("story_id", edition.StoryID),
	)
	return nil
}

func (service *Service) ListEditionsByStory(context context.Context, storyID int64) ([]*StoryEdition, error) {
	if _, err := service.repo.GetStory(context, storyID); err != nil {
		return nil, err
	}
	return service.repo.ListEditionsByStory(context, storyID)
}

func (service *Service) ListContributors(context context.Context, storyEditionID int64) ([]*Contributor, error) {
	if _, err := service.repo.GetStoryEdition(context, storyEditionID); err != nil {
		return nil, err
	}
	return service.repo.ListContributors(context, storyEditionID)
}
