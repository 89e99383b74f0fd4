package story

import "context"

type Repository interface {
	ListStories(context context.Context, f Filter, limit, offset int) ([]*Story, int, error)
	GetStory(context context.Context, id int64) (*Story, error)
	CreateStory(context context.Context, s *Story) error
	CreateStoryEdition(context context.Context, e *StoryEdition) error
	ListEditionsByStory(context context.Context, storyID int64) ([]*StoryEdition, error)
	GetStoryEdition(context context.Context, id int64) (*StoryEdition, error)
	ListContributors(context context.Context, storyEditionID int64) ([]*Contributor, error)
}
