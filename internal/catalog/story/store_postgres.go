package story

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chalkfarm/folio/internal/platform/database/schema"
	"github.com/chalkfarm/folio/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func storyColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s",
		schema.Story.ID, schema.Story.Name, schema.Story.Slug, schema.Story.BasedOn, schema.Story.CreatedAt,
	)
}

func storyEditionColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
		schema.StoryEdition.ID, schema.StoryEdition.StoryID,
		schema.StoryEdition.EditionName, schema.StoryEdition.EditionIdentifier, schema.StoryEdition.StoryEditionName,
		schema.StoryEdition.Language, schema.StoryEdition.LanguageDialect, schema.StoryEdition.CreatedAt,
	)
}

func (repository *PostgresRepository) ListStories(context context.Context, f Filter, limit, offset int) ([]*Story, int, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE TRUE`, storyColumns(), schema.Story.Table)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE TRUE`, schema.Story.Table)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		clause := fmt.Sprintf(" AND %s ILIKE $1", schema.Story.Name)
		query += clause
		countQuery += clause
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $%d OFFSET $%d", schema.Story.Name, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_stories")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_stories")
	}
	defer rows.Close()

	var stories []*Story
	for rows.Next() {
		s := &Story{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.BasedOn, &s.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_story")
		}
		stories = append(stories, s)
	}

	return stories, total, nil
}

func (repository *PostgresRepository) GetStory(context context.Context, id int64) (*Story, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		storyColumns(), schema.Story.Table, schema.Story.ID,
	)

	s := &Story{}
	err := repository.db.QueryRow(context, query, id).Scan(&s.ID, &s.Name, &s.Slug, &s.BasedOn, &s.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_story")
	}
	return s, nil
}

func (repository *PostgresRepository) CreateStory(context context.Context, s *Story) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s
	`,
		schema.Story.Table, schema.Story.Name, schema.Story.Slug, schema.Story.BasedOn,
		schema.Story.ID, schema.Story.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, s.Name, s.Slug, s.BasedOn).Scan(&s.ID, &s.CreatedAt)
	return dberr.Wrap(err, "create_story")
}

func (repository *PostgresRepository) CreateStoryEdition(context context.Context, e *StoryEdition) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s, %s
	`,
		schema.StoryEdition.Table,
		schema.StoryEdition.StoryID,
		schema.StoryEdition.EditionName, schema.StoryEdition.EditionIdentifier, schema.StoryEdition.StoryEditionName,
		schema.StoryEdition.Language, schema.StoryEdition.LanguageDialect,
		schema.StoryEdition.ID, schema.StoryEdition.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		e.StoryID, e.EditionName, e.EditionIdentifier, e.StoryEditionName, e.Language, e.LanguageDialect,
	).Scan(&e.ID, &e.CreatedAt)
	return dberr.Wrap(err, "create_story_edition")
}

func (repository *PostgresRepository) ListEditionsByStory(context context.Context, storyID int64) ([]*StoryEdition, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		storyEditionColumns(), schema.StoryEdition.Table, schema.StoryEdition.StoryID, schema.StoryEdition.ID,
	)

	rows, err := repository.db.Query(context, query, storyID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_story_editions")
	}
	defer rows.Close()

	var editions []*StoryEdition
	for rows.Next() {
		e := &StoryEdition{}
		if err := rows.Scan(
			&e.ID, &e.StoryID, &e.EditionName, &e.EditionIdentifier, &e.StoryEditionName,
			&e.Language, &e.LanguageDialect, &e.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_story_edition")
		}
		editions = append(editions, e)
	}

	return editions, nil
}

func (repository *PostgresRepository) GetStoryEdition(context context.Context, id int64) (*StoryEdition, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		storyEditionColumns(), schema.StoryEdition.Table, schema.StoryEdition.ID,
	)

	e := &StoryEdition{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&e.ID, &e.StoryID, &e.EditionName, &e.EditionIdentifier, &e.StoryEditionName,
		&e.Language, &e.LanguageDialect, &e.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_story_edition")
	}
	return e, nil
}

func (repository *PostgresRepository) ListContributors(context context.Context, storyEditionID int64) ([]*Contributor, error) {
	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, p.%s, c.%s, c.%s
		FROM %s c
		JOIN %s p ON p.%s = c.%s
		WHERE c.%s = $1
		ORDER BY c.%s ASC
	`,
		schema.Contributor.ID, schema.Contributor.ProsoponymID, schema.Prosoponym.Name,
		schema.Contributor.Contribution, schema.Contributor.Confidence,
		schema.Contributor.Table,
		schema.Prosoponym.Table, schema.Prosoponym.ID, schema.Contributor.ProsoponymID,
		schema.Contributor.StoryEditionID,
		schema.Contributor.ID,
	)

	rows, err := repository.db.Query(context, query, storyEditionID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_contributors")
	}
	defer rows.Close()

	var contributors []*Contributor
	for rows.Next() {
		c := &Contributor{}
		if err := rows.Scan(&c.ID, &c.ProsoponymID, &c.Name, &c.Contribution, &c.Confidence); err != nil {
			return nil, dberr.Wrap(err, "scan_contributor")
		}
		contributors = append(contributors, c)
	}

	return contributors, nil
}
