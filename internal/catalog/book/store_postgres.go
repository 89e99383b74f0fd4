package book

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

// bookEditionColumns is the SELECT column list shared by every read query.
func bookEditionColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.BookEdition.ID, schema.BookEdition.Name, schema.BookEdition.NameLong, schema.BookEdition.Logline,
		schema.BookEdition.ISBN, schema.BookEdition.ISBN13, schema.BookEdition.ISBNUnknown, schema.BookEdition.ISBNShouldExist,
		schema.BookEdition.PublishedExactDay, schema.BookEdition.PublishedRangeStart, schema.BookEdition.PublishedRangeEnd,
		schema.BookEdition.Physical, schema.BookEdition.Description, schema.BookEdition.CreatedAt,
	)
}

func scanBookEdition(row interface{ Scan(...any) error }) (*BookEdition, error) {
	b := &BookEdition{}
	err := row.Scan(
		&b.ID, &b.Name, &b.NameLong, &b.Logline,
		&b.ISBN, &b.ISBN13, &b.ISBNUnknown, &b.ISBNShouldExist,
		&b.PublishedExactDay, &b.PublishedRangeStart, &b.PublishedRangeEnd,
		&b.Physical, &b.HumanReadableDescription, &b.CreatedAt,
	)
	return b, err
}

func (repository *PostgresRepository) ListBookEditions(context context.Context, f Filter, limit, offset int) ([]*BookEdition, int, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE TRUE`, bookEditionColumns(), schema.BookEdition.Table)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE TRUE`, schema.BookEdition.Table)

	args := []any{}
	countArgs := []any{}

	if f.ISBN != "" {
		clause := fmt.Sprintf(" AND (%s = $1 OR %s = $1)", schema.BookEdition.ISBN, schema.BookEdition.ISBN13)
		query += clause
		countQuery += clause
		args = append(args, f.ISBN)
		countArgs = append(countArgs, f.ISBN)
	}

	if f.PhysicalOnly {
		clause := fmt.Sprintf(" AND %s = TRUE", schema.BookEdition.Physical)
		query += clause
		countQuery += clause
	}

	query += fmt.Sprintf(" ORDER BY %s DESC LIMIT $%d OFFSET $%d", schema.BookEdition.ID, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_book_editions")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_book_editions")
	}
	defer rows.Close()

	var editions []*BookEdition
	for rows.Next() {
		b, err := scanBookEdition(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_book_edition")
		}
		editions = append(editions, b)
	}

	return editions, total, nil
}

func (repository *PostgresRepository) GetBookEdition(context context.Context, id int64) (*BookEdition, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		bookEditionColumns(), schema.BookEdition.Table, schema.BookEdition.ID,
	)

	b, err := scanBookEdition(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_book_edition")
	}
	return b, nil
}

func (repository *PostgresRepository) FindByISBN(context context.Context, canonical string) (*BookEdition, error) {
	// A caller may pass either length; both columns are checked so a 10-digit
	// lookup still finds a row stored under isbn13 and vice versa.
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 OR %s = $1 LIMIT 1`,
		bookEditionColumns(), schema.BookEdition.Table, schema.BookEdition.ISBN, schema.BookEdition.ISBN13,
	)

	b, err := scanBookEdition(repository.db.QueryRow(context, query, canonical))
	if err != nil {
		return nil, dberr.Wrap(err, "find_book_edition_by_isbn")
	}
	return b, nil
}

func (repository *PostgresRepository) CreateBookEdition(context context.Context, b *BookEdition) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING %s, %s
	`,
		schema.BookEdition.Table,
		schema.BookEdition.Name, schema.BookEdition.NameLong, schema.BookEdition.Logline,
		schema.BookEdition.ISBN, schema.BookEdition.ISBN13, schema.BookEdition.ISBNUnknown, schema.BookEdition.ISBNShouldExist,
		schema.BookEdition.PublishedExactDay, schema.BookEdition.PublishedRangeStart, schema.BookEdition.PublishedRangeEnd,
		schema.BookEdition.Physical, schema.BookEdition.Description,
		schema.BookEdition.ID, schema.BookEdition.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		b.Name, b.NameLong, b.Logline,
		b.ISBN, b.ISBN13, b.ISBNUnknown, b.ISBNShouldExist,
		b.PublishedExactDay, b.PublishedRangeStart, b.PublishedRangeEnd,
		b.Physical, b.HumanReadableDescription,
	).Scan(&b.ID, &b.CreatedAt)
	return dberr.Wrap(err, "create_book_edition")
}

func (repository *PostgresRepository) LinkStoryEdition(context context.Context, link *StoryEditionLink) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s
	`,
		schema.StoryEditionBookEdition.Table,
		schema.StoryEditionBookEdition.StoryEditionID, schema.StoryEditionBookEdition.BookEditionID,
		schema.StoryEditionBookEdition.Confidence,
		schema.StoryEditionBookEdition.ID,
	)

	err := repository.db.QueryRow(context, query, link.StoryEditionID, link.BookEditionID, link.Confidence).Scan(&link.ID)
	return dberr.Wrap(err, "link_story_edition_to_book_edition")
}

func (repository *PostgresRepository) ListStoryEditionLinks(context context.Context, bookEditionID int64) ([]*StoryEditionLink, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`,
		schema.StoryEditionBookEdition.ID, schema.StoryEditionBookEdition.StoryEditionID,
		schema.StoryEditionBookEdition.BookEditionID, schema.StoryEditionBookEdition.Confidence,
		schema.StoryEditionBookEdition.Table,
		schema.StoryEditionBookEdition.BookEditionID,
		schema.StoryEditionBookEdition.ID,
	)

	rows, err := repository.db.Query(context, query, bookEditionID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_story_edition_links")
	}
	defer rows.Close()

	var links []*StoryEditionLink
	for rows.Next() {
		l := &StoryEditionLink{}
		if err := rows.Scan(&l.ID, &l.StoryEditionID, &l.BookEditionID, &l.Confidence); err != nil {
			return nil, dberr.Wrap(err, "scan_story_edition_link")
		}
		links = append(links, l)
	}

	return links, nil
}
