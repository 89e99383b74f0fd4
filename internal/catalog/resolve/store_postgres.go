package resolve

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chalkfarm/folio/internal/catalog/book"
	"github.com/chalkfarm/folio/internal/catalog/person"
	"github.com/chalkfarm/folio/internal/isbndb"
	"github.com/chalkfarm/folio/internal/platform/constants"
	"github.com/chalkfarm/folio/internal/platform/database/schema"
	"github.com/chalkfarm/folio/internal/platform/dberr"
	"github.com/chalkfarm/folio/pkg/isbn"
	"github.com/chalkfarm/folio/pkg/pointer"
	"github.com/chalkfarm/folio/pkg/slug"
)

// PostgresMaterializer writes the full resolution graph in a single
// transaction. Partial graphs never become visible: any failure rolls the
// whole insert back, including the unique violation raised when another
// process materializes the same ISBN first.
type PostgresMaterializer struct {
	db *pgxpool.Pool
}

func NewPostgresMaterializer(db *pgxpool.Pool) *PostgresMaterializer {
	return &PostgresMaterializer{db: db}
}

func (m *PostgresMaterializer) Materialize(context context.Context, canonicalISBN string, payload *isbndb.Book) (*book.BookEdition, error) {
	tx, err := m.db.Begin(context)
	if err != nil {
		return nil, dberr.Wrap(err, "begin_materialize")
	}
	defer func() { _ = tx.Rollback(context) }()

	storyID, err := insertStory(context, tx, payload.Title)
	if err != nil {
		return nil, err
	}

	storyEditionID, err := insertStoryEdition(context, tx, storyID, payload.Language)
	if err != nil {
		return nil, err
	}

	for _, authorName := range payload.Authors {
		prosoponymID, err := findOrCreateProsoponym(context, tx, authorName)
		if err != nil {
			return nil, err
		}
		if err := insertContributor(context, tx, storyEditionID, prosoponymID); err != nil {
			return nil, err
		}
	}

	edition, err := insertBookEdition(context, tx, canonicalISBN, payload)
	if err != nil {
		return nil, err
	}

	if err := linkBookEdition(context, tx, storyEditionID, edition.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(context); err != nil {
		return nil, dberr.Wrap(err, "commit_materialize")
	}
	return edition, nil
}

func insertStory(context context.Context, tx pgx.Tx, title string) (int64, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) RETURNING %s`,
		schema.Story.Table, schema.Story.Name, schema.Story.Slug, schema.Story.ID,
	)

	var id int64
	err := tx.QueryRow(context, query, title, slug.From(title)).Scan(&id)
	if err != nil {
		return 0, dberr.Wrap(err, "materialize_story")
	}
	return id, nil
}

func insertStoryEdition(context context.Context, tx pgx.Tx, storyID int64, language string) (int64, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) RETURNING %s`,
		schema.StoryEdition.Table, schema.StoryEdition.StoryID, schema.StoryEdition.Language, schema.StoryEdition.ID,
	)

	var id int64
	err := tx.QueryRow(context, query, storyID, language).Scan(&id)
	if err != nil {
		return 0, dberr.Wrap(err, "materialize_story_edition")
	}
	return id, nil
}

// findOrCreateProsoponym reuses an existing credit by exact name, oldest row
// winning, and otherwise creates the person, the prosoponym, and the link
// between them. Runs inside the materialization transaction so a reused name
// cannot vanish mid-flight.
func findOrCreateProsoponym(context context.Context, tx pgx.Tx, name string) (int64, error) {
	selectQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC LIMIT 1`,
		schema.Prosoponym.ID, schema.Prosoponym.Table, schema.Prosoponym.Name, schema.Prosoponym.ID,
	)

	var prosoponymID int64
	err := tx.QueryRow(context, selectQuery, name).Scan(&prosoponymID)
	if err == nil {
		return prosoponymID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, dberr.Wrap(err, "find_prosoponym_by_name")
	}

	var personID int64
	personQuery := fmt.Sprintf(`INSERT INTO %s DEFAULT VALUES RETURNING %s`,
		schema.Person.Table, schema.Person.ID,
	)
	if err := tx.QueryRow(context, personQuery).Scan(&personID); err != nil {
		return 0, dberr.Wrap(err, "materialize_person")
	}

	prosoponymQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) RETURNING %s`,
		schema.Prosoponym.Table, schema.Prosoponym.Name, schema.Prosoponym.Style, schema.Prosoponym.ID,
	)
	if err := tx.QueryRow(context, prosoponymQuery, name, person.StyleAnglo).Scan(&prosoponymID); err != nil {
		return 0, dberr.Wrap(err, "materialize_prosoponym")
	}

	linkQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		schema.NamesAssociation.Table,
		schema.NamesAssociation.PersonID, schema.NamesAssociation.ProsoponymID, schema.NamesAssociation.Confidence,
	)
	if _, err := tx.Exec(context, linkQuery, personID, prosoponymID, constants.DefaultAssociationConfidence); err != nil {
		return 0, dberr.Wrap(err, "materialize_names_association")
	}

	return prosoponymID, nil
}

func insertContributor(context context.Context, tx pgx.Tx, storyEditionID, prosoponymID int64) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)`,
		schema.Contributor.Table,
		schema.Contributor.StoryEditionID, schema.Contributor.ProsoponymID,
		schema.Contributor.Contribution, schema.Contributor.Confidence,
	)

	_, err := tx.Exec(context, query,
		storyEditionID, prosoponymID,
		constants.ContributionAuthor, constants.DefaultAssociationConfidence,
	)
	return dberr.Wrap(err, "materialize_contributor")
}

// storedIdentifiers decides what lands in the isbn and isbn13 columns. The
// provider does not always echo the queried identifier back (a 13-digit lookup
// may answer with only a 10-digit isbn), so the canonical form is backfilled
// into its length-matching column whenever that column would otherwise miss
// it. The invariant is that FindByISBN(canonical) always hits the row this
// resolution creates.
func storedIdentifiers(canonicalISBN string, payload *isbndb.Book) (isbn10, isbn13 string) {
	isbn10, isbn13 = payload.ISBN, payload.ISBN13

	switch len(canonicalISBN) {
	case isbn.LengthISBN10:
		if isbn10 == "" || (isbn10 != canonicalISBN && isbn13 != canonicalISBN) {
			isbn10 = canonicalISBN
		}
	case isbn.LengthISBN13:
		if isbn13 == "" || (isbn10 != canonicalISBN && isbn13 != canonicalISBN) {
			isbn13 = canonicalISBN
		}
	}
	return isbn10, isbn13
}

func insertBookEdition(context context.Context, tx pgx.Tx, canonicalISBN string, payload *isbndb.Book) (*book.BookEdition, error) {
	isbn10, isbn13 := storedIdentifiers(canonicalISBN, payload)

	// The short name column is capped; the full title always survives in
	// name_long.
	edition := &book.BookEdition{
		Name:     pointer.To(truncateRunes(payload.Title, 120)),
		NameLong: pointer.To(payload.Title),
		ISBN:     isbn10,
		ISBN13:   isbn13,
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s, %s, %s, %s
	`,
		schema.BookEdition.Table,
		schema.BookEdition.Name, schema.BookEdition.NameLong, schema.BookEdition.ISBN, schema.BookEdition.ISBN13,
		schema.BookEdition.ID, schema.BookEdition.ISBNUnknown, schema.BookEdition.ISBNShouldExist,
		schema.BookEdition.Physical, schema.BookEdition.CreatedAt,
	)

	err := tx.QueryRow(context, query, edition.Name, edition.NameLong, edition.ISBN, edition.ISBN13).Scan(
		&edition.ID, &edition.ISBNUnknown, &edition.ISBNShouldExist,
		&edition.Physical, &edition.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "materialize_book_edition")
	}
	return edition, nil
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func linkBookEdition(context context.Context, tx pgx.Tx, storyEditionID, bookEditionID int64) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		schema.StoryEditionBookEdition.Table,
		schema.StoryEditionBookEdition.StoryEditionID, schema.StoryEditionBookEdition.BookEditionID,
		schema.StoryEditionBookEdition.Confidence,
	)

	_, err := tx.Exec(context, query, storyEditionID, bookEditionID, constants.DefaultAssociationConfidence)
	return dberr.Wrap(err, "link_materialized_book_edition")
}
