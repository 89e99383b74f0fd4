package person

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

func prosoponymColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s",
		schema.Prosoponym.ID, schema.Prosoponym.Name, schema.Prosoponym.Style,
		schema.Prosoponym.IsPseudonym, schema.Prosoponym.IsCollective, schema.Prosoponym.CreatedAt,
	)
}

func (repository *PostgresRepository) ListProsoponyms(context context.Context, f Filter, limit, offset int) ([]*Prosoponym, int, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE TRUE`, prosoponymColumns(), schema.Prosoponym.Table)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE TRUE`, schema.Prosoponym.Table)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		clause := fmt.Sprintf(" AND %s ILIKE $1", schema.Prosoponym.Name)
		query += clause
		countQuery += clause
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $%d OFFSET $%d", schema.Prosoponym.Name, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_prosoponyms")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_prosoponyms")
	}
	defer rows.Close()

	var names []*Prosoponym
	for rows.Next() {
		p := &Prosoponym{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Style, &p.IsPseudonym, &p.IsCollective, &p.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_prosoponym")
		}
		names = append(names, p)
	}

	return names, total, nil
}

func (repository *PostgresRepository) GetProsoponym(context context.Context, id int64) (*Prosoponym, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		prosoponymColumns(), schema.Prosoponym.Table, schema.Prosoponym.ID,
	)

	p := &Prosoponym{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&p.ID, &p.Name, &p.Style, &p.IsPseudonym, &p.IsCollective, &p.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_prosoponym")
	}
	return p, nil
}

func (repository *PostgresRepository) CreatePersonWithName(context context.Context, p *Prosoponym, link NameLink) (*Person, error) {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return nil, dberr.Wrap(err, "begin_create_person")
	}
	defer transaction.Rollback(context)

	owner := &Person{}
	personQuery := fmt.Sprintf(`INSERT INTO %s DEFAULT VALUES RETURNING %s, %s`,
		schema.Person.Table, schema.Person.ID, schema.Person.CreatedAt,
	)
	if err := transaction.QueryRow(context, personQuery).Scan(&owner.ID, &owner.CreatedAt); err != nil {
		return nil, dberr.Wrap(err, "create_person")
	}

	prosoponymQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s
	`,
		schema.Prosoponym.Table,
		schema.Prosoponym.Name, schema.Prosoponym.Style, schema.Prosoponym.IsPseudonym, schema.Prosoponym.IsCollective,
		schema.Prosoponym.ID, schema.Prosoponym.CreatedAt,
	)
	if err := transaction.QueryRow(context, prosoponymQuery, p.Name, p.Style, p.IsPseudonym, p.IsCollective).Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, dberr.Wrap(err, "create_prosoponym")
	}

	linkQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
	`,
		schema.NamesAssociation.Table,
		schema.NamesAssociation.PersonID, schema.NamesAssociation.ProsoponymID,
		schema.NamesAssociation.BestKnownAs, schema.NamesAssociation.WidelyKnownAs, schema.NamesAssociation.Confidence,
	)
	if _, err := transaction.Exec(context, linkQuery, owner.ID, p.ID, link.BestKnownAs, link.WidelyKnownAs, link.Confidence); err != nil {
		return nil, dberr.Wrap(err, "link_person_to_prosoponym")
	}

	if err := transaction.Commit(context); err != nil {
		return nil, dberr.Wrap(err, "commit_create_person")
	}

	return owner, nil
}

func (repository *PostgresRepository) ListNameLinks(context context.Context, prosoponymID int64) ([]*NameLink, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.NamesAssociation.PersonID, schema.NamesAssociation.ProsoponymID,
		schema.NamesAssociation.BestKnownAs, schema.NamesAssociation.WidelyKnownAs, schema.NamesAssociation.Confidence,
		schema.NamesAssociation.Table,
		schema.NamesAssociation.ProsoponymID,
	)

	rows, err := repository.db.Query(context, query, prosoponymID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_name_links")
	}
	defer rows.Close()

	var links []*NameLink
	for rows.Next() {
		l := &NameLink{}
		if err := rows.Scan(&l.PersonID, &l.ProsoponymID, &l.BestKnownAs, &l.WidelyKnownAs, &l.Confidence); err != nil {
			return nil, dberr.Wrap(err, "scan_name_link")
		}
		links = append(links, l)
	}

	return links, nil
}
