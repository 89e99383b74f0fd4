package library

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

func (repository *PostgresRepository) ListUsers(context context.Context, limit, offset int) ([]*User, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.User.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_users")
	}

	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC LIMIT $1 OFFSET $2`,
		schema.User.ID, schema.User.Username, schema.User.Email, schema.User.CreatedAt,
		schema.User.Table, schema.User.ID,
	)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		u := &User{}
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_user")
		}
		users = append(users, u)
	}

	return users, total, nil
}

func (repository *PostgresRepository) GetUser(context context.Context, id int64) (*User, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.User.ID, schema.User.Username, schema.User.Email, schema.User.CreatedAt,
		schema.User.Table, schema.User.ID,
	)

	u := &User{}
	err := repository.db.QueryRow(context, query, id).Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_user")
	}
	return u, nil
}

func (repository *PostgresRepository) CreateUser(context context.Context, u *User) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) RETURNING %s, %s`,
		schema.User.Table, schema.User.Username, schema.User.Email,
		schema.User.ID, schema.User.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, u.Username, u.Email).Scan(&u.ID, &u.CreatedAt)
	return dberr.Wrap(err, "create_user")
}

func storageColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s",
		schema.PhysicalStorage.ID, schema.PhysicalStorage.Type,
		schema.PhysicalStorage.HumanReadableName, schema.PhysicalStorage.HumanReadableDescription,
		schema.PhysicalStorage.HumanReadableLocation,
		schema.PhysicalStorage.MachineReadableName, schema.PhysicalStorage.MachineReadableLocation,
	)
}

func scanStorage(row interface{ Scan(...any) error }) (*PhysicalStorage, error) {
	s := &PhysicalStorage{}
	err := row.Scan(
		&s.ID, &s.Type,
		&s.HumanReadableName, &s.HumanReadableDescription, &s.HumanReadableLocation,
		&s.MachineReadableName, &s.MachineReadableLocation,
	)
	return s, err
}

func (repository *PostgresRepository) ListStorages(context context.Context, limit, offset int) ([]*PhysicalStorage, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.PhysicalStorage.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_storages")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC LIMIT $1 OFFSET $2`,
		storageColumns(), schema.PhysicalStorage.Table, schema.PhysicalStorage.ID,
	)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_storages")
	}
	defer rows.Close()

	var storages []*PhysicalStorage
	for rows.Next() {
		s, err := scanStorage(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_storage")
		}
		storages = append(storages, s)
	}

	return storages, total, nil
}

func (repository *PostgresRepository) GetStorage(context context.Context, id int64) (*PhysicalStorage, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		storageColumns(), schema.PhysicalStorage.Table, schema.PhysicalStorage.ID,
	)

	s, err := scanStorage(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_storage")
	}
	return s, nil
}

func (repository *PostgresRepository) CreateStorage(context context.Context, s *PhysicalStorage) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`,
		schema.PhysicalStorage.Table,
		schema.PhysicalStorage.Type,
		schema.PhysicalStorage.HumanReadableName, schema.PhysicalStorage.HumanReadableDescription,
		schema.PhysicalStorage.HumanReadableLocation,
		schema.PhysicalStorage.MachineReadableName, schema.PhysicalStorage.MachineReadableLocation,
		schema.PhysicalStorage.ID,
	)

	err := repository.db.QueryRow(context, query,
		s.Type,
		s.HumanReadableName, s.HumanReadableDescription, s.HumanReadableLocation,
		s.MachineReadableName, s.MachineReadableLocation,
	).Scan(&s.ID)
	return dberr.Wrap(err, "create_storage")
}

func (repository *PostgresRepository) ListCollections(context context.Context, userID int64, limit, offset int) ([]*Collection, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`,
		schema.Collection.Table, schema.Collection.UserID,
	)

	var total int
	if err := repository.db.QueryRow(context, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_collections")
	}

	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC LIMIT $2 OFFSET $3`,
		schema.Collection.ID, schema.Collection.UserID, schema.Collection.Name, schema.Collection.CreatedAt,
		schema.Collection.Table, schema.Collection.UserID, schema.Collection.ID,
	)

	rows, err := repository.db.Query(context, query, userID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_collections")
	}
	defer rows.Close()

	var collections []*Collection
	for rows.Next() {
		c := &Collection{}
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_collection")
		}
		collections = append(collections, c)
	}

	return collections, total, nil
}

func (repository *PostgresRepository) GetCollection(context context.Context, id int64) (*Collection, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.Collection.ID, schema.Collection.UserID, schema.Collection.Name, schema.Collection.CreatedAt,
		schema.Collection.Table, schema.Collection.ID,
	)

	c := &Collection{}
	err := repository.db.QueryRow(context, query, id).Scan(&c.ID, &c.UserID, &c.Name, &c.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_collection")
	}
	return c, nil
}

func (repository *PostgresRepository) CreateCollection(context context.Context, c *Collection) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) RETURNING %s, %s`,
		schema.Collection.Table, schema.Collection.UserID, schema.Collection.Name,
		schema.Collection.ID, schema.Collection.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, c.UserID, c.Name).Scan(&c.ID, &c.CreatedAt)
	return dberr.Wrap(err, "create_collection")
}

func (repository *PostgresRepository) AddCollectionItem(context context.Context, item *CollectionItem) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) RETURNING %s`,
		schema.CollectionItem.Table,
		schema.CollectionItem.CollectionID, schema.CollectionItem.BookEditionID,
		schema.CollectionItem.AddedAt,
	)

	err := repository.db.QueryRow(context, query, item.CollectionID, item.BookEditionID).Scan(&item.AddedAt)
	return dberr.Wrap(err, "add_collection_item")
}

func (repository *PostgresRepository) ListCollectionItems(context context.Context, collectionID int64) ([]*CollectionItem, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.CollectionItem.CollectionID, schema.CollectionItem.BookEditionID, schema.CollectionItem.AddedAt,
		schema.CollectionItem.Table, schema.CollectionItem.CollectionID, schema.CollectionItem.AddedAt,
	)

	rows, err := repository.db.Query(context, query, collectionID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_collection_items")
	}
	defer rows.Close()

	var items []*CollectionItem
	for rows.Next() {
		item := &CollectionItem{}
		if err := rows.Scan(&item.CollectionID, &item.BookEditionID, &item.AddedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_collection_item")
		}
		items = append(items, item)
	}

	return items, nil
}
