package shopper

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	getShopperByIDQuery    = `SELECT shopper_id, email, password, name, created_at FROM shopper WHERE shopper_id = $1`
	getShopperByEmailQuery = `SELECT shopper_id, email, password, name, created_at FROM shopper WHERE email = $1`
	insertShopperQuery     = `INSERT INTO shopper (email, password, name, created_at) VALUES ($1, $2, $3, $4) RETURNING shopper_id`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(id int) (Shopper, error) {
	return r.scanOne(r.db.QueryRow(getShopperByIDQuery, id))
}

func (r *PostgresRepository) GetByEmail(email string) (Shopper, error) {
	return r.scanOne(r.db.QueryRow(getShopperByEmailQuery, email))
}

func (r *PostgresRepository) Create(s Shopper) (Shopper, error) {
	if err := r.db.QueryRow(insertShopperQuery, s.Email, s.Password, s.Name, s.CreatedAt).Scan(&s.ID); err != nil {
		return Shopper{}, err
	}
	return s, nil
}

func (r *PostgresRepository) scanOne(row *sql.Row) (Shopper, error) {
	var (
		s    Shopper
		name sql.NullString
	)
	if err := row.Scan(&s.ID, &s.Email, &s.Password, &name, &s.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return Shopper{}, ErrNotFound
		}
		return Shopper{}, err
	}
	if name.Valid {
		s.Name = name.String
	}
	return s, nil
}
