package pet

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listPetsQuery = `
		SELECT pet_id, name, breed, age, price, image_url
		FROM pet
		ORDER BY created_at, pet_id
	`
	getPetByIDQuery = `
		SELECT pet_id, name, breed, age, price, image_url
		FROM pet
		WHERE pet_id = $1
	`
	insertPetQuery = `
		INSERT INTO pet (pet_id, name, breed, age, price, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Pet {
	rows, err := r.db.Query(listPetsQuery)
	if err != nil {
		return []Pet{}
	}
	defer rows.Close()

	out := make([]Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *PostgresRepository) GetByID(id string) (Pet, error) {
	row := r.db.QueryRow(getPetByIDQuery, id)
	p, err := scanPet(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Pet{}, ErrNotFound
		}
		return Pet{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Create(p Pet) (Pet, error) {
	var age interface{}
	if p.Age != nil {
		age = *p.Age
	}
	var image interface{}
	if p.ImageURL != "" {
		image = p.ImageURL
	}
	if _, err := r.db.Exec(insertPetQuery, p.ID, p.Name, p.Breed, age, p.Price.String(), image); err != nil {
		return Pet{}, err
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPet(row rowScanner) (Pet, error) {
	var (
		p     Pet
		age   sql.NullInt64
		price string
		image sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Breed, &age, &price, &image); err != nil {
		return Pet{}, err
	}
	if age.Valid {
		v := int(age.Int64)
		p.Age = &v
	}
	if image.Valid {
		p.ImageURL = image.String
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return Pet{}, err
	}
	p.Price = d
	return p, nil
}
