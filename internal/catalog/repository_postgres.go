package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/bilmem-net/ai-hediye/internal/wizard"
)

const (
	createGiftProductTable = `
		CREATE TABLE IF NOT EXISTS gift_product (
			id            TEXT PRIMARY KEY,
			position      INT NOT NULL,
			title         TEXT NOT NULL,
			description   TEXT NOT NULL,
			image_url     TEXT NOT NULL,
			price         INT NOT NULL,
			buy_url       TEXT NOT NULL,
			categories    TEXT[] NOT NULL,
			tags          TEXT[] NOT NULL,
			recipients    TEXT[] NOT NULL,
			min_closeness TEXT NOT NULL,
			occasions     TEXT[] NOT NULL DEFAULT '{}'
		)
	`
	listGiftProductsQuery = `
		SELECT id, title, description, image_url, price, buy_url, categories, tags, recipients, min_closeness, occasions
		FROM gift_product
		ORDER BY position
	`
	getGiftProductQuery = `
		SELECT id, title, description, image_url, price, buy_url, categories, tags, recipients, min_closeness, occasions
		FROM gift_product
		WHERE id = $1
	`
	deleteGiftProductsQuery = `DELETE FROM gift_product`
	insertGiftProductQuery  = `
		INSERT INTO gift_product (id, position, title, description, image_url, price, buy_url, categories, tags, recipients, min_closeness, occasions)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`
	countGiftProductsQuery = `SELECT COUNT(*) FROM gift_product`
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the gift_product table and seeds it when empty.
func (r *PostgresRepository) EnsureSchema(ctx context.Context, seed []Product) error {
	if _, err := r.db.ExecContext(ctx, createGiftProductTable); err != nil {
		return fmt.Errorf("create gift_product: %w", err)
	}
	var n int
	if err := r.db.QueryRowContext(ctx, countGiftProductsQuery).Scan(&n); err != nil {
		return fmt.Errorf("count gift_product: %w", err)
	}
	if n > 0 {
		return nil
	}
	return r.Reset(seed)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var (
		p                                 Product
		categories, tags, recipients, occ pq.StringArray
		minCloseness                      string
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.Price, &p.BuyURL,
		&categories, &tags, &recipients, &minCloseness, &occ); err != nil {
		return Product{}, err
	}
	p.Categories = []string(categories)
	p.Tags = []string(tags)
	p.Suitability.MinCloseness = wizard.Closeness(minCloseness)
	for _, rc := range recipients {
		p.Suitability.Recipients = append(p.Suitability.Recipients, wizard.Recipient(rc))
	}
	for _, o := range occ {
		p.Suitability.Occasions = append(p.Suitability.Occasions, wizard.Occasion(o))
	}
	return p, nil
}

func (r *PostgresRepository) List() ([]Product, error) {
	rows, err := r.db.Query(listGiftProductsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id string) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(getGiftProductQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepository) Reset(products []Product) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(deleteGiftProductsQuery); err != nil {
		return err
	}
	for i, p := range products {
		recipients := make([]string, len(p.Suitability.Recipients))
		for j, rc := range p.Suitability.Recipients {
			recipients[j] = string(rc)
		}
		occasions := make([]string, len(p.Suitability.Occasions))
		for j, o := range p.Suitability.Occasions {
			occasions[j] = string(o)
		}
		if _, err := tx.Exec(insertGiftProductQuery, p.ID, i, p.Title, p.Description, p.ImageURL, p.Price, p.BuyURL,
			pq.Array(p.Categories), pq.Array(p.Tags), pq.Array(recipients), string(p.Suitability.MinCloseness), pq.Array(occasions)); err != nil {
			return fmt.Errorf("insert %s: %w", p.ID, err)
		}
	}
	return tx.Commit()
}
