package catalog

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/bilmem-net/ai-hediye/internal/wizard"
)

var productColumns = []string{"id", "title", "description", "image_url", "price", "buy_url", "categories", "tags", "recipients", "min_closeness", "occasions"}

func TestPostgresList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(productColumns).
		AddRow("dp-x", "X", "desc", "img", 500, "buy", "{ev,moda}", "{konfor}", "{anne,baba}", "yakin", "{yilbasi}").
		AddRow("dp-y", "Y", "desc", "img", 700, "buy", "{kitap}", "{}", "{arkadas}", "normal", "{}")
	mock.ExpectQuery("FROM gift_product").WillReturnRows(rows)

	products, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	p := products[0]
	if p.Suitability.MinCloseness != wizard.ClosenessClose || len(p.Suitability.Recipients) != 2 || p.Categories[1] != "moda" {
		t.Fatalf("unexpected product %+v", p)
	}
	if len(products[1].Suitability.Occasions) != 0 {
		t.Fatalf("expected no occasions, got %v", products[1].Suitability.Occasions)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByIDMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("WHERE id = ").WithArgs("nope").WillReturnRows(sqlmock.NewRows(productColumns))
	if _, err := NewPostgresRepository(db).GetByID("nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresEnsureSchemaSeedsEmptyTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	seed := Seed()[:2]

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS gift_product").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM gift_product")).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM gift_product").WillReturnResult(sqlmock.NewResult(0, 0))
	for range seed {
		mock.ExpectExec("INSERT INTO gift_product").WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	if err := NewPostgresRepository(db).EnsureSchema(context.Background(), seed); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresEnsureSchemaKeepsExistingRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS gift_product").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM gift_product")).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(13))

	if err := NewPostgresRepository(db).EnsureSchema(context.Background(), Seed()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
