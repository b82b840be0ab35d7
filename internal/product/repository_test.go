package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"id", "name", "description", "price", "quantity",
			"category_id", "seller_id", "image_url", "created_at", "updated_at",
		}).AddRow(1, "Plain Tee", "cotton tee", "25.50", 10, 2, 3, nil, time.Now(), time.Now())

		mock.ExpectQuery(`SELECT .* FROM products WHERE id = \$1`).
			WithArgs(uint(1)).
			WillReturnRows(rows)

		p, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, uint(1), p.ID)
		assert.True(t, p.Price.Equal(decimal.RequireFromString("25.50")))
		assert.Equal(t, 10, p.Quantity)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM products WHERE id = \$1`).
			WithArgs(uint(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM products WHERE id = \$1`).
			WithArgs(uint(1)).
			WillReturnError(errors.New("db down"))

		_, err := repo.GetByID(ctx, 1)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_Reserve(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE products SET quantity = quantity - \$1, updated_at = NOW\(\) WHERE id = \$2 AND quantity >= \$1 RETURNING price`).
			WithArgs(3, uint(1)).
			WillReturnRows(sqlmock.NewRows([]string{"price"}).AddRow("5.00"))

		price, err := repo.Reserve(ctx, db, 1, 3)
		assert.NoError(t, err)
		assert.True(t, price.Equal(decimal.RequireFromString("5.00")))
	})

	t.Run("InsufficientStock", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE products SET quantity = quantity - \$1`).
			WithArgs(5, uint(1)).
			WillReturnRows(sqlmock.NewRows([]string{"price"}))
		mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM products WHERE id = \$1\)`).
			WithArgs(uint(1)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		_, err := repo.Reserve(ctx, db, 1, 5)
		assert.ErrorIs(t, err, ErrInsufficientStock)
	})

	t.Run("ProductNotFound", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE products SET quantity = quantity - \$1`).
			WithArgs(5, uint(404)).
			WillReturnRows(sqlmock.NewRows([]string{"price"}))
		mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM products WHERE id = \$1\)`).
			WithArgs(uint(404)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		_, err := repo.Reserve(ctx, db, 404, 5)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_Release(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE products SET quantity = quantity \+ \$1, updated_at = NOW\(\) WHERE id = \$2`).
			WithArgs(3, uint(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Release(ctx, db, 1, 3)
		assert.NoError(t, err)
	})

	t.Run("ProductNotFound", func(t *testing.T) {
		mock.ExpectExec(`UPDATE products SET quantity = quantity \+ \$1`).
			WithArgs(3, uint(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Release(ctx, db, 404, 3)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	cols := []string{
		"id", "name", "description", "price", "quantity",
		"category_id", "seller_id", "image_url", "created_at", "updated_at",
	}

	t.Run("DefaultPagination", func(t *testing.T) {
		rows := sqlmock.NewRows(cols).
			AddRow(1, "Tee", "", "10.00", 5, 1, 2, nil, time.Now(), time.Now()).
			AddRow(2, "Hoodie", "", "40.00", 3, 1, 2, nil, time.Now(), time.Now())

		mock.ExpectQuery(`SELECT .* FROM products WHERE 1=1 ORDER BY created_at DESC LIMIT \$1 OFFSET \$2`).
			WithArgs(int32(20), int32(0)).
			WillReturnRows(rows)

		products, err := repo.List(ctx, ListOptions{})
		assert.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("SellerFilter", func(t *testing.T) {
		sellerID := uint(2)
		mock.ExpectQuery(`SELECT .* FROM products WHERE 1=1 AND seller_id = \$1 ORDER BY created_at DESC LIMIT \$2 OFFSET \$3`).
			WithArgs(sellerID, int32(20), int32(0)).
			WillReturnRows(sqlmock.NewRows(cols))

		products, err := repo.List(ctx, ListOptions{SellerID: &sellerID})
		assert.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	sellerID := uint(3)
	p := &Product{
		Name:       "Plain Tee",
		Price:      decimal.RequireFromString("25.50"),
		Quantity:   10,
		CategoryID: 2,
		SellerID:   &sellerID,
	}

	mock.ExpectQuery(`INSERT INTO products`).
		WithArgs(p.Name, p.Description, p.Price, p.Quantity, p.CategoryID, p.SellerID, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(7, time.Now(), time.Now()))

	err = repo.Create(ctx, p)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), p.ID)
}
