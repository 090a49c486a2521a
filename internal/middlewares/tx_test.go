package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestTxMiddleware(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer mockDB.Close()

		db := sqlx.NewDb(mockDB, "sqlmock")

		mock.ExpectBegin()
		mock.ExpectCommit()

		var sawTx bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sawTx = GetTxFromContext(r.Context()) != nil
			w.WriteHeader(http.StatusOK)
		})

		handler := TxMiddleware(db)(next)

		req := httptest.NewRequest(http.MethodPut, "/lists/123/reorder", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, 200, rr.Code)
		assert.True(t, sawTx)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on panic", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer mockDB.Close()

		db := sqlx.NewDb(mockDB, "sqlmock")

		mock.ExpectBegin()
		mock.ExpectRollback()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})

		handler := TxMiddleware(db)(next)

		req := httptest.NewRequest(http.MethodPut, "/lists/123/reorder", nil)
		rr := httptest.NewRecorder()

		assert.Panics(t, func() {
			handler.ServeHTTP(rr, req)
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("fails when begin fails", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer mockDB.Close()

		db := sqlx.NewDb(mockDB, "sqlmock")

		mock.ExpectBegin().WillReturnError(assert.AnError)

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run without a transaction")
		})

		handler := TxMiddleware(db)(next)

		req := httptest.NewRequest(http.MethodPut, "/lists/123/reorder", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, 500, rr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetTxFromContextEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetTxFromContext(req.Context()))
}
