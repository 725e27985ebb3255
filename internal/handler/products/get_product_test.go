package products

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/askarthikey/sellerPro/internal/api"
	"github.com/askarthikey/sellerPro/internal/database"
	"github.com/askarthikey/sellerPro/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func withParamID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func TestGetProductHandler(t *testing.T) {
	t.Cleanup(restoreGlobals)
	db := &database.FakeDB{}
	id := uuid.New()

	t.Run("no user on context", func(t *testing.T) {
		c, rec := newContext(t, http.MethodGet, "/", "", nil)
		require.NoError(t, GetProductHandler(db)(withParamID(c, id.String())))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		c, rec := newContext(t, http.MethodGet, "/", "", seller("alice"))
		require.NoError(t, GetProductHandler(db)(withParamID(c, "not-a-uuid")))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		getProductByID = func(ctx context.Context, db database.DB, pid uuid.UUID) (*model.Product, error) {
			return nil, pgx.ErrNoRows
		}
		c, rec := newContext(t, http.MethodGet, "/", "", seller("alice"))
		require.NoError(t, GetProductHandler(db)(withParamID(c, id.String())))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		getProductByID = func(ctx context.Context, db database.DB, pid uuid.UUID) (*model.Product, error) {
			return nil, errors.New("query")
		}
		c, rec := newContext(t, http.MethodGet, "/", "", seller("alice"))
		require.NoError(t, GetProductHandler(db)(withParamID(c, id.String())))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("another seller's product", func(t *testing.T) {
		getProductByID = func(ctx context.Context, db database.DB, pid uuid.UUID) (*model.Product, error) {
			return &model.Product{ID: pid, Seller: "bob"}, nil
		}
		c, rec := newContext(t, http.MethodGet, "/", "", seller("alice"))
		require.NoError(t, GetProductHandler(db)(withParamID(c, id.String())))
		require.Equal(t, http.StatusForbidden, rec.Code)
		var resp api.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "You do not have access to this product", resp.Message)
	})

	t.Run("success", func(t *testing.T) {
		getProductByID = func(ctx context.Context, db database.DB, pid uuid.UUID) (*model.Product, error) {
			require.Equal(t, id, pid)
			return &model.Product{ID: pid, ProductName: "Mug", Seller: "alice"}, nil
		}
		c, rec := newContext(t, http.MethodGet, "/", "", seller("alice"))
		require.NoError(t, GetProductHandler(db)(withParamID(c, id.String())))
		require.Equal(t, http.StatusOK, rec.Code)
		var resp api.ProductResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, id.String(), resp.ID)
		require.Equal(t, "Mug", resp.ProductName)
	})
}
