package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/stitchfit/marketplace/internal/transport"
)

func TestCreateProductHandler(t *testing.T) {
	env := newTestEnv(t)
	h := &ProductHTTP{Svc: env.catalog}

	seller := env.seedSeller(t, "seller@shop.test")

	body, err := json.Marshal(transport.CreateProductRequest{
		Name:        "Silk Scarf",
		Description: "Hand rolled edges",
		Price:       35.00,
		Material:    "Silk",
		Color:       "Red",
		Measurements: []transport.MeasurementSpec{
			{MeasurementType: "Length", Value: 180},
			{MeasurementType: "Width", Value: 70},
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/product/create-product?sellerId="+seller.UserID.String(), bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)

	require.NoError(t, h.CreateProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var view transport.ProductView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Equal(t, "Silk Scarf", view.Name)
	require.Equal(t, seller.Email, view.SellerEmail)
	require.Len(t, view.Measurements, 2)
}

func TestCreateProductHandlerMissingSeller(t *testing.T) {
	env := newTestEnv(t)
	h := &ProductHTTP{Svc: env.catalog}

	body, err := json.Marshal(transport.CreateProductRequest{
		Name:     "Orphan Coat",
		Price:    10,
		Material: "Wool",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/product/create-product?sellerId="+uuid.NewString(), bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)

	err = h.CreateProduct(c)
	requireHTTPError(t, err, http.StatusBadRequest, "Seller not found")
}

func TestCreateProductHandlerRejectsBadMeasurement(t *testing.T) {
	env := newTestEnv(t)
	h := &ProductHTTP{Svc: env.catalog}

	seller := env.seedSeller(t, "seller@shop.test")

	payload := map[string]any{
		"name":     "Bad Specs",
		"price":    10,
		"material": "Wool",
		"measurements": []map[string]any{
			{"measurement_type": "Chest", "value": 5000},
		},
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/product/create-product?sellerId="+seller.UserID.String(), bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)

	err = h.CreateProduct(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestUpdateProductHandlerReplacesMeasurements(t *testing.T) {
	env := newTestEnv(t)
	h := &ProductHTTP{Svc: env.catalog}

	seller := env.seedSeller(t, "seller@shop.test")
	product := env.seedProduct(t, seller.UserID, 80.00) // one measurement

	body, err := json.Marshal(transport.EditProductRequest{
		Name:        "Denim Jacket",
		Description: "Classic cut",
		Price:       80.00,
		Material:    "Denim",
		Color:       "Blue",
		Measurements: []transport.MeasurementSpec{
			{MeasurementType: "Chest", Value: 104},
			{MeasurementType: "Waist", Value: 90},
			{MeasurementType: "SleeveLength", Value: 66},
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/product/update-product/"+product.ID.String(), bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(product.ID.String())

	require.NoError(t, h.UpdateProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var view transport.ProductView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Len(t, view.Measurements, 3)
}

func TestGetProductHandlerNotFound(t *testing.T) {
	env := newTestEnv(t)
	h := &ProductHTTP{Svc: env.catalog}

	ghost := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/product/get-product/"+ghost, nil)
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(ghost)

	err := h.GetProduct(c)
	requireHTTPError(t, err, http.StatusBadRequest, "Product not found")
}

func TestGetProductsHandlerEmpty(t *testing.T) {
	env := newTestEnv(t)
	h := &ProductHTTP{Svc: env.catalog}

	req := httptest.NewRequest(http.MethodGet, "/product/get-products", nil)
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)

	err := h.GetProducts(c)
	requireHTTPError(t, err, http.StatusBadRequest, "Products not found")
}

func TestDeleteProductHandler(t *testing.T) {
	env := newTestEnv(t)
	h := &ProductHTTP{Svc: env.catalog}

	seller := env.seedSeller(t, "seller@shop.test")
	product := env.seedProduct(t, seller.UserID, 80.00)

	req := httptest.NewRequest(http.MethodDelete, "/product/delete-product/"+product.ID.String(), nil)
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(product.ID.String())

	require.NoError(t, h.DeleteProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Product deleted successfully")
}
