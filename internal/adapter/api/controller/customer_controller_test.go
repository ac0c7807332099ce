package controller

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrocha/aquagas-api/internal/adapter/api/dto"
	"github.com/vrocha/aquagas-api/pkg/logger"
)

func newCustomerTestServer(t *testing.T) (*gin.Engine, *fakeCustomerRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	customerRepo := newFakeCustomerRepo()
	controller := NewCustomerController(customerRepo, logger.NewLogger())

	router := gin.New()
	router.POST("/customers", controller.Create)
	router.POST("/customers/import", controller.Import)

	return router, customerRepo
}

func importCSV(t *testing.T, router *gin.Engine, csv string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "clientes.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/customers/import", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateCustomerEndpoint(t *testing.T) {
	router, customerRepo := newCustomerTestServer(t)

	w := postJSON(t, router, "/customers", dto.CustomerRequest{
		Name:  "Maria Souza",
		Phone: "11988887777",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Len(t, customerRepo.customers, 1)
}

func TestCreateCustomerRequiresName(t *testing.T) {
	router, customerRepo := newCustomerTestServer(t)

	w := postJSON(t, router, "/customers", gin.H{"phone": "11988887777"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, customerRepo.customers)
}

func TestImportCustomersEndpoint(t *testing.T) {
	router, customerRepo := newCustomerTestServer(t)

	csv := "Nome,Telefone\nMaria,11988887777\n,11977776666\n"
	w := importCSV(t, router, csv)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.ImportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 1, resp.Imported)
	assert.Equal(t, 1, resp.Skipped)
	assert.Len(t, customerRepo.customers, 1)
}

func TestImportCustomersUnreadableHeader(t *testing.T) {
	router, customerRepo := newCustomerTestServer(t)

	w := importCSV(t, router, "Código,Valor\n1,100\n")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, customerRepo.customers)
}

func TestImportCustomersWithoutFile(t *testing.T) {
	router, _ := newCustomerTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/customers/import", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
