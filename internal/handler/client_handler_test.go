package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/CristianHourcade/Piria-sub000/internal/repository"
	"github.com/CristianHourcade/Piria-sub000/internal/view"
	"github.com/CristianHourcade/Piria-sub000/pkg/config"
	"github.com/CristianHourcade/Piria-sub000/pkg/database"
	"github.com/CristianHourcade/Piria-sub000/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	// Metric vectors register globally, so initialize them once for the
	// whole package
	prometheus.InitMetrics(&config.Config{Metrics: config.MetricsConfig{Prefix: "test"}})
	os.Exit(m.Run())
}

func newTestHandler(t *testing.T) (*ClientHandler, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewClientHandler(repository.NewClientRepository(db)), db
}

func TestClientHandlerCreate(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	body := `{"name":"Juan Pérez","company":"Empresa A","services":[{"name":"SEO","price":1000,"paymentScheme":"Completo"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/clients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created view.Client
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Juan Pérez", created.Name)
	require.Len(t, created.Services, 1)
	assert.Equal(t, "SEO", created.Services[0].Name)
	assert.Equal(t, 1000.0, created.Services[0].Price)
}

func TestClientHandlerCreateRequiresName(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/api/clients", strings.NewReader(`{"company":"Sin nombre"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClientHandlerGetNotFound(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/clients/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClientHandlerSetStatusValidates(t *testing.T) {
	h, db := newTestHandler(t)
	e := echo.New()

	created, err := repository.NewClientRepository(db).Create(view.Client{Name: "Estado SA"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPatch, "/api/clients/1/status", strings.NewReader(`{"status":"Suspendido"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.FormatUint(uint64(created.ID), 10))

	require.NoError(t, h.SetStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClientHandlerDelete(t *testing.T) {
	h, db := newTestHandler(t)
	e := echo.New()

	created, err := repository.NewClientRepository(db).Create(view.Client{Name: "Borrar SA"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/api/clients/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.FormatUint(uint64(created.ID), 10))

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
