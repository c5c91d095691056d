package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventra/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = c.GetString(middleware.RequestIDKey)
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	w := serve(r, req)

	header := w.Header().Get("X-Request-ID")
	require.NotEmpty(t, header)
	assert.Equal(t, seen, header)
	_, err := uuid.Parse(header)
	assert.NoError(t, err)
}

func TestRequestID_HonorsIncomingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "trace-abc-123")
	w := serve(r, req)

	assert.Equal(t, "trace-abc-123", w.Header().Get("X-Request-ID"))
}

func TestErrorHandler_AnswersUnhandledErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("backend exploded"))
	})

	req, _ := http.NewRequest(http.MethodGet, "/boom", nil)
	w := serve(r, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// the raw error text must never leak
	assert.JSONEq(t, `{"success": false, "message": "Internal server error"}`, w.Body.String())
}

func TestErrorHandler_LeavesWrittenResponsesAlone(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/handled", func(c *gin.Context) {
		_ = c.Error(errors.New("already reported"))
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream down"})
	})

	req, _ := http.NewRequest(http.MethodGet, "/handled", nil)
	w := serve(r, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error": "upstream down"}`, w.Body.String())
}

func TestRecovery_ConvertsPanicTo500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("nope") })

	req, _ := http.NewRequest(http.MethodGet, "/panic", nil)
	w := serve(r, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success": false, "message": "Internal server error"}`, w.Body.String())
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CORS())
	r.POST("/products", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest(http.MethodOptions, "/products", nil)
	w := serve(r, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
