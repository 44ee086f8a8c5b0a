package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/vaultgate/vaultgate/internal/registry/domain"
)

func TestCallerMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	setup := func() *gin.Engine {
		router := gin.New()
		router.Use(CallerMiddleware(logger))
		router.GET("/probe", func(c *gin.Context) {
			caller, ok := GetCaller(c)
			if !ok {
				c.JSON(http.StatusOK, gin.H{"caller": nil})
				return
			}
			c.JSON(http.StatusOK, gin.H{"caller": caller.String()})
		})
		return router
	}

	t.Run("Success_ValidHeader", func(t *testing.T) {
		router := setup()

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(CallerHeader, testAdministrator.String())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), testAdministrator.String())
	})

	t.Run("Success_HeaderWithoutPrefix", func(t *testing.T) {
		router := setup()

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(CallerHeader, "8617e340b3d01fa5f11f306f4090fd50e238070d")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), testAdministrator.String())
	})

	t.Run("Success_MissingHeaderPassesThrough", func(t *testing.T) {
		router := setup()

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "null")
	})

	t.Run("Error_MalformedHeader", func(t *testing.T) {
		router := setup()

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(CallerHeader, "0xnothex")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetCaller_EmptyContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := createTestContext(http.MethodGet, "/", nil)

	caller, ok := GetCaller(c)
	assert.False(t, ok)
	assert.Equal(t, domain.ZeroAddress, caller)
}
