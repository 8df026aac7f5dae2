package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"solarhub/internal/db"
	"solarhub/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, path string, h gin.HandlerFunc) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/items/:id", h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestRespondErrorMapping(t *testing.T) {
	verr := types.NewValidationError()
	verr.Add("standType", "standType is required")

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", verr, http.StatusUnprocessableEntity},
		{"wrapped validation", fmt.Errorf("create: %w", verr), http.StatusUnprocessableEntity},
		{"not found", fmt.Errorf("get: %w", db.ErrNotFound), http.StatusNotFound},
		{"duplicate", fmt.Errorf("create: %w", db.ErrDuplicate), http.StatusConflict},
		{"other", errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, resp := serve(t, "/items/1", func(c *gin.Context) {
				respondError(c, "failed", tc.err)
			})
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.status, resp.Code)
			assert.Equal(t, "failed", resp.Msg)
			if tc.status == http.StatusUnprocessableEntity {
				assert.Equal(t, "standType is required", resp.Fields["standType"])
			} else {
				assert.Empty(t, resp.Fields)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	handler := func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		respondOK(c, http.StatusOK, "ok", id)
	}

	w, resp := serve(t, "/items/42", handler)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 42.0, resp.Data)

	for _, bad := range []string{"/items/0", "/items/-3", "/items/abc"} {
		w, _ = serve(t, bad, handler)
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
	}
}
