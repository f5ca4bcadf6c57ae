package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestGetServerVersion_WritesVersion(t *testing.T) {
	const want = "1.2.3"
	h := newTestHandler(&service.Services{AppInfoService: &mockAppInfoService{version: want}})

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rec := httptest.NewRecorder()
	h.getServerVersion(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, want, rec.Body.String())
}
