// testing.go — сброс данных для тестового окружения.
package handlers

import (
	"net/http"

	apierrors "github.com/bigkaa/goartstore/video-module/internal/api/errors"
)

// ClearAllData — DELETE /testing/all-data.
// При VM_TESTING_ENDPOINTS_ENABLED=false endpoint отвечает 404, как будто его нет.
func (h *APIHandler) ClearAllData(w http.ResponseWriter, r *http.Request) {
	if !h.testingEnabled {
		apierrors.NotFound(w, "Endpoint отключён")
		return
	}

	h.videos.ClearAll(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
