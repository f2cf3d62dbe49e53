package preview

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vigilocam/detection-scheduler/internal/camera"
	"github.com/vigilocam/detection-scheduler/internal/detect"
)

// Handler serves camera snapshots over HTTP. It expects the camera id in
// the "camera" path segment.
type Handler struct {
	Client  *Client
	Cameras camera.Configuration
	Logger  *slog.Logger
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cam, ok := h.Cameras.Get(r.PathValue("camera"))
	if !ok {
		http.Error(w, "unknown camera", http.StatusNotFound)
		return
	}
	image, err := h.Client.Snapshot(r.Context(), cam)
	if err != nil {
		if errors.Is(err, detect.ErrValidation) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.Logger.Error("snapshot failed", "camera", cam.ID, "err", err)
		http.Error(w, "snapshot failed", http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", http.DetectContentType(image))
	_, _ = w.Write(image)
}
