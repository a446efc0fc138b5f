package transport

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/gg-motors/constant"
	imagerepo "github.com/muhammadheryan/gg-motors/repository/image"
	"github.com/muhammadheryan/gg-motors/utils/errors"
	"github.com/muhammadheryan/gg-motors/utils/logger"
	"go.uber.org/zap"
)

const (
	apiVersion        = "1.0.0"
	healthPingTimeout = 2 * time.Second
)

type RootResponse struct {
	Message   string `json:"message"`
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

type HealthResponse struct {
	Status    string  `json:"status"`
	Database  string  `json:"database"`
	Uptime    float64 `json:"uptime"`
	Timestamp string  `json:"timestamp"`
}

// Root handler
// @Summary API status
// @Tags Server
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func (s *RestHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, RootResponse{
		Message:   "Welcome to GG Motors API",
		Status:    "running",
		Version:   apiVersion,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Health handler
// @Summary Health check
// @Tags Server
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	database := "connected"
	if s.DB == nil {
		database = "unknown"
	} else {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()
		if err := s.DB.Ping(ctx); err != nil {
			logger.Warn("[Health] err DB.Ping", logger.WithContext(r.Context(), zap.String("error", err.Error()))...)
			database = "disconnected"
		}
	}

	writeSuccess(w, HealthResponse{
		Status:    "healthy",
		Database:  database,
		Uptime:    time.Since(s.startedAt).Seconds(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// ServeUpload handler
// @Summary Serve an uploaded image
// @Tags Uploads
// @Produce image/jpeg,image/png,image/webp,image/gif
// @Param filename path string true "Stored file name"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Router /uploads/{filename} [get]
func (s *RestHandler) ServeUpload(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["filename"]

	obj, err := s.Images.Open(r.Context(), name)
	if err != nil {
		if stderrors.Is(err, imagerepo.ErrNotFound) {
			writeError(w, errors.SetCustomError(constant.ErrFileNotFound))
			return
		}
		s.fail(w, r, errors.SetCustomError(constant.ErrInternal).WithCause(err))
		return
	}
	defer obj.Content.Close()

	// stored names only ever map to raster image types; nothing served here
	// may be rendered as active content
	w.Header().Set("Content-Type", imagerepo.ContentTypeFor(obj.Name))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Security-Policy", "default-src 'none'; sandbox")
	w.Header().Set("Cache-Control", "public, max-age=31536000")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	http.ServeContent(w, r, obj.Name, obj.ModTime, obj.Content)
}
