package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	trxapp "github.com/muhammadheryan/gg-motors/application/transaction"
	userapp "github.com/muhammadheryan/gg-motors/application/user"
	vehicleapp "github.com/muhammadheryan/gg-motors/application/vehicle"
	"github.com/muhammadheryan/gg-motors/cmd/config"
	"github.com/muhammadheryan/gg-motors/constant"
	imagerepo "github.com/muhammadheryan/gg-motors/repository/image"
	"github.com/muhammadheryan/gg-motors/utils/errors"
	"github.com/muhammadheryan/gg-motors/utils/logger"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// jsonBodyLimit bounds JSON request bodies.
const jsonBodyLimit = 10 << 20

// Pinger reports database reachability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Dependencies struct {
	Config         *config.Config
	UserApp        userapp.UserApp
	VehicleApp     vehicleapp.VehicleApp
	TransactionApp trxapp.TransactionApp
	Images         imagerepo.ImageRepository
	DB             Pinger
}

type RestHandler struct {
	UserApp        userapp.UserApp
	VehicleApp     vehicleapp.VehicleApp
	TransactionApp trxapp.TransactionApp
	Images         imagerepo.ImageRepository
	DB             Pinger

	debug     bool
	limits    uploadLimits
	startedAt time.Time
}

func NewTransport(deps Dependencies) http.Handler {
	cfg := deps.Config
	router := mux.NewRouter()

	rh := &RestHandler{
		UserApp:        deps.UserApp,
		VehicleApp:     deps.VehicleApp,
		TransactionApp: deps.TransactionApp,
		Images:         deps.Images,
		DB:             deps.DB,
		debug:          cfg.IsDevelopment(),
		limits: uploadLimits{
			maxFileSize: cfg.Upload.MaxFileSize,
			maxFiles:    cfg.Upload.MaxFiles,
		},
		startedAt: time.Now(),
	}
	if rh.limits.maxFileSize <= 0 {
		rh.limits.maxFileSize = constant.ImageMaxFileSize
	}
	if rh.limits.maxFiles <= 0 {
		rh.limits.maxFiles = constant.ImageMaxFiles
	}

	router.NotFoundHandler = http.HandlerFunc(rh.NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(rh.MethodNotAllowed)

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	router.HandleFunc("/", rh.Root).Methods(http.MethodGet)
	router.HandleFunc("/health", rh.Health).Methods(http.MethodGet)
	router.HandleFunc("/uploads/{filename}", rh.ServeUpload).Methods(http.MethodGet, http.MethodHead)

	auth := AuthMiddleware(rh.UserApp)
	api := router.PathPrefix("/api").Subrouter()

	// vehicles
	api.HandleFunc("/vehicles", rh.ListVehicles).Methods(http.MethodGet)
	api.Handle("/vehicles", auth(http.HandlerFunc(rh.CreateVehicle))).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/{id}", rh.GetVehicle).Methods(http.MethodGet)
	api.Handle("/vehicles/{id}", auth(http.HandlerFunc(rh.UpdateVehicle))).Methods(http.MethodPut)
	api.Handle("/vehicles/{id}", auth(http.HandlerFunc(rh.DeleteVehicle))).Methods(http.MethodDelete)

	// users
	api.HandleFunc("/users/register", rh.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/login", rh.Login).Methods(http.MethodPost)
	api.Handle("/users/profile", auth(http.HandlerFunc(rh.Profile))).Methods(http.MethodGet)

	// transactions
	api.HandleFunc("/transactions", rh.ListTransactions).Methods(http.MethodGet)
	api.HandleFunc("/transactions", rh.CreateTransaction).Methods(http.MethodPost)
	api.HandleFunc("/transactions/user/{userId}", rh.ListUserTransactions).Methods(http.MethodGet)
	api.HandleFunc("/transactions/{id}", rh.UpdateTransactionStatus).Methods(http.MethodPut)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(RecoverMiddleware(rh.debug))
	router.Use(RateLimitMiddleware(NewRateLimiter(cfg.Server.RateLimitPerMinute, cfg.Server.RateLimitBurst)))

	var handler http.Handler = handlers.CORS(
		handlers.AllowedOrigins(cfg.Server.AllowedOrigins),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodHead, http.MethodPost,
			http.MethodPut, http.MethodDelete, http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type", constant.RequestIDHeader}),
		handlers.ExposedHeaders([]string{constant.RequestIDHeader}),
		handlers.AllowCredentials(),
	)(router)

	if cfg.Server.TrustProxy {
		handler = handlers.ProxyHeaders(handler)
	}

	return handler
}

// fail writes err and logs it when it is not a client error.
func (s *RestHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if ce, ok := errors.As(err); !ok || ce.ErrorHTTPCode() >= http.StatusInternalServerError {
		logger.Error("[RestHandler] request failed", logger.WithContext(r.Context(),
			zap.String("path", r.URL.Path),
			zap.String("error", err.Error()))...)
	}
	writeErrorResponse(w, err, s.debug)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, jsonBodyLimit)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest).WithCause(err)
	}
	return nil
}

func (s *RestHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{
		Message: "route not found",
		Code:    errors.SetCustomError(constant.ErrNotFound).ErrorCode(),
	})
}

func (s *RestHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Message: "method not allowed"})
}
