package transport

import (
	"net/http"
	"strings"

	"github.com/muhammadheryan/gg-motors/application/user"
	"github.com/muhammadheryan/gg-motors/constant"
	utilsContext "github.com/muhammadheryan/gg-motors/utils/context"
	"github.com/muhammadheryan/gg-motors/utils/errors"
	"github.com/muhammadheryan/gg-motors/utils/logger"
	"go.uber.org/zap"
)

// AuthMiddleware rejects requests without a valid bearer token and stores
// the caller identity in the request context.
func AuthMiddleware(userApp user.UserApp) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if token == "" {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			identity, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				logger.Debug("[AuthMiddleware] token rejected", logger.WithContext(r.Context(), zap.String("error", err.Error()))...)
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := utilsContext.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
