package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/vastu-shakti/application/user"
	"github.com/muhammadheryan/vastu-shakti/constant"
	utilsContext "github.com/muhammadheryan/vastu-shakti/utils/context"
	"github.com/muhammadheryan/vastu-shakti/utils/errors"
)

// Authenticator resolves bearer tokens into a request identity. Routes opt in by wrapping
// their handler, so public routes never see it.
type Authenticator struct {
	userApp user.UserApp
}

func NewAuthenticator(userApp user.UserApp) *Authenticator {
	return &Authenticator{userApp: userApp}
}

// Authenticate rejects the request with 401 unless it carries a valid token of an active user.
func (a *Authenticator) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))

		identity, err := a.userApp.Authenticate(r.Context(), token)
		if err != nil {
			writeError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utilsContext.WithIdentity(r.Context(), identity)))
	})
}

// RequireRole must run after Authenticate. It answers 403 when the identity lacks the role.
func (a *Authenticator) RequireRole(role constant.Role) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utilsContext.GetIdentity(r.Context())
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			if identity.Role != role {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (a *Authenticator) AuthenticateFunc(fn http.HandlerFunc) http.Handler {
	return a.Authenticate(fn)
}
