package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/rosterly/rosterly-backend-go/internal/domain/user"
	"github.com/rosterly/rosterly-backend-go/internal/handler/http/response"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, user.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, user.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, user.ErrInvalidToken)
				return
			}
			// Every request is tenant-scoped; a token without a tenant is
			// useless downstream, reject it early.
			if tenantID, ok := claims["tenant_id"].(string); !ok || tenantID == "" {
				response.HandleError(w, user.ErrTenantClaimMissing)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
