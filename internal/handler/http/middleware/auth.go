package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/villacare/timekeeper-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests whose verified token is missing, malformed
// or not an access token carrying a company scope.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.Unauthorized(w, "Missing token")
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.Unauthorized(w, "Invalid token")
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.Unauthorized(w, "Invalid token")
				return
			}
			if companyID, ok := claims["company_id"].(string); !ok || companyID == "" {
				response.Unauthorized(w, "Token is not scoped to a company")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
