package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/nexhr/hr-panel-go/internal/domain/auth"
	"github.com/nexhr/hr-panel-go/internal/handler/http/response"
	"github.com/nexhr/hr-panel-go/internal/pkg/jwt"
	authservice "github.com/nexhr/hr-panel-go/internal/service/auth"
)

func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			rawToken := jwtauth.TokenFromHeader(r)
			if jwtService.IsTokenRevoked(rawToken) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			// Keep the serialized token around so logout can revoke it.
			ctx := authservice.WithRawToken(r.Context(), rawToken)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}
