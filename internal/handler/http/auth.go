package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/nexhr/hr-panel-go/internal/domain/auth"
	"github.com/nexhr/hr-panel-go/internal/handler/http/response"
	"github.com/nexhr/hr-panel-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &authHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	refreshTokenCookie := a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn)
	http.SetCookie(w, refreshTokenCookie)

	response.SuccessWithMessage(w, "Login successful", tokenResponse)
}

// RefreshToken implements AuthHandler.
func (a *authHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req auth.RefreshTokenRequest

	// The token can arrive in the body or in the cookie set at login.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		cookie, cookieErr := r.Cookie("refresh_token")
		if cookieErr != nil || cookie.Value == "" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		req.RefreshToken = cookie.Value
	}

	accessTokenResponse, err := a.authService.RefreshToken(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, accessTokenResponse)
}

// Logout implements AuthHandler.
func (a *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.authService.Logout(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		a.jwtService.RevokeToken(cookie.Value)
	}

	clearedCookie := &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/v1/auth",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	http.SetCookie(w, clearedCookie)

	response.SuccessWithMessage(w, "Logged out", nil)
}
