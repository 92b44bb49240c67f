package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/GlebRadaev/invoicedash/internal/dto"
	"github.com/GlebRadaev/invoicedash/internal/handlers/formstate"
	pkgauth "github.com/GlebRadaev/invoicedash/pkg/auth"
	"github.com/GlebRadaev/invoicedash/pkg/metrics"
	"github.com/GlebRadaev/invoicedash/pkg/utils"
	"go.uber.org/zap"
)

const DefaultRedirect = "/dashboard"

type Service interface {
	Register(ctx context.Context, form map[string]string) (*domain.FormResult, error)
	Authenticate(ctx context.Context, form map[string]string) (*pkgauth.Session, string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a user account with name, email and password, then redirect to the login page
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			name		formData	string	true	"Name"
//	@Param			email		formData	string	true	"Email"
//	@Param			password	formData	string	true	"Password, at least 6 characters"
//	@Success		303
//	@Failure		400	{object}	utils.Response		"Invalid form body"
//	@Failure		409	{object}	dto.FormStateDTO	"User already exists"
//	@Failure		422	{object}	dto.FormStateDTO	"Validation failed"
//	@Failure		500	{object}	dto.FormStateDTO	"Database error"
//	@Router			/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	form, err := utils.FormValues(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form body")
		return
	}
	res, err := h.authService.Register(r.Context(), form)
	formstate.Respond(w, r, "register", res, err)
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Sign in with email and password; sets the session cookie and redirects to redirectTo
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			email		formData	string	true	"Email"
//	@Param			password	formData	string	true	"Password"
//	@Param			redirectTo	formData	string	false	"Path to open after sign in"
//	@Success		303
//	@Failure		400	{object}	utils.Response		"Invalid form body"
//	@Failure		401	{object}	dto.FormStateDTO	"Invalid credentials"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	form, err := utils.FormValues(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form body")
		return
	}

	session, message, err := h.authService.Authenticate(r.Context(), form)
	if err != nil {
		metrics.ObserveResult("authenticate", "fault")
		zap.L().Error("sign in failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, formstate.MsgInternalError)
		return
	}
	if message != "" {
		metrics.ObserveResult("authenticate", "rejected")
		utils.RespondWithJSON(w, http.StatusUnauthorized, dto.FormStateDTO{Message: message})
		return
	}

	metrics.ObserveResult("authenticate", domain.OutcomeRedirect.String())
	http.SetCookie(w, &http.Cookie{
		Name:     pkgauth.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, safeRedirect(form["redirectTo"]), http.StatusSeeOther)
}

// safeRedirect only follows absolute paths on this host.
func safeRedirect(to string) string {
	if !strings.HasPrefix(to, "/") || strings.HasPrefix(to, "//") || strings.Contains(to, `\`) {
		return DefaultRedirect
	}
	return to
}
