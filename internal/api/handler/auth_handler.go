package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ruralroots/directory-api/internal/core/domain"
	"github.com/ruralroots/directory-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=customer farm worker"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userResponse deliberately omits the stored credential.
type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type authResponse struct {
	Token string        `json:"token,omitempty"`
	User  *userResponse `json:"user,omitempty"`
}

func toUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// Register creates a new account and logs it in.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{Token: token, User: toUserResponse(user)})
}

// Login authenticates and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: token, User: toUserResponse(user)})
}

// Logout clears the active session.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "logged out"})
}
