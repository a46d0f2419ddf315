package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/supermercado-pro/internal/application/dto"
	"github.com/tu-usuario/supermercado-pro/internal/application/session"
	"github.com/tu-usuario/supermercado-pro/pkg/jwt"
)

// AuthHandler maneja login, logout y el usuario de la sesión.
type AuthHandler struct {
	sessions   *session.Manager
	jwtSecret  string
	jwtIssuer  string
	jwtExpMins int
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(sessions *session.Manager, jwtSecret, jwtIssuer string, jwtExpMins int) *AuthHandler {
	return &AuthHandler{
		sessions:   sessions,
		jwtSecret:  jwtSecret,
		jwtIssuer:  jwtIssuer,
		jwtExpMins: jwtExpMins,
	}
}

// Login valida credenciales contra el documento vigente y abre la sesión.
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	u := h.sessions.Login(in.Username, in.Password)
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	}
	token, err := jwt.Generate(h.jwtSecret, u.ID, u.Username, u.Role, h.jwtIssuer, h.jwtExpMins)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.LoginResponse{Token: token, User: *dto.ToUserResponse(u)})
}

// Logout cierra la sesión local. Siempre responde 204.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Logout()
	return c.SendStatus(fiber.StatusNoContent)
}

// Me devuelve el usuario de la sesión vigente.
// GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	u := h.sessions.Current()
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: "no hay sesión activa"})
	}
	return c.JSON(dto.ToUserResponse(u))
}
