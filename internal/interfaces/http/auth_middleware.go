package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/guaianases/oficina-api/internal/application/dto"
	"github.com/guaianases/oficina-api/internal/application/workshop"
	"github.com/guaianases/oficina-api/internal/domain/access"
	"github.com/guaianases/oficina-api/pkg/jwt"
)

// Local key da identidade autenticada em Fiber.
const LocalIdentity = "identity"

// AuthMiddleware valida o Bearer Token JWT e deposita a identidade em
// c.Locals. Mecânico não aprovado passa aqui normalmente: ele tem sessão,
// só não tem privilégios.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		id, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalIdentity, id)
		return c.Next()
	}
}

// OptionalAuthMiddleware extrai a identidade quando presente, mas deixa a
// requisição seguir anônima quando não há token. Rotas públicas que mudam de
// resposta para usuário logado usam este.
func OptionalAuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			if id, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1])); err == nil {
				c.Locals(LocalIdentity, id)
			}
		}
		return c.Next()
	}
}

// RequirePermission nega com 403 quem não detém a capacidade. Roda depois de
// AuthMiddleware.
func RequirePermission(perm access.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetAccessUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
		}
		if !access.HasPermission(user, perm) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso negado"})
		}
		return c.Next()
	}
}

// GetIdentity devolve a identidade do contexto (depois do middleware de auth).
func GetIdentity(c *fiber.Ctx) *jwt.Identity {
	v := c.Locals(LocalIdentity)
	if v == nil {
		return nil
	}
	id, _ := v.(*jwt.Identity)
	return id
}

// GetAccessUser reconstrói o usuário de acesso a partir do token; nil para
// sessão anônima.
func GetAccessUser(c *fiber.Ctx) *access.User {
	id := GetIdentity(c)
	if id == nil {
		return nil
	}
	return &access.User{
		ID:       id.UserID,
		Type:     id.Type,
		Position: id.Position,
		Approved: id.Approved,
	}
}

// GetActor devolve o ator da oficina (identidade de acesso + nome de
// exibição). Só faz sentido depois de AuthMiddleware.
func GetActor(c *fiber.Ctx) (workshop.Actor, bool) {
	id := GetIdentity(c)
	if id == nil {
		return workshop.Actor{}, false
	}
	return workshop.Actor{
		User: access.User{
			ID:       id.UserID,
			Type:     id.Type,
			Position: id.Position,
			Approved: id.Approved,
		},
		FullName: id.FullName,
	}, true
}
