package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims inclui os claims padrão JWT mais a identidade da aplicação.
// Type, Position e Approved permitem ao middleware reconstruir o usuário
// para as decisões de acesso sem consultar o banco.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Type     string `json:"type"`               // "client" | "mechanic" | "admin"
	Position string `json:"position,omitempty"` // só para mechanic
	Approved bool   `json:"approved,omitempty"` // só para mechanic
}

// Identity são os campos próprios embarcados no token.
type Identity struct {
	UserID   string
	FullName string
	Type     string
	Position string
	Approved bool
}

// Generate gera um token JWT assinado com a identidade do usuário.
func Generate(secret string, id Identity, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vazio")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:   id.UserID,
		FullName: id.FullName,
		Type:     id.Type,
		Position: id.Position,
		Approved: id.Approved,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida o token e devolve a identidade embarcada.
// Retorna erro se o token é inválido, expirado ou tem assinatura incorreta.
func Parse(secret, tokenString string) (*Identity, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vazio")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return &Identity{
		UserID:   claims.UserID,
		FullName: claims.FullName,
		Type:     claims.Type,
		Position: claims.Position,
		Approved: claims.Approved,
	}, nil
}
