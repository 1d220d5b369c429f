package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims são as claims do token JWT emitido pelo serviço de autenticação
// do dashboard. Este serviço apenas valida o token; emissão e gestão de
// sessão ficam fora do escopo.
type Claims struct {
	UserID     int    `json:"user_id"`
	UserName   string `json:"user_name"`
	UserRoleID int    `json:"user_role_id"`
	jwt.RegisteredClaims
}
