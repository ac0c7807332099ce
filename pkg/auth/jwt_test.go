package auth

import (
	"testing"

	"github.com/vrocha/aquagas-api/internal/domain/user"
)

func testUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser("Vânia", "vania@aquagas.com.br", "senha", user.RoleAdmin)
	if err != nil {
		t.Fatalf("erro ao criar operador: %v", err)
	}
	return u
}

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	if _, err := NewJWTService(); err != ErrMissingJWTKey {
		t.Fatalf("esperava ErrMissingJWTKey, obteve %v", err)
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo-de-teste")
	t.Setenv("JWT_EXPIRATION_HOURS", "1")

	svc, err := NewJWTService()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	u := testUser(t)
	token, err := svc.GenerateToken(u)
	if err != nil {
		t.Fatalf("erro ao gerar token: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("erro ao validar token: %v", err)
	}

	if claims.UserID != u.ID {
		t.Fatalf("user_id = %q, esperava %q", claims.UserID, u.ID)
	}
	if claims.Role != string(user.RoleAdmin) {
		t.Fatalf("role = %q", claims.Role)
	}
	if svc.ExpiresIn() != 3600 {
		t.Fatalf("expires_in = %d", svc.ExpiresIn())
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo-a")
	svcA, err := NewJWTService()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	token, err := svcA.GenerateToken(testUser(t))
	if err != nil {
		t.Fatalf("erro ao gerar token: %v", err)
	}

	t.Setenv("JWT_SECRET_KEY", "segredo-b")
	svcB, err := NewJWTService()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if _, err := svcB.ValidateToken(token); err != ErrInvalidToken {
		t.Fatalf("esperava ErrInvalidToken, obteve %v", err)
	}
}
