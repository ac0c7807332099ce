package user

import "testing"

func TestNewUserHashesPassword(t *testing.T) {
	u, err := NewUser("Vânia", "vania@aquagas.com.br", "senha-forte", RoleAdmin)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if u.Password == "senha-forte" {
		t.Fatalf("senha não pode ser gravada em texto puro")
	}
	if !u.CheckPassword("senha-forte") {
		t.Fatalf("senha correta deve validar")
	}
	if u.CheckPassword("outra-senha") {
		t.Fatalf("senha errada não pode validar")
	}
}

func TestNewUserDefaults(t *testing.T) {
	u, err := NewUser("Atendente", "balcao@aquagas.com.br", "123456", RoleOperator)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if !u.IsActive() {
		t.Fatalf("operador novo deve nascer ativo")
	}
	if u.IsAdmin() {
		t.Fatalf("operador comum não é admin")
	}
}

func TestNewUserValidation(t *testing.T) {
	if _, err := NewUser("", "a@b.com", "x", RoleOperator); err != ErrEmptyName {
		t.Fatalf("esperava ErrEmptyName, obteve %v", err)
	}
	if _, err := NewUser("Nome", "  ", "x", RoleOperator); err != ErrEmptyEmail {
		t.Fatalf("esperava ErrEmptyEmail, obteve %v", err)
	}
}
