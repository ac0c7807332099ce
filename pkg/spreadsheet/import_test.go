package spreadsheet

import (
	"strings"
	"testing"
)

func TestImportCustomers(t *testing.T) {
	csv := strings.Join([]string{
		"Nome,Telefone,Endereço,Bairro,Ponto de Referência",
		"Maria Souza,(11) 98888-7777,Rua A 10,Centro,Perto da praça",
		"João Lima,11 97777-6666,Rua B 20,Jardim,",
	}, "\n")

	result, err := ImportCustomers(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(result.Customers) != 2 {
		t.Fatalf("esperava 2 clientes, obteve %d", len(result.Customers))
	}
	if result.Skipped != 0 {
		t.Fatalf("esperava 0 descartes, obteve %d", result.Skipped)
	}

	first := result.Customers[0]
	if first.Name != "Maria Souza" {
		t.Fatalf("nome = %q", first.Name)
	}
	if first.Phone != "11988887777" {
		t.Fatalf("telefone deve ser só dígitos, obteve %q", first.Phone)
	}
	if first.Neighborhood != "Centro" {
		t.Fatalf("bairro = %q", first.Neighborhood)
	}
	if first.Reference != "Perto da praça" {
		t.Fatalf("referência = %q", first.Reference)
	}
}

func TestImportCustomersHeaderVariants(t *testing.T) {
	// Cabeçalhos com caixa alta, sem acento e com sinônimos
	variants := []string{
		"Nome,Celular\nMaria,11988887777",
		"NOME,WHATSAPP\nMaria,11988887777",
		"nome completo,fone\nMaria,11988887777",
		"Razão Social,Contato\nMaria,11988887777",
	}

	for _, v := range variants {
		result, err := ImportCustomers(strings.NewReader(v))
		if err != nil {
			t.Fatalf("variante %q: erro inesperado: %v", v, err)
		}
		if len(result.Customers) != 1 {
			t.Fatalf("variante %q: esperava 1 cliente, obteve %d", v, len(result.Customers))
		}
	}
}

func TestImportCustomersSkipsIncompleteRows(t *testing.T) {
	csv := strings.Join([]string{
		"Nome,Telefone",
		"Maria,11988887777",
		",11977776666",
		"João,",
		"Ana,sem numero",
	}, "\n")

	result, err := ImportCustomers(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(result.Customers) != 1 {
		t.Fatalf("esperava 1 cliente, obteve %d", len(result.Customers))
	}
	if result.Skipped != 3 {
		t.Fatalf("esperava 3 descartes, obteve %d", result.Skipped)
	}
}

func TestImportCustomersUnrecognizedHeader(t *testing.T) {
	csv := "Código,Valor\n1,100"

	if _, err := ImportCustomers(strings.NewReader(csv)); err == nil {
		t.Fatalf("esperava erro para planilha sem colunas reconhecíveis")
	}
}
