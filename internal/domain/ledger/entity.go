package ledger

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyDescription = errors.New("descrição não pode ser vazia")
	ErrInvalidAmount    = errors.New("valor deve ser maior que zero")
	ErrNotReceivable    = errors.New("lançamento não é uma conta a receber")
)

// Type representa a classificação de um lançamento financeiro
type Type string

const (
	TypeInflow     Type = "Entrada"
	TypeOutflow    Type = "Saída"
	TypeReceivable Type = "A Receber"
	TypeSettled    Type = "Quitado"
	TypeUnknown    Type = ""
)

// ParseType normaliza a string de tipo armazenada para o enum fechado.
// A comparação é exata (case-sensitive) após remover espaços nas bordas;
// a planilha original gravou "Saída" com e sem acento, então as duas
// grafias são aceitas. Qualquer outro texto vira TypeUnknown e fica de
// fora de todos os totais.
func ParseType(raw string) Type {
	switch strings.TrimSpace(raw) {
	case "Entrada":
		return TypeInflow
	case "Saída", "Saida":
		return TypeOutflow
	case "A Receber":
		return TypeReceivable
	case "Quitado":
		return TypeSettled
	default:
		return TypeUnknown
	}
}

// Entry representa um lançamento no livro-caixa da distribuidora.
// RawType preserva o texto gravado na coluna tipo; Type é o enum
// derivado uma única vez na borda de ingestão.
type Entry struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	RawType       string          `json:"raw_type"`
	Type          Type            `json:"type"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Detail        string          `json:"detail,omitempty"`
}

// NewEntry cria um novo lançamento financeiro
func NewEntry(rawType, description string, amount decimal.Decimal, category, paymentMethod, detail string) (*Entry, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}

	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	return &Entry{
		ID:            uuid.New().String(),
		Date:          time.Now(),
		RawType:       strings.TrimSpace(rawType),
		Type:          ParseType(rawType),
		Description:   strings.TrimSpace(description),
		Amount:        amount,
		Category:      category,
		PaymentMethod: paymentMethod,
		Detail:        detail,
	}, nil
}

// DebtorName extrai o nome do cliente da descrição de uma conta a
// receber. A convenção do lançamento é "<prefixo>: <nome>"; o corte é
// feito na primeira ocorrência de ": ".
func DebtorName(description string) string {
	_, name, found := strings.Cut(description, ": ")
	if !found {
		return ""
	}
	return strings.TrimSpace(name)
}

// NewSettlement gera o lançamento de entrada que liquida uma conta a
// receber. O lançamento original não é alterado aqui; o chamador deve
// marcá-lo como Quitado para preservar a trilha de auditoria.
func NewSettlement(receivable *Entry, paymentMethod string) (*Entry, error) {
	if receivable.Type != TypeReceivable {
		return nil, ErrNotReceivable
	}

	description := "Recebimento: " + receivable.Description
	if name := DebtorName(receivable.Description); name != "" {
		description = "Recebimento: " + name
	}

	return &Entry{
		ID:            uuid.New().String(),
		Date:          time.Now(),
		RawType:       string(TypeInflow),
		Type:          TypeInflow,
		Description:   description,
		Amount:        receivable.Amount,
		Category:      receivable.Category,
		PaymentMethod: paymentMethod,
		Detail:        "Quitação de " + receivable.ID,
	}, nil
}
