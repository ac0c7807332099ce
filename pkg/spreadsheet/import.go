package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/vrocha/aquagas-api/internal/domain/customer"
	"github.com/vrocha/aquagas-api/pkg/whatsapp"
)

// Conjuntos de palavras-chave para casar os cabeçalhos da planilha de
// clientes. A comparação é feita sobre o cabeçalho normalizado
// (minúsculas, sem acento).
var headerKeywords = map[string][]string{
	"name":         {"nome", "cliente", "razao social"},
	"phone":        {"telefone", "celular", "fone", "whatsapp", "contato"},
	"address":      {"endereco", "logradouro", "rua"},
	"neighborhood": {"bairro"},
	"reference":    {"referencia", "ref", "ponto de referencia", "obs", "observacao"},
}

// accentFold troca os acentos comuns do português por letras puras.
// O conjunto de cabeçalhos é pequeno e fixo; não precisa de Unicode
// completo.
var accentFold = strings.NewReplacer(
	"á", "a", "à", "a", "ã", "a", "â", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "õ", "o", "ô", "o",
	"ú", "u", "ü", "u",
	"ç", "c",
)

func normalizeHeader(h string) string {
	return accentFold.Replace(strings.ToLower(strings.TrimSpace(h)))
}

// matchColumns mapeia cada campo de cliente para o índice da coluna da
// planilha, por casamento heurístico dos cabeçalhos
func matchColumns(headers []string) map[string]int {
	columns := make(map[string]int)
	for i, raw := range headers {
		h := normalizeHeader(raw)
		if h == "" {
			continue
		}
		for field, keywords := range headerKeywords {
			if _, taken := columns[field]; taken {
				continue
			}
			for _, kw := range keywords {
				if strings.Contains(h, kw) {
					columns[field] = i
					break
				}
			}
		}
	}
	return columns
}

func cell(row []string, idx int, ok bool) string {
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ImportResult resume a importação de uma planilha de clientes
type ImportResult struct {
	Customers []*customer.Customer
	Skipped   int
}

// ImportCustomers lê uma planilha CSV de clientes. A primeira linha é
// tratada como cabeçalho e casada heuristicamente; linhas sem nome ou
// sem telefone aproveitável são descartadas (contadas em Skipped). O
// telefone é gravado apenas com dígitos.
func ImportCustomers(r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler cabeçalho da planilha: %w", err)
	}

	columns := matchColumns(headers)
	nameIdx, hasName := columns["name"]
	phoneIdx, hasPhone := columns["phone"]
	addressIdx, hasAddress := columns["address"]
	neighborhoodIdx, hasNeighborhood := columns["neighborhood"]
	referenceIdx, hasReference := columns["reference"]

	if !hasName && !hasPhone {
		return nil, fmt.Errorf("planilha sem colunas reconhecíveis de nome ou telefone")
	}

	result := &ImportResult{Customers: []*customer.Customer{}}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("erro ao ler linha da planilha: %w", err)
		}

		name := cell(row, nameIdx, hasName)
		phone := whatsapp.OnlyDigits(cell(row, phoneIdx, hasPhone))

		if name == "" || phone == "" {
			result.Skipped++
			continue
		}

		c, err := customer.NewCustomer(
			name,
			phone,
			cell(row, addressIdx, hasAddress),
			cell(row, neighborhoodIdx, hasNeighborhood),
			cell(row, referenceIdx, hasReference),
		)
		if err != nil {
			result.Skipped++
			continue
		}

		result.Customers = append(result.Customers, c)
	}

	return result, nil
}
