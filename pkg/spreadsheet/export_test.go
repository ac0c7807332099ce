package spreadsheet

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vrocha/aquagas-api/internal/domain/ledger"
)

func TestExportEntries(t *testing.T) {
	entry, err := ledger.NewEntry("Saída", "Combustível", decimal.NewFromFloat(45.9), "Operacional", "Pix", "abastecimento")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	entry.Date = time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)

	var buf bytes.Buffer
	if err := ExportEntries(&buf, []*ledger.Entry{entry}); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("esperava cabeçalho e 1 linha, obteve %d linhas", len(lines))
	}

	if lines[0] != "Data,Tipo,Descrição,Categoria,Valor,Detalhe" {
		t.Fatalf("cabeçalho = %q", lines[0])
	}
	if lines[1] != "10/03/2026 14:30,Saída,Combustível,Operacional,45.90,abastecimento" {
		t.Fatalf("linha = %q", lines[1])
	}
}

func TestExportEntriesKeepsRawType(t *testing.T) {
	entry, err := ledger.NewEntry("Saida", "Manutenção", decimal.NewFromInt(20), "", "", "")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	var buf bytes.Buffer
	if err := ExportEntries(&buf, []*ledger.Entry{entry}); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	// O texto exportado é o que foi digitado, não o enum normalizado
	if !strings.Contains(buf.String(), ",Saida,") {
		t.Fatalf("esperava tipo original na exportação: %q", buf.String())
	}
}

func TestExportEntriesEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportEntries(&buf, nil); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if strings.TrimSpace(buf.String()) != "Data,Tipo,Descrição,Categoria,Valor,Detalhe" {
		t.Fatalf("esperava só o cabeçalho, obteve %q", buf.String())
	}
}
