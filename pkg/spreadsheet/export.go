package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/vrocha/aquagas-api/internal/domain/ledger"
)

// exportHeader é a ordem fixa de colunas do extrato exportado
var exportHeader = []string{"Data", "Tipo", "Descrição", "Categoria", "Valor", "Detalhe"}

const exportDateLayout = "02/01/2006 15:04"

// ExportEntries serializa os lançamentos selecionados para CSV na ordem
// de colunas do extrato. O tipo exportado é o texto original gravado na
// coluna, não o enum normalizado.
func ExportEntries(w io.Writer, entries []*ledger.Entry) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho do extrato: %w", err)
	}

	for _, e := range entries {
		record := []string{
			e.Date.Format(exportDateLayout),
			e.RawType,
			e.Description,
			e.Category,
			e.Amount.StringFixed(2),
			e.Detail,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("erro ao escrever lançamento no extrato: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
