package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoBillingFile         = errors.New("no billing file provided. Use --file to point at a CSV or XLSX billing export")
	ErrUnsupportedFileFormat = errors.New("unsupported billing file format: expected .csv or .xlsx")
	ErrEmptyBillingFile      = errors.New("billing file has no header row")
)

// SchemaError reporta colunas obrigatórias ausentes do esquema do arquivo de
// billing. É fatal: o pipeline aborta antes de processar qualquer linha.
type SchemaError struct {
	MissingColumns []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.MissingColumns, ", "))
}

// SelectionError reporta uma seleção de meses com cardinalidade diferente de 3.
// Nenhum resultado parcial é produzido.
type SelectionError struct {
	Count int
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("exactly 3 months required, got %d", e.Count)
}
