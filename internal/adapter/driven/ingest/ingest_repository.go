package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/clinicops/bt-fulltime-monitor-go/internal/domain/entity"
	"github.com/clinicops/bt-fulltime-monitor-go/internal/domain/repository"
	"github.com/clinicops/bt-fulltime-monitor-go/internal/shared/types"
	"github.com/xuri/excelize/v2"
)

// BillingRepositoryImpl implementa o BillingRepository para arquivos CSV e XLSX.
type BillingRepositoryImpl struct{}

// NewBillingRepository cria uma nova implementação do BillingRepository.
func NewBillingRepository() repository.BillingRepository {
	return &BillingRepositoryImpl{}
}

// LoadTable lê um export de billing e o converte em uma tabela em memória.
// O formato é decidido pela extensão do arquivo.
func (r *BillingRepositoryImpl) LoadTable(path string) (*entity.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".xlsx":
		return loadXLSX(path)
	default:
		return nil, fmt.Errorf("%w (got %q)", types.ErrUnsupportedFileFormat, filepath.Ext(path))
	}
}

func loadCSV(path string) (*entity.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening billing file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // exports reais têm linhas irregulares

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV billing file: %w", err)
	}

	return tableFromRows(rows)
}

func loadXLSX(path string) (*entity.Table, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening XLSX billing file: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, types.ErrEmptyBillingFile
	}

	// Primeira planilha, primeira linha = cabeçalho (layout do export Aloha).
	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("error reading XLSX sheet %q: %w", sheets[0], err)
	}

	return tableFromRows(rows)
}

// tableFromRows monta a tabela a partir das linhas brutas: a primeira linha é
// o esquema, as demais viram mapas coluna -> valor. Células além do cabeçalho
// são ignoradas; células ausentes ficam como string vazia.
func tableFromRows(rows [][]string) (*entity.Table, error) {
	if len(rows) == 0 {
		return nil, types.ErrEmptyBillingFile
	}

	columns := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		columns[i] = strings.TrimSpace(name)
	}

	table := &entity.Table{Columns: columns, Rows: make([]map[string]string, 0, len(rows)-1)}
	for _, raw := range rows[1:] {
		row := make(map[string]string, len(columns))
		for i, name := range columns {
			if i < len(raw) {
				row[name] = raw[i]
			} else {
				row[name] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
