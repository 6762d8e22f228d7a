package service

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"rtrw-admin-svc/internal/models"
)

func financeRecord(category string, amount int64, day int) models.FinanceRecord {
	return models.FinanceRecord{
		FinanceCategory: category,
		Category:        "iuran",
		Amount:          amount,
		Description:     "test",
		CreatedAt:       time.Date(2024, time.January, day, 10, 0, 0, 0, time.UTC),
	}
}

func TestFilterFinanceRecordsEmptyOptionsIsIdentity(t *testing.T) {
	records := []models.FinanceRecord{
		financeRecord(models.FinancePemasukan, 100, 5),
		financeRecord(models.FinancePengeluaran, 50, 20),
	}

	filtered := FilterFinanceRecords(records, ExportOptions{})

	assert.Equal(t, records, filtered)
}

func TestFilterFinanceRecordsDateBoundsAreInclusive(t *testing.T) {
	records := []models.FinanceRecord{
		financeRecord(models.FinancePemasukan, 1, 4),
		financeRecord(models.FinancePemasukan, 2, 5),
		financeRecord(models.FinancePemasukan, 3, 10),
		financeRecord(models.FinancePemasukan, 4, 11),
	}

	filtered := FilterFinanceRecords(records, ExportOptions{
		StartDate: "2024-01-05",
		EndDate:   "2024-01-10",
	})

	require.Len(t, filtered, 2)
	assert.Equal(t, int64(2), filtered[0].Amount)
	assert.Equal(t, int64(3), filtered[1].Amount)
}

func TestFilterFinanceRecordsCategory(t *testing.T) {
	records := []models.FinanceRecord{
		financeRecord(models.FinancePemasukan, 100, 5),
		financeRecord(models.FinancePengeluaran, 50, 6),
	}

	filtered := FilterFinanceRecords(records, ExportOptions{Category: models.FinancePengeluaran})
	require.Len(t, filtered, 1)
	assert.Equal(t, models.FinancePengeluaran, filtered[0].FinanceCategory)

	// "all" disables the category filter
	assert.Len(t, FilterFinanceRecords(records, ExportOptions{Category: "all"}), 2)
}

func TestExportFilenameBase(t *testing.T) {
	tests := []struct {
		name string
		opts ExportOptions
		want string
	}{
		{"no range", ExportOptions{}, "laporan-keuangan"},
		{"full range", ExportOptions{StartDate: "2024-01-01", EndDate: "2024-01-31"}, "laporan-keuangan-2024-01-01-sampai-2024-01-31"},
		{"start only", ExportOptions{StartDate: "2024-01-01"}, "laporan-keuangan-dari-2024-01-01"},
		{"end only", ExportOptions{EndDate: "2024-01-31"}, "laporan-keuangan-sampai-2024-01-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExportFilenameBase(tt.opts))
		})
	}
}

func TestWriteFinanceExcel(t *testing.T) {
	records := []models.FinanceRecord{
		financeRecord(models.FinancePemasukan, 5000000, 15),
		financeRecord(models.FinancePengeluaran, 1500000, 20),
	}

	content, filename, err := WriteFinanceExcel(records, "laporan-keuangan")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "laporan-keuangan-"))
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	cell := func(ref string) string {
		value, err := f.GetCellValue(financeSheetName, ref)
		require.NoError(t, err)
		return value
	}

	assert.Equal(t, "Tanggal", cell("A1"))
	assert.Equal(t, "Jumlah (Formatted)", cell("E1"))

	assert.Equal(t, "15 Januari 2024", cell("A2"))
	assert.Equal(t, "Pemasukan", cell("B2"))
	assert.Equal(t, "5000000", cell("D2"))
	assert.Equal(t, "Rp 5.000.000", cell("E2"))
	assert.Equal(t, "Pengeluaran", cell("B3"))

	// summary block sits after a blank separator row
	assert.Equal(t, "", cell("A4"))
	assert.Equal(t, "RINGKASAN", cell("A5"))
	assert.Equal(t, "Total Pemasukan", cell("A6"))
	assert.Equal(t, "5000000", cell("D6"))
	assert.Equal(t, "Total Pengeluaran", cell("A7"))
	assert.Equal(t, "1500000", cell("D7"))
	assert.Equal(t, "Saldo", cell("A8"))
	assert.Equal(t, "3500000", cell("D8"))
	assert.Equal(t, "Rp 3.500.000", cell("E8"))
}

func TestWriteFinanceExcelEmptyLedger(t *testing.T) {
	content, _, err := WriteFinanceExcel(nil, "laporan-keuangan")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	value, err := f.GetCellValue(financeSheetName, "A3")
	require.NoError(t, err)
	assert.Equal(t, "RINGKASAN", value)

	saldo, err := f.GetCellValue(financeSheetName, "D6")
	require.NoError(t, err)
	assert.Equal(t, "0", saldo)
}

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 0", formatRupiah(0))
	assert.Equal(t, "Rp 500", formatRupiah(500))
	assert.Equal(t, "Rp 5.000", formatRupiah(5000))
	assert.Equal(t, "Rp 5.000.000", formatRupiah(5000000))
	assert.Equal(t, "-Rp 1.234.567", formatRupiah(-1234567))
}

func TestFormatTanggal(t *testing.T) {
	assert.Equal(t, "15 Januari 2024", formatTanggal(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1 Agustus 2026", formatTanggal(time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)))
}
