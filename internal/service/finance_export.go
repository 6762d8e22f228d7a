package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"rtrw-admin-svc/internal/models"
)

// financeSheetName is the single worksheet the export writes into
const financeSheetName = "Laporan Keuangan"

// monthNames maps month numbers to their Indonesian names
var monthNames = map[time.Month]string{
	time.January: "Januari", time.February: "Februari", time.March: "Maret",
	time.April: "April", time.May: "Mei", time.June: "Juni",
	time.July: "Juli", time.August: "Agustus", time.September: "September",
	time.October: "Oktober", time.November: "November", time.December: "Desember",
}

// WriteFinanceExcel renders the records as an xlsx workbook: one row per
// record, then a blank separator and the RINGKASAN block with total
// income, total expense and the resulting balance. The filename is the
// base plus a timestamp.
func WriteFinanceExcel(records []models.FinanceRecord, filenameBase string) ([]byte, string, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Error closing Excel file: %v\n", err)
		}
	}()

	index, err := f.NewSheet(financeSheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"Tanggal", "Jenis", "Kategori", "Jumlah", "Jumlah (Formatted)", "Keterangan"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(financeSheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err == nil {
		f.SetCellStyle(financeSheetName, "A1", "F1", headerStyle)
	}

	var totalIncome, totalExpense int64
	for i, record := range records {
		row := i + 2

		label := "Pengeluaran"
		if record.FinanceCategory == models.FinancePemasukan {
			label = "Pemasukan"
			totalIncome += record.Amount
		} else {
			totalExpense += record.Amount
		}

		f.SetCellValue(financeSheetName, fmt.Sprintf("A%d", row), formatTanggal(record.CreatedAt))
		f.SetCellValue(financeSheetName, fmt.Sprintf("B%d", row), label)
		f.SetCellValue(financeSheetName, fmt.Sprintf("C%d", row), record.Category)
		f.SetCellValue(financeSheetName, fmt.Sprintf("D%d", row), record.Amount)
		f.SetCellValue(financeSheetName, fmt.Sprintf("E%d", row), formatRupiah(record.Amount))
		f.SetCellValue(financeSheetName, fmt.Sprintf("F%d", row), record.Description)
	}

	// summary block: blank separator, then totals and balance
	balance := totalIncome - totalExpense
	summaryStart := len(records) + 3
	summary := []struct {
		label  string
		amount *int64
	}{
		{"RINGKASAN", nil},
		{"Total Pemasukan", &totalIncome},
		{"Total Pengeluaran", &totalExpense},
		{"Saldo", &balance},
	}
	for i, line := range summary {
		row := summaryStart + i
		f.SetCellValue(financeSheetName, fmt.Sprintf("A%d", row), line.label)
		if line.amount != nil {
			f.SetCellValue(financeSheetName, fmt.Sprintf("D%d", row), *line.amount)
			f.SetCellValue(financeSheetName, fmt.Sprintf("E%d", row), formatRupiah(*line.amount))
		}
	}

	widths := []float64{18, 14, 20, 15, 20, 30}
	for i, width := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(financeSheetName, col, col, width)
	}

	if f.GetSheetName(0) == "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	timestamp := time.Now().Format("2006-01-02T15-04-05")
	filename := fmt.Sprintf("%s-%s.xlsx", filenameBase, timestamp)

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	return buffer.Bytes(), filename, nil
}

// formatTanggal renders a timestamp as an Indonesian long date,
// e.g. "15 Januari 2024"
func formatTanggal(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), monthNames[t.Month()], t.Year())
}

// formatRupiah renders an amount as rupiah with dot thousand separators,
// e.g. "Rp 5.000.000"
func formatRupiah(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, d)
	}

	if negative {
		return "-Rp " + string(grouped)
	}
	return "Rp " + string(grouped)
}
