package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rtrw-admin-svc/internal/models"
	"rtrw-admin-svc/internal/store"
)

// FinanceInput is the payload for recording a finance transaction
type FinanceInput struct {
	FinanceCategory string `json:"finance_category"`
	Category        string `json:"category"`
	Amount          int64  `json:"amount"`
	Description     string `json:"description"`
}

// FinanceUpdateInput is the payload for a partial update
type FinanceUpdateInput struct {
	FinanceCategory *string `json:"finance_category"`
	Category        *string `json:"category"`
	Amount          *int64  `json:"amount"`
	Description     *string `json:"description"`
}

// ExportOptions narrows the exported record set. Dates are YYYY-MM-DD
// and compare against the date portion of created_at, inclusive on both
// ends. Category filters on finance_category; empty or "all" disables it.
type ExportOptions struct {
	StartDate string
	EndDate   string
	Category  string
}

// FinanceService handles finance record business operations and the
// spreadsheet export
type FinanceService interface {
	List(ctx context.Context, filters map[string]interface{}) ([]models.FinanceRecord, error)
	GetByID(ctx context.Context, id uint) (*models.FinanceRecord, error)
	Create(ctx context.Context, input *FinanceInput) (*models.FinanceRecord, error)
	Update(ctx context.Context, id uint, input *FinanceUpdateInput) (*models.FinanceRecord, error)
	Delete(ctx context.Context, id uint) error
	Export(ctx context.Context, opts ExportOptions) ([]byte, string, error)
}

// financeService implements FinanceService
type financeService struct {
	collection *store.Collection[models.FinanceRecord]
}

// NewFinanceService creates a new finance service
func NewFinanceService(collection *store.Collection[models.FinanceRecord]) FinanceService {
	return &financeService{
		collection: collection,
	}
}

func (s *financeService) List(ctx context.Context, filters map[string]interface{}) ([]models.FinanceRecord, error) {
	return s.collection.List(ctx, filters)
}

func (s *financeService) GetByID(ctx context.Context, id uint) (*models.FinanceRecord, error) {
	return s.collection.GetByID(ctx, id)
}

func (s *financeService) Create(ctx context.Context, input *FinanceInput) (*models.FinanceRecord, error) {
	if input.FinanceCategory == "" || input.Category == "" {
		return nil, invalidf("Missing required fields: finance_category, category")
	}
	if !models.IsOneOf(input.FinanceCategory, models.FinanceCategories) {
		return nil, invalidf("Invalid finance_category. Must be 'pemasukan' or 'pengeluaran'")
	}
	if input.Amount <= 0 {
		return nil, invalidf("Amount must be greater than zero")
	}

	record := &models.FinanceRecord{
		FinanceCategory: input.FinanceCategory,
		Category:        input.Category,
		Amount:          input.Amount,
		Description:     input.Description,
		UUID:            uuid.NewString(),
		CreatedAt:       time.Now(),
	}
	if err := s.collection.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *financeService) Update(ctx context.Context, id uint, input *FinanceUpdateInput) (*models.FinanceRecord, error) {
	changes := map[string]interface{}{}
	if input.FinanceCategory != nil {
		if !models.IsOneOf(*input.FinanceCategory, models.FinanceCategories) {
			return nil, invalidf("Invalid finance_category. Must be 'pemasukan' or 'pengeluaran'")
		}
		changes["finance_category"] = *input.FinanceCategory
	}
	if input.Category != nil {
		changes["category"] = *input.Category
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, invalidf("Amount must be greater than zero")
		}
		changes["amount"] = *input.Amount
	}
	if input.Description != nil {
		changes["description"] = *input.Description
	}
	if len(changes) == 0 {
		return nil, invalidf("no fields to update")
	}

	return s.collection.Update(ctx, id, changes)
}

func (s *financeService) Delete(ctx context.Context, id uint) error {
	return s.collection.Delete(ctx, id)
}

// Export filters the finance records by the given options and renders
// them as an xlsx workbook. Returns the file bytes and the generated
// filename.
func (s *financeService) Export(ctx context.Context, opts ExportOptions) ([]byte, string, error) {
	if opts.StartDate != "" {
		if _, err := time.Parse("2006-01-02", opts.StartDate); err != nil {
			return nil, "", invalidf("Invalid start_date. Must be YYYY-MM-DD")
		}
	}
	if opts.EndDate != "" {
		if _, err := time.Parse("2006-01-02", opts.EndDate); err != nil {
			return nil, "", invalidf("Invalid end_date. Must be YYYY-MM-DD")
		}
	}
	if opts.Category != "" && opts.Category != "all" && !models.IsOneOf(opts.Category, models.FinanceCategories) {
		return nil, "", invalidf("Invalid category. Must be 'pemasukan' or 'pengeluaran'")
	}

	records, err := s.collection.List(ctx, nil)
	if err != nil {
		return nil, "", err
	}

	filtered := FilterFinanceRecords(records, opts)
	return WriteFinanceExcel(filtered, ExportFilenameBase(opts))
}

// FilterFinanceRecords applies the inclusive date-range and category
// pre-filter. An empty options value returns the records unchanged.
func FilterFinanceRecords(records []models.FinanceRecord, opts ExportOptions) []models.FinanceRecord {
	filtered := make([]models.FinanceRecord, 0, len(records))
	for _, record := range records {
		// compare only the date portion of the creation timestamp
		date := record.CreatedAt.Format("2006-01-02")
		if opts.StartDate != "" && date < opts.StartDate {
			continue
		}
		if opts.EndDate != "" && date > opts.EndDate {
			continue
		}
		if opts.Category != "" && opts.Category != "all" && record.FinanceCategory != opts.Category {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

// ExportFilenameBase encodes the active date range into the filename base
func ExportFilenameBase(opts ExportOptions) string {
	base := "laporan-keuangan"
	switch {
	case opts.StartDate != "" && opts.EndDate != "":
		return base + "-" + opts.StartDate + "-sampai-" + opts.EndDate
	case opts.StartDate != "":
		return base + "-dari-" + opts.StartDate
	case opts.EndDate != "":
		return base + "-sampai-" + opts.EndDate
	}
	return base
}
