package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"rtrw-admin-svc/internal/models"
)

func newTestCollection(t *testing.T) (*Collection[models.Announcement], sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return NewCollection[models.Announcement](gdb, "rtrw_announcements"), mock
}

func announcementRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "descriptions", "priority", "status", "uuid", "created_at"})
}

func TestCollectionCreate(t *testing.T) {
	collection, mock := newTestCollection(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "rtrw_announcements"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	record := &models.Announcement{
		Title:        "Kerja Bakti",
		Descriptions: "Minggu pagi jam 7",
		Priority:     "sedang",
		Status:       "published",
		UUID:         "11111111-2222-3333-4444-555555555555",
		CreatedAt:    time.Now(),
	}
	err := collection.Create(context.Background(), record)

	assert.NoError(t, err)
	assert.Equal(t, uint(7), record.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionListAppliesFiltersInSortedOrder(t *testing.T) {
	collection, mock := newTestCollection(t)

	// "priority" sorts before "status" regardless of map iteration order
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "rtrw_announcements" WHERE priority = $1 AND status = $2`)).
		WithArgs("tinggi", "published").
		WillReturnRows(announcementRows().
			AddRow(1, "Banjir", "Waspada banjir", "tinggi", "published", "a", time.Now()).
			AddRow(2, "Ronda", "Jadwal ronda", "tinggi", "published", "b", time.Now()))

	records, err := collection.List(context.Background(), map[string]interface{}{
		"status":   "published",
		"priority": "tinggi",
	})

	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "Banjir", records[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionListEmptyResultIsNotAnError(t *testing.T) {
	collection, mock := newTestCollection(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "rtrw_announcements"`)).
		WillReturnRows(announcementRows())

	records, err := collection.List(context.Background(), nil)

	assert.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionGetByIDNotFound(t *testing.T) {
	collection, mock := newTestCollection(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "rtrw_announcements" WHERE id = $1`)).
		WillReturnRows(announcementRows())

	record, err := collection.GetByID(context.Background(), 42)

	assert.Nil(t, record)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionGetByAlternateField(t *testing.T) {
	collection, mock := newTestCollection(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "rtrw_announcements" WHERE uuid = $1`)).
		WillReturnRows(announcementRows().
			AddRow(3, "Arisan", "Arisan bulanan", "rendah", "draft", "abc-123", time.Now()))

	record, err := collection.GetBy(context.Background(), "uuid", "abc-123")

	assert.NoError(t, err)
	assert.Equal(t, uint(3), record.ID)
	assert.Equal(t, "Arisan", record.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionUpdateReturnsUpdatedRow(t *testing.T) {
	collection, mock := newTestCollection(t)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE "rtrw_announcements" SET`)).
		WillReturnRows(announcementRows().
			AddRow(5, "Arisan", "Arisan bulanan", "rendah", "published", "abc", time.Now()))

	record, err := collection.Update(context.Background(), 5, map[string]interface{}{
		"status": "published",
	})

	assert.NoError(t, err)
	assert.Equal(t, "published", record.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionUpdateMissingRow(t *testing.T) {
	collection, mock := newTestCollection(t)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE "rtrw_announcements" SET`)).
		WillReturnRows(announcementRows())

	record, err := collection.Update(context.Background(), 99, map[string]interface{}{
		"status": "published",
	})

	assert.Nil(t, record)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionDeleteSecondCallFails(t *testing.T) {
	collection, mock := newTestCollection(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "rtrw_announcements" WHERE id = $1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "rtrw_announcements" WHERE id = $1`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, collection.Delete(context.Background(), 5))
	assert.ErrorIs(t, collection.Delete(context.Background(), 5), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
