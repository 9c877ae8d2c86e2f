package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"olx-scraper/models"
	"olx-scraper/storage"
	"olx-scraper/utils"
)

func newGateway(t *testing.T) (*storage.Gateway, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "postgres")
	return storage.NewGatewayFromDB(db, utils.NewLogger()), mock
}

func sampleRecord() *models.AdRecord {
	return &models.AdRecord{
		AdID:             "812345678",
		Title:            "ThinkPad X1 Carbon",
		Price:            "25 000 грн.",
		UserName:         "Oleh",
		PhoneNumber:      "N/A",
		UserScore:        "Unknown",
		UserRegistration: "на OLX з 2019",
		UserLastSeen:     "15 січня 2025 р.",
		AdViewCounter:    "120",
		Location:         "Львів Львівська область",
		AdPubDate:        "14 січня 2025 р.",
		URL:              "https://www.olx.ua/d/uk/obyavlenie/thinkpad-ID812345678.html",
		Description:      "Ідеальний стан",
		AdTags:           []string{"Б/в"},
		ImgSrcList:       []string{"https://img.olx.ua/1.jpg"},
	}
}

func TestInsertStoresNewRecord(t *testing.T) {
	gw, mock := newGateway(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO ads").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res, err := gw.Insert(context.Background(), sampleRecord())
	require.NoError(t, err)
	assert.Equal(t, storage.ResultStored, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertReportsAlreadyPresentOnConflict(t *testing.T) {
	gw, mock := newGateway(t)

	// First insert stores, the second hits the primary-key conflict and
	// affects zero rows.
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO ads").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO ads").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	rec := sampleRecord()
	res, err := gw.Insert(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, storage.ResultStored, res)

	res, err = gw.Insert(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, storage.ResultAlreadyPresent, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertRollsBackOnDriverError(t *testing.T) {
	gw, mock := newGateway(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO ads").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := gw.Insert(context.Background(), sampleRecord())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExists(t *testing.T) {
	gw, mock := newGateway(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("812345678").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("999").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	known, err := gw.Exists(context.Background(), "812345678")
	require.NoError(t, err)
	assert.True(t, known)

	unknown, err := gw.Exists(context.Background(), "999")
	require.NoError(t, err)
	assert.False(t, unknown)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsSurfacesError(t *testing.T) {
	gw, mock := newGateway(t)

	mock.ExpectQuery("SELECT EXISTS").
		WillReturnError(errors.New("db down"))

	_, err := gw.Exists(context.Background(), "1")
	assert.Error(t, err)
}
