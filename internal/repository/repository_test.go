package repository

import (
	"testing"
	"time"

	"therapy-clinic-api/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestClientRepository_FindAllCountsAndPages(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "client" JOIN person ON person.id = client.person_id WHERE person.name ILIKE \$1 OR person.lastname ILIKE \$2`).
		WithArgs("%an%", "%an%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	publicID := uuid.New()
	mock.ExpectQuery(`SELECT .* FROM "client" JOIN person ON person.id = client.person_id WHERE .* ORDER BY client.created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "public_id", "person_id", "onboard_date", "created_at"}).
			AddRow(1, publicID.String(), 7, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), time.Now()))

	mock.ExpectQuery(`SELECT \* FROM "person" WHERE "person"."id" = \$1`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "lastname"}).AddRow(7, "Ana", "Silva"))

	clients, total, err := repo.FindAll(db, &entity.ListFilter{Search: "an", Limit: 10, Offset: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(12), total)
	require.Len(t, clients, 1)
	assert.Equal(t, publicID, clients[0].PublicID)
	assert.Equal(t, "Ana", clients[0].Person.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_FindByPublicIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository()

	mock.ExpectQuery(`SELECT \* FROM "client" WHERE public_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	client, err := repo.FindByPublicID(db, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, client)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepository_DeleteScopedByPerson(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAddressRepository()

	mock.ExpectExec(`DELETE FROM "address" WHERE id = \$1 AND person_id = \$2`).
		WithArgs(9, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Delete(db, 7, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepository_UpdateForeignRowAffectsNothing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAddressRepository()

	mock.ExpectExec(`UPDATE "address" SET .* WHERE id = \$\d+ AND person_id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.Update(db, &entity.Address{ID: 99, PersonID: 7, Street: "Elsewhere"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTherapyRepository_SetActive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTherapyRepository()

	mock.ExpectExec(`UPDATE "therapy" SET "is_active"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs(false, sqlmock.AnyArg(), 6).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.SetActive(db, 6, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTherapyRepository_FindByIDsEmptySkipsQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTherapyRepository()

	therapies, err := repo.FindByIDs(db, nil)
	require.NoError(t, err)
	assert.Empty(t, therapies)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepository_UpdateStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository()

	mock.ExpectExec(`UPDATE "appointment" SET "status"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs(entity.AppointmentStatusCompleted, sqlmock.AnyArg(), 11).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.UpdateStatus(db, 11, entity.AppointmentStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditLogRepository_FindAllAppliesFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuditLogRepository()

	userID := int64(5)
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "audit_logs" WHERE action LIKE \$1 AND user_id = \$2 AND created_at >= \$3 AND created_at < \$4`).
		WithArgs("client.%", userID, from, to).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(`SELECT \* FROM "audit_logs" WHERE .* ORDER BY created_at DESC, id DESC LIMIT \$5`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "action", "created_at"}).
			AddRow(3, nil, "client.update", time.Now()))

	logs, total, err := repo.FindAll(db, &entity.AuditLogFilter{
		ListFilter: entity.ListFilter{Limit: 20},
		Action:     "client.",
		UserID:     &userID,
		From:       &from,
		To:         &to,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, logs, 1)
	assert.Equal(t, "client.update", logs[0].Action)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchPatterns_EscapeWildcards(t *testing.T) {
	assert.Equal(t, "%ana%", containsPattern("ana"))
	assert.Equal(t, `%50\%\_off%`, containsPattern("50%_off"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
	assert.Equal(t, `client\_x.%`, prefixPattern("client_x."))
}

func TestClientRepository_SearchTreatsWildcardsLiterally(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "client" JOIN person ON person.id = client.person_id WHERE person.name ILIKE \$1 OR person.lastname ILIKE \$2`).
		WithArgs(`%\_%`, `%\_%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT .* FROM "client" JOIN person ON person.id = client.person_id WHERE .*`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, total, err := repo.FindAll(db, &entity.ListFilter{Search: "_", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditLogRepository_SearchMatchesMetadata(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuditLogRepository()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "audit_logs" WHERE action ILIKE \$1 OR metadata::text ILIKE \$2`).
		WithArgs("%c-1%", "%c-1%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "audit_logs" WHERE .* ORDER BY created_at DESC, id DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "action", "created_at"}).
			AddRow(3, nil, "client.update", time.Now()))

	logs, total, err := repo.FindAll(db, &entity.AuditLogFilter{
		ListFilter: entity.ListFilter{Search: "c-1", Limit: 20},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, logs, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
