package repositories

import (
	"regexp"
	"testing"

	"portfolio_backend/internal/avatar"

	"github.com/DATA-DOG/go-sqlmock"
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
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestProfileUpdateColumnsSingleStatement(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository()

	patch, err := avatar.BuildFieldUpdate(avatar.KindQQ, avatar.Params{QQNumber: "12345"})
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "profiles" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateColumns(db, 1, patch.Columns()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileUpdateColumnsMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "profiles" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateColumns(db, 99, map[string]any{"name": "x"})
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileFindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository()

	rows := sqlmock.NewRows([]string{"id", "name", "title", "bio", "avatar_source", "avatar_qq_number"}).
		AddRow(1, "Jane", "Engineer", "Hi", "qq", "2066308410")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "profiles"`)).WillReturnRows(rows)

	profile, err := repo.FindByID(db, 1)
	require.NoError(t, err)
	assert.Equal(t, "Jane", profile.Name)
	require.NotNil(t, profile.AvatarQQNumber)
	assert.Equal(t, "2066308410", *profile.AvatarQQNumber)
	assert.Nil(t, profile.AvatarGravatarEmail)
}

func TestProfileFindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "profiles"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(db, 1)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestSkillDeleteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSkillRepository()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "skills"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(db, 5), ErrSkillNotFound)
}

func TestProjectListOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "projects" ORDER BY created_at DESC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "technologies"}).
			AddRow(2, "B", `["Go"]`).
			AddRow(1, "A", `[]`))

	projects, err := repo.List(db)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "B", projects[0].Title)
	assert.Equal(t, []string{"Go"}, projects[0].GetTechnologies())
}
