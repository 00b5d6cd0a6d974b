package services

import (
	"fmt"
	"strings"
	"testing"

	"codetrack-backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory sqlite database. The shared-cache DSN is
// keyed by test name so the pool's connections all see the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.SearchHistory{},
		&models.QuestionList{},
		&models.ListQuestion{},
		&models.Contest{},
		&models.ContestParticipation{},
		&models.Group{},
		&models.GroupMember{},
		&models.SharedList{},
		&models.SharedListQuestion{},
		&models.SharedListProgress{},
		&models.PrivateTest{},
		&models.TestQuestion{},
		&models.TestParticipant{},
		&models.TestSubmission{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := models.User{Username: username, PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}
