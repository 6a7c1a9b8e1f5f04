package database_test

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/database"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/models"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCreatesCatalogTables(t *testing.T) {
	db := testutil.NewDB(t)

	for _, table := range []string{"users", "tokens", "genre", "songs", "system_logs"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	require.NoError(t, database.Ping(db))
}

func TestRatingsCheckConstraint(t *testing.T) {
	db := testutil.NewDB(t)

	user := models.User{Email: "owner@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	ok := models.Song{UserID: user.ID, SongTitle: "Imagine", Genre: "rock", Ratings: 5}
	require.NoError(t, db.Create(&ok).Error)

	tooHigh := models.Song{UserID: user.ID, SongTitle: "Imagine", Genre: "rock", Ratings: 6}
	assert.Error(t, db.Create(&tooHigh).Error)

	negative := models.Song{UserID: user.ID, SongTitle: "Imagine", Genre: "rock", Ratings: -1}
	assert.Error(t, db.Create(&negative).Error)
}

func TestEmailUniqueIndex(t *testing.T) {
	db := testutil.NewDB(t)

	require.NoError(t, db.Create(&models.User{Email: "dup@example.com", Password: "x"}).Error)
	assert.Error(t, db.Create(&models.User{Email: "dup@example.com", Password: "y"}).Error)
}
