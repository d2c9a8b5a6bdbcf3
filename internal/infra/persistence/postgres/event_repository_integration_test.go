package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"

	"evently/internal/domain/entity"
	"evently/internal/domain/repository"
	"evently/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openIntegrationDB connects to the database named by
// EVENTLY_TEST_POSTGRES_DSN and resets its schema. Tests using it are
// skipped when the variable is not set.
func openIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("EVENTLY_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("Skipping Postgres integration test: EVENTLY_TEST_POSTGRES_DSN env var not set")
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// Shim for databases without a native v7 generator; the tests only need
	// unique ids, not time ordering.
	require.NoError(t, db.Exec(
		`CREATE OR REPLACE FUNCTION uuid_generate_v7() RETURNS uuid AS 'SELECT gen_random_uuid()' LANGUAGE sql`,
	).Error)

	require.NoError(t, db.AutoMigrate(
		&model.AccountModel{},
		&model.CategoryModel{},
		&model.EventModel{},
		&model.OrderModel{},
	))
	require.NoError(t, db.Exec("TRUNCATE orders, events, categories, accounts CASCADE").Error)

	return db
}

func TestEventRepository_List_TitleCaseInsensitive_Integration(t *testing.T) {
	db := openIntegrationDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	for _, title := range []string{"Music Fest", "Tech Meetup"} {
		require.NoError(t, repo.Create(ctx, &entity.Event{
			Title:    title,
			ImageURL: "https://cdn.example.com/cover.jpg",
		}))
	}

	for _, needle := range []string{"music", "FEST", "usic fes"} {
		t.Run(needle, func(t *testing.T) {
			events, total, err := repo.List(ctx, repository.EventFilter{
				TitleContains: needle,
				Limit:         6,
			})
			require.NoError(t, err)
			assert.Equal(t, int64(1), total)
			require.Len(t, events, 1)
			assert.Equal(t, "Music Fest", events[0].Title)
		})
	}
}

func TestEventRepository_List_PastTheEndPage_Integration(t *testing.T) {
	db := openIntegrationDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, repo.Create(ctx, &entity.Event{
			Title:    fmt.Sprintf("Event %d", i),
			ImageURL: "https://cdn.example.com/cover.jpg",
		}))
	}

	// 4 matches at page size 3 make two pages; page 3 lands past the end
	// and must come back empty with the count intact, not as an error.
	events, total, err := repo.List(ctx, repository.EventFilter{
		Offset: 6,
		Limit:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Empty(t, events)
}
