package database

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(fmt.Errorf("boom")))
}

func TestNullHelpers(t *testing.T) {
	assert.False(t, nullInt(nil).Valid)
	seven := 7
	assert.Equal(t, int32(7), nullInt(&seven).Int32)

	assert.False(t, nullTime(nil).Valid)
	now := time.Now()
	assert.True(t, nullTime(&now).Valid)
}

// Runs against a real database when TEST_DATABASE_URL is set.
func TestCampaignRepository_RoundTrip(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := NewDBConnection(dsn)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db))

	repo := NewCampaignRepository(db)
	created := time.Now().UTC().Truncate(time.Second)
	three := 3
	due := created.Add(-time.Hour)

	c := &entity.Campaign{
		ID:        uuid.New().String(),
		Lead:      entity.EnrichedLeadProfile{Name: "Jane Doe", Company: "Acme", CompanySizeCategory: entity.SizeMidSize},
		Product:   entity.ProductInfo{Name: "Pipeline AI", Benefits: []string{"speed"}},
		ColdEmail: entity.GeneratedMessage{Type: entity.KindColdEmail, Subject: "Hi", Body: "Body", GeneratedAt: created},
		FollowUps: []entity.GeneratedMessage{
			{Type: entity.KindFollowUp1, Subject: "Again", Body: "Body 2", SendAfterDays: &three, SuggestedSendDate: &due, GeneratedAt: created},
		},
		NextSteps: []string{"Review", "Send"},
		CreatedAt: created,
	}
	defer repo.Delete(ctx, c.ID)

	require.NoError(t, repo.Create(ctx, c))
	require.NoError(t, repo.CreateMessages(ctx, c.ID, c.Messages()))
	assert.ErrorIs(t, repo.Create(ctx, c), entity.ErrCampaignAlreadyExists)

	got, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Lead.Name)
	assert.Equal(t, []string{"Review", "Send"}, got.NextSteps)
	assert.Equal(t, "Hi", got.ColdEmail.Subject)
	require.Len(t, got.FollowUps, 1)
	assert.Equal(t, 3, *got.FollowUps[0].SendAfterDays)

	n, err := repo.MarkDueFollowUps(ctx, created)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1)

	require.NoError(t, repo.Delete(ctx, c.ID))
	_, err = repo.FindByID(ctx, c.ID)
	assert.ErrorIs(t, err, entity.ErrCampaignNotFound)
}

func TestFindByID_RejectsNonUUID(t *testing.T) {
	repo := NewCampaignRepository(nil)
	_, err := repo.FindByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, entity.ErrCampaignNotFound)
}
