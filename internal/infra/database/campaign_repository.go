package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

const uniqueViolation = "23505"

type CampaignRepository struct {
	DB *sql.DB
}

func NewCampaignRepository(db *sql.DB) *CampaignRepository {
	return &CampaignRepository{DB: db}
}

func (r *CampaignRepository) Create(ctx context.Context, c *entity.Campaign) error {
	docs, err := marshalAll(c.Lead, c.Product, c.Summary, c.Timeline, c.SuccessMetrics)
	if err != nil {
		return fmt.Errorf("failed to encode campaign %s: %w", c.ID, err)
	}

	steps := c.NextSteps
	if steps == nil {
		steps = []string{}
	}

	query := `
		INSERT INTO campaigns (id, lead, product, summary, timeline, success_metrics, next_steps, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.DB.ExecContext(ctx, query,
		c.ID, docs[0], docs[1], docs[2], docs[3], docs[4],
		pq.Array(steps),
		c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrCampaignAlreadyExists
		}
		log.Printf("[DB] insert campaign %s failed: %v", c.ID, err)
		return err
	}
	return nil
}

// CreateMessages stores the whole sequence in one database transaction.
func (r *CampaignRepository) CreateMessages(ctx context.Context, campaignID string, msgs []entity.GeneratedMessage) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO campaign_messages
			(id, campaign_id, kind, subject, body, send_after_days, suggested_send_date, status, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for _, m := range msgs {
		status := entity.MessageStatusReady
		if m.Type.IsFollowUp() {
			status = entity.MessageStatusScheduled
		}
		_, err := tx.ExecContext(ctx, query,
			uuid.New().String(),
			campaignID,
			string(m.Type),
			m.Subject,
			m.Body,
			nullInt(m.SendAfterDays),
			nullTime(m.SuggestedSendDate),
			status,
			m.GeneratedAt,
		)
		if err != nil {
			return fmt.Errorf("insert %s message: %w", m.Type, err)
		}
	}

	return tx.Commit()
}

func (r *CampaignRepository) FindByID(ctx context.Context, id string) (*entity.Campaign, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, entity.ErrCampaignNotFound
	}

	var (
		c                                          entity.Campaign
		lead, product, summary, timeline, measures []byte
		nextSteps                                  pq.StringArray
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, lead, product, summary, timeline, success_metrics, next_steps, created_at
		FROM campaigns WHERE id = $1
	`, id).Scan(&c.ID, &lead, &product, &summary, &timeline, &measures, &nextSteps, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}

	for _, d := range []struct {
		raw []byte
		dst any
	}{
		{lead, &c.Lead},
		{product, &c.Product},
		{summary, &c.Summary},
		{timeline, &c.Timeline},
		{measures, &c.SuccessMetrics},
	} {
		if err := json.Unmarshal(d.raw, d.dst); err != nil {
			return nil, fmt.Errorf("decode campaign %s: %w", id, err)
		}
	}
	c.NextSteps = []string(nextSteps)

	msgs, err := r.findMessages(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, m := range msgs {
		if m.Type == entity.KindColdEmail {
			c.ColdEmail = m
		} else {
			c.FollowUps = append(c.FollowUps, m)
		}
	}

	return &c, nil
}

func (r *CampaignRepository) findMessages(ctx context.Context, campaignID string) ([]entity.GeneratedMessage, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT kind, subject, body, send_after_days, suggested_send_date, generated_at
		FROM campaign_messages
		WHERE campaign_id = $1
		ORDER BY COALESCE(send_after_days, 0), kind
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.GeneratedMessage
	for rows.Next() {
		var (
			m        entity.GeneratedMessage
			kind     string
			days     sql.NullInt32
			sendDate sql.NullTime
		)
		if err := rows.Scan(&kind, &m.Subject, &m.Body, &days, &sendDate, &m.GeneratedAt); err != nil {
			return nil, err
		}
		m.Type = entity.MessageKind(kind)
		if days.Valid {
			d := int(days.Int32)
			m.SendAfterDays = &d
		}
		if sendDate.Valid {
			t := sendDate.Time
			m.SuggestedSendDate = &t
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *CampaignRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	return err
}

// isUniqueViolation understands errors from both the pgx and lib/pq drivers.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}

func marshalAll(values ...any) ([][]byte, error) {
	out := make([][]byte, len(values))
	for i, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

func nullInt(v *int) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}
}

func nullTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *v, Valid: true}
}

// MarkDueFollowUps flips scheduled follow-ups whose send date has passed to
// DUE and returns how many rows changed.
func (r *CampaignRepository) MarkDueFollowUps(ctx context.Context, now time.Time) (int, error) {
	query := `
		UPDATE campaign_messages
		SET
			status = $1,
			updated_at = NOW()
		WHERE
			status = $2
			AND suggested_send_date IS NOT NULL
			AND suggested_send_date <= $3
		RETURNING campaign_id, kind
	`
	rows, err := r.DB.QueryContext(ctx, query, entity.MessageStatusDue, entity.MessageStatusScheduled, now)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		var campaignID, kind string
		if err := rows.Scan(&campaignID, &kind); err != nil {
			log.Printf("[DB] failed to scan due follow-up: %v", err)
			continue
		}
		log.Printf("[DB] %s of campaign %s is due", kind, campaignID)
		n++
	}
	return n, rows.Err()
}
