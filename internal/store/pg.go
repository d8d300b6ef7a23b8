package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/travelmate/community-hub/internal/domain"
	"github.com/travelmate/community-hub/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the schema for all tables owned by this store
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.Community{},
		&schema.CommunityMember{},
		&schema.ReconciliationTask{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values get reasonable defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// UpsertCommunityByLedgerID writes the community record with a
// single-statement upsert keyed by ledger_id. The database's row-level
// atomicity serializes concurrent replays; content is deterministic for a
// given ledger id, so last-writer-wins converges.
func (s *pgStore) UpsertCommunityByLedgerID(ctx context.Context, input UpsertCommunityInput) (*schema.Community, error) {
	featureConfig, err := json.Marshal(input.FeatureConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal feature config: %w", err)
	}
	tags, err := json.Marshal(input.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tags: %w", err)
	}

	community := schema.Community{
		LedgerID:        input.LedgerID,
		Name:            input.Name,
		Destination:     input.Destination,
		Category:        input.Category,
		Capacity:        input.Capacity,
		Description:     input.Description,
		AdminIdentity:   input.AdminIdentity,
		ContractAddress: input.ContractAddress,
		ChannelID:       input.ChannelID,
		FeatureConfig:   datatypes.JSON(featureConfig),
		Tags:            datatypes.JSON(tags),
		MemberCount:     1,
		PooledFunds:     "0 ETH",
	}

	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "ledger_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "destination", "category", "capacity", "description",
			"admin_identity", "contract_address", "channel_id",
			"feature_config", "tags", "updated_at",
		}),
	}).Clauses(clause.Returning{}).Create(&community).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert community: %w", err)
	}

	return &community, nil
}

// GetCommunityByLedgerID retrieves a community by its ledger id
func (s *pgStore) GetCommunityByLedgerID(ctx context.Context, ledgerID string) (*schema.Community, error) {
	var community schema.Community
	err := s.db.WithContext(ctx).Where("ledger_id = ?", ledgerID).First(&community).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCommunityNotFound
		}
		return nil, fmt.Errorf("failed to get community: %w", err)
	}
	return &community, nil
}

// ListCommunities retrieves communities ordered by creation time descending
func (s *pgStore) ListCommunities(ctx context.Context, limit int, offset uint64) ([]schema.Community, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&schema.Community{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count communities: %w", err)
	}

	var communities []schema.Community
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(int(offset)). //nolint:gosec,G115 // offsets are bounded by request validation
		Find(&communities).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list communities: %w", err)
	}

	return communities, total, nil
}

// AddCommunityMember adds a member to a community. The membership insert
// uses ON CONFLICT DO NOTHING; the member count is only incremented when a
// row was actually inserted, so replays are safe.
func (s *pgStore) AddCommunityMember(ctx context.Context, ledgerID string, memberIdentity string) (*schema.Community, error) {
	var community schema.Community

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ledger_id = ?", ledgerID).First(&community).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCommunityNotFound
			}
			return fmt.Errorf("failed to get community: %w", err)
		}

		if community.MemberCount >= community.Capacity {
			return fmt.Errorf("%w: %s (%d)", domain.ErrCommunityFull, ledgerID, community.Capacity)
		}

		member := schema.CommunityMember{
			CommunityID:    community.ID,
			MemberIdentity: memberIdentity,
		}
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "community_id"}, {Name: "member_identity"}},
			DoNothing: true,
		}).Create(&member)
		if result.Error != nil {
			return fmt.Errorf("failed to add member: %w", result.Error)
		}

		// Duplicate join: leave the count untouched
		if result.RowsAffected == 0 {
			return nil
		}

		if err := tx.Model(&community).
			UpdateColumn("member_count", gorm.Expr("member_count + 1")).Error; err != nil {
			return fmt.Errorf("failed to update member count: %w", err)
		}
		community.MemberCount++

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &community, nil
}

// EnqueueReconciliationTask durably records an ambiguous saga outcome
func (s *pgStore) EnqueueReconciliationTask(ctx context.Context, task *schema.ReconciliationTask) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(task).Error
	if err != nil {
		return fmt.Errorf("failed to enqueue reconciliation task: %w", err)
	}
	return nil
}

// ListPendingReconciliationTasks retrieves pending tasks, oldest first
func (s *pgStore) ListPendingReconciliationTasks(ctx context.Context, limit int) ([]schema.ReconciliationTask, error) {
	var tasks []schema.ReconciliationTask
	err := s.db.WithContext(ctx).
		Where("status = ?", schema.ReconciliationStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reconciliation tasks: %w", err)
	}
	return tasks, nil
}

// ResolveReconciliationTask marks a task resolved
func (s *pgStore) ResolveReconciliationTask(ctx context.Context, taskID string, ledgerID string) error {
	now := time.Now().UTC()
	err := s.db.WithContext(ctx).Model(&schema.ReconciliationTask{}).
		Where("id = ?", taskID).
		Updates(map[string]interface{}{
			"status":      schema.ReconciliationStatusResolved,
			"ledger_id":   ledgerID,
			"resolved_at": now,
			"updated_at":  now,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to resolve reconciliation task: %w", err)
	}
	return nil
}

// RecordReconciliationAttempt increments the attempt counter and stores the
// failure; the task is abandoned once attempts reach maxAttempts
func (s *pgStore) RecordReconciliationAttempt(ctx context.Context, taskID string, attemptErr error, maxAttempts int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task schema.ReconciliationTask
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", taskID).First(&task).Error; err != nil {
			return fmt.Errorf("failed to get reconciliation task: %w", err)
		}

		task.Attempts++
		if attemptErr != nil {
			msg := attemptErr.Error()
			task.LastError = &msg
		}
		if task.Attempts >= maxAttempts {
			task.Status = schema.ReconciliationStatusAbandoned
		}
		task.UpdatedAt = time.Now().UTC()

		if err := tx.Save(&task).Error; err != nil {
			return fmt.Errorf("failed to record reconciliation attempt: %w", err)
		}
		return nil
	})
}
