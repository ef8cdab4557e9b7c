package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"karaoke/internal/domain"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	var s domain.Session
	tx := r.db.WithContext(ctx).First(&s, "id = ?", id)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return &s, nil
}

// Close performs the single ACTIVE -> CLOSED transition. The conditional
// update makes a concurrent double close lose cleanly: it reports false
// when the session was not ACTIVE anymore.
func (r *SessionRepository) Close(ctx context.Context, id string, end time.Time) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Session{}).
		Where("id = ? AND status = ?", id, domain.SessionActive).
		Updates(map[string]any{"status": domain.SessionClosed, "end_time": end})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

// AppendSong assigns the next queue position and inserts the entry in one
// transaction, keeping positions 1-based and gapless under concurrent adds.
func (r *SessionRepository) AppendSong(ctx context.Context, entry *domain.SongEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.SongEntry{}).
			Where("session_id = ?", entry.SessionID).
			Count(&count).Error; err != nil {
			return err
		}
		entry.Position = int(count) + 1
		return tx.Create(entry).Error
	})
}

func (r *SessionRepository) ListSongs(ctx context.Context, sessionID string) ([]domain.SongEntry, error) {
	var entries []domain.SongEntry
	tx := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("position").
		Find(&entries)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return entries, nil
}
