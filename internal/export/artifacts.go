package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"study-buddy/backend/internal/model"
)

// ErrNotFound is returned when an artifact id is unknown.
var ErrNotFound = errors.New("artifact not found")

// Artifact is one generated, downloadable text output.
type Artifact struct {
	ID        string
	Mode      model.Mode
	Topic     string
	Filename  string
	Content   string
	CreatedAt time.Time
}

// ArtifactStore persists artifacts so they can be downloaded after generation.
type ArtifactStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewArtifactStore(db *sql.DB) *ArtifactStore {
	return &ArtifactStore{db: db, now: time.Now}
}

// Save stores content under a new id and a deterministic filename.
func (s *ArtifactStore) Save(ctx context.Context, mode model.Mode, topic, content string) (*Artifact, error) {
	now := s.now()
	a := &Artifact{
		ID:        uuid.NewString(),
		Mode:      mode,
		Topic:     topic,
		Filename:  Filename(mode, topic, now),
		Content:   content,
		CreatedAt: now.UTC(),
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO artifacts (id, mode, topic, filename, content, created_at)
		VALUES (?, ?, ?, ?, ?, ?);
	`, a.ID, string(a.Mode), a.Topic, a.Filename, a.Content, a.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert artifact: %w", err)
	}
	return a, nil
}

func (s *ArtifactStore) Get(ctx context.Context, id string) (*Artifact, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, mode, topic, filename, content, created_at
		FROM artifacts WHERE id = ?;
	`, id)

	var (
		a    Artifact
		mode string
	)
	if err := row.Scan(&a.ID, &mode, &a.Topic, &a.Filename, &a.Content, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan artifact: %w", err)
	}
	a.Mode = model.Mode(mode)
	return &a, nil
}

// DeleteOlderThan removes artifacts created before cutoff.
func (s *ArtifactStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM artifacts WHERE created_at < ?;`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete artifacts: %w", err)
	}
	return res.RowsAffected()
}
