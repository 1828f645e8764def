package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Snapshot is a point-in-time copy of a design document. Snapshots are
// linear per design and capped at maxSnapshots, oldest pruned first.
type Snapshot struct {
	ID           string    `json:"id"`
	DesignID     string    `json:"designId"`
	Label        string    `json:"label"`
	DocumentJSON string    `json:"documentJson"`
	CreatedAt    time.Time `json:"createdAt"`
}

const maxSnapshots = 40

// SnapshotStore manages design snapshots in SQLite.
type SnapshotStore struct {
	db *DB
}

func NewSnapshotStore(db *DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// PushSnapshot records a new snapshot for a design and prunes old ones.
func (s *SnapshotStore) PushSnapshot(designID, snapshotID, label, documentJSON string) (*Snapshot, error) {
	now := time.Now()

	_, err := s.db.Conn().Exec(
		`INSERT INTO design_snapshots (id, design_id, label, document_json, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		snapshotID, designID, label, documentJSON, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert snapshot: %w", err)
	}

	s.pruneIfNeeded(designID, maxSnapshots)

	return &Snapshot{
		ID:           snapshotID,
		DesignID:     designID,
		Label:        label,
		DocumentJSON: documentJSON,
		CreatedAt:    now,
	}, nil
}

// ListSnapshots returns all snapshots for a design, oldest first.
func (s *SnapshotStore) ListSnapshots(designID string) ([]Snapshot, error) {
	rows, err := s.db.Conn().Query(
		`SELECT id, design_id, label, document_json, created_at
		 FROM design_snapshots WHERE design_id = ? ORDER BY created_at ASC`, designID,
	)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		var sn Snapshot
		if err := rows.Scan(&sn.ID, &sn.DesignID, &sn.Label, &sn.DocumentJSON, &sn.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snaps = append(snaps, sn)
	}
	return snaps, rows.Err()
}

// LatestSnapshot returns the most recent snapshot for a design, or nil
// when the design has none.
func (s *SnapshotStore) LatestSnapshot(designID string) (*Snapshot, error) {
	var sn Snapshot
	err := s.db.Conn().QueryRow(
		`SELECT id, design_id, label, document_json, created_at
		 FROM design_snapshots WHERE design_id = ?
		 ORDER BY created_at DESC LIMIT 1`, designID,
	).Scan(&sn.ID, &sn.DesignID, &sn.Label, &sn.DocumentJSON, &sn.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest snapshot: %w", err)
	}
	return &sn, nil
}

// ClearDesign removes all snapshots for a design.
func (s *SnapshotStore) ClearDesign(designID string) error {
	_, err := s.db.Conn().Exec(`DELETE FROM design_snapshots WHERE design_id = ?`, designID)
	return err
}

// pruneIfNeeded removes oldest snapshots when count exceeds maxEntries.
func (s *SnapshotStore) pruneIfNeeded(designID string, maxEntries int) {
	var count int
	s.db.Conn().QueryRow(`SELECT COUNT(*) FROM design_snapshots WHERE design_id = ?`, designID).Scan(&count)
	if count <= maxEntries {
		return
	}

	toDelete := count - maxEntries

	// Collect IDs first, close rows before doing any writes.
	rows, err := s.db.Conn().Query(
		`SELECT id FROM design_snapshots WHERE design_id = ?
		 ORDER BY created_at ASC LIMIT ?`, designID, toDelete,
	)
	if err != nil {
		return
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			continue
		}
		ids = append(ids, id)
	}
	rows.Close()

	for _, id := range ids {
		s.db.Conn().Exec(`DELETE FROM design_snapshots WHERE id = ?`, id)
	}
}
