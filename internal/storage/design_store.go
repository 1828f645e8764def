package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// DesignRecord is one saved design document. Saves are whole-document:
// DocumentJSON always holds a complete serialized DesignDocument, never a
// partial update.
type DesignRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	DocumentJSON string    `json:"documentJson"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DesignStore manages saved designs in SQLite.
type DesignStore struct {
	db *DB
}

func NewDesignStore(db *DB) *DesignStore {
	return &DesignStore{db: db}
}

// CreateDesign inserts a new design record.
func (s *DesignStore) CreateDesign(d *DesignRecord) error {
	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now
	_, err := s.db.Conn().Exec(
		`INSERT INTO designs (id, name, document_json, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		d.ID, d.Name, d.DocumentJSON, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert design: %w", err)
	}
	return nil
}

// GetDesign returns a design by ID.
func (s *DesignStore) GetDesign(id string) (*DesignRecord, error) {
	var d DesignRecord
	err := s.db.Conn().QueryRow(
		`SELECT id, name, document_json, created_at, updated_at
		 FROM designs WHERE id = ?`, id,
	).Scan(&d.ID, &d.Name, &d.DocumentJSON, &d.CreatedAt, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("design %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get design: %w", err)
	}
	return &d, nil
}

// ListDesigns returns all designs, most recently updated first.
func (s *DesignStore) ListDesigns() ([]DesignRecord, error) {
	rows, err := s.db.Conn().Query(
		`SELECT id, name, document_json, created_at, updated_at
		 FROM designs ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list designs: %w", err)
	}
	defer rows.Close()

	var designs []DesignRecord
	for rows.Next() {
		var d DesignRecord
		if err := rows.Scan(&d.ID, &d.Name, &d.DocumentJSON, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan design: %w", err)
		}
		designs = append(designs, d)
	}
	return designs, rows.Err()
}

// UpdateDesign replaces the stored document and name for a design.
func (s *DesignStore) UpdateDesign(d *DesignRecord) error {
	d.UpdatedAt = time.Now()
	res, err := s.db.Conn().Exec(
		`UPDATE designs SET name = ?, document_json = ?, updated_at = ? WHERE id = ?`,
		d.Name, d.DocumentJSON, d.UpdatedAt, d.ID,
	)
	if err != nil {
		return fmt.Errorf("update design: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("design %s not found", d.ID)
	}
	return nil
}

// DeleteDesign removes a design and its snapshots.
func (s *DesignStore) DeleteDesign(id string) error {
	if _, err := s.db.Conn().Exec(`DELETE FROM design_snapshots WHERE design_id = ?`, id); err != nil {
		return fmt.Errorf("delete design snapshots: %w", err)
	}
	if _, err := s.db.Conn().Exec(`DELETE FROM designs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete design: %w", err)
	}
	return nil
}
