package dao

import (
	"database/sql"

	"storesetup-backend/model"
)

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Insert(s *model.SetupSession) error {
	query := `INSERT INTO setup_sessions (id, store_id, status, current_step, completion_percentage, confirmed_products, landing_page, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.Exec(query, s.ID, s.StoreID, s.Status, s.CurrentStep, s.CompletionPercentage, s.ConfirmedProducts, s.LandingPage, s.CreatedAt, s.UpdatedAt)
	return err
}

func (r *SessionRepository) scanSession(row *sql.Row) (*model.SetupSession, error) {
	var s model.SetupSession
	var landingPage sql.NullString
	err := row.Scan(&s.ID, &s.StoreID, &s.Status, &s.CurrentStep, &s.CompletionPercentage, &s.ConfirmedProducts, &landingPage, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if landingPage.Valid {
		s.LandingPage = &landingPage.String
	}
	return &s, nil
}

const sessionColumns = `id, store_id, status, current_step, completion_percentage, confirmed_products, landing_page, created_at, updated_at`

func (r *SessionRepository) GetByID(id string) (*model.SetupSession, error) {
	row := r.db.QueryRow(`SELECT `+sessionColumns+` FROM setup_sessions WHERE id = ?`, id)
	return r.scanSession(row)
}

// GetInProgressByStoreID finds the resumable session, if any.
func (r *SessionRepository) GetInProgressByStoreID(storeID string) (*model.SetupSession, error) {
	row := r.db.QueryRow(`SELECT `+sessionColumns+` FROM setup_sessions WHERE store_id = ? AND status = ? ORDER BY created_at DESC LIMIT 1`,
		storeID, model.SessionInProgress)
	return r.scanSession(row)
}

func (r *SessionRepository) UpdateProgress(s *model.SetupSession) error {
	query := `UPDATE setup_sessions SET current_step = ?, completion_percentage = ?, confirmed_products = ?, updated_at = NOW() WHERE id = ?`
	_, err := r.db.Exec(query, s.CurrentStep, s.CompletionPercentage, s.ConfirmedProducts, s.ID)
	return err
}

func (r *SessionRepository) UpdateLandingPage(id string, content string) error {
	_, err := r.db.Exec(`UPDATE setup_sessions SET landing_page = ?, updated_at = NOW() WHERE id = ?`, content, id)
	return err
}

// MarkCompleted exists for an explicit completion trigger; no flow
// calls it today, so sessions stay in_progress indefinitely.
func (r *SessionRepository) MarkCompleted(id string) error {
	_, err := r.db.Exec(`UPDATE setup_sessions SET status = ?, updated_at = NOW() WHERE id = ?`, model.SessionCompleted, id)
	return err
}
