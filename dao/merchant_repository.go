package dao

import (
	"database/sql"

	"storesetup-backend/model"
)

type MerchantRepository struct {
	db *sql.DB
}

func NewMerchantRepository(db *sql.DB) *MerchantRepository {
	return &MerchantRepository{db: db}
}

func (r *MerchantRepository) Insert(m *model.Merchant) error {
	query := `INSERT INTO merchants (id, name, email, preferred_locale) VALUES (?, ?, ?, ?)`
	_, err := r.db.Exec(query, m.ID, m.Name, m.Email, m.PreferredLocale)
	return err
}

func (r *MerchantRepository) GetByID(id string) (*model.Merchant, error) {
	query := `SELECT id, name, email, preferred_locale FROM merchants WHERE id = ?`
	row := r.db.QueryRow(query, id)

	var m model.Merchant
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.PreferredLocale); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Not found
		}
		return nil, err
	}
	return &m, nil
}
