package dao

import (
	"database/sql"

	"storesetup-backend/model"
)

type StoreRepository struct {
	db *sql.DB
}

func NewStoreRepository(db *sql.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

func (r *StoreRepository) Insert(s *model.ConnectedStore) error {
	query := `INSERT INTO stores (id, merchant_id, platform, external_store_id, name, access_token, refresh_token, theme_id, logo_url, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.Exec(query, s.ID, s.MerchantID, s.Platform, s.ExternalStoreID, s.Name, s.AccessToken, s.RefreshToken, s.ThemeID, s.LogoURL, s.CreatedAt)
	return err
}

func (r *StoreRepository) scanStore(row *sql.Row) (*model.ConnectedStore, error) {
	var s model.ConnectedStore
	var themeID, logoURL sql.NullString
	err := row.Scan(&s.ID, &s.MerchantID, &s.Platform, &s.ExternalStoreID, &s.Name, &s.AccessToken, &s.RefreshToken, &themeID, &logoURL, &s.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if themeID.Valid {
		s.ThemeID = &themeID.String
	}
	if logoURL.Valid {
		s.LogoURL = &logoURL.String
	}
	return &s, nil
}

const storeColumns = `id, merchant_id, platform, external_store_id, name, access_token, refresh_token, theme_id, logo_url, created_at`

func (r *StoreRepository) GetByID(id string) (*model.ConnectedStore, error) {
	row := r.db.QueryRow(`SELECT `+storeColumns+` FROM stores WHERE id = ?`, id)
	return r.scanStore(row)
}

func (r *StoreRepository) GetByMerchantID(merchantID string) (*model.ConnectedStore, error) {
	row := r.db.QueryRow(`SELECT `+storeColumns+` FROM stores WHERE merchant_id = ? ORDER BY created_at DESC LIMIT 1`, merchantID)
	return r.scanStore(row)
}

func (r *StoreRepository) GetByExternalID(platform, externalID string) (*model.ConnectedStore, error) {
	row := r.db.QueryRow(`SELECT `+storeColumns+` FROM stores WHERE platform = ? AND external_store_id = ?`, platform, externalID)
	return r.scanStore(row)
}

func (r *StoreRepository) UpdateTokens(id, accessToken, refreshToken string) error {
	_, err := r.db.Exec(`UPDATE stores SET access_token = ?, refresh_token = ? WHERE id = ?`, accessToken, refreshToken, id)
	return err
}

func (r *StoreRepository) UpdateThemeID(id, themeID string) error {
	_, err := r.db.Exec(`UPDATE stores SET theme_id = ? WHERE id = ?`, themeID, id)
	return err
}

func (r *StoreRepository) UpdateLogoURL(id, logoURL string) error {
	_, err := r.db.Exec(`UPDATE stores SET logo_url = ? WHERE id = ?`, logoURL, id)
	return err
}
