package dao

import (
	"database/sql"

	"storesetup-backend/model"
)

// CatalogRepository persists local mirror rows for categories and
// products this system pushed to the platform, plus locally-recorded
// coupons. The remote platform stays authoritative; these rows only
// record what was attempted and whether the remote call confirmed.
type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) InsertCategory(c *model.StoreCategory) error {
	query := `INSERT INTO store_categories (id, store_id, remote_id, name_ar, name_en, remote_confirmed, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.Exec(query, c.ID, c.StoreID, c.RemoteID, c.NameAr, c.NameEn, c.RemoteConfirmed, c.CreatedAt)
	return err
}

func (r *CatalogRepository) InsertProduct(p *model.StoreProduct) error {
	query := `INSERT INTO store_products (id, store_id, remote_id, name_ar, name_en, price, category_id, remote_confirmed, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.Exec(query, p.ID, p.StoreID, p.RemoteID, p.NameAr, p.NameEn, p.Price, p.CategoryID, p.RemoteConfirmed, p.CreatedAt)
	return err
}

func (r *CatalogRepository) InsertCoupon(c *model.Coupon) error {
	query := `INSERT INTO coupons (id, store_id, code, discount_type, discount_value, expiry_date, min_order_value, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.Exec(query, c.ID, c.StoreID, c.Code, c.DiscountType, c.DiscountValue, c.ExpiryDate, c.MinOrderValue, c.CreatedAt)
	return err
}

// GetUnconfirmedProducts returns mirror rows whose remote create never
// succeeded, for a reconciliation banner.
func (r *CatalogRepository) GetUnconfirmedProducts(storeID string) ([]model.StoreProduct, error) {
	query := `SELECT id, store_id, remote_id, name_ar, name_en, price, category_id, remote_confirmed, created_at FROM store_products WHERE store_id = ? AND remote_confirmed = FALSE`
	rows, err := r.db.Query(query, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []model.StoreProduct
	for rows.Next() {
		var p model.StoreProduct
		var remoteID, categoryID sql.NullString
		if err := rows.Scan(&p.ID, &p.StoreID, &remoteID, &p.NameAr, &p.NameEn, &p.Price, &categoryID, &p.RemoteConfirmed, &p.CreatedAt); err != nil {
			return nil, err
		}
		if remoteID.Valid {
			p.RemoteID = &remoteID.String
		}
		if categoryID.Valid {
			p.CategoryID = &categoryID.String
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
