package model

// RemoteCategory mirrors a category on the connected store. The remote
// platform owns it; the id is platform-assigned and authoritative.
type RemoteCategory struct {
	ID            string `json:"id"`
	NameAr        string `json:"nameAr"`
	NameEn        string `json:"nameEn"`
	Slug          string `json:"slug,omitempty"`
	ProductsCount int    `json:"productsCount"`
}

// RemoteProduct mirrors a product on the connected store.
type RemoteProduct struct {
	ID          string   `json:"id"`
	NameAr      string   `json:"nameAr"`
	NameEn      string   `json:"nameEn"`
	Price       float64  `json:"price"`
	CategoryIDs []string `json:"categoryIds"`
}

// Disposition is the pending-change marker attached to an existing
// remote category during review. Exactly one applies per item.
type Disposition string

const (
	DispositionKeep   Disposition = "keep"
	DispositionEdit   Disposition = "edit"
	DispositionRemove Disposition = "remove"
)

// CategoryEdit is the client-local working copy of one existing remote
// category, carrying its disposition and any locally-overridden names.
type CategoryEdit struct {
	Category     RemoteCategory `json:"category"`
	Disposition  Disposition    `json:"disposition"`
	EditedNameAr string         `json:"editedNameAr,omitempty"`
	EditedNameEn string         `json:"editedNameEn,omitempty"`
}

// EffectiveNames resolves the names a rename would push: the edited
// value when present, otherwise the original. An empty edit never
// produces an empty label.
func (e CategoryEdit) EffectiveNames() (ar, en string) {
	ar, en = e.Category.NameAr, e.Category.NameEn
	if e.EditedNameAr != "" {
		ar = e.EditedNameAr
	}
	if e.EditedNameEn != "" {
		en = e.EditedNameEn
	}
	return ar, en
}

// Renamed reports whether the effective names differ from the fetched ones.
func (e CategoryEdit) Renamed() bool {
	ar, en := e.EffectiveNames()
	return ar != e.Category.NameAr || en != e.Category.NameEn
}

// ProposedCategory is an AI-suggested category that does not exist
// remotely yet.
type ProposedCategory struct {
	NameAr string `json:"nameAr"`
	NameEn string `json:"nameEn"`
}

// ProposedProduct is an AI-suggested product pending confirmation.
type ProposedProduct struct {
	NameAr        string   `json:"nameAr"`
	NameEn        string   `json:"nameEn"`
	Price         float64  `json:"price"`
	DescriptionAr string   `json:"descriptionAr,omitempty"`
	DescriptionEn string   `json:"descriptionEn,omitempty"`
	Variants      []string `json:"variants,omitempty"`
}
