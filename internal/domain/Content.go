package domain

type ContentStatus string

const (
	ContentStatusOK   ContentStatus = "ok"
	ContentStatusNear ContentStatus = "near"
	ContentStatusOver ContentStatus = "over"
)

// Listing é o conteúdo do anúncio a ser verificado
type Listing struct {
	Title        string   `json:"title"`
	BulletPoints []string `json:"bullet_points"`
	SearchTerms  []string `json:"search_terms"`
}

type FieldCount struct {
	Field     string        `json:"field"`
	Current   int           `json:"current"`
	Max       int           `json:"max"`
	Remaining int           `json:"remaining"`
	Status    ContentStatus `json:"status"`
}

type ContentReport struct {
	Title        FieldCount   `json:"title"`
	BulletPoints []FieldCount `json:"bullet_points"`
	SearchTerms  []FieldCount `json:"search_terms"`
	WithinLimits bool         `json:"within_limits"`
}
