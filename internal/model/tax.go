package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tax stores the VAT rate and tax number format of a single country
type Tax struct {
	ID               int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	CountryCode      string          `gorm:"type:varchar(2);uniqueIndex;not null" json:"country_code"` // ISO 3166-1 alpha-2, e.g. DE
	Rate             decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"rate"`                   // percentage, e.g. 19.00 = 19%
	TaxNumberPattern string          `gorm:"type:varchar(100);not null" json:"tax_number_pattern"`     // e.g. ^DE[0-9]{9}$
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
