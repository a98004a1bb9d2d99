// Package fund holds the fund registry domain model.
package fund

import "github.com/shopspring/decimal"

// Fund is an investment fund record. NetAssetValue is nil until the first
// valuation is recorded; nil and zero are distinct states and both survive
// round-trips through the store.
type Fund struct {
	Code          string           `json:"code"`
	Name          string           `json:"name"`
	TaxID         string           `json:"taxId"`
	TypeCode      int              `json:"typeCode"`
	NetAssetValue *decimal.Decimal `json:"netAssetValue"`
	// TypeName is joined from the fund_type lookup on reads; it is never
	// written through the fund row.
	TypeName string `json:"typeName,omitempty"`
}

// Type is a row of the fund_type lookup table.
type Type struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}
