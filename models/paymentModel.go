package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentFailure is a logging sink for client-reported gateway errors. It is
// never replayed or reconciled; it exists so failed checkouts leave a trace.
type PaymentFailure struct {
	gorm.Model
	Code         string         `json:"code"`
	Description  string         `json:"description"`
	Source       string         `json:"source"`
	Reason       string         `json:"reason"`
	OrderPayload datatypes.JSON `json:"orderPayload"`
}
