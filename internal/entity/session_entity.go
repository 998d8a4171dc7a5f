package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Session is one user submission. It is written once and never mutated;
// its id doubles as the scope of everything derived for it.
type Session struct {
	Id                 string
	DiseaseId          string
	LocationId         string
	Budget             decimal.Decimal
	ControlMethodInput string
	CreatedAt          time.Time
}
