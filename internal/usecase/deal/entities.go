package deal

import "dealtrack/internal/domain/deal"

// CreateDealInput is a full-record create payload.
type CreateDealInput struct {
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	Broker      string `json:"broker"`
	BDD         string `json:"bdd"`
	DealNumber  int    `json:"dealNumber"`
	Status      string `json:"status"`
	Brand       string `json:"brand"`
	NCOExisting string `json:"ncoExisting"`
	DealType    string `json:"dealType"`
	Notes       string `json:"notes"`
	RSF         string `json:"rsf"`
	Owner       string `json:"owner"`
	// Optional; synthesized from Status when empty.
	WeeklyHistory deal.WeeklyHistory `json:"weeklyHistory"`
}

// UpdateDealInput carries a partial-field PATCH; nil means "leave as is".
type UpdateDealInput struct {
	Address       *string             `json:"address"`
	City          *string             `json:"city"`
	State         *string             `json:"state"`
	Country       *string             `json:"country"`
	Broker        *string             `json:"broker"`
	BDD           *string             `json:"bdd"`
	DealNumber    *int                `json:"dealNumber"`
	Status        *string             `json:"status"`
	Brand         *string             `json:"brand"`
	NCOExisting   *string             `json:"ncoExisting"`
	DealType      *string             `json:"dealType"`
	Notes         *string             `json:"notes"`
	RSF           *string             `json:"rsf"`
	Owner         *string             `json:"owner"`
	WeeklyHistory *deal.WeeklyHistory `json:"weeklyHistory"`
}
