package deal

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound = errors.New("deal not found")
)

// Stage is the deal's current pipeline position. The pipeline is a fixed
// enumeration with a display order, not a state machine: any stage may be
// set to any other stage.
type Stage string

const (
	StageProspecting       Stage = "Prospecting"
	StageActiveDiscussions Stage = "Active Discussions"
	StageSiteApproved      Stage = "Site Approved"
	StageLOI               Stage = "LOI"
	StageICApproved        Stage = "IC Approved"
	StageInLegal           Stage = "In Legal"
	StageExecuted          Stage = "Executed"
	StageOnHold            Stage = "On Hold"
	StageDead              Stage = "Dead"
	StageWithdrawn         Stage = "Withdrawn"
)

// DefaultStage is the fallback for unrecognized input values. Business
// policy, not parser mechanics.
const DefaultStage = StageProspecting

// Stages lists all ten labels in display order.
var Stages = []Stage{
	StageProspecting,
	StageActiveDiscussions,
	StageSiteApproved,
	StageLOI,
	StageICApproved,
	StageInLegal,
	StageExecuted,
	StageOnHold,
	StageDead,
	StageWithdrawn,
}

// Progression is the forward-only ordering of the seven active stages.
// On Hold, Dead and Withdrawn sit outside it.
var Progression = []Stage{
	StageProspecting,
	StageActiveDiscussions,
	StageSiteApproved,
	StageLOI,
	StageICApproved,
	StageInLegal,
	StageExecuted,
}

type Brand string

const (
	BrandRegus  Brand = "Regus"
	BrandSpaces Brand = "Spaces"

	DefaultBrand = BrandRegus
)

// NCOExisting classifies a deal as a new center opening, an existing
// location, or a takeover.
type NCOExisting string

const (
	NCO      NCOExisting = "NCO"
	Existing NCOExisting = "Existing"
	Takeover NCOExisting = "Takeover"

	DefaultNCOExisting = NCO
)

type DealType string

const (
	TypeMCA          DealType = "MCA"
	TypeRevenueShare DealType = "REVENUE SHARE"
	TypeProfitShare  DealType = "PROFIT SHARE (SOP)"
	TypeConventional DealType = "CONVENTIONAL"

	DefaultDealType = TypeRevenueShare
)

// CoerceStage maps a raw string to one of the ten stage labels,
// falling back to DefaultStage. Total: never fails.
func CoerceStage(raw string) Stage {
	s := Stage(strings.TrimSpace(raw))
	for _, st := range Stages {
		if s == st {
			return st
		}
	}
	return DefaultStage
}

func CoerceBrand(raw string) Brand {
	switch b := Brand(strings.TrimSpace(raw)); b {
	case BrandRegus, BrandSpaces:
		return b
	}
	return DefaultBrand
}

func CoerceNCOExisting(raw string) NCOExisting {
	switch v := NCOExisting(strings.TrimSpace(raw)); v {
	case NCO, Existing, Takeover:
		return v
	}
	return DefaultNCOExisting
}

func CoerceDealType(raw string) DealType {
	switch dt := DealType(strings.TrimSpace(raw)); dt {
	case TypeMCA, TypeRevenueShare, TypeProfitShare, TypeConventional:
		return dt
	}
	return DefaultDealType
}

// WeeklyEntry is one weekly snapshot: a M/D/YY label plus the stage the
// deal held that week.
type WeeklyEntry struct {
	Week  string `json:"week"`
	Stage Stage  `json:"stage"`
}

// WeeklyHistory holds the most recent snapshots, most-recent first. The
// generator emits exactly four; consumers must tolerate fewer.
type WeeklyHistory []WeeklyEntry

type Deal struct {
	ID         string `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	Address    string `gorm:"column:address;type:text;not null" json:"address"`
	City       string `gorm:"column:city;type:text;not null" json:"city"`
	State      string `gorm:"column:state;type:text;not null" json:"state"`
	Country    string `gorm:"column:country;type:text;not null" json:"country"`
	Broker     string `gorm:"column:broker;type:text;not null" json:"broker"`
	BDD        string `gorm:"column:bdd;type:text;not null" json:"bdd"`
	// Advisory per-broker sequence; uniqueness is not enforced.
	DealNumber    int           `gorm:"column:deal_number;not null" json:"dealNumber"`
	Status        Stage         `gorm:"column:status;type:varchar(32);not null" json:"status"`
	Brand         Brand         `gorm:"column:brand;type:varchar(32);not null" json:"brand"`
	NCOExisting   NCOExisting   `gorm:"column:nco_existing;type:varchar(16);not null" json:"ncoExisting"`
	DealType      DealType      `gorm:"column:deal_type;type:varchar(32);not null" json:"dealType"`
	Notes         string        `gorm:"column:notes;type:text;not null" json:"notes"`
	RSF           string        `gorm:"column:rsf;type:text;not null" json:"rsf"`
	Owner         string        `gorm:"column:owner;type:text;not null" json:"owner"`
	WeeklyHistory WeeklyHistory `gorm:"column:weekly_history;serializer:json" json:"weeklyHistory"`
	CreatedAt     time.Time     `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Deal) TableName() string { return "deals" }
