package deal

import (
	"context"
	"errors"
	"time"

	"dealtrack/internal/domain/deal"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidInput = errors.New("invalid input")

// Source is the read-path orchestrator (DB primary, CSV fallback). Satisfied
// by *dealsource.Loader.
type Source interface {
	LoadDeals(ctx context.Context) []deal.Deal
}

type Usecase struct {
	repo   deal.Repository
	source Source
	now    func() time.Time
}

func NewUsecase(r deal.Repository, src Source) *Usecase {
	return &Usecase{repo: r, source: src, now: time.Now}
}

// List never fails: store errors and an empty store both degrade to the CSV
// fallback inside the source, and total unavailability yields an empty
// slice the caller renders as a "no data" state.
func (u *Usecase) List(ctx context.Context) []deal.Deal {
	return u.source.LoadDeals(ctx)
}

func (u *Usecase) Get(ctx context.Context, id string) (*deal.Deal, error) {
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, deal.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (u *Usecase) Create(ctx context.Context, in CreateDealInput) (*deal.Deal, error) {
	if in.Address == "" {
		return nil, ErrInvalidInput
	}
	if in.DealNumber < 1 {
		in.DealNumber = 1
	}

	status := deal.CoerceStage(in.Status)
	history := in.WeeklyHistory
	if len(history) == 0 {
		history = deal.SynthesizeWeeklyHistory(status, u.now())
	}

	d := &deal.Deal{
		ID:            uuid.NewString(),
		Address:       in.Address,
		City:          in.City,
		State:         in.State,
		Country:       in.Country,
		Broker:        in.Broker,
		BDD:           in.BDD,
		DealNumber:    in.DealNumber,
		Status:        status,
		Brand:         deal.CoerceBrand(in.Brand),
		NCOExisting:   deal.CoerceNCOExisting(in.NCOExisting),
		DealType:      deal.CoerceDealType(in.DealType),
		Notes:         in.Notes,
		RSF:           in.RSF,
		Owner:         in.Owner,
		WeeklyHistory: history,
	}
	if err := u.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Update applies the non-nil fields. A status change re-synthesizes the
// whole weekly history from the new stage, discarding whatever was stored.
// The history is display fabrication, not an audit trail.
func (u *Usecase) Update(ctx context.Context, id string, in UpdateDealInput) (*deal.Deal, error) {
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, deal.ErrNotFound
		}
		return nil, err
	}

	if in.Address != nil {
		d.Address = *in.Address
	}
	if in.City != nil {
		d.City = *in.City
	}
	if in.State != nil {
		d.State = *in.State
	}
	if in.Country != nil {
		d.Country = *in.Country
	}
	if in.Broker != nil {
		d.Broker = *in.Broker
	}
	if in.BDD != nil {
		d.BDD = *in.BDD
	}
	if in.DealNumber != nil && *in.DealNumber >= 1 {
		d.DealNumber = *in.DealNumber
	}
	if in.Brand != nil {
		d.Brand = deal.CoerceBrand(*in.Brand)
	}
	if in.NCOExisting != nil {
		d.NCOExisting = deal.CoerceNCOExisting(*in.NCOExisting)
	}
	if in.DealType != nil {
		d.DealType = deal.CoerceDealType(*in.DealType)
	}
	if in.Notes != nil {
		d.Notes = *in.Notes
	}
	if in.RSF != nil {
		d.RSF = *in.RSF
	}
	if in.Owner != nil {
		d.Owner = *in.Owner
	}
	if in.WeeklyHistory != nil {
		d.WeeklyHistory = *in.WeeklyHistory
	}
	if in.Status != nil {
		status := deal.CoerceStage(*in.Status)
		if status != d.Status {
			d.Status = status
			d.WeeklyHistory = deal.SynthesizeWeeklyHistory(status, u.now())
		}
	}

	if err := u.repo.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (u *Usecase) Delete(ctx context.Context, id string) error {
	return u.repo.Delete(ctx, id)
}
