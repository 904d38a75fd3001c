package services

import (
	"context"
	"errors"
	"math"
	"time"

	"parcelmarket/internal/core/domain/model/catalog"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
)

const (
	// provinceAvgSurcharge is added when a province pair has no direct rate
	// and the price falls back to the average of the two province rates.
	provinceAvgSurcharge = 30.0
	// defaultBasePrice applies when neither province resolves.
	defaultBasePrice = 50.0
	// fallbackPrice is returned whenever a rate lookup fails unexpectedly.
	// Pricing must never block a measurement submission.
	fallbackPrice = 100.0

	weightRatePerKg     = 5.0
	volumeRatePerL      = 2.0
	cm3PerLiter         = 1000.0
	defaultDeliveryDays = 3

	standardPlanName = "Standard"
	fastPlanName     = "Fast"
)

// RateSource supplies the read-only pricing catalog. Absent rows are reported
// as errs.ErrObjectNotFound; any other error is treated as a lookup failure.
type RateSource interface {
	ProvincePair(ctx context.Context, originProvince, destProvince string) (*catalog.ProvincePair, error)
	ProvinceByName(ctx context.Context, name string) (*catalog.Province, error)
	PlanByID(ctx context.Context, planID kernel.UUID) (*catalog.DeliveryPlan, error)
	PlanByName(ctx context.Context, name string) (*catalog.DeliveryPlan, error)
	ServicesByIDs(ctx context.Context, serviceIDs []kernel.UUID) ([]catalog.OptionalService, error)
}

// Quote is the priced outcome of a measurement submission.
type Quote struct {
	// Price is the full delivery price including any fast-delivery fee.
	Price float64
	// FastDeliveryFee is the surcharge portion of Price (zero for
	// non-fast plans).
	FastDeliveryFee float64
	// EstimatedDelivery is the promised delivery date.
	EstimatedDelivery time.Time
}

// PricingEngine computes delivery prices and delivery dates from the rate
// catalog. All calculations degrade to fixed fallbacks on lookup failures so
// that pricing never blocks the parcel lifecycle.
type PricingEngine struct {
	rates RateSource
}

// NewPricingEngine creates a PricingEngine over the given rate source.
func NewPricingEngine(rates RateSource) (*PricingEngine, error) {
	if rates == nil {
		return nil, errs.NewValueIsRequiredError("rates")
	}
	return &PricingEngine{rates: rates}, nil
}

// BasePrice computes the delivery price from weight, dimensions and the
// province rate tables:
//
//	base (pair rate, avg of province rates + 30, single rate, or 50.00)
//	+ weight * 5
//	+ (dimX*dimY*dimZ)/1000 * 2
//
// rounded to 2 decimal places. Returns 100.00 when a lookup fails.
func (e *PricingEngine) BasePrice(
	ctx context.Context, weight, dimX, dimY, dimZ float64, originProvince, destProvince string,
) float64 {
	base, err := e.resolveBase(ctx, originProvince, destProvince)
	if err != nil {
		return fallbackPrice
	}

	total := base + weight*weightRatePerKg + dimX*dimY*dimZ/cm3PerLiter*volumeRatePerL
	return roundMoney(total)
}

// DeliveryDate computes the promised delivery date: now plus the pair rate's
// delivery days, else the destination province's own delivery days, else 3.
func (e *PricingEngine) DeliveryDate(
	ctx context.Context, originProvince, destProvince string, now time.Time,
) time.Time {
	return now.AddDate(0, 0, e.resolveDeliveryDays(ctx, originProvince, destProvince))
}

// QuoteWithPlan computes the full delivery quote, applying the parcel's
// delivery plan. Plan resolution: the explicit planID if it resolves to an
// active plan, else the plan named "Standard", else no plan. A "Fast" plan
// adds its flat fee and shaves its days reduction off the delivery date.
func (e *PricingEngine) QuoteWithPlan(
	ctx context.Context, weight, dimX, dimY, dimZ float64,
	originProvince, destProvince string, planID *kernel.UUID, now time.Time,
) Quote {
	quote := Quote{
		Price:             e.BasePrice(ctx, weight, dimX, dimY, dimZ, originProvince, destProvince),
		EstimatedDelivery: e.DeliveryDate(ctx, originProvince, destProvince, now),
	}

	plan := e.resolvePlan(ctx, planID)
	if plan == nil || plan.Name != fastPlanName {
		return quote
	}

	quote.FastDeliveryFee = plan.FastDeliveryFee
	quote.Price = roundMoney(quote.Price + plan.FastDeliveryFee)
	if plan.DeliveryDaysReduction > 0 {
		quote.EstimatedDelivery = quote.EstimatedDelivery.AddDate(0, 0, -plan.DeliveryDaysReduction)
	}
	return quote
}

// ServiceFees resolves the selected optional services and sums their fees.
// Inactive services are skipped; an empty selection costs nothing.
func (e *PricingEngine) ServiceFees(
	ctx context.Context, serviceIDs []kernel.UUID,
) ([]catalog.OptionalService, float64, error) {
	if len(serviceIDs) == 0 {
		return nil, 0, nil
	}

	services, err := e.rates.ServicesByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, 0, err
	}

	var active []catalog.OptionalService
	var total float64
	for _, s := range services {
		if !s.IsActive {
			continue
		}
		active = append(active, s)
		total += s.ServiceFee
	}
	return active, roundMoney(total), nil
}

func (e *PricingEngine) resolveBase(ctx context.Context, originProvince, destProvince string) (float64, error) {
	pair, err := e.rates.ProvincePair(ctx, originProvince, destProvince)
	if err == nil {
		return pair.Price, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return 0, err
	}

	origin, err := e.lookupProvince(ctx, originProvince)
	if err != nil {
		return 0, err
	}
	dest, err := e.lookupProvince(ctx, destProvince)
	if err != nil {
		return 0, err
	}

	switch {
	case origin != nil && dest != nil:
		return (origin.BasePrice+dest.BasePrice)/2 + provinceAvgSurcharge, nil
	case origin != nil:
		return origin.BasePrice, nil
	case dest != nil:
		return dest.BasePrice, nil
	default:
		return defaultBasePrice, nil
	}
}

func (e *PricingEngine) resolveDeliveryDays(ctx context.Context, originProvince, destProvince string) int {
	pair, err := e.rates.ProvincePair(ctx, originProvince, destProvince)
	if err == nil && pair.DeliveryDays > 0 {
		return pair.DeliveryDays
	}

	dest, err := e.lookupProvince(ctx, destProvince)
	if err == nil && dest != nil && dest.DeliveryDays > 0 {
		return dest.DeliveryDays
	}
	return defaultDeliveryDays
}

func (e *PricingEngine) resolvePlan(ctx context.Context, planID *kernel.UUID) *catalog.DeliveryPlan {
	if planID != nil {
		plan, err := e.rates.PlanByID(ctx, *planID)
		if err == nil && plan.IsActive {
			return plan
		}
	}

	plan, err := e.rates.PlanByName(ctx, standardPlanName)
	if err == nil && plan.IsActive {
		return plan
	}
	return nil
}

// lookupProvince maps a not-found row to a nil province, keeping other
// failures as errors.
func (e *PricingEngine) lookupProvince(ctx context.Context, name string) (*catalog.Province, error) {
	province, err := e.rates.ProvinceByName(ctx, name)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return province, nil
}

// roundMoney rounds to the 2-decimal precision used for all monetary values.
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
