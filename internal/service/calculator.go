// internal/service/calculator.go

package service

import (
	"solarhub/internal/load"
	"solarhub/internal/pricing"
	"solarhub/internal/sizing"
)

// Estimate is a load and the system recommended for it.
type Estimate struct {
	Load   load.Result   `json:"load"`
	Sizing sizing.Result `json:"sizing"`
}

// CalculatorService backs the standalone calculator and the configurator.
// It keeps no state.
type CalculatorService struct{}

func NewCalculatorService() *CalculatorService {
	return &CalculatorService{}
}

func (s *CalculatorService) Load(inv load.Inventory) load.Result {
	return load.Aggregate(inv)
}

// SizeInput is either an appliance inventory or a known consumption figure.
type SizeInput struct {
	Inventory  load.Inventory
	DailyKWh   float64
	MonthlyKWh float64
	Strategy   string
}

// Size sizes the inventory, or the consumption figure when the inventory
// carries no load and a consumption is given. Load is zero on the consumption path.
func (s *CalculatorService) Size(in SizeInput) (*Estimate, error) {
	total := load.Aggregate(in.Inventory)
	if total.TotalWatts == 0 && (in.DailyKWh > 0 || in.MonthlyKWh > 0) {
		result, err := s.EstimateConsumption(sizing.Input{DailyKWh: in.DailyKWh, MonthlyKWh: in.MonthlyKWh}, in.Strategy)
		if err != nil {
			return nil, err
		}
		return &Estimate{Sizing: *result}, nil
	}
	return s.Estimate(in.Inventory, in.Strategy)
}

// Estimate aggregates inv, rejects an empty load and sizes it with the named strategy.
func (s *CalculatorService) Estimate(inv load.Inventory, strategyName string) (*Estimate, error) {
	strategy, err := sizing.ByName(strategyName)
	if err != nil {
		return nil, err
	}

	total := load.Aggregate(inv)
	if err := load.Validate(total); err != nil {
		return nil, err
	}

	return &Estimate{
		Load:   total,
		Sizing: strategy.Size(sizing.Input{TotalWatts: total.TotalWatts}),
	}, nil
}

// EstimateConsumption sizes a directly supplied daily or monthly consumption figure.
func (s *CalculatorService) EstimateConsumption(in sizing.Input, strategyName string) (*sizing.Result, error) {
	strategy, err := sizing.ByName(strategyName)
	if err != nil {
		return nil, err
	}
	if err := sizing.ValidateInput(in); err != nil {
		return nil, err
	}
	result := strategy.Size(in)
	return &result, nil
}

func (s *CalculatorService) Price(in pricing.Input) (pricing.Result, error) {
	return pricing.Price(in)
}
