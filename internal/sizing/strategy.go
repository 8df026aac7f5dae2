package sizing

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"solarhub/internal/types"
)

// CalculatorStrategy sizes for the standalone load calculator page.
type CalculatorStrategy struct{}

// WizardStrategy sizes for the multi-step installation wizard.
type WizardStrategy struct{}

var (
	calculator = CalculatorStrategy{}
	wizard     = WizardStrategy{}
)

var ErrUnknownStrategy = errors.New("unknown sizing strategy")

// ByName resolves a strategy name; an empty name means the calculator.
func ByName(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StrategyCalculator:
		return calculator, nil
	case StrategyWizard:
		return wizard, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownStrategy, name)
	}
}

func (CalculatorStrategy) Name() string { return StrategyCalculator }

func (CalculatorStrategy) Size(in Input) Result {
	if in.TotalWatts > 0 {
		return SizeForCalculator(float64(in.TotalWatts) / 1000)
	}
	daily := dailyKWh(in)
	return sizeFromDaily(daily/DailyUsageHours, daily)
}

// SizeForCalculator sizes a system for a load of totalKW running DailyUsageHours a day.
func SizeForCalculator(totalKW float64) Result {
	return sizeFromDaily(totalKW, totalKW*DailyUsageHours)
}

func sizeFromDaily(totalKW, daily float64) Result {
	capacity := math.Ceil((daily / SunHours) / SystemEfficiency)
	return Result{
		Strategy:            StrategyCalculator,
		TotalKW:             totalKW,
		DailyConsumptionKWh: daily,
		SystemSizeKW:        capacity,
		PanelsRequired:      int(math.Ceil(capacity * 1000 / PanelWatts)),
		BatteryUnits:        int(math.Ceil(daily / BatteryUnitKWh)),
		InverterSizeKW:      int(math.Ceil(totalKW * CalculatorInverterX)),
		EstimatedCost:       int64(capacity) * CalculatorCostPerKW,
	}
}

func (WizardStrategy) Name() string { return StrategyWizard }

func (WizardStrategy) Size(in Input) Result {
	if in.TotalWatts > 0 {
		return SizeForWizard(in.TotalWatts)
	}
	watts := int(math.Round(dailyKWh(in) * 1000 / DailyUsageHours))
	return SizeForWizard(watts)
}

// SizeForWizard sizes a system for totalWatts with the wizard's safety factor.
func SizeForWizard(totalWatts int) Result {
	capacity := math.Ceil(float64(totalWatts) * SafetyFactor / 1000)
	return Result{
		Strategy:            StrategyWizard,
		TotalKW:             float64(totalWatts) / 1000,
		DailyConsumptionKWh: float64(totalWatts) / 1000 * DailyUsageHours,
		SystemSizeKW:        capacity,
		PanelsRequired:      int(math.Ceil(capacity / PanelKW)),
		InverterSizeKW:      int(math.Ceil(capacity * WizardInverterX)),
		BatteryCapacityKWh:  int(math.Ceil(capacity * BatteryKWhPerKW)),
		EstimatedCost:       int64(capacity) * WizardCostPerKW,
	}
}

func dailyKWh(in Input) float64 {
	if in.DailyKWh > 0 {
		return in.DailyKWh
	}
	if in.MonthlyKWh > 0 {
		return in.MonthlyKWh / DaysPerBillingPeriod
	}
	return 0
}

// ValidateInput rejects an input with nothing to size.
func ValidateInput(in Input) error {
	verr := types.NewValidationError()
	if in.TotalWatts <= 0 && dailyKWh(in) <= 0 {
		verr.Add("appliances", "please specify at least one appliance")
	}
	if in.TotalWatts < 0 {
		verr.Add("totalWatts", "load cannot be negative")
	}
	return verr.OrNil()
}
