package sizing

import (
	"errors"
	"math"
	"testing"

	"solarhub/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeForCalculator(t *testing.T) {
	r := SizeForCalculator(5)

	assert.Equal(t, StrategyCalculator, r.Strategy)
	assert.InDelta(t, 40.0, r.DailyConsumptionKWh, 1e-9)
	assert.Equal(t, 10.0, r.SystemSizeKW)
	assert.Equal(t, 19, r.PanelsRequired)
	assert.Equal(t, 17, r.BatteryUnits)
	assert.Equal(t, 7, r.InverterSizeKW)
	assert.Equal(t, int64(1_000_000), r.EstimatedCost)
	assert.Zero(t, r.BatteryCapacityKWh, "calculator reports battery units, not kWh")
}

func TestSizeForWizard(t *testing.T) {
	r := SizeForWizard(5000)

	assert.Equal(t, StrategyWizard, r.Strategy)
	assert.Equal(t, 7.0, r.SystemSizeKW)
	assert.Equal(t, 13, r.PanelsRequired)
	assert.Equal(t, 9, r.InverterSizeKW)
	assert.Equal(t, 28, r.BatteryCapacityKWh)
	assert.Equal(t, int64(1_050_000), r.EstimatedCost)
	assert.Zero(t, r.BatteryUnits, "wizard reports battery kWh, not units")
}

func TestStrategiesDivergeForSameLoad(t *testing.T) {
	a := CalculatorStrategy{}.Size(Input{TotalWatts: 5000})
	b := WizardStrategy{}.Size(Input{TotalWatts: 5000})

	assert.NotEqual(t, a.SystemSizeKW, b.SystemSizeKW)
	assert.Equal(t, int64(CalculatorCostPerKW), a.EstimatedCost/int64(a.SystemSizeKW))
	assert.Equal(t, int64(WizardCostPerKW), b.EstimatedCost/int64(b.SystemSizeKW))
}

func TestSmallLoads(t *testing.T) {
	cases := []struct {
		watts                         int
		calcCap, calcPanels, calcBatt int
		calcInv                       int
		wizCap, wizPanels, wizInv     int
		wizBatt                       int
	}{
		{15, 1, 2, 1, 1, 1, 2, 2, 4},
		{2250, 5, 10, 8, 3, 3, 6, 4, 12},
		{3415, 7, 13, 12, 5, 5, 10, 6, 20},
	}
	for _, tc := range cases {
		a := SizeForCalculator(float64(tc.watts) / 1000)
		assert.Equal(t, float64(tc.calcCap), a.SystemSizeKW, "calculator capacity for %d W", tc.watts)
		assert.Equal(t, tc.calcPanels, a.PanelsRequired, "calculator panels for %d W", tc.watts)
		assert.Equal(t, tc.calcBatt, a.BatteryUnits, "calculator batteries for %d W", tc.watts)
		assert.Equal(t, tc.calcInv, a.InverterSizeKW, "calculator inverter for %d W", tc.watts)

		b := SizeForWizard(tc.watts)
		assert.Equal(t, float64(tc.wizCap), b.SystemSizeKW, "wizard capacity for %d W", tc.watts)
		assert.Equal(t, tc.wizPanels, b.PanelsRequired, "wizard panels for %d W", tc.watts)
		assert.Equal(t, tc.wizInv, b.InverterSizeKW, "wizard inverter for %d W", tc.watts)
		assert.Equal(t, tc.wizBatt, b.BatteryCapacityKWh, "wizard battery for %d W", tc.watts)
	}
}

func TestCeilingRoundingNeverUndersizes(t *testing.T) {
	for watts := 1; watts <= 40000; watts += 137 {
		kw := float64(watts) / 1000

		a := SizeForCalculator(kw)
		daily := kw * DailyUsageHours
		rawCap := daily / SunHours / SystemEfficiency
		assert.GreaterOrEqual(t, a.SystemSizeKW, rawCap)
		assert.Less(t, a.SystemSizeKW-rawCap, 1.0)
		assert.Equal(t, a.SystemSizeKW, math.Trunc(a.SystemSizeKW))
		assert.GreaterOrEqual(t, float64(a.PanelsRequired), a.SystemSizeKW*1000/PanelWatts)
		assert.GreaterOrEqual(t, float64(a.BatteryUnits), daily/BatteryUnitKWh)
		assert.GreaterOrEqual(t, float64(a.InverterSizeKW), kw*CalculatorInverterX)

		b := SizeForWizard(watts)
		rawB := float64(watts) * SafetyFactor / 1000
		assert.GreaterOrEqual(t, b.SystemSizeKW, rawB)
		assert.Less(t, b.SystemSizeKW-rawB, 1.0)
		assert.GreaterOrEqual(t, float64(b.PanelsRequired), b.SystemSizeKW/PanelKW)
		assert.GreaterOrEqual(t, float64(b.InverterSizeKW), b.SystemSizeKW*WizardInverterX)
		assert.GreaterOrEqual(t, float64(b.BatteryCapacityKWh), b.SystemSizeKW*BatteryKWhPerKW)
	}
}

func TestZeroLoadSizesToZero(t *testing.T) {
	a := SizeForCalculator(0)
	assert.Zero(t, a.SystemSizeKW)
	assert.Zero(t, a.PanelsRequired)
	assert.Zero(t, a.EstimatedCost)

	b := SizeForWizard(0)
	assert.Zero(t, b.SystemSizeKW)
	assert.Zero(t, b.BatteryCapacityKWh)
	assert.Zero(t, b.EstimatedCost)
}

func TestConsumptionInput(t *testing.T) {
	t.Run("calculator from daily kWh", func(t *testing.T) {
		r := CalculatorStrategy{}.Size(Input{DailyKWh: 40})
		assert.Equal(t, SizeForCalculator(5), r)
	})

	t.Run("calculator from monthly kWh", func(t *testing.T) {
		r := CalculatorStrategy{}.Size(Input{MonthlyKWh: 1200})
		assert.Equal(t, 10.0, r.SystemSizeKW)
		assert.Equal(t, 17, r.BatteryUnits)
		assert.Equal(t, 7, r.InverterSizeKW)
	})

	t.Run("wizard from daily kWh", func(t *testing.T) {
		r := WizardStrategy{}.Size(Input{DailyKWh: 40})
		assert.Equal(t, SizeForWizard(5000), r)
	})

	t.Run("watts take precedence", func(t *testing.T) {
		r := WizardStrategy{}.Size(Input{TotalWatts: 1000, DailyKWh: 400})
		assert.Equal(t, SizeForWizard(1000), r)
	})
}

func TestByName(t *testing.T) {
	s, err := ByName("")
	require.NoError(t, err)
	assert.Equal(t, StrategyCalculator, s.Name())

	s, err = ByName(" Wizard ")
	require.NoError(t, err)
	assert.Equal(t, StrategyWizard, s.Name())

	_, err = ByName("unified")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestValidateInput(t *testing.T) {
	err := ValidateInput(Input{})
	var verr *types.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "appliances")

	assert.NoError(t, ValidateInput(Input{TotalWatts: 100}))
	assert.NoError(t, ValidateInput(Input{MonthlyKWh: 300}))
}
