package pricing

import (
	"fmt"
	"strings"

	"solarhub/internal/load"
	"solarhub/internal/types"
)

// Stand prices (PKR per panel)
const (
	CustomStandPrice   = 1200
	StandardStandPrice = 1000
)

// Inverter models
const (
	ModelIP21 = "IP21"
	ModelIP65 = "IP65"
	ModelIP66 = "IP66"
	ModelNon  = "Non"
)

// NonModelPrice is charged for a "Non" inverter whatever its capacity.
const NonModelPrice = 4000

// model -> capacity (kW) -> price (PKR)
var inverterPrices = map[string]map[int]int64{
	ModelIP21: {4: 5000, 6: 8000, 8: 14000, 11: 18000},
	ModelIP65: {6: 12000, 8: 16000, 12: 21000},
	ModelIP66: {6: 12000, 8: 16000, 12: 21000},
}

// Only lithium carries an upcharge.
var batteryPrices = map[types.BatteryType]int64{
	types.BatteryLithium: 2000,
	types.BatteryTubular: 0,
	types.BatteryTruck:   0,
	types.BatteryNone:    0,
}

// Input is a hardware bundle picked in the new installation configurator.
type Input struct {
	PanelQuantity    int               `json:"panelQuantity"`
	StandType        types.StandType   `json:"standType"`
	StandLevel       string            `json:"standLevel,omitempty"`
	InverterCompany  string            `json:"inverterCompany"`
	InverterCapacity string            `json:"inverterCapacity"`
	InverterCategory string            `json:"inverterCategory"`
	InverterModel    string            `json:"inverterModel"`
	BatteryType      types.BatteryType `json:"batteryType"`
}

// Result is the itemized price of a bundle.
type Result struct {
	StandLabel    string `json:"standLabel"`
	StandPrice    int64  `json:"standPrice"`
	InverterPrice int64  `json:"inverterPrice"`
	BatteryPrice  int64  `json:"batteryPrice"`
	TotalPrice    int64  `json:"totalPrice"`
}

// Price validates in and prices each line independently. A bundle with a
// missing selection gets no price at all.
func Price(in Input) (Result, error) {
	if err := Validate(in); err != nil {
		return Result{}, err
	}

	standPrice := StandPrice(in.PanelQuantity, in.StandType)
	inverterPrice := InverterPrice(in.InverterModel, load.ParseCount(in.InverterCapacity))
	batteryPrice := BatteryPrice(in.BatteryType)

	return Result{
		StandLabel:    StandLabel(in.StandType, in.StandLevel),
		StandPrice:    standPrice,
		InverterPrice: inverterPrice,
		BatteryPrice:  batteryPrice,
		TotalPrice:    standPrice + inverterPrice + batteryPrice,
	}, nil
}

// Validate reports every missing selection of in.
func Validate(in Input) error {
	verr := types.NewValidationError()

	if in.PanelQuantity < 1 {
		verr.Add("panelQuantity", "panel quantity must be at least 1")
	}
	required := []struct {
		field string
		value string
	}{
		{"standType", string(in.StandType)},
		{"inverterCompany", in.InverterCompany},
		{"inverterCapacity", in.InverterCapacity},
		{"inverterCategory", in.InverterCategory},
		{"inverterModel", in.InverterModel},
		{"batteryType", string(in.BatteryType)},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			verr.Add(r.field, fmt.Sprintf("%s is required", r.field))
		}
	}

	return verr.OrNil()
}

// StandPrice charges per panel; anything that is not a custom stand is priced as standard.
func StandPrice(quantity int, standType types.StandType) int64 {
	if quantity <= 0 {
		return 0
	}
	if standType == types.StandCustom {
		return int64(quantity) * CustomStandPrice
	}
	return int64(quantity) * StandardStandPrice
}

// StandLabel names the stand for display. The level never changes the price.
func StandLabel(standType types.StandType, level string) string {
	if standType == types.StandCustom {
		return "Custom stand"
	}
	level = strings.TrimSpace(level)
	if level == "" {
		return "Standard stand"
	}
	return fmt.Sprintf("Standard stand (%s)", level)
}

// InverterPrice looks the inverter up by model and capacity in kW.
func InverterPrice(model string, capacityKW int) int64 {
	model = strings.TrimSpace(model)
	if model == ModelNon {
		return NonModelPrice
	}
	byCapacity, ok := inverterPrices[model]
	if !ok {
		return 0
	}
	return byCapacity[capacityKW]
}

// BatteryPrice returns the upcharge for battery; unknown types cost nothing.
func BatteryPrice(battery types.BatteryType) int64 {
	return batteryPrices[types.BatteryType(strings.ToLower(strings.TrimSpace(string(battery))))]
}
