// internal/load/load.go

package load

import (
	"solarhub/internal/types"
)

// Appliance is a countable appliance category of a household or commercial inventory.
type Appliance string

const (
	AC15Ton        Appliance = "ac15Ton"
	AC1Ton         Appliance = "ac1Ton"
	Fan            Appliance = "fans"
	Refrigerator   Appliance = "refrigerators"
	Light          Appliance = "lights"
	Motor          Appliance = "motors"
	Iron           Appliance = "irons"
	WashingMachine Appliance = "washingMachines"
	Computer       Appliance = "computers"
	CCTV           Appliance = "cctv"
	WaterDispenser Appliance = "waterDispensers"
)

// Form keys of the free-form "other" entry.
const (
	OtherWattsField = "otherWatts"
	OtherDescField  = "otherDescription"
)

// Per-unit draw in watts. Never written after init.
var wattsPerUnit = map[Appliance]int{
	AC15Ton:        2000,
	AC1Ton:         1500,
	Fan:            100,
	Refrigerator:   400,
	Light:          15,
	Motor:          1000,
	Iron:           1000,
	WashingMachine: 350,
	Computer:       300,
	CCTV:           350,
	WaterDispenser: 300,
}

// display order
var appliances = []Appliance{
	AC15Ton, AC1Ton, Fan, Refrigerator, Light, Motor,
	Iron, WashingMachine, Computer, CCTV, WaterDispenser,
}

var labels = map[Appliance]string{
	AC15Ton:        "AC 1.5 ton",
	AC1Ton:         "AC 1 ton",
	Fan:            "Fan",
	Refrigerator:   "Refrigerator",
	Light:          "Light",
	Motor:          "Motor",
	Iron:           "Iron",
	WashingMachine: "Washing machine",
	Computer:       "Computer / TV",
	CCTV:           "CCTV",
	WaterDispenser: "Water dispenser",
}

// Inventory is the appliance list a customer fills in.
type Inventory struct {
	Counts           map[Appliance]int `json:"counts"`
	OtherWatts       int               `json:"otherWatts"`
	OtherDescription string            `json:"otherDescription,omitempty"`
}

// Result is the aggregated instantaneous draw of an inventory.
type Result struct {
	TotalWatts int     `json:"totalWatts"`
	TotalKW    float64 `json:"totalKW"`
}

// Appliances returns the known categories in display order.
func Appliances() []Appliance {
	out := make([]Appliance, len(appliances))
	copy(out, appliances)
	return out
}

// Wattage returns the per-unit draw of a; unknown categories draw 0 W.
func Wattage(a Appliance) int {
	return wattsPerUnit[a]
}

// Label returns the human readable name of a.
func Label(a Appliance) string {
	if l, ok := labels[a]; ok {
		return l
	}
	return string(a)
}

// Aggregate sums count × per-unit watts over every category and adds the
// "other" watts verbatim. Negative counts and unknown categories contribute nothing.
func Aggregate(inv Inventory) Result {
	total := 0
	for appliance, count := range inv.Counts {
		if count <= 0 {
			continue
		}
		total += count * wattsPerUnit[appliance]
	}
	if inv.OtherWatts > 0 {
		total += inv.OtherWatts
	}

	return Result{
		TotalWatts: total,
		TotalKW:    float64(total) / 1000,
	}
}

// Validate rejects a load that cannot be sized.
func Validate(r Result) error {
	verr := types.NewValidationError()
	if r.TotalWatts <= 0 {
		verr.Add("appliances", "please specify at least one appliance")
	}
	return verr.OrNil()
}
