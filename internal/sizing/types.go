package sizing

// Strategy names
const (
	StrategyCalculator = "calculator"
	StrategyWizard     = "wizard"
)

// Calculator page constants
const (
	DailyUsageHours      = 8.0
	SunHours             = 5.0
	SystemEfficiency     = 0.85
	PanelWatts           = 550.0
	BatteryUnitKWh       = 2.4
	CalculatorInverterX  = 1.25
	CalculatorCostPerKW  = 100000
	DaysPerBillingPeriod = 30.0
)

// Installation wizard constants
const (
	SafetyFactor    = 1.25
	PanelKW         = 0.55
	WizardInverterX = 1.2
	BatteryKWhPerKW = 4.0
	WizardCostPerKW = 150000
)

// Input is either a load in watts or a consumption figure supplied directly.
// TotalWatts wins when set; otherwise DailyKWh, then MonthlyKWh.
type Input struct {
	TotalWatts int     `json:"totalWatts"`
	DailyKWh   float64 `json:"dailyKWh,omitempty"`
	MonthlyKWh float64 `json:"monthlyKWh,omitempty"`
}

// Result is a recommended system. JSON names follow the quotation/installation records.
type Result struct {
	Strategy            string  `json:"strategy"`
	TotalKW             float64 `json:"totalKW"`
	DailyConsumptionKWh float64 `json:"dailyConsumption"`
	SystemSizeKW        float64 `json:"systemSize"`
	PanelsRequired      int     `json:"panelsRequired"`
	InverterSizeKW      int     `json:"inverterSize"`
	BatteryUnits        int     `json:"batteries,omitempty"`
	BatteryCapacityKWh  int     `json:"batteryCapacityCalc,omitempty"`
	EstimatedCost       int64   `json:"estimatedCost"`
}

// Strategy turns a sizing input into a recommended system.
type Strategy interface {
	Name() string
	Size(in Input) Result
}
