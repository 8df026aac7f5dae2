package load

import (
	"encoding/json"
	"errors"
	"testing"

	"solarhub/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	t.Run("weighted sum plus other watts", func(t *testing.T) {
		r := Aggregate(Inventory{
			Counts:     map[Appliance]int{AC15Ton: 1, Fan: 2},
			OtherWatts: 50,
		})
		assert.Equal(t, 2250, r.TotalWatts)
		assert.InDelta(t, 2.25, r.TotalKW, 1e-9)
	})

	t.Run("every category uses its table wattage", func(t *testing.T) {
		counts := make(map[Appliance]int)
		want := 0
		for i, a := range Appliances() {
			counts[a] = i + 1
			want += (i + 1) * Wattage(a)
		}
		r := Aggregate(Inventory{Counts: counts})
		assert.Equal(t, want, r.TotalWatts)
		// 2000 + 2*1500 + 3*100 + 4*400 + 5*15 + 6*1000 + 7*1000 + 8*350 + 9*300 + 10*350 + 11*300
		assert.Equal(t, 32275, r.TotalWatts)
	})

	t.Run("empty inventory is zero", func(t *testing.T) {
		r := Aggregate(Inventory{})
		assert.Equal(t, 0, r.TotalWatts)
		assert.Zero(t, r.TotalKW)
	})

	t.Run("negative and unknown entries contribute nothing", func(t *testing.T) {
		r := Aggregate(Inventory{
			Counts:     map[Appliance]int{Light: -4, Appliance("heater"): 3, Motor: 1},
			OtherWatts: -200,
		})
		assert.Equal(t, 1000, r.TotalWatts)
	})

	t.Run("idempotent and order independent", func(t *testing.T) {
		a := Inventory{Counts: map[Appliance]int{Fan: 3, CCTV: 2, Iron: 1}}
		b := Inventory{Counts: map[Appliance]int{Iron: 1, CCTV: 2, Fan: 3}}
		first := Aggregate(a)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, Aggregate(a))
			assert.Equal(t, first, Aggregate(b))
		}
	})
}

func TestWattageTable(t *testing.T) {
	expected := map[Appliance]int{
		AC15Ton: 2000, AC1Ton: 1500, Fan: 100, Refrigerator: 400, Light: 15, Motor: 1000,
		Iron: 1000, WashingMachine: 350, Computer: 300, CCTV: 350, WaterDispenser: 300,
	}
	assert.Len(t, Appliances(), len(expected))
	for a, w := range expected {
		assert.Equal(t, w, Wattage(a), "wattage of %s", a)
	}
	assert.Equal(t, 0, Wattage(Appliance("unknown")))

	// callers cannot mutate the order slice
	list := Appliances()
	list[0] = Appliance("mutated")
	assert.Equal(t, AC15Ton, Appliances()[0])
}

func TestValidate(t *testing.T) {
	err := Validate(Aggregate(Inventory{}))
	require.Error(t, err)

	var verr *types.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "please specify at least one appliance", verr.Fields["appliances"])

	assert.NoError(t, Validate(Result{TotalWatts: 15, TotalKW: 0.015}))
}

func TestParseCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"3", 3},
		{" 12 ", 12},
		{"+7", 7},
		{"-4", 0},
		{"abc", 0},
		{"12abc", 12},
		{"3.7", 3},
		{"NaN", 0},
		{"0", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseCount(tc.in), "ParseCount(%q)", tc.in)
	}
}

func TestParseInventory(t *testing.T) {
	inv := ParseInventory(map[string]string{
		"ac15Ton":          "1",
		"fans":             "2",
		"lights":           "oops",
		"otherWatts":       "50",
		"otherDescription": "  aquarium pump ",
	})

	assert.Equal(t, 1, inv.Counts[AC15Ton])
	assert.Equal(t, 2, inv.Counts[Fan])
	assert.Equal(t, 0, inv.Counts[Light])
	assert.Equal(t, 0, inv.Counts[Motor])
	assert.Equal(t, 50, inv.OtherWatts)
	assert.Equal(t, "aquarium pump", inv.OtherDescription)
	assert.Equal(t, 2250, Aggregate(inv).TotalWatts)
}

func TestFormValuesJSON(t *testing.T) {
	var f FormValues
	err := json.Unmarshal([]byte(`{"ac15Ton": 1, "fans": "2", "lights": null, "motors": 2.7, "otherWatts": "50W", "otherDescription": "pump"}`), &f)
	require.NoError(t, err)

	assert.Equal(t, "1", f["ac15Ton"])
	assert.Equal(t, "", f["lights"])
	inv := f.Inventory()
	assert.Equal(t, 1, inv.Counts[AC15Ton])
	assert.Equal(t, 2, inv.Counts[Fan])
	assert.Equal(t, 2, inv.Counts[Motor])
	assert.Equal(t, 50, inv.OtherWatts)
	assert.Equal(t, 2000+200+2000+50, Aggregate(inv).TotalWatts)

	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &f))
}

func TestParseFigure(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"40", 40},
		{" 12.5 ", 12.5},
		{".5", 0.5},
		{"40kWh", 40},
		{"1e3", 1000},
		{"2e", 2},
		{"1.5.2", 1.5},
		{"-3", 0},
		{"abc", 0},
		{"", 0},
		{".", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseFigure(tc.in), "ParseFigure(%q)", tc.in)
	}
}

func TestLenientNumberJSON(t *testing.T) {
	var body struct {
		Panels  Count  `json:"panels"`
		Spare   Count  `json:"spare"`
		Missing Count  `json:"missing"`
		Daily   Figure `json:"daily"`
		Monthly Figure `json:"monthly"`
	}
	err := json.Unmarshal([]byte(`{"panels": "10", "spare": "abc", "missing": null, "daily": "40.5", "monthly": 900}`), &body)
	require.NoError(t, err)

	assert.Equal(t, Count(10), body.Panels)
	assert.Equal(t, Count(0), body.Spare)
	assert.Equal(t, Count(0), body.Missing)
	assert.Equal(t, Figure(40.5), body.Daily)
	assert.Equal(t, Figure(900), body.Monthly)
}
