// Command solarcalc sizes a solar system from an appliance list in the terminal.
//
//	solarcalc -ac15Ton 1 -fans 4 -lights 10 -strategy wizard
//	solarcalc -monthly 900
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"solarhub/internal/load"
	"solarhub/internal/service"
	"solarhub/internal/sizing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type options struct {
	inventory load.Inventory
	strategy  string
	daily     float64
	monthly   float64
}

func parseFlags(args []string, errOut io.Writer) (options, error) {
	fs := flag.NewFlagSet("solarcalc", flag.ContinueOnError)
	fs.SetOutput(errOut)

	counts := make(map[load.Appliance]*int, len(load.Appliances()))
	for _, a := range load.Appliances() {
		counts[a] = fs.Int(string(a), 0, fmt.Sprintf("number of %s (%d W each)", load.Label(a), load.Wattage(a)))
	}
	other := fs.Int("other", 0, "additional load in watts")
	otherDesc := fs.String("other-desc", "", "description of the additional load")
	strategy := fs.String("strategy", sizing.StrategyCalculator, "sizing strategy: calculator or wizard")
	daily := fs.Float64("daily", 0, "daily consumption in kWh, used when no appliances are given")
	monthly := fs.Float64("monthly", 0, "monthly consumption in kWh, used when no appliances are given")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts := options{
		inventory: load.Inventory{
			Counts:           make(map[load.Appliance]int, len(counts)),
			OtherWatts:       *other,
			OtherDescription: *otherDesc,
		},
		strategy: *strategy,
		daily:    *daily,
		monthly:  *monthly,
	}
	for a, n := range counts {
		opts.inventory.Counts[a] = *n
	}
	return opts, nil
}

func run(args []string, out, errOut io.Writer) error {
	opts, err := parseFlags(args, errOut)
	if err != nil {
		return err
	}

	est, err := service.NewCalculatorService().Size(service.SizeInput{
		Inventory:  opts.inventory,
		DailyKWh:   opts.daily,
		MonthlyKWh: opts.monthly,
		Strategy:   opts.strategy,
	})
	if err != nil {
		return err
	}
	if est.Load.TotalWatts > 0 {
		renderLoad(out, opts.inventory, est.Load)
	}
	renderSizing(out, est.Sizing)
	return nil
}

func renderLoad(out io.Writer, inv load.Inventory, total load.Result) {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetTitle("Connected Load")
	tw.AppendHeader(table.Row{"Appliance", "Qty", "W/unit", "Subtotal (W)"})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	for _, a := range load.Appliances() {
		n := inv.Counts[a]
		if n <= 0 {
			continue
		}
		tw.AppendRow(table.Row{load.Label(a), n, load.Wattage(a), n * load.Wattage(a)})
	}
	if inv.OtherWatts > 0 {
		label := "Other"
		if inv.OtherDescription != "" {
			label = fmt.Sprintf("Other (%s)", inv.OtherDescription)
		}
		tw.AppendRow(table.Row{label, "", "", inv.OtherWatts})
	}
	tw.AppendSeparator()
	tw.AppendRow(table.Row{text.FgHiWhite.Sprint("TOTAL"), "", "", fmt.Sprintf("%d (%.2f kW)", total.TotalWatts, total.TotalKW)})
	tw.Render()
}

func renderSizing(out io.Writer, r sizing.Result) {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetTitle(fmt.Sprintf("Recommended System (%s)", r.Strategy))
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})

	tw.AppendRow(table.Row{"Daily consumption", fmt.Sprintf("%.2f kWh", r.DailyConsumptionKWh)})
	tw.AppendRow(table.Row{"System size", fmt.Sprintf("%.0f kW", r.SystemSizeKW)})
	tw.AppendRow(table.Row{"Panels (550 W)", r.PanelsRequired})
	tw.AppendRow(table.Row{"Inverter", fmt.Sprintf("%d kW", r.InverterSizeKW)})
	if r.BatteryUnits > 0 {
		tw.AppendRow(table.Row{"Batteries (2.4 kWh)", r.BatteryUnits})
	}
	if r.BatteryCapacityKWh > 0 {
		tw.AppendRow(table.Row{"Battery capacity", fmt.Sprintf("%d kWh", r.BatteryCapacityKWh)})
	}
	tw.AppendSeparator()
	tw.AppendRow(table.Row{text.FgHiGreen.Sprint("Estimated cost"), fmt.Sprintf("PKR %d", r.EstimatedCost)})
	tw.Render()
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, text.FgRed.Sprint("error: ")+err.Error())
		os.Exit(1)
	}
}
