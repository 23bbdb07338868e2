package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"banca-insights/internal/adapter/memory"
	"banca-insights/internal/adapter/usecase"
	"banca-insights/internal/dataset"
)

// dashboard renders the overview panel in the terminal: it generates the
// dataset from the given seed and prints the KPI block, per-segment
// demographics and the campaign ranking as tables.
func main() {
	seed := flag.Int64("seed", 42, "dataset generator seed")
	customers := flag.Int("customers", 1000, "number of customer rows")
	flag.Parse()

	custs, metrics := dataset.Generate(*seed, *customers)
	svc := usecase.NewAnalyticsService(memory.NewDatasetRepository(custs, metrics))

	ov, err := svc.Overview(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "overview: %v\n", err)
		os.Exit(1)
	}

	kpi := table.NewWriter()
	kpi.SetOutputMirror(os.Stdout)
	kpi.SetStyle(table.StyleLight)
	kpi.SetTitle("Executive Summary")
	kpi.AppendHeader(table.Row{"Metric", "Value"})
	kpi.AppendRow(table.Row{"Total Customers", ov.TotalCustomers})
	kpi.AppendRow(table.Row{"Eligible Customers", ov.EligibleCustomers})
	kpi.AppendRow(table.Row{"Average Balance", fmt.Sprintf("%.2f", ov.AverageBalance)})
	kpi.AppendRow(table.Row{"Total Revenue", fmt.Sprintf("%.2f", ov.TotalRevenue)})
	kpi.AppendRow(table.Row{"Avg Conversion Rate", fmt.Sprintf("%.1f%%", ov.AverageConversionRate*100)})
	kpi.Render()

	demo := table.NewWriter()
	demo.SetOutputMirror(os.Stdout)
	demo.SetStyle(table.StyleLight)
	demo.SetTitle("Customer Demographics")
	demo.AppendHeader(table.Row{"Segment", "Customers", "Mean Age", "Mean Balance", "Mean Products"})
	for _, d := range ov.Demographics {
		demo.AppendRow(table.Row{
			d.Segment,
			d.Count,
			fmt.Sprintf("%.1f", d.MeanAge),
			fmt.Sprintf("%.2f", d.MeanBalance),
			fmt.Sprintf("%.1f", d.MeanProducts),
		})
	}
	demo.Render()

	perf := table.NewWriter()
	perf.SetOutputMirror(os.Stdout)
	perf.SetStyle(table.StyleLight)
	perf.SetTitle("Campaign Performance")
	perf.AppendHeader(table.Row{"Campaign", "Mean Conversion"})
	for _, rank := range ov.CampaignPerformance {
		perf.AppendRow(table.Row{rank.CampaignName, fmt.Sprintf("%.1f%%", rank.Value*100)})
	}
	perf.Render()
}
