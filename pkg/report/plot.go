package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Sumatoshi-tech/deskfang/pkg/analysis"
)

// ChartsFile is the name of the generated HTML chart page.
const ChartsFile = "analysis_charts.html"

const (
	chartDirPerm = 0o750
	chartWidth   = "900px"
	chartHeight  = "500px"
	xAxisRotate  = 45
)

// WriteCharts renders bar charts of the brand and organization distributions
// into one HTML page under dir and returns the file path.
func WriteCharts(dir string, result *analysis.Analysis) (string, error) {
	mkErr := os.MkdirAll(dir, chartDirPerm)
	if mkErr != nil {
		return "", fmt.Errorf("create chart dir: %w", mkErr)
	}

	page := components.NewPage()
	page.SetLayout(components.PageCenterLayout)
	page.AddCharts(
		createCountBarChart("Tickets by Brand", result.Tickets.ByBrand),
		createCountBarChart("Users by Organization", result.Users.ByOrganization),
	)

	path := filepath.Join(dir, ChartsFile)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create chart file: %w", err)
	}
	defer file.Close()

	renderErr := page.Render(file)
	if renderErr != nil {
		return "", fmt.Errorf("render charts: %w", renderErr)
	}

	return path, nil
}

func createCountBarChart(title string, counts map[string]int) *charts.Bar {
	labels, data := sortedCounts(counts)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Rotate: xAxisRotate, Interval: "0"},
		}),
	)
	bar.SetXAxis(labels)

	barData := make([]opts.BarData, len(data))
	for i, v := range data {
		barData[i] = opts.BarData{Value: v}
	}

	bar.AddSeries("Count", barData)

	return bar
}

// sortedCounts orders a counter map by descending count, ties broken by key.
func sortedCounts(counts map[string]int) (labels []string, data []int) {
	type kv struct {
		k string
		v int
	}

	items := make([]kv, 0, len(counts))

	for k, v := range counts {
		items = append(items, kv{k, v})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].v != items[j].v {
			return items[i].v > items[j].v
		}

		return items[i].k < items[j].k
	})

	labels = make([]string, len(items))
	data = make([]int, len(items))

	for i, item := range items {
		labels[i] = item.k
		data[i] = item.v
	}

	return labels, data
}
