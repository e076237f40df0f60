package presenter

import (
	"prng-go/pkg/chartplotter"
)

func GenerateScatter(outputPath, title, yLabel string, values []float64, maxPoints int) error {
	return chartplotter.MakeScatterPlot(values, title, yLabel, outputPath, maxPoints)
}

func GenerateHistogram(outputPath, title string, intervals []float64, frequencies []int) error {
	return chartplotter.MakeHistogramPlot(intervals, frequencies, title, outputPath)
}
