package results

// chartTimeLayout is the display format for chart axis labels.
const chartTimeLayout = "Jan 2 15:04"

// ChartData is the minimal shape a time-series chart needs: parallel
// label/value sequences where index i in both refers to the same event.
type ChartData struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Chart projects a result set into chart form. An empty or failed set
// yields empty equal-length slices, never an error.
func Chart(set Set) ChartData {
	labels := make([]string, 0, len(set.Events))
	values := make([]float64, 0, len(set.Events))
	for _, e := range set.Events {
		labels = append(labels, e.Time.Format(chartTimeLayout))
		values = append(values, e.Magnitude)
	}
	return ChartData{Labels: labels, Values: values}
}
