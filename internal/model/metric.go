package model

// Metric identifies one of the columns wc can print.
type Metric uint8

// Available metrics, in print order.
const (
	MetricLines Metric = 1 << iota
	MetricWords
	MetricBytes
)

// AllMetrics is the default selection when no flag is given.
const AllMetrics = Metrics(MetricLines | MetricWords | MetricBytes)

var metricOrder = []Metric{MetricLines, MetricWords, MetricBytes}

// String returns the column name of the metric.
func (mt Metric) String() string {
	switch mt {
	case MetricLines:
		return "lines"
	case MetricWords:
		return "words"
	case MetricBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// Metrics is the set of metrics selected for a run.
type Metrics uint8

// NewMetrics builds the selection from the -l, -w and -c flags.
// Selecting nothing selects everything.
func NewMetrics(lines, words, bytes bool) Metrics {
	var set Metrics
	if lines {
		set |= Metrics(MetricLines)
	}

	if words {
		set |= Metrics(MetricWords)
	}

	if bytes {
		set |= Metrics(MetricBytes)
	}

	if set == 0 {
		return AllMetrics
	}

	return set
}

// Has reports whether mt is part of the selection.
func (s Metrics) Has(mt Metric) bool {
	return s&Metrics(mt) != 0
}

// Ordered returns the selected metrics as lines, words, bytes.
func (s Metrics) Ordered() []Metric {
	selected := make([]Metric, 0, len(metricOrder))

	for _, mt := range metricOrder {
		if s.Has(mt) {
			selected = append(selected, mt)
		}
	}

	return selected
}
