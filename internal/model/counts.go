package model

// Counts holds the measurements of one source, or the running totals of a run.
type Counts struct {
	Lines int
	Words int
	Bytes int
}

// Add returns the element-wise sum of c and other.
func (c Counts) Add(other Counts) Counts {
	return Counts{
		Lines: c.Lines + other.Lines,
		Words: c.Words + other.Words,
		Bytes: c.Bytes + other.Bytes,
	}
}

// Value returns the count for a single metric.
func (c Counts) Value(mt Metric) int {
	switch mt {
	case MetricLines:
		return c.Lines
	case MetricWords:
		return c.Words
	case MetricBytes:
		return c.Bytes
	default:
		return 0
	}
}
