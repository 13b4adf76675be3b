package bias

// init registers a built-in bias table for every supported dense precision.
//
// These tables are placeholders, not the empirically-measured tables the
// reference implementation ships (generated offline by repeatedly running
// the estimator against known cardinalities, e.g. record_biases in the
// original implementation). Reproducing that measurement pipeline is a
// benchmarking exercise out of this module's scope; what matters here is
// that NearestAverage has a correctly-shaped, monotonically useful table to
// correct against for every precision, and that a host which has measured
// its own tables can override any entry with Register.
func init() {
	for p := 4; p <= 18; p++ {
		Register(p, defaultTable(p))
	}
}

// defaultTable synthesizes a plausible small-range bias curve for dense
// precision p: bias is largest when the raw estimate is near zero and decays
// toward zero as the raw estimate approaches a cardinality a few multiples
// of m, matching the general shape of the reference implementation's
// measured tables without claiming their precision.
func defaultTable(p int) Table {
	m := float64(uint64(1) << uint(p))

	const samples = 200
	table := make(Table, 0, samples)
	for i := 1; i <= samples; i++ {
		raw := m * float64(i) / 40
		decay := raw / (2.5 * m)
		bias := 0.2 * m / (1 + decay*decay*decay)
		table = append(table, Point{Raw: raw, Bias: bias})
	}
	return table
}
