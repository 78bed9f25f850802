package benchreport

import (
	"fmt"
	"io"
)

// WriteSummary renders the human-readable report block. Field order and
// number formats are fixed; downstream tooling scrapes this output.
func (r Result) WriteSummary(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"\n===== Benchmark Results =====\n"+
			"Images evaluated: %d\n"+
			"Avg TTFT: %.4f sec\n"+
			"Avg Latency: %.4f sec\n"+
			"Simple Accuracy: %.2f%%\n",
		r.Images,
		r.AvgTTFTSeconds,
		r.AvgLatencySeconds,
		r.Accuracy*100,
	)

	return err
}
