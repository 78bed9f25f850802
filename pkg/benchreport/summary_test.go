package benchreport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSummaryFormat(t *testing.T) {
	res := Result{
		Images:            3,
		AvgTTFTSeconds:    0.125,
		AvgLatencySeconds: 0.125,
		Accuracy:          0.5,
	}

	var buf bytes.Buffer
	require.NoError(t, res.WriteSummary(&buf))

	want := "\n===== Benchmark Results =====\n" +
		"Images evaluated: 3\n" +
		"Avg TTFT: 0.1250 sec\n" +
		"Avg Latency: 0.1250 sec\n" +
		"Simple Accuracy: 50.00%\n"
	assert.Equal(t, want, buf.String())
}
