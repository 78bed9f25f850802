package benchreport

// SampleMetrics records the measured generation call for one image.
type SampleMetrics struct {
	Path           string  `json:"path"`
	LatencySeconds float64 `json:"latency_seconds"`
}

// Result is the aggregate outcome of one benchmark run. AvgTTFTSeconds
// approximates time-to-first-token with the whole generation call, so it
// always equals AvgLatencySeconds; true first-token latency is not
// measured. Accuracy is an exact-match fraction in [0, 1].
type Result struct {
	TimestampRFC3339 string `json:"timestamp_rfc3339"`
	ModelPath        string `json:"model_path"`
	ImageDir         string `json:"image_dir"`
	Device           string `json:"device"`
	OS               string `json:"os"`
	Arch             string `json:"arch"`
	CPUNumLogical    int    `json:"cpu_num_logical"`

	Images            int             `json:"images"`
	AvgTTFTSeconds    float64         `json:"avg_ttft_seconds"`
	AvgLatencySeconds float64         `json:"avg_latency_seconds"`
	Accuracy          float64         `json:"accuracy"`
	Samples           []SampleMetrics `json:"samples,omitempty"`
}
