// Package metrics exposes Prometheus collectors for the leaderboard pipeline.
package metrics

const namespace = "minerboard"

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func orUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
