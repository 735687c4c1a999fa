package pursuit

import "github.com/katalvlaran/pillchase/cluster"

// Score rates a cluster candidate: bigger and closer is better.
func Score(nd cluster.NodeDistance, alpha float64) float64 {
	return float64(nd.Size) / (alpha * nd.Distance)
}

// Best returns the candidate with the highest score. Only a strictly greater
// score replaces the running maximum, which starts at zero, so earlier
// candidates win ties. ok is false when no candidate scores above zero.
func Best(candidates []cluster.NodeDistance, alpha float64) (best cluster.NodeDistance, score float64, ok bool) {
	var v float64
	for _, nd := range candidates {
		if v = Score(nd, alpha); score < v {
			best, score, ok = nd, v, true
		}
	}

	return best, score, ok
}
