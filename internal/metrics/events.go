package metrics

import "time"

// RecordBackendCall counts one backend call and its latency
func RecordBackendCall(endpoint, outcome string, elapsed time.Duration) {
	BackendRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	BackendRequestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// RecordSeedPlanted counts a planted seed
func RecordSeedPlanted(special bool) {
	kind := KindNormal
	if special {
		kind = KindSpecial
	}
	SeedsPlanted.WithLabelValues(kind).Inc()
}

// RecordCacheLookup counts a cell cache hit or miss
func RecordCacheLookup(hit bool) {
	if hit {
		CellCacheLookups.WithLabelValues(ResultHit).Inc()
		return
	}
	CellCacheLookups.WithLabelValues(ResultMiss).Inc()
}

// RecordMissionCompleted counts a completed mission by name
func RecordMissionCompleted(name string) {
	MissionsCompleted.WithLabelValues(name).Inc()
}

// RecordHarvest counts a harvested fruit
func RecordHarvest() {
	FruitsHarvested.Inc()
}

// RecordReaction counts a reaction added to a diary entry
func RecordReaction(emoji string) {
	ReactionsAdded.WithLabelValues(emoji).Inc()
}

// RecordDuplicateSuppressed counts an action that shared an in-flight call
func RecordDuplicateSuppressed(action string) {
	DuplicateActionsSuppressed.WithLabelValues(action).Inc()
}

// RecordRateLimited counts a request rejected by the rate limiter
func RecordRateLimited() {
	HTTPRateLimited.Inc()
}
