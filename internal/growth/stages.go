// Package growth derives display values from fruit growth stages.
package growth

import (
	"github.com/osse101/GrapeChallenge_Web/internal/content"
	"github.com/osse101/GrapeChallenge_Web/internal/domain"
)

// stageIndex returns the 0-based position of status in the stage table, or -1
func stageIndex(status domain.FruitStatus) int {
	for i, s := range content.Stages {
		if s.Status == status {
			return i
		}
	}
	return -1
}

// StageInfo returns the stage matching status, or the first stage for unknown codes
func StageInfo(status domain.FruitStatus) domain.StageInfo {
	if i := stageIndex(status); i >= 0 {
		return content.Stages[i]
	}
	return content.Stages[0]
}

// Progress maps a stage to 0..98 percent. The last 2% is left for the harvest itself.
func Progress(status domain.FruitStatus) float64 {
	i := stageIndex(status)
	if i < 0 {
		return 0
	}
	return float64(i) / float64(len(content.Stages)-1) * content.MaxProgress
}

// ProgressCircleOffset returns the SVG stroke-dashoffset for a progress ring
func ProgressCircleOffset(progress float64) float64 {
	return content.CircleCircumference - progress/100*content.CircleCircumference
}
