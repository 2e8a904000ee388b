package growth

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/GrapeChallenge_Web/internal/domain"
)

func TestStageInfo(t *testing.T) {
	tests := []struct {
		status domain.FruitStatus
		want   domain.StageInfo
	}{
		{domain.StatusFirst, domain.StageInfo{Level: 1, Name: "씨앗", Status: domain.StatusFirst}},
		{domain.StatusSecond, domain.StageInfo{Level: 2, Name: "새싹", Status: domain.StatusSecond}},
		{domain.StatusThird, domain.StageInfo{Level: 3, Name: "묘목", Status: domain.StatusThird}},
		{domain.StatusFourth, domain.StageInfo{Level: 4, Name: "어린나무", Status: domain.StatusFourth}},
		{domain.StatusFifth, domain.StageInfo{Level: 5, Name: "큰나무", Status: domain.StatusFifth}},
		{domain.StatusSixth, domain.StageInfo{Level: 6, Name: "꽃", Status: domain.StatusSixth}},
		{domain.StatusSeventh, domain.StageInfo{Level: 7, Name: "열매", Status: domain.StatusSeventh}},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, StageInfo(tt.status)); diff != "" {
				t.Errorf("StageInfo(%s) mismatch (-want +got):\n%s", tt.status, diff)
			}
		})
	}
}

func TestStageInfo_UnknownFallsBackToFirst(t *testing.T) {
	for _, status := range []domain.FruitStatus{"", "EIGHTH_STATUS", domain.StatusCompleted, "first_status"} {
		got := StageInfo(status)
		assert.Equal(t, 1, got.Level, "status %q", status)
		assert.Equal(t, domain.StatusFirst, got.Status)
	}
}

func TestProgress(t *testing.T) {
	order := []domain.FruitStatus{
		domain.StatusFirst, domain.StatusSecond, domain.StatusThird, domain.StatusFourth,
		domain.StatusFifth, domain.StatusSixth, domain.StatusSeventh,
	}

	assert.Equal(t, 0.0, Progress(domain.StatusFirst))
	assert.Equal(t, 98.0, Progress(domain.StatusSeventh))

	prev := -1.0
	for _, s := range order {
		p := Progress(s)
		assert.GreaterOrEqual(t, p, prev, "progress must not decrease at %s", s)
		assert.LessOrEqual(t, p, 98.0)
		prev = p
	}

	assert.InDelta(t, 49.0, Progress(domain.StatusFourth), 1e-9)
	assert.Equal(t, 0.0, Progress("UNKNOWN"))
	assert.Equal(t, 0.0, Progress(domain.StatusCompleted))
}

func TestProgressCircleOffset(t *testing.T) {
	assert.InDelta(t, 534.07, ProgressCircleOffset(0), 1e-9)
	assert.InDelta(t, 0.0, ProgressCircleOffset(100), 1e-9)
	assert.InDelta(t, 534.07*0.02, ProgressCircleOffset(98), 1e-9)
}
