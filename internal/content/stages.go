package content

import (
	"time"

	"github.com/osse101/GrapeChallenge_Web/internal/domain"
)

// Stages is the ordered growth-stage table
var Stages = []domain.StageInfo{
	{Level: 1, Name: "씨앗", Status: domain.StatusFirst},
	{Level: 2, Name: "새싹", Status: domain.StatusSecond},
	{Level: 3, Name: "묘목", Status: domain.StatusThird},
	{Level: 4, Name: "어린나무", Status: domain.StatusFourth},
	{Level: 5, Name: "큰나무", Status: domain.StatusFifth},
	{Level: 6, Name: "꽃", Status: domain.StatusSixth},
	{Level: 7, Name: "열매", Status: domain.StatusSeventh},
}

// UI timing and geometry
const (
	CircleCircumference  = 534.07
	MaxProgress          = 98.0
	AnimationDelayStep   = 0.1
	DiaryDelayStep       = 0.05
	HarvestCompleteDelay = 1500 * time.Millisecond
)

// Display fallbacks
const (
	SeedlingGlyph    = "🌱"
	CompletedGlyph   = "🍎"
	NoFruitStageText = "씨앗을 심어주세요"
	NoContentText    = "내용이 없습니다."
	AnonymousAuthor  = "익명"
)

// Daily mission card defaults when the backend sends no missions
const (
	DefaultMissionName    = "오늘의 미션"
	DefaultMissionContent = "말씀 한 장 읽기"
)

// Content length bounds for free-text missions, counted in characters
const (
	MinContentLength = 5
	MaxContentLength = 1000
)
