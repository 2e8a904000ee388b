package view

import (
	"github.com/osse101/GrapeChallenge_Web/internal/content"
	"github.com/osse101/GrapeChallenge_Web/internal/domain"
)

// CardKind selects the mission card layout
type CardKind string

// Mission card kinds
const (
	CardPlantSeed   CardKind = "plant_seed"
	CardAllComplete CardKind = "all_complete"
	CardHarvest     CardKind = "harvest"
	CardMission     CardKind = "mission"
	CardTest        CardKind = "test"
	CardEmpty       CardKind = "empty"
)

// Field is a hidden form input
type Field struct {
	Name  string
	Value string
}

// Button is a card action. Href renders a link that opens a modal,
// Action renders a POST form; a disabled button renders neither.
type Button struct {
	Label       string
	Class       string
	Disabled    bool
	Href        string
	Action      string
	Fields      []Field
	MissionName string
}

// MissionCard is one card in the home mission list
type MissionCard struct {
	Kind        CardKind
	Class       string
	Icon        string
	Title       string
	Description string
	Badge       string
	Note        string
	Button      *Button
	Delay       float64
}

// Card classes
const (
	classPlantSpecial    = "relative rounded-xl bg-gradient-to-br from-yellow-50 via-orange-50 to-red-50 px-7 py-5 shadow-lg outline outline-3 -outline-offset-1 outline-orange-400 animate-scale-in"
	classPlantNormal     = "relative rounded-xl bg-gradient-to-br from-green-50 to-emerald-50 px-7 py-5 shadow-sm outline outline-2 -outline-offset-1 outline-green-300 animate-scale-in"
	classPlantBtnSpecial = "plant-seed-btn rounded-lg bg-gradient-to-r from-orange-500 to-red-500 px-4 py-2 text-sm font-semibold text-white shadow-md hover:from-orange-600 hover:to-red-600 animate-pulse"
	classPlantBtnNormal  = "plant-seed-btn rounded-lg bg-green-600 px-4 py-2 text-sm font-semibold text-white shadow-xs hover:bg-green-500"

	classAllComplete      = "relative rounded-xl bg-gradient-to-br from-orange-50 to-amber-50 px-7 py-5 mb-3.5 shadow-sm outline outline-2 -outline-offset-1 outline-orange-300 animate-scale-in"
	classAllCompleteClear = "relative rounded-xl bg-white/20 backdrop-blur-sm px-7 py-5 mb-3.5 shadow-sm outline outline-2 -outline-offset-1 outline-white/40 animate-scale-in"

	classHarvest    = "relative rounded-xl bg-gradient-to-br from-yellow-50 to-orange-50 px-7 py-5 mb-3.5 shadow-sm outline outline-2 -outline-offset-1 outline-yellow-300 animate-scale-in"
	classHarvestBtn = "harvest-btn rounded-lg bg-yellow-600 px-4 py-2 text-sm font-semibold text-white shadow-xs hover:bg-yellow-500"

	classMission      = "relative rounded-xl bg-white px-7 py-5 mb-3.5 shadow-sm outline outline-1 -outline-offset-1 outline-gray-200 hover:outline-orange-200 animate-fade-in-up"
	classMissionClear = "relative rounded-xl bg-white/20 backdrop-blur-sm px-7 py-5 mb-3.5 shadow-sm outline outline-1 -outline-offset-1 outline-white/30 animate-fade-in-up"
	classMissionBtn   = "complete-mission-btn rounded-lg bg-orange-500 px-4 py-2 text-sm font-semibold text-white shadow-xs hover:bg-orange-400"
	classMissionDone  = "complete-mission-btn rounded-lg bg-orange-100 px-4 py-2 text-sm font-semibold text-orange-600 shadow-xs cursor-not-allowed"

	classTest    = "relative rounded-xl bg-gradient-to-br from-purple-50 to-pink-50 px-7 py-5 mb-3.5 shadow-sm outline outline-2 -outline-offset-1 outline-purple-300 animate-fade-in-up"
	classTestBtn = "test-mission-btn rounded-lg bg-purple-500 px-4 py-2 text-sm font-semibold text-white shadow-xs hover:bg-purple-400"

	classEmpty = "rounded-xl bg-white/20 backdrop-blur-sm px-7 py-5 shadow-sm ring-1 ring-white/30 animate-fade-in"
)

// Button labels
const (
	labelStart     = "시작하기"
	labelHarvest   = "수확하기"
	labelComplete  = "완료"
	labelCompleted = "완료됨"
)

// PlantSeedCard offers a new seed. special is the discovery variant shown
// when the next fruit will be an event fruit.
func PlantSeedCard(special bool) MissionCard {
	card := MissionCard{
		Kind:        CardPlantSeed,
		Class:       classPlantNormal,
		Icon:        "🌱",
		Title:       "새로운 씨앗 심기",
		Description: "새로운 씨앗을 심어보세요.",
		Button:      &Button{Label: labelStart, Class: classPlantBtnNormal, Action: PathPlant},
	}
	if special {
		card.Class = classPlantSpecial
		card.Icon = "🎁"
		card.Title = "탕이를 발견했어요!"
		card.Description = "탕이가 남긴 씨앗을 키워보세요."
		card.Button.Class = classPlantBtnSpecial
	}
	return card
}

// AllCompleteCard announces that today's missions are done.
// transparent is the variant used over the Christmas background.
func AllCompleteCard(transparent bool) MissionCard {
	class := classAllComplete
	if transparent {
		class = classAllCompleteClear
	}
	return MissionCard{
		Kind:        CardAllComplete,
		Class:       class,
		Icon:        "🎉",
		Title:       "오늘의 미션을 모두 완료했어요!",
		Description: "내일 또 새로운 미션으로 만나요",
	}
}

// HarvestCard is the only card of a fruit at its last stage. After a
// successful harvest doneLabel replaces the button text.
func HarvestCard(done bool, doneLabel string) MissionCard {
	btn := &Button{Label: labelHarvest, Class: classHarvestBtn, Action: PathHarvest}
	if done {
		btn.Label = doneLabel
		btn.Disabled = true
	}
	return MissionCard{
		Kind:        CardHarvest,
		Class:       classHarvest,
		Icon:        "🎉",
		Title:       "과일이 완성되었습니다!",
		Description: "수확하기 버튼을 눌러 과일을 수확하세요",
		Button:      btn,
	}
}

// DailyMissionCard shows one mission of the growing fruit. A nil mission is
// the default card. Missions needing a modal link to it instead of posting.
func DailyMissionCard(m *domain.Mission, names content.MissionNames) MissionCard {
	name := content.DefaultMissionName
	desc := content.DefaultMissionContent
	completable := true
	if m != nil {
		if m.Name != "" {
			name = m.Name
		}
		if m.Content != "" {
			desc = m.Content
		}
		completable = m.Completable()
	}

	btn := &Button{Label: labelComplete, Class: classMissionBtn, MissionName: name}
	switch {
	case !completable:
		btn.Label = labelCompleted
		btn.Class = classMissionDone
		btn.Disabled = true
	case name == names.GratitudeDiary:
		btn.Href = withQuery(PathHome, ParamModal, ModalGratitude)
	case name == names.BibleReading:
		btn.Href = withQuery(PathHome, ParamModal, ModalBible)
	default:
		btn.Action = PathCompleteMission
		btn.Fields = []Field{{Name: FieldName, Value: name}}
	}

	return MissionCard{
		Kind:        CardMission,
		Class:       classMission,
		Title:       name,
		Description: desc,
		Button:      btn,
	}
}

// TestMissionCard completes a stage without daily limits. Dev only.
func TestMissionCard() MissionCard {
	return MissionCard{
		Kind:        CardTest,
		Class:       classTest,
		Title:       "🧪 테스트 미션 (말씀 읽기)",
		Badge:       "TEST",
		Description: "테스트용 미션 - 제한 없이 반복 가능",
		Note:        "⚠️ 개발/테스트 전용 미션입니다",
		Button:      &Button{Label: labelComplete, Class: classTestBtn, Action: PathTestMission},
	}
}

// EventMissionCard shows a Christmas mission. Every event mission opens the
// free-text modal.
func EventMissionCard(m domain.Mission) MissionCard {
	card := DailyMissionCard(&m, content.MissionNames{})
	card.Class = classMissionClear
	if card.Button.Disabled {
		return card
	}
	card.Button.Action = ""
	card.Button.Fields = nil
	card.Button.Href = withQuery(PathChristmas, ParamModal, card.Title)
	return card
}

// EmptyEventCard replaces the list when there are no event missions today
func EmptyEventCard() MissionCard {
	return MissionCard{
		Kind:        CardEmpty,
		Class:       classEmpty,
		Description: "오늘의 미션이 없습니다.",
	}
}

// staggered assigns entrance delays in list order
func staggered(cards []MissionCard, step float64) []MissionCard {
	for i := range cards {
		cards[i].Delay = float64(i) * step
	}
	return cards
}
