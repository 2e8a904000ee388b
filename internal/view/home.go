package view

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/osse101/GrapeChallenge_Web/internal/content"
	"github.com/osse101/GrapeChallenge_Web/internal/domain"
	"github.com/osse101/GrapeChallenge_Web/internal/growth"
	"github.com/osse101/GrapeChallenge_Web/internal/home"
)

// HomeView is the body of the home page
type HomeView struct {
	StageText  string
	Image      string
	Progress   float64
	Circle     float64
	RingOffset float64

	Cards []MissionCard

	// At most one modal is open
	Gratitude *GratitudeModal
	Bible     *BibleModal
}

// GratitudeModal collects the diary text for the gratitude mission
type GratitudeModal struct {
	MissionName string
	Content     string
	CharCount   int
	MaxLength   int
	Action      string
	CloseHref   string
}

// BibleModal shows today's verse with a read confirmation
type BibleModal struct {
	MissionName string
	Verse       home.Verse
	Action      string
	CloseHref   string
}

// HomeModal is the modal requested for the home page. Draft is the text to
// restore after a failed submission; Verse is required for the bible modal.
type HomeModal struct {
	Name  string
	Draft string
	Verse *home.Verse
}

// NewHomeView builds the home page from its state
func NewHomeView(st *home.State, cat *content.Catalog, modal HomeModal) *HomeView {
	v := &HomeView{
		StageText: fmt.Sprintf("%d단계", st.Stage.Level),
		Circle:    content.CircleCircumference,
	}
	if st.HasFruit() {
		v.Image = st.Image
		v.Progress = st.Progress
	}
	v.RingOffset = growth.ProgressCircleOffset(v.Progress)
	v.Cards = HomeCards(st, cat)

	if !st.HasFruit() || st.Harvestable() {
		return v
	}
	switch modal.Name {
	case ModalGratitude:
		if openable(st, cat.Missions.GratitudeDiary) {
			v.Gratitude = newGratitudeModal(cat.Missions.GratitudeDiary, modal.Draft)
		}
	case ModalBible:
		if openable(st, cat.Missions.BibleReading) && modal.Verse != nil {
			v.Bible = &BibleModal{
				MissionName: cat.Missions.BibleReading,
				Verse:       *modal.Verse,
				Action:      PathCompleteMission,
				CloseHref:   PathHome,
			}
		}
	}
	return v
}

// HomeCards lists the mission cards for st in display order
func HomeCards(st *home.State, cat *content.Catalog) []MissionCard {
	var cards []MissionCard
	switch {
	case !st.HasFruit():
		cards = append(cards, PlantSeedCard(st.SpecialSeed))
	case st.Harvestable():
		cards = append(cards, HarvestCard(st.Harvested, cat.Messages.HarvestComplete))
	default:
		if st.AllCompleted {
			cards = append(cards, AllCompleteCard(false))
		}
		for i := range st.Missions {
			cards = append(cards, DailyMissionCard(&st.Missions[i], cat.Missions))
		}
		if len(st.Missions) == 0 {
			cards = append(cards, DailyMissionCard(nil, cat.Missions))
		}
		if st.ShowTestMission {
			cards = append(cards, TestMissionCard())
		}
	}
	return staggered(cards, content.AnimationDelayStep)
}

func openable(st *home.State, name string) bool {
	m, ok := st.FindMission(name)
	return ok && m.Completable()
}

func newGratitudeModal(name, draft string) *GratitudeModal {
	return &GratitudeModal{
		MissionName: name,
		Content:     draft,
		CharCount:   utf8.RuneCountInString(draft),
		MaxLength:   content.MaxContentLength,
		Action:      PathCompleteMission,
		CloseHref:   PathHome,
	}
}

// ChristmasHomeView is the body of the event home page
type ChristmasHomeView struct {
	Cards []MissionCard
	Modal *EventModal
}

// EventModal collects the text for one event mission
type EventModal struct {
	MissionName string
	Description string
	Content     string
	CharCount   int
	MaxLength   int
	Action      string
	CloseHref   string
}

// NewChristmasHomeView builds the event home page. modal is a mission name.
func NewChristmasHomeView(st *home.EventState, modal, draft string) *ChristmasHomeView {
	v := &ChristmasHomeView{Cards: ChristmasCards(st)}
	if modal == "" {
		return v
	}
	m, ok := st.FindMission(modal)
	if !ok || !m.Completable() {
		return v
	}
	v.Modal = &EventModal{
		MissionName: m.Name,
		Description: m.Content,
		Content:     draft,
		CharCount:   utf8.RuneCountInString(draft),
		MaxLength:   content.MaxContentLength,
		Action:      PathCompleteEventMission,
		CloseHref:   PathChristmas,
	}
	return v
}

// ChristmasCards lists the event mission cards in display order
func ChristmasCards(st *home.EventState) []MissionCard {
	if st.Empty() {
		return []MissionCard{EmptyEventCard()}
	}
	var cards []MissionCard
	if st.AllCompleted {
		cards = append(cards, AllCompleteCard(true))
	}
	for _, m := range st.Missions {
		cards = append(cards, EventMissionCard(m))
	}
	return staggered(cards, content.AnimationDelayStep)
}

// roundPercent matches the whole-number progress shown next to a tree
func roundPercent(p float64) int {
	return int(math.Round(p))
}

// stageLabel is "<level>단계 · <name>"
func stageLabel(s domain.StageInfo) string {
	return fmt.Sprintf("%d단계 · %s", s.Level, s.Name)
}
