package view

import (
	"github.com/osse101/GrapeChallenge_Web/internal/content"
	"github.com/osse101/GrapeChallenge_Web/internal/diary"
	"github.com/osse101/GrapeChallenge_Web/internal/domain"
	"github.com/osse101/GrapeChallenge_Web/internal/growth"
)

const (
	defaultEventMissionLabel = "미션"
	filterAllLabel           = "전체"
	authorSuffix             = "의 감사일기"
)

// DiaryView is the body of both diary pages
type DiaryView struct {
	Cards   []DiaryCard
	Count   int
	Empty   bool
	Palette []string

	// Filters is set on the Christmas diary only
	Filters []Option
}

// DiaryCard is one submission
type DiaryCard struct {
	MissionID   string
	MissionName string
	Badge       string
	Content     string
	Author      string
	Reactions   []domain.ReactionCount
	Delay       float64
}

// NewDiaryView builds the gratitude diary
func NewDiaryView(st *diary.State, cat *content.Catalog) *DiaryView {
	v := newDiaryView(st)
	v.Palette = cat.Reactions
	for i := range v.Cards {
		v.Cards[i].Author += authorSuffix
	}
	return v
}

// NewChristmasDiaryView builds the event diary with its mission filter
func NewChristmasDiaryView(st *diary.State, cat *content.Catalog) *DiaryView {
	v := newDiaryView(st)
	v.Filters = append(v.Filters, Option{
		Label:    filterAllLabel,
		Href:     PathDiaryChristmas,
		Selected: st.Filter == diary.FilterAll,
	})
	for _, m := range cat.ChristmasMissions {
		label := m.Label
		if label == "" {
			label = m.Name
		}
		v.Filters = append(v.Filters, Option{
			Label:    label,
			Href:     withQuery(PathDiaryChristmas, ParamFilter, m.Name),
			Selected: st.Filter == m.Name,
		})
	}
	for i := range v.Cards {
		if v.Cards[i].MissionName == "" {
			v.Cards[i].MissionName = defaultEventMissionLabel
		}
	}
	return v
}

func newDiaryView(st *diary.State) *DiaryView {
	v := &DiaryView{
		Count: st.Count,
		Empty: st.Empty(),
	}
	for i, e := range st.Entries {
		text := e.Mission.Content
		if text == "" {
			text = content.NoContentText
		}
		author := e.Mission.UserName
		if author == "" {
			author = content.AnonymousAuthor
		}
		v.Cards = append(v.Cards, DiaryCard{
			MissionID:   e.Mission.ID,
			MissionName: e.Mission.Name,
			Badge:       e.Badge,
			Content:     text,
			Author:      author,
			Reactions:   e.Reactions,
			Delay:       growth.AnimationDelay(i, content.DiaryDelayStep),
		})
	}
	return v
}
