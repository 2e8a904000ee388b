package view

import (
	"bytes"
	"html/template"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrapeChallenge_Web/internal/content"
	"github.com/osse101/GrapeChallenge_Web/internal/diary"
	"github.com/osse101/GrapeChallenge_Web/internal/domain"
	"github.com/osse101/GrapeChallenge_Web/internal/grove"
	"github.com/osse101/GrapeChallenge_Web/internal/home"
)

var testUser = domain.User{ID: "u-1", Cell: "포도셀", Name: "홍길동"}

func render(t *testing.T, name string, page *Page) *goquery.Document {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, name, page))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestNewRenderer_ParsesEveryPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	for _, name := range pages {
		assert.Contains(t, r.pages, name)
	}
}

func TestRender_UnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	err = r.Render(&bytes.Buffer{}, "nope", NewPublicPage("x", nil))
	assert.Error(t, err)
}

func TestRender_Home(t *testing.T) {
	cat := content.Default()
	st := &home.State{
		User:     testUser,
		Fruit:    &domain.Fruit{FruitID: "f-1", Status: domain.StatusThird, ThirdStatus: "https://cdn.example.com/sapling.png"},
		Missions: []domain.Mission{{Name: content.MissionBibleReading}, {Name: content.MissionGratitudeDiary}},
		Stage:    domain.StageInfo{Level: 3, Name: "묘목", Status: domain.StatusThird},
		Progress: 32.67,
		Image:    "https://cdn.example.com/sapling.png",
	}
	page := NewPage("홈", testUser, cat.InquiryURL, NewHomeView(st, cat, HomeModal{})).
		WithCSRF(template.HTML(`<input type="hidden" name="gorilla.csrf.Token" value="tok">`))

	doc := render(t, PageHome, page)

	assert.Equal(t, "3단계", doc.Find("#stage-text").Text())
	src, ok := doc.Find("#stage-emoji img").Attr("src")
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/sapling.png", src)

	cards := doc.Find("#mission-container .mission-card")
	require.Equal(t, 2, cards.Length())
	href, _ := cards.Eq(0).Find("a").Attr("href")
	assert.Equal(t, "/home?modal=bible", href)
	style, _ := cards.Eq(1).Attr("style")
	assert.Equal(t, "animation-delay: 0.10s", style)

	assert.Equal(t, 0, doc.Find("#gratitude-modal").Length())
	assert.Equal(t, 4, doc.Find("#mobile-menu a.-mx-3").Length(), "grove, diary and inquiry links plus logout")
}

func TestRender_HomeGratitudeModalKeepsDraft(t *testing.T) {
	cat := content.Default()
	st := &home.State{
		Fruit:    &domain.Fruit{FruitID: "f-1", Status: domain.StatusSecond},
		Missions: []domain.Mission{{Name: content.MissionGratitudeDiary}},
	}
	page := NewPage("홈", testUser, "", NewHomeView(st, cat, HomeModal{Name: ModalGratitude, Draft: "감사 <b>"})).
		WithAlert(cat.Messages.MinLengthError)

	doc := render(t, PageHome, page)

	assert.Equal(t, cat.Messages.MinLengthError, doc.Find("#page-alert").Text())
	modal := doc.Find("#gratitude-modal")
	require.Equal(t, 1, modal.Length())
	assert.Equal(t, "감사 <b>", modal.Find("textarea").Text())
	assert.Equal(t, "6", modal.Find("#gratitude-char-count").Text())
	name, _ := modal.Find(`input[name="name"]`).Attr("value")
	assert.Equal(t, content.MissionGratitudeDiary, name)
}

func TestRender_HomeBibleModal(t *testing.T) {
	cat := content.Default()
	st := &home.State{
		Fruit:    &domain.Fruit{FruitID: "f-1", Status: domain.StatusSecond},
		Missions: []domain.Mission{{Name: content.MissionBibleReading}},
	}

	t.Run("with verse", func(t *testing.T) {
		verse := &home.Verse{Reference: "시편 23:1", Content: "여호와는 나의 목자시니", Available: true}
		doc := render(t, PageHome, NewPage("홈", testUser, "", NewHomeView(st, cat, HomeModal{Name: ModalBible, Verse: verse})))

		assert.Equal(t, "시편 23:1", strings.TrimSpace(doc.Find("#bible-verse-content .text-orange-600").Text()))
		_, required := doc.Find("#bible-read-checkbox").Attr("required")
		assert.True(t, required)
	})

	t.Run("fallback message", func(t *testing.T) {
		verse := &home.Verse{Message: cat.Messages.BibleFallback}
		doc := render(t, PageHome, NewPage("홈", testUser, "", NewHomeView(st, cat, HomeModal{Name: ModalBible, Verse: verse})))

		assert.Equal(t, cat.Messages.BibleFallback, doc.Find("#bible-verse-content p.text-center").Text())
	})
}

func TestRender_HarvestRefresh(t *testing.T) {
	cat := content.Default()
	st := &home.State{Fruit: &domain.Fruit{FruitID: "f-1", Status: domain.StatusSeventh}, Harvested: true}
	page := NewPage("홈", testUser, "", NewHomeView(st, cat, HomeModal{})).WithRefresh(PathHome, 1.5)

	doc := render(t, PageHome, page)

	refresh, ok := doc.Find(`meta[http-equiv="refresh"]`).Attr("content")
	require.True(t, ok)
	assert.Equal(t, "1.5;url=/home", refresh)
	btn := doc.Find(".harvest-btn")
	assert.Equal(t, "수확 완료! 🎉", btn.Text())
	_, disabled := btn.Attr("disabled")
	assert.True(t, disabled)
}

func TestRender_Grove(t *testing.T) {
	kst := time.FixedZone("KST", 9*60*60)
	st := &grove.State{
		User: testUser,
		Mode: grove.ModeMine,
		Fruits: []domain.Fruit{
			{TemplateName: "포도", SeventhStatus: "🍇", Status: domain.StatusCompleted, UpdatedAt: "2025-11-02T09:00:00"},
			{Status: domain.StatusCompleted},
		},
		Current:         &domain.Fruit{FruitID: "f-9", Status: domain.StatusFourth, FourthStatus: "🌳"},
		CurrentStage:    domain.StageInfo{Level: 4, Name: "어린나무"},
		CurrentProgress: 49,
		CurrentImage:    "🌳",
		OtherCells:      []string{"사랑셀"},
		Total:           3,
	}

	doc := render(t, PageGrove, NewPage("과수원", testUser, "", NewGroveView(st, grove.LayoutGrid, kst)))

	assert.Equal(t, "나의 과수원", doc.Find("#grove-mode-text").Text())
	assert.Equal(t, "3", doc.Find("#grove-stats-text span").Text())
	tiles := doc.Find("#grid-view > div:not(#current-tree-card)")
	require.Equal(t, 2, tiles.Length())
	assert.Equal(t, "2025.11.02", tiles.Eq(0).Find("p.text-gray-600").Text())
	assert.Equal(t, "과일", tiles.Eq(1).Find("p.font-semibold").Text())
	assert.Equal(t, "🍎", tiles.Eq(1).Find("span.text-5xl").Text())
	assert.Equal(t, "49", doc.Find("#current-tree-progress").Text())
	assert.Equal(t, "4단계 · 어린나무", doc.Find("#current-tree-stage").Text())
	assert.Equal(t, 0, doc.Find("#basket-view").Length())

	cell := doc.Find(".cell-option")
	require.Equal(t, 1, cell.Length())
	href, _ := cell.Attr("href")
	assert.Equal(t, "/grove?cell=%EC%82%AC%EB%9E%91%EC%85%80&mode=other", href)

	gridClass, _ := doc.Find("#grid-btn").Attr("class")
	assert.Contains(t, gridClass, classToggleActive)
}

func TestRender_GroveBasketNoCells(t *testing.T) {
	st := &grove.State{Mode: grove.ModeOther, NoCells: true}
	doc := render(t, PageGrove, NewPage("과수원", testUser, "", NewGroveView(st, grove.LayoutBasket, time.UTC)))

	assert.Equal(t, "과수원", doc.Find("#grove-mode-text").Text())
	assert.Equal(t, noCellsText, doc.Find("#other-cells-container div").Text())
	assert.Equal(t, 1, doc.Find("#basket-view").Length())
	assert.Equal(t, 0, doc.Find("#grid-view").Length())
}

func TestRender_Diary(t *testing.T) {
	cat := content.Default()
	st := &diary.State{
		Entries: []diary.Entry{
			{
				Mission:   domain.Mission{ID: "m-1", Content: "오늘도 감사", UserName: "홍길동"},
				Reactions: []domain.ReactionCount{{Emoji: "🙏", Count: 2}, {Emoji: "👏", Count: 1}},
			},
			{Mission: domain.Mission{ID: "m-2"}},
		},
		Count: 2,
	}

	doc := render(t, PageDiary, NewPage("감사일기장", testUser, "", NewDiaryView(st, cat)))

	cards := doc.Find("#diary-list .diary-card")
	require.Equal(t, 2, cards.Length())
	assert.Equal(t, "홍길동의 감사일기", cards.Eq(0).Find("span.text-gray-500").Text())
	assert.Equal(t, "익명의 감사일기", cards.Eq(1).Find("span.text-gray-500").Text())
	assert.Equal(t, content.NoContentText, cards.Eq(1).Find("p.whitespace-pre-wrap").Text())
	assert.Equal(t, 2, cards.Eq(0).Find(".-space-x-1\\.5 > div").Length())
	assert.Equal(t, 5, cards.Eq(0).Find(".interaction-btn").Length())
	id, _ := cards.Eq(1).Find(`input[name="mission_id"]`).First().Attr("value")
	assert.Equal(t, "m-2", id)
	style, _ := cards.Eq(1).Attr("style")
	assert.Equal(t, "animation: fadeInUp 0.5s ease-out 0.05s forwards", style)
	assert.Equal(t, "2", doc.Find("#diary-stats-text span").Text())
	assert.Equal(t, 0, doc.Find("#diary-empty").Length())
}

func TestRender_DiaryEmpty(t *testing.T) {
	doc := render(t, PageDiary, NewPage("감사일기장", testUser, "", NewDiaryView(&diary.State{}, content.Default())))
	assert.Equal(t, 1, doc.Find("#diary-empty").Length())
	assert.Equal(t, "0", doc.Find("#diary-stats-text span").Text())
}

func TestRender_DiaryChristmas(t *testing.T) {
	cat := content.Default()
	st := &diary.State{
		Filter: content.ChristmasPrayer,
		Entries: []diary.Entry{
			{Mission: domain.Mission{ID: "p-1", Name: content.ChristmasPrayer, Content: "기다립니다"}, Badge: "bg-green-50 text-green-700"},
		},
		Count: 1,
	}
	page := NewPage("성탄절", testUser, "", NewChristmasDiaryView(st, cat)).WithTheme(ThemeChristmas)

	doc := render(t, PageDiaryChristmas, page)

	theme, _ := doc.Find("body").Attr("data-theme")
	assert.Equal(t, "christmas", theme)
	badge := doc.Find(".diary-card span.rounded-full")
	assert.Contains(t, badge.AttrOr("class", ""), "bg-green-50 text-green-700")
	assert.Equal(t, content.ChristmasPrayer, badge.Text())
	assert.Equal(t, "기도", doc.Find(`#diary-filter a[aria-current="page"]`).Text())
	assert.Equal(t, 3, doc.Find("#diary-filter a").Length())
	assert.Contains(t, doc.Find("#help-icon-btn").Parent().Text(), "이모티콘 두 개가 보여집니다.")
}

func TestRender_ChristmasHomeModal(t *testing.T) {
	st := &home.EventState{Missions: []domain.Mission{{Name: content.ChristmasQuestion, Content: "성탄의 의미는?"}}}
	page := NewPage("성탄절", testUser, "", NewChristmasHomeView(st, content.ChristmasQuestion, "")).WithTheme(ThemeChristmas)

	doc := render(t, PageHomeChristmas, page)

	assert.Equal(t, content.ChristmasQuestion, doc.Find("#mission-modal-title").Text())
	assert.Equal(t, "성탄의 의미는?", doc.Find("#mission-modal-description").Text())
	action, _ := doc.Find("#mission-modal form").Attr("action")
	assert.Equal(t, PathCompleteEventMission, action)
}

func TestRender_LoginHasNoSidebar(t *testing.T) {
	doc := render(t, PageLogin, NewPublicPage("로그인", &LoginView{Cell: "포도셀"}))

	assert.Equal(t, 0, doc.Find("#mobile-menu").Length())
	cell, _ := doc.Find("#cell").Attr("value")
	assert.Equal(t, "포도셀", cell)
}
