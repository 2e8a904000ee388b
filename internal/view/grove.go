package view

import (
	"fmt"
	"time"

	"github.com/osse101/GrapeChallenge_Web/internal/content"
	"github.com/osse101/GrapeChallenge_Web/internal/grove"
	"github.com/osse101/GrapeChallenge_Web/internal/growth"
)

// Toggle button classes
const (
	classToggleActive   = "bg-orange-100 text-orange-700"
	classToggleInactive = "text-gray-700 hover:bg-gray-100"
)

// Picker empty states
const (
	noCellsText      = "셀이 없습니다"
	noOtherCellsText = "다른 셀이 없습니다"
)

// GroveView is the body of the grove page
type GroveView struct {
	Title  string
	Layout grove.Layout

	Modes      []Option
	Cells      []Option
	CellsEmpty string

	GridHref       string
	BasketHref     string
	GridBtnClass   string
	BasketBtnClass string
	ShowGrid       bool
	ShowBasket     bool
	Current        *CurrentTree
	Fruits         []FruitTile
	Total          int
}

// Option is one entry of a dropdown menu
type Option struct {
	Label    string
	Href     string
	Selected bool
}

// CurrentTree is the in-progress fruit shown at the end of the gallery
type CurrentTree struct {
	Image      string
	Progress   int
	StageLabel string
	Title      string
}

// FruitTile is one harvested fruit
type FruitTile struct {
	Name  string
	Image string
	Date  string
	Title string
	Delay float64
}

// NewGroveView builds the grove page. loc renders the harvest dates.
func NewGroveView(st *grove.State, layout grove.Layout, loc *time.Location) *GroveView {
	v := &GroveView{
		Title:  st.ModeLabel(),
		Layout: layout,
		Total:  st.Total,
	}

	v.Modes = []Option{
		{Label: "나의 과수원", Href: groveHref(grove.ModeMine, "", layout), Selected: st.Mode == grove.ModeMine},
		{Label: "우리 셀의 과수원", Href: groveHref(grove.ModeCell, "", layout), Selected: st.Mode == grove.ModeCell},
	}
	for _, cell := range st.OtherCells {
		v.Cells = append(v.Cells, Option{
			Label:    grove.CellLabel(cell),
			Href:     groveHref(grove.ModeOther, cell, layout),
			Selected: st.Mode == grove.ModeOther && st.SelectedCell == cell,
		})
	}
	if len(v.Cells) == 0 {
		v.CellsEmpty = noOtherCellsText
		if st.NoCells {
			v.CellsEmpty = noCellsText
		}
	}

	v.GridHref = groveHref(st.Mode, st.SelectedCell, grove.LayoutGrid)
	v.BasketHref = groveHref(st.Mode, st.SelectedCell, grove.LayoutBasket)
	v.ShowGrid = layout != grove.LayoutBasket
	v.ShowBasket = !v.ShowGrid
	v.GridBtnClass, v.BasketBtnClass = classToggleActive, classToggleInactive
	if v.ShowBasket {
		v.GridBtnClass, v.BasketBtnClass = classToggleInactive, classToggleActive
	}

	for i := range st.Fruits {
		f := &st.Fruits[i]
		name := f.DisplayName()
		date := growth.FormatDate(f.UpdatedAt, loc)
		v.Fruits = append(v.Fruits, FruitTile{
			Name:  name,
			Image: growth.CompletedImage(f),
			Date:  date,
			Title: fmt.Sprintf("%s - %s", name, date),
			Delay: growth.AnimationDelay(i, content.AnimationDelayStep),
		})
	}

	if st.ShowsCurrent() {
		v.Current = &CurrentTree{
			Image:      st.CurrentImage,
			Progress:   roundPercent(st.CurrentProgress),
			StageLabel: stageLabel(st.CurrentStage),
			Title:      fmt.Sprintf("현재 나무 - %d단계 %s", st.CurrentStage.Level, st.CurrentStage.Name),
		}
	}
	return v
}

// groveHref links to a grove mode, keeping the current layout
func groveHref(mode grove.Mode, cell string, layout grove.Layout) string {
	l := string(layout)
	if layout == grove.LayoutGrid {
		l = ""
	}
	m := string(mode)
	if mode == grove.ModeMine {
		m = ""
	}
	return withQuery(PathGrove, ParamMode, m, ParamCell, cell, ParamView, l)
}
