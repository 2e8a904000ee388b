package grove

import (
	"github.com/osse101/GrapeChallenge_Web/internal/domain"
)

// Mode selects whose harvested fruit the grove shows
type Mode string

// Grove modes
const (
	ModeMine  Mode = "mine"
	ModeCell  Mode = "cell"
	ModeOther Mode = "other"
)

// ParseMode maps a query value to a mode, defaulting to ModeMine
func ParseMode(v string) Mode {
	switch Mode(v) {
	case ModeCell, ModeOther:
		return Mode(v)
	default:
		return ModeMine
	}
}

// Layout is the gallery presentation
type Layout string

// Gallery layouts
const (
	LayoutGrid   Layout = "grid"
	LayoutBasket Layout = "basket"
)

// ParseLayout maps a query value to a layout, defaulting to LayoutGrid
func ParseLayout(v string) Layout {
	if Layout(v) == LayoutBasket {
		return LayoutBasket
	}
	return LayoutGrid
}

// Mode labels
const (
	labelMine   = "나의 과수원"
	labelCell   = "우리 셀의 과수원"
	labelGrove  = "과수원"
	suffixGrove = "의 과수원"
)

// State is one grove page
type State struct {
	User         domain.User
	Mode         Mode
	SelectedCell string

	// Current is the growing fruit, set only in ModeMine
	Current         *domain.Fruit
	CurrentStage    domain.StageInfo
	CurrentProgress float64
	CurrentImage    string

	// Fruits are the harvested fruits in scope, newest first
	Fruits []domain.Fruit

	// OtherCells feed the picker; NoCells is set when the backend has none at all
	OtherCells []string
	NoCells    bool

	Total int
}

// ModeLabel is the title of the mode dropdown
func (s *State) ModeLabel() string {
	switch s.Mode {
	case ModeCell:
		return labelCell
	case ModeOther:
		if s.SelectedCell == "" {
			return labelGrove
		}
		return CellLabel(s.SelectedCell)
	default:
		return labelMine
	}
}

// ShowsCurrent reports whether the growing fruit is part of the gallery
func (s *State) ShowsCurrent() bool {
	return s.Mode == ModeMine && s.Current != nil
}

// CellLabel names another cell's grove
func CellLabel(cell string) string {
	return cell + suffixGrove
}
