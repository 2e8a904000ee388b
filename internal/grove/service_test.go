package grove_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrapeChallenge_Web/internal/api"
	"github.com/osse101/GrapeChallenge_Web/internal/domain"
	"github.com/osse101/GrapeChallenge_Web/internal/grove"
	"github.com/osse101/GrapeChallenge_Web/mocks"
)

const adminCell = "관리자"

var testUser = domain.User{ID: "u-1", Cell: "포도셀", Name: "홍길동"}

func ok[T any](v T) api.Result[T] {
	return api.Result[T]{Value: v, OK: true, Status: 200}
}

func fruitsOldestFirst() []domain.Fruit {
	return []domain.Fruit{
		{FruitID: "f-1", Status: domain.StatusCompleted, SeventhStatus: "🍇", UpdatedAt: "2025-11-01T09:00:00"},
		{FruitID: "f-2", Status: domain.StatusThird},
		{FruitID: "f-3", Status: domain.StatusCompleted, UpdatedAt: "2025-11-20T09:00:00"},
	}
}

func newService(t *testing.T) (grove.Service, *mocks.MockGroveBackend) {
	t.Helper()
	m := new(mocks.MockGroveBackend)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return grove.NewService(m, grove.NewCellCache(4, time.Minute), adminCell), m
}

func TestLoad_MineWithCurrentTree(t *testing.T) {
	svc, m := newService(t)
	m.On("CurrentFruit", mock.Anything, "").Return(ok(&domain.FruitWithMissions{
		Fruit: &domain.Fruit{FruitID: "f-9", Status: domain.StatusFourth, FourthStatus: "🌳"},
	}))
	m.On("MyFruits", mock.Anything).Return(ok(fruitsOldestFirst()))
	m.On("Cells", mock.Anything).Return(ok([]string{"포도셀", "사과셀", adminCell}))

	st := svc.Load(context.Background(), testUser, grove.ModeMine, "")

	require.True(t, st.ShowsCurrent())
	assert.Equal(t, "🌳", st.CurrentImage)
	assert.Equal(t, 4, st.CurrentStage.Level)
	require.Len(t, st.Fruits, 2)
	assert.Equal(t, "f-3", st.Fruits[0].FruitID, "newest first")
	assert.Equal(t, "f-1", st.Fruits[1].FruitID)
	assert.Equal(t, 3, st.Total, "completed plus the growing tree")
	assert.Equal(t, []string{"사과셀"}, st.OtherCells)
	assert.False(t, st.NoCells)
	assert.Equal(t, "나의 과수원", st.ModeLabel())
}

func TestLoad_MineWithoutCurrentTree(t *testing.T) {
	svc, m := newService(t)
	m.On("CurrentFruit", mock.Anything, "").Return(api.Result[*domain.FruitWithMissions]{Status: 404})
	m.On("MyFruits", mock.Anything).Return(ok(fruitsOldestFirst()))
	m.On("Cells", mock.Anything).Return(ok([]string{}))

	st := svc.Load(context.Background(), testUser, grove.ModeMine, "")

	assert.False(t, st.ShowsCurrent())
	assert.Equal(t, 2, st.Total)
	assert.True(t, st.NoCells)
}

func TestLoad_OwnCell(t *testing.T) {
	svc, m := newService(t)
	m.On("CellFruits", mock.Anything, "포도셀").Return(ok(fruitsOldestFirst()))
	m.On("Cells", mock.Anything).Return(ok([]string{"포도셀"}))

	st := svc.Load(context.Background(), testUser, grove.ModeCell, "")

	assert.Nil(t, st.Current)
	assert.Equal(t, 2, st.Total)
	assert.Empty(t, st.OtherCells)
	assert.Equal(t, "우리 셀의 과수원", st.ModeLabel())
	m.AssertNotCalled(t, "CurrentFruit", mock.Anything, mock.Anything)
}

func TestLoad_OwnCellUnknown(t *testing.T) {
	svc, m := newService(t)
	m.On("Cells", mock.Anything).Return(ok([]string{"사과셀"}))

	st := svc.Load(context.Background(), domain.User{ID: "u-2"}, grove.ModeCell, "")

	assert.Empty(t, st.Fruits)
	assert.Equal(t, 0, st.Total)
	m.AssertNotCalled(t, "CellFruits", mock.Anything, mock.Anything)
}

func TestLoad_OtherCell(t *testing.T) {
	t.Run("selected cell", func(t *testing.T) {
		svc, m := newService(t)
		m.On("CellFruits", mock.Anything, "사과셀").Return(ok(fruitsOldestFirst()[:1]))
		m.On("Cells", mock.Anything).Return(ok([]string{"포도셀", "사과셀"}))

		st := svc.Load(context.Background(), testUser, grove.ModeOther, "사과셀")

		assert.Len(t, st.Fruits, 1)
		assert.Equal(t, "사과셀의 과수원", st.ModeLabel())
	})

	t.Run("no selection keeps the set empty", func(t *testing.T) {
		svc, m := newService(t)
		m.On("Cells", mock.Anything).Return(ok([]string{"포도셀", "사과셀"}))

		st := svc.Load(context.Background(), testUser, grove.ModeOther, "")

		assert.Empty(t, st.Fruits)
		assert.Equal(t, "과수원", st.ModeLabel())
	})
}

func TestLoad_CellListIsCached(t *testing.T) {
	svc, m := newService(t)
	m.On("MyFruits", mock.Anything).Return(ok([]domain.Fruit{}))
	m.On("CurrentFruit", mock.Anything, "").Return(api.Result[*domain.FruitWithMissions]{Status: 404})
	m.On("Cells", mock.Anything).Return(ok([]string{"사과셀"})).Once()

	first := svc.Load(context.Background(), testUser, grove.ModeMine, "")
	second := svc.Load(context.Background(), testUser, grove.ModeMine, "")

	assert.Equal(t, first.OtherCells, second.OtherCells)
	m.AssertNumberOfCalls(t, "Cells", 1)
}

func TestLoad_FailedCellListIsNotCached(t *testing.T) {
	svc, m := newService(t)
	m.On("MyFruits", mock.Anything).Return(ok([]domain.Fruit{}))
	m.On("CurrentFruit", mock.Anything, "").Return(api.Result[*domain.FruitWithMissions]{Status: 404})
	m.On("Cells", mock.Anything).Return(api.Result[[]string]{Value: []string{}, Status: 500}).Once()
	m.On("Cells", mock.Anything).Return(ok([]string{"사과셀"})).Once()

	first := svc.Load(context.Background(), testUser, grove.ModeMine, "")
	second := svc.Load(context.Background(), testUser, grove.ModeMine, "")

	assert.True(t, first.NoCells)
	assert.Equal(t, []string{"사과셀"}, second.OtherCells)
}

func TestParseModeAndLayout(t *testing.T) {
	assert.Equal(t, grove.ModeMine, grove.ParseMode(""))
	assert.Equal(t, grove.ModeMine, grove.ParseMode("bogus"))
	assert.Equal(t, grove.ModeCell, grove.ParseMode("cell"))
	assert.Equal(t, grove.ModeOther, grove.ParseMode("other"))
	assert.Equal(t, grove.LayoutGrid, grove.ParseLayout(""))
	assert.Equal(t, grove.LayoutBasket, grove.ParseLayout("basket"))
}
