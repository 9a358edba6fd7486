/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package rounds_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Seednode/sketchbox/games/canvas"
	"github.com/Seednode/sketchbox/games/rounds"
	"github.com/Seednode/sketchbox/games/rounds/mocks"
)

// sequence replays fixed draws, repeating the last one when exhausted.
type sequence struct {
	draws []float64
	next  int
}

func (s *sequence) Float64() float64 {
	v := s.draws[min(s.next, len(s.draws)-1)]
	s.next++
	return v
}

func mustPool(t *testing.T, words ...string) *rounds.Pool {
	t.Helper()

	p, err := rounds.NewPool(rounds.Tier{Name: rounds.TierEasy, Words: words})
	require.NoError(t, err)

	return p
}

type ManagerTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockCanvas  *mocks.MockCanvas
	mockDisplay *mocks.MockDisplay
	mockScorer  *mocks.MockScorer
	mockSource  *mocks.MockSource
}

func (s *ManagerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCanvas = mocks.NewMockCanvas(s.mockCtrl)
	s.mockDisplay = mocks.NewMockDisplay(s.mockCtrl)
	s.mockScorer = mocks.NewMockScorer(s.mockCtrl)
	s.mockSource = mocks.NewMockSource(s.mockCtrl)
}

func TestManagerTestSuite(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}

func (s *ManagerTestSuite) newManager(words ...string) *rounds.Manager {
	m, err := rounds.New(&rounds.Config{
		Pool:    mustPool(s.T(), words...),
		Canvas:  s.mockCanvas,
		Display: s.mockDisplay,
		Random:  s.mockSource,
		Scorer:  s.mockScorer,
	})
	s.Require().NoError(err)

	return m
}

func (s *ManagerTestSuite) expectNextWord(word string) {
	gomock.InOrder(
		s.mockCanvas.EXPECT().Clear(),
		s.mockDisplay.EXPECT().ShowWord(word),
		s.mockDisplay.EXPECT().HideResult(),
	)
}

func (s *ManagerTestSuite) TestNextWordExhaustsThenResets() {
	m := s.newManager("太阳", "月亮")
	s.mockSource.EXPECT().Float64().Return(0.0).AnyTimes()

	s.expectNextWord("太阳")
	s.expectNextWord("月亮")

	seen := map[string]bool{}
	seen[m.NextWord()] = true
	seen[m.NextWord()] = true

	s.Equal(map[string]bool{"太阳": true, "月亮": true}, seen)
	s.Equal(2, m.Used())

	s.expectNextWord("太阳")
	third := m.NextWord()

	s.Contains([]string{"太阳", "月亮"}, third)
	s.Equal(1, m.Used())

	word, ok := m.CurrentWord()
	s.True(ok)
	s.Equal(third, word)
}

func (s *ManagerTestSuite) TestSubmitWithoutRound() {
	m := s.newManager("猫")

	s.mockDisplay.EXPECT().Notify(rounds.ErrNoActiveRound)

	_, err := m.SubmitAnswer()
	s.ErrorIs(err, rounds.ErrNoActiveRound)
	s.Equal(0, m.Score())

	_, ok := m.CurrentWord()
	s.False(ok)
}

func (s *ManagerTestSuite) TestSkipWithoutRound() {
	m := s.newManager("猫")

	s.mockDisplay.EXPECT().Notify(rounds.ErrNoActiveRound)

	_, err := m.SkipWord()
	s.ErrorIs(err, rounds.ErrNoActiveRound)
	s.Equal(0, m.Score())
}

func (s *ManagerTestSuite) TestSubmitEmptyCanvas() {
	m := s.newManager("猫")
	s.mockSource.EXPECT().Float64().Return(0.5)
	s.expectNextWord("猫")
	m.NextWord()

	s.mockCanvas.EXPECT().IsEmpty().Return(true)
	s.mockDisplay.EXPECT().Notify(rounds.ErrEmptyCanvas)

	_, err := m.SubmitAnswer()
	s.ErrorIs(err, rounds.ErrEmptyCanvas)
	s.Equal(0, m.Score())
}

func (s *ManagerTestSuite) TestSubmitScoresDrawing() {
	m := s.newManager("猫")
	s.mockSource.EXPECT().Float64().Return(0.5)
	s.expectNextWord("猫")
	m.NextWord()

	pixels := []byte{0, 0, 0, 0xff}
	eval := rounds.Evaluation{Success: true, Points: 10, Message: "perfect"}

	gomock.InOrder(
		s.mockCanvas.EXPECT().IsEmpty().Return(false),
		s.mockCanvas.EXPECT().ReadPixels().Return(pixels),
		s.mockScorer.EXPECT().Score(pixels).Return(eval),
		s.mockDisplay.EXPECT().ShowScore(10),
		s.mockDisplay.EXPECT().ShowResult(rounds.Result{
			Evaluation: eval,
			Title:      "Well drawn!",
			Word:       "猫",
		}),
	)

	got, err := m.SubmitAnswer()
	s.NoError(err)
	s.Equal(eval, got)
	s.Equal(10, m.Score())
}

func (s *ManagerTestSuite) TestSubmitFailedDrawingTitle() {
	m := s.newManager("猫")
	s.mockSource.EXPECT().Float64().Return(0.0)
	s.expectNextWord("猫")
	m.NextWord()

	eval := rounds.Evaluation{Success: false, Points: 2, Message: "hmm"}

	s.mockCanvas.EXPECT().IsEmpty().Return(false)
	s.mockCanvas.EXPECT().ReadPixels().Return(nil)
	s.mockScorer.EXPECT().Score(gomock.Any()).Return(eval)
	s.mockDisplay.EXPECT().ShowScore(2)

	var shown rounds.Result
	s.mockDisplay.EXPECT().ShowResult(gomock.Any()).Do(func(r rounds.Result) {
		shown = r
	})

	_, err := m.SubmitAnswer()
	s.NoError(err)
	s.Equal("Not quite", shown.Title)
	s.False(shown.Success)
	s.Equal(2, m.Score())
}

func (s *ManagerTestSuite) TestScoreIsSumOfPoints() {
	m := s.newManager("猫")
	s.mockSource.EXPECT().Float64().Return(0.0)
	s.expectNextWord("猫")
	m.NextWord()

	points := []int{10, 7, 5, 2, 10}
	want := 0

	s.mockCanvas.EXPECT().IsEmpty().Return(false).Times(len(points))
	s.mockCanvas.EXPECT().ReadPixels().Return(nil).Times(len(points))
	s.mockDisplay.EXPECT().ShowResult(gomock.Any()).Times(len(points))

	for _, p := range points {
		want += p
		s.mockScorer.EXPECT().Score(gomock.Any()).Return(rounds.Evaluation{Success: p > 2, Points: p, Message: "x"})
		s.mockDisplay.EXPECT().ShowScore(want)

		_, err := m.SubmitAnswer()
		s.Require().NoError(err)
	}

	s.Equal(34, m.Score())
}

func (s *ManagerTestSuite) TestSkipRevealsWord() {
	m := s.newManager("鱼")
	s.mockSource.EXPECT().Float64().Return(0.0)
	s.expectNextWord("鱼")
	m.NextWord()

	var shown rounds.Result
	s.mockDisplay.EXPECT().ShowResult(gomock.Any()).Do(func(r rounds.Result) {
		shown = r
	})

	result, err := m.SkipWord()
	s.NoError(err)
	s.Equal(result, shown)

	s.Equal(`The word was "鱼".`, shown.Message)
	s.Equal("鱼", shown.Word)
	s.Equal(0, shown.Points)
	s.False(shown.Success)
	s.Equal(0, m.Score())
}

func TestNewValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mocks.NewMockCanvas(ctrl)
	d := mocks.NewMockDisplay(ctrl)

	_, err := rounds.New(nil)
	assert.ErrorIs(t, err, rounds.ErrNilConfig)

	_, err = rounds.New(&rounds.Config{Display: d})
	assert.ErrorIs(t, err, rounds.ErrNilCanvas)

	_, err = rounds.New(&rounds.Config{Canvas: c})
	assert.ErrorIs(t, err, rounds.ErrNilDisplay)

	m, err := rounds.New(&rounds.Config{Canvas: c, Display: d})
	require.NoError(t, err)
	assert.Equal(t, 0, m.Score())
	assert.Equal(t, 0, m.Used())
}

func TestSelectWordExhaustionCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	pool := rounds.DefaultPool()

	m, err := rounds.New(&rounds.Config{
		Pool:    pool,
		Canvas:  mocks.NewMockCanvas(ctrl),
		Display: mocks.NewMockDisplay(ctrl),
		Random:  rounds.NewRandom(&rounds.RandomConfig{Seed: 42}),
	})
	require.NoError(t, err)

	seen := make(map[string]bool, pool.Len())
	for range pool.Len() {
		word := m.SelectWord()
		assert.False(t, seen[word], "duplicate %q before exhaustion", word)
		seen[word] = true
	}

	assert.Len(t, seen, pool.Len())
	for _, word := range pool.Words() {
		assert.True(t, seen[word], "%q never surfaced", word)
	}
	assert.Equal(t, pool.Len(), m.Used())

	assert.True(t, pool.Contains(m.SelectWord()))
	assert.Equal(t, 1, m.Used())
}

func TestSelectWordSingleWordPool(t *testing.T) {
	ctrl := gomock.NewController(t)

	m, err := rounds.New(&rounds.Config{
		Pool:    mustPool(t, "猫"),
		Canvas:  mocks.NewMockCanvas(ctrl),
		Display: mocks.NewMockDisplay(ctrl),
		Random:  &sequence{draws: []float64{0.99}},
	})
	require.NoError(t, err)

	for range 5 {
		assert.Equal(t, "猫", m.SelectWord())
		assert.Equal(t, 1, m.Used())
	}
}

// recorder is a Display that keeps what it was asked to show.
type recorder struct {
	word    string
	score   int
	result  *rounds.Result
	notices []error
}

func (r *recorder) ShowWord(word string) { r.word = word }
func (r *recorder) ShowScore(score int) { r.score = score }
func (r *recorder) ShowResult(result rounds.Result) { r.result = &result }
func (r *recorder) HideResult() { r.result = nil }
func (r *recorder) Notify(err error) { r.notices = append(r.notices, err) }

func TestManagerWithSurface(t *testing.T) {
	surface := canvas.New(100, 100)
	display := &recorder{}

	m, err := rounds.New(&rounds.Config{
		Pool:    mustPool(t, "太阳", "月亮"),
		Canvas:  surface,
		Display: display,
		Random:  &sequence{draws: []float64{0, 0.9}},
	})
	require.NoError(t, err)

	_, err = m.SubmitAnswer()
	assert.ErrorIs(t, err, rounds.ErrNoActiveRound)
	assert.True(t, surface.IsEmpty(), "canvas untouched")

	word := m.NextWord()
	assert.Equal(t, "太阳", word)
	assert.Equal(t, "太阳", display.word)
	assert.Nil(t, display.result)

	_, err = m.SubmitAnswer()
	assert.ErrorIs(t, err, rounds.ErrEmptyCanvas)
	assert.Equal(t, []error{rounds.ErrNoActiveRound, rounds.ErrEmptyCanvas}, display.notices)

	bounds := canvas.Rect{Width: 100, Height: 100}
	surface.BeginStroke(canvas.MouseInput(10, 10, bounds))
	surface.ExtendStroke(canvas.MouseInput(90, 90, bounds))
	surface.EndStroke()

	eval, err := m.SubmitAnswer()
	require.NoError(t, err)
	assert.Equal(t, rounds.Outcomes[3], eval)
	assert.Equal(t, eval.Points, m.Score())
	assert.Equal(t, eval.Points, display.score)
	require.NotNil(t, display.result)
	assert.Equal(t, "太阳", display.result.Word)

	m.NextWord()
	assert.True(t, surface.IsEmpty(), "next word clears the canvas")
	assert.Nil(t, display.result)
}
