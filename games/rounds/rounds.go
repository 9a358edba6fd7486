/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Package rounds runs the game: it picks prompt words without repeats until
// the pool is exhausted, scores submitted drawings and keeps the running
// total.
package rounds

import "fmt"

// Canvas is the part of the drawing surface the manager relies on.
type Canvas interface {
	Clear()
	IsEmpty() bool
	ReadPixels() []byte
}

// Display receives everything the manager wants shown. How it is shown is
// up to the implementation.
type Display interface {
	// ShowWord refreshes the prompt; word is empty when no round is active.
	ShowWord(word string)
	ShowScore(score int)
	ShowResult(result Result)
	HideResult()
	// Notify tells the player about a blocking mistake such as
	// ErrNoActiveRound or ErrEmptyCanvas.
	Notify(err error)
}

// Result is what the player sees at the end of a round.
type Result struct {
	Evaluation
	Title string `json:"title"`
	Word  string `json:"word"`
}

type Config struct {
	Pool    *Pool
	Canvas  Canvas
	Display Display
	Random  Source
	Scorer  Scorer
}

// Manager owns round state. It is not safe for concurrent use.
type Manager struct {
	pool    *Pool
	canvas  Canvas
	display Display
	random  Source
	scorer  Scorer

	used    map[string]struct{}
	current string
	active  bool
	score   int
}

// New wires a manager. Pool, Random and Scorer are optional and default to
// DefaultPool, a clock-seeded Random and a RandomScorer over that source.
func New(cfg *Config) (*Manager, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Canvas == nil {
		return nil, ErrNilCanvas
	}
	if cfg.Display == nil {
		return nil, ErrNilDisplay
	}

	m := &Manager{
		pool:    cfg.Pool,
		canvas:  cfg.Canvas,
		display: cfg.Display,
		random:  cfg.Random,
		scorer:  cfg.Scorer,
		used:    make(map[string]struct{}),
	}

	if m.pool == nil {
		m.pool = DefaultPool()
	}
	if m.random == nil {
		m.random = NewRandom(nil)
	}
	if m.scorer == nil {
		m.scorer = NewRandomScorer(m.random)
	}

	return m, nil
}

// CurrentWord returns the active prompt, if any.
func (m *Manager) CurrentWord() (string, bool) {
	return m.current, m.active
}

func (m *Manager) Score() int {
	return m.score
}

// Used is the number of words drawn in the current exhaustion cycle.
func (m *Manager) Used() int {
	return len(m.used)
}

// SelectWord picks uniformly among the words not yet used this cycle. Once
// every word has been used the cycle starts over.
func (m *Manager) SelectWord() string {
	for {
		candidates := make([]string, 0, m.pool.Len())
		for _, word := range m.pool.words {
			if _, ok := m.used[word]; !ok {
				candidates = append(candidates, word)
			}
		}

		if len(candidates) == 0 {
			clear(m.used)
			continue
		}

		word := candidates[pick(m.random, len(candidates))]
		m.used[word] = struct{}{}

		return word
	}
}

// NextWord starts a round: a fresh word, a blank canvas and no result.
func (m *Manager) NextWord() string {
	m.current = m.SelectWord()
	m.active = true

	m.canvas.Clear()
	m.display.ShowWord(m.current)
	m.display.HideResult()

	return m.current
}

// SubmitAnswer scores the drawing. The returned error is one of
// ErrNoActiveRound or ErrEmptyCanvas; it has already been passed to
// Display.Notify and nothing else changed.
func (m *Manager) SubmitAnswer() (Evaluation, error) {
	if !m.active {
		m.display.Notify(ErrNoActiveRound)
		return Evaluation{}, ErrNoActiveRound
	}

	if m.canvas.IsEmpty() {
		m.display.Notify(ErrEmptyCanvas)
		return Evaluation{}, ErrEmptyCanvas
	}

	eval := m.scorer.Score(m.canvas.ReadPixels())

	m.score += eval.Points
	m.display.ShowScore(m.score)

	title := "Not quite"
	if eval.Success {
		title = "Well drawn!"
	}

	m.display.ShowResult(Result{
		Evaluation: eval,
		Title:      title,
		Word:       m.current,
	})

	return eval, nil
}

// SkipWord reveals the word for zero points without touching the score.
func (m *Manager) SkipWord() (Result, error) {
	if !m.active {
		m.display.Notify(ErrNoActiveRound)
		return Result{}, ErrNoActiveRound
	}

	result := Result{
		Evaluation: Evaluation{
			Success: false,
			Points:  0,
			Message: fmt.Sprintf("The word was %q.", m.current),
		},
		Title: "Skipped",
		Word:  m.current,
	}

	m.display.ShowResult(result)

	return result, nil
}
