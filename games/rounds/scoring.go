/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package rounds

// Evaluation is the verdict on one drawing.
type Evaluation struct {
	Success bool   `json:"success"`
	Points  int    `json:"points"`
	Message string `json:"message"`
}

// Scorer judges a drawing from its RGBA pixels.
type Scorer interface {
	Score(pixels []byte) Evaluation
}

// Outcomes are the tiers RandomScorer chooses between.
var Outcomes = []Evaluation{
	{Success: true, Points: 10, Message: "Amazing! That is unmistakable."},
	{Success: true, Points: 7, Message: "Nice work, we got it."},
	{Success: true, Points: 5, Message: "Close enough, it counts."},
	{Success: false, Points: 2, Message: "Hard to tell what that is. Have a couple of points for trying."},
}

// RandomScorer stands in for real recognition: it ignores the pixels and
// picks one of Outcomes uniformly.
type RandomScorer struct {
	random Source
}

func NewRandomScorer(src Source) *RandomScorer {
	if src == nil {
		src = NewRandom(nil)
	}

	return &RandomScorer{random: src}
}

func (s *RandomScorer) Score(_ []byte) Evaluation {
	return Outcomes[pick(s.random, len(Outcomes))]
}
