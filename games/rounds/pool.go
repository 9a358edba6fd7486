/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package rounds

import (
	"fmt"
	"slices"
	"strings"
)

const (
	TierEasy   = "easy"
	TierMedium = "medium"
	TierHard   = "hard"
)

// Tier is a difficulty bucket. It only decides where a word comes from.
type Tier struct {
	Name  string
	Words []string
}

// Pool is an immutable, ordered set of unique prompt words.
type Pool struct {
	tiers []Tier
	words []string
}

// NewPool validates tiers and fixes their order: easy, medium and hard
// first, then any other names alphabetically. Words keep their order
// within a tier.
func NewPool(tiers ...Tier) (*Pool, error) {
	ordered := slices.Clone(tiers)
	slices.SortStableFunc(ordered, func(a, b Tier) int {
		ra, rb := tierRank(a.Name), tierRank(b.Name)
		if ra != rb {
			return ra - rb
		}
		return strings.Compare(a.Name, b.Name)
	})

	p := &Pool{}
	seen := make(map[string]string)

	for _, tier := range ordered {
		words := make([]string, 0, len(tier.Words))

		for _, word := range tier.Words {
			word = strings.TrimSpace(word)
			if word == "" {
				return nil, fmt.Errorf("%w: tier %q", ErrEmptyWord, tier.Name)
			}

			if other, ok := seen[word]; ok {
				return nil, fmt.Errorf("%w: %q in tiers %q and %q", ErrDuplicateWord, word, other, tier.Name)
			}
			seen[word] = tier.Name

			words = append(words, word)
		}

		if len(words) == 0 {
			continue
		}

		p.tiers = append(p.tiers, Tier{Name: tier.Name, Words: words})
		p.words = append(p.words, words...)
	}

	if len(p.words) == 0 {
		return nil, ErrEmptyPool
	}

	return p, nil
}

func tierRank(name string) int {
	switch name {
	case TierEasy:
		return 0
	case TierMedium:
		return 1
	case TierHard:
		return 2
	}

	return 3
}

// Len is the number of words across all tiers.
func (p *Pool) Len() int {
	return len(p.words)
}

// Words returns every word, tiers flattened in order.
func (p *Pool) Words() []string {
	return slices.Clone(p.words)
}

func (p *Pool) Tiers() []Tier {
	out := make([]Tier, 0, len(p.tiers))
	for _, t := range p.tiers {
		out = append(out, Tier{Name: t.Name, Words: slices.Clone(t.Words)})
	}

	return out
}

func (p *Pool) Contains(word string) bool {
	return slices.Contains(p.words, word)
}

// DefaultPool is the built-in word list.
func DefaultPool() *Pool {
	p, err := NewPool(
		Tier{Name: TierEasy, Words: []string{
			"太阳", "月亮", "猫", "鱼", "房子", "树", "花", "苹果", "星星", "雨伞",
		}},
		Tier{Name: TierMedium, Words: []string{
			"自行车", "蝴蝶", "长颈鹿", "城堡", "火箭", "钢琴", "灯塔", "蜗牛", "雪人", "眼镜",
		}},
		Tier{Name: TierHard, Words: []string{
			"过山车", "潜水艇", "风车", "望远镜", "恐龙", "热气球", "摩天轮", "机器人", "章鱼", "宇航员",
		}},
	)
	if err != nil {
		panic("rounds: invalid default pool: " + err.Error())
	}

	return p
}
