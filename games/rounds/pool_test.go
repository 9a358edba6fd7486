/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package rounds_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Seednode/sketchbox/games/rounds"
)

func TestNewPoolOrdersTiers(t *testing.T) {
	p, err := rounds.NewPool(
		rounds.Tier{Name: "animals", Words: []string{"猫", "狗"}},
		rounds.Tier{Name: rounds.TierHard, Words: []string{"潜水艇"}},
		rounds.Tier{Name: rounds.TierEasy, Words: []string{" 太阳 ", "月亮"}},
		rounds.Tier{Name: "empty"},
		rounds.Tier{Name: rounds.TierMedium, Words: []string{"火箭"}},
	)
	require.NoError(t, err)

	want := []string{"太阳", "月亮", "火箭", "潜水艇", "猫", "狗"}
	if diff := cmp.Diff(want, p.Words()); diff != "" {
		t.Errorf("Words() mismatch (-want +got):\n%s", diff)
	}

	names := []string{}
	for _, tier := range p.Tiers() {
		names = append(names, tier.Name)
	}
	assert.Equal(t, []string{rounds.TierEasy, rounds.TierMedium, rounds.TierHard, "animals"}, names)
	assert.Equal(t, 6, p.Len())
	assert.True(t, p.Contains("狗"))
	assert.False(t, p.Contains("鱼"))
}

func TestNewPoolRejects(t *testing.T) {
	tests := []struct {
		name  string
		tiers []rounds.Tier
		want  error
	}{
		{
			name: "nothing",
			want: rounds.ErrEmptyPool,
		},
		{
			name:  "only empty tiers",
			tiers: []rounds.Tier{{Name: rounds.TierEasy}},
			want:  rounds.ErrEmptyPool,
		},
		{
			name:  "blank word",
			tiers: []rounds.Tier{{Name: rounds.TierEasy, Words: []string{"猫", "  "}}},
			want:  rounds.ErrEmptyWord,
		},
		{
			name:  "duplicate within a tier",
			tiers: []rounds.Tier{{Name: rounds.TierEasy, Words: []string{"猫", "猫"}}},
			want:  rounds.ErrDuplicateWord,
		},
		{
			name: "duplicate across tiers",
			tiers: []rounds.Tier{
				{Name: rounds.TierEasy, Words: []string{"鱼"}},
				{Name: rounds.TierHard, Words: []string{"鱼"}},
			},
			want: rounds.ErrDuplicateWord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rounds.NewPool(tt.tiers...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPoolAccessorsCopy(t *testing.T) {
	p := rounds.DefaultPool()

	words := p.Words()
	words[0] = "changed"
	assert.NotEqual(t, "changed", p.Words()[0])

	tiers := p.Tiers()
	tiers[0].Words[0] = "changed"
	assert.NotEqual(t, "changed", p.Tiers()[0].Words[0])
}

func TestDefaultPool(t *testing.T) {
	p := rounds.DefaultPool()

	assert.Len(t, p.Tiers(), 3)
	assert.Equal(t, 30, p.Len())
	assert.True(t, p.Contains("太阳"))
	assert.True(t, p.Contains("月亮"))
}
