/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/Seednode/sketchbox/games/rounds"
)

// loadWordPool reads a tiers map from a yaml, json or toml file, e.g.
//
//	tiers:
//	  easy: [太阳, 月亮]
//	  hard: [潜水艇]
//
// An empty path selects the built-in pool.
func loadWordPool(path string) (*rounds.Pool, error) {
	if path == "" {
		return rounds.DefaultPool(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading word pool %s: %w", path, err)
	}

	raw := v.GetStringMapStringSlice("tiers")

	tiers := make([]rounds.Tier, 0, len(raw))
	for name, words := range raw {
		tiers = append(tiers, rounds.Tier{Name: name, Words: words})
	}

	pool, err := rounds.NewPool(tiers...)
	if err != nil {
		return nil, fmt.Errorf("word pool %s: %w", path, err)
	}

	return pool, nil
}
