// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"code.hybscloud.com/coop"
)

const (
	modeAll = "all"
	modeAny = "any"
)

type config struct {
	Capacity  int
	Repeat    []int
	Mode      string
	MaxRounds int
	Dump      bool
	LogLevel  string
	NoColor   bool
}

// loadConfig resolves flags, COOP_* environment variables and the config
// file into a validated config.
func loadConfig(v *viper.Viper) (config, error) {
	cfg := config{
		Capacity:  v.GetInt("capacity"),
		Repeat:    v.GetIntSlice("repeat"),
		Mode:      v.GetString("mode"),
		MaxRounds: v.GetInt("max-rounds"),
		Dump:      v.GetBool("dump"),
		LogLevel:  v.GetString("log-level"),
		NoColor:   v.GetBool("no-color"),
	}
	switch {
	case cfg.Capacity < coop.HeaderSize || cfg.Capacity > coop.MaxCapacity:
		return config{}, errors.Errorf("capacity %d out of range [%d, %d]", cfg.Capacity, coop.HeaderSize, coop.MaxCapacity)
	case len(cfg.Repeat) == 0:
		return config{}, errors.New("at least one repeat value is required")
	case cfg.Mode != modeAll && cfg.Mode != modeAny:
		return config{}, errors.Errorf("unknown mode %q (expected all or any)", cfg.Mode)
	case cfg.MaxRounds < 0:
		return config{}, errors.Errorf("max-rounds %d must not be negative", cfg.MaxRounds)
	}
	for _, r := range cfg.Repeat {
		if r < 0 || r > math.MaxUint8 {
			return config{}, errors.Errorf("repeat value %d out of range [0, %d]", r, math.MaxUint8)
		}
	}
	return cfg, nil
}
