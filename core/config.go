// This file is part of Framepace.
//
// Framepace is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Framepace is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Framepace.  If not, see <https://www.gnu.org/licenses/>.

package core

import (
	"fmt"

	"github.com/jetsetilly/framepace/curated"
	"github.com/jetsetilly/framepace/prefs"
)

// ConfigInvalid is the pattern for the error returned when a configuration
// value is out of range.
const ConfigInvalid = "config: invalid value: %v"

// list of configuration options. the option names are passed to
// ReloadConfigOption()
const (
	OptionIdleOptimization = "idleOptimization"
	OptionVolume           = "volume"
	OptionFrameskip        = "frameskip"
)

// volume values. a volume of DefaultVolume is full volume. MaxVolume is twice
// full volume
const (
	DefaultVolume = 0x100
	MaxVolume     = 0x200
)

// list of valid values for the idleOptimization option
const (
	IdleIgnore = "ignore"
	IdleRemove = "remove"
	IdleDetect = "detect"
)

// Config is the configuration common to all machines.
type Config struct {
	IdleOptimization prefs.String
	Volume           prefs.Int
	Frameskip        prefs.Int
}

// NewConfig is the preferred method of initialisation for the Config type.
// The new Config contains the default values.
func NewConfig() *Config {
	cfg := &Config{}

	cfg.IdleOptimization.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case IdleIgnore, IdleRemove, IdleDetect:
			return nil
		}
		return curated.Errorf(ConfigInvalid, fmt.Sprintf("%s (%v)", OptionIdleOptimization, v))
	})

	cfg.Volume.SetHookPre(func(v prefs.Value) error {
		if n := v.(int); n < 0 || n > MaxVolume {
			return curated.Errorf(ConfigInvalid, fmt.Sprintf("%s (%v)", OptionVolume, v))
		}
		return nil
	})

	cfg.Frameskip.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf(ConfigInvalid, fmt.Sprintf("%s (%v)", OptionFrameskip, v))
		}
		return nil
	})

	cfg.SetDefaults()

	return cfg
}

// SetDefaults reverts all options to their default values.
func (cfg *Config) SetDefaults() {
	cfg.IdleOptimization.Set(IdleDetect)
	cfg.Volume.Set(DefaultVolume)
	cfg.Frameskip.Set(0)
}

// Set the named option. Returns a ConfigInvalid error if the option does not
// exist or the value is not valid for the option. The existing value is kept
// on error.
func (cfg *Config) Set(option string, value prefs.Value) error {
	switch option {
	case OptionIdleOptimization:
		return cfg.IdleOptimization.Set(value)
	case OptionVolume:
		return cfg.Volume.Set(value)
	case OptionFrameskip:
		return cfg.Frameskip.Set(value)
	}
	return curated.Errorf(ConfigInvalid, fmt.Sprintf("unknown option (%s)", option))
}

// VolumeLevel returns the volume as a fraction of full volume.
func (cfg *Config) VolumeLevel() float64 {
	return float64(cfg.Volume.Get().(int)) / DefaultVolume
}
