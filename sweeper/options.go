// SPDX-FileCopyrightText: 2026 Emberfall Interactive, LLC
// SPDX-License-Identifier: Apache-2.0

package sweeper

import (
	"time"

	"github.com/emberfall/engine-common/types"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

const (
	// SweeperKey is the Viper subkey under which sweeper configuration is
	// expected.  FromViper *does not* assume this key.
	SweeperKey = "sweeper"

	// DefaultInterval is used when no interval is configured.
	DefaultInterval = 5 * time.Minute
)

// Options is the configurable state for a Sweeper.
type Options struct {
	// Interval is the time between forced collection cycles.  If unset,
	// DefaultInterval is used.
	Interval types.Duration `json:"interval"`

	// Logger receives sweep diagnostics.  If unset, sallust.Default() is used.
	Logger *zap.Logger `json:"-"`
}

func (o *Options) interval() time.Duration {
	if o != nil && o.Interval > 0 {
		return time.Duration(o.Interval)
	}

	return DefaultInterval
}

func (o *Options) logger() *zap.Logger {
	if o != nil && o.Logger != nil {
		return o.Logger
	}

	return sallust.Default()
}

// Sub returns the standard child Viper, using SweeperKey, for this package.
// If passed nil, this function returns nil.
func Sub(v *viper.Viper) *viper.Viper {
	if v != nil {
		return v.Sub(SweeperKey)
	}

	return nil
}

// FromViper produces an Options from a (possibly nil) Viper instance.
// Callers should use FromViper(Sub(v)) if the standard subkey is desired.
func FromViper(v *viper.Viper) (*Options, error) {
	o := new(Options)
	if v != nil {
		err := v.Unmarshal(
			o,
			viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
				mapstructure.TextUnmarshallerHookFunc(),
				mapstructure.StringToTimeDurationHookFunc(),
			)),
		)

		if err != nil {
			return nil, err
		}
	}

	return o, nil
}
