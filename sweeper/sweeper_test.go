// SPDX-FileCopyrightText: 2026 Emberfall Interactive, LLC
// SPDX-License-Identifier: Apache-2.0

package sweeper

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/emberfall/engine-common/types"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestOptionsDefaults(t *testing.T) {
	assert := assert.New(t)

	for _, o := range []*Options{nil, new(Options)} {
		assert.Equal(DefaultInterval, o.interval())
		assert.NotNil(o.logger())
	}
}

func TestSub(t *testing.T) {
	assert := assert.New(t)
	assert.Nil(Sub(nil))

	v := viper.New()
	v.Set(SweeperKey+".interval", "10s")
	assert.NotNil(Sub(v))
}

func testFromViperNil(t *testing.T) {
	assert := assert.New(t)

	o, err := FromViper(nil)
	assert.NoError(err)
	assert.Equal(DefaultInterval, o.interval())
}

func testFromViperInterval(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		v = viper.New()
	)

	v.SetConfigType("json")
	require.NoError(v.ReadConfig(strings.NewReader(`{"sweeper": {"interval": "45s"}}`)))

	o, err := FromViper(Sub(v))
	require.NoError(err)
	assert.Equal(types.Duration(45*time.Second), o.Interval)
	assert.Equal(45*time.Second, o.interval())
}

func TestFromViper(t *testing.T) {
	t.Run("Nil", testFromViperNil)
	t.Run("Interval", testFromViperInterval)
}

func TestSweeper(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		core, logs = observer.New(zap.DebugLevel)

		waitGroup = new(sync.WaitGroup)
		shutdown  = make(chan struct{})
	)

	s := New(
		&Options{
			Interval: types.Duration(10 * time.Millisecond),
			Logger:   zap.New(core),
		},
		waitGroup,
		shutdown,
	)

	require.NotNil(s)

	// wait for at least one sweep to land
	deadline := time.Now().Add(5 * time.Second)
	for logs.FilterMessage("collection cycle").Len() == 0 {
		if time.Now().After(deadline) {
			require.FailNow("no collection cycle was logged")
		}

		time.Sleep(10 * time.Millisecond)
	}

	close(shutdown)

	done := make(chan struct{})
	go func() {
		defer close(done)
		waitGroup.Wait()
	}()

	select {
	case <-done:
		// passing
	case <-time.After(5 * time.Second):
		require.FailNow("the sweep loop did not exit on shutdown")
	}

	assert.Equal(1, logs.FilterMessage("sweeper started").Len())
}
