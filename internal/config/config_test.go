package config

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/rpt2ogd77/rpt2ogd77/internal/channel"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		home     int
		skip     []int
		expected error
	}{
		{"no districts", NoDistrict, nil, nil},
		{"valid home", 3, nil, nil},
		{"home district zero", 0, nil, nil},
		{"valid skip list", NoDistrict, []int{0, 7}, nil},
		{"invalid home", 8, nil, ErrInvalidDistrict},
		{"invalid skip", NoDistrict, []int{1, 9}, ErrInvalidDistrict},
		{"home and skip", 3, []int{4}, ErrHomeAndSkip},
	}

	for _, tst := range tests {
		t.Run(tst.name, func(t *testing.T) {
			assert := require.New(t)

			c := Defaults()
			c.Input.Filename = "repeaters.csv"
			c.Skip.Home = tst.home
			c.Skip.Districts = tst.skip

			err := c.Validate()
			if tst.expected == nil {
				assert.NoError(err)
				return
			}
			assert.Equal(tst.expected, errors.Cause(err))
		})
	}

	t.Run("zone capacity", func(t *testing.T) {
		tests := []struct {
			capacity int
			expected error
		}{
			{0, nil},
			{1, nil},
			{40, nil},
			{80, nil},
			{81, ErrInvalidCapacity},
			{90, ErrInvalidCapacity},
			{-1, ErrInvalidCapacity},
		}

		for _, tst := range tests {
			assert := require.New(t)

			c := Defaults()
			c.Input.Filename = "repeaters.csv"
			c.Zones.Capacity = tst.capacity

			err := c.Validate()
			if tst.expected == nil {
				assert.NoError(err, "capacity %d", tst.capacity)
				continue
			}
			assert.Equal(tst.expected, errors.Cause(err), "capacity %d", tst.capacity)
		}
	})

	t.Run("missing input", func(t *testing.T) {
		assert := require.New(t)
		assert.Equal(ErrNoInput, Defaults().Validate())
	})
}

func TestDeriverSettings(t *testing.T) {
	assert := require.New(t)

	c := Defaults()
	s := c.DeriverSettings()
	assert.Equal(channel.NoDistrict, s.HomeDistrict)
	assert.Equal([]channel.Abbreviation{{From: "Upplands ", To: "U."}}, s.CityAbbreviations)
	assert.Equal([]string{"BM", "Brandmeister"}, s.NetworkAliases)

	c.Skip.Home = 5
	assert.Equal(5, c.DeriverSettings().HomeDistrict)
}
