package config

import (
	"testing"

	utils "github.com/minaorangina/phaseten/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Log("Given no environment")
		cfg, err := Load()

		t.Log("Then the defaults are used")
		utils.AssertNoError(t, err)
		assert.Equal(t, 2, cfg.Players)
		assert.Equal(t, 10, cfg.HandSize)
		assert.Equal(t, int64(0), cfg.Seed)
		assert.False(t, cfg.Debug)
		assert.Empty(t, cfg.Names)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("PHASETEN_PLAYERS", "3")
		t.Setenv("PHASETEN_NAMES", "Harry;Sally")
		t.Setenv("PHASETEN_SEED", "42")
		t.Setenv("PHASETEN_HAND_SIZE", "7")
		t.Setenv("PHASETEN_DEBUG", "true")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, Config{
			Players:  3,
			Names:    []string{"Harry", "Sally"},
			Seed:     42,
			HandSize: 7,
			Debug:    true,
		}, cfg)
		utils.AssertDeepEqual(t, cfg.PlayerNames(), []string{"Harry", "Sally", "Player 3"})
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		t.Setenv("PHASETEN_PLAYERS", "7")
		_, err := Load()
		assert.ErrorIs(t, err, ErrPlayerCount)
	})

	t.Run("malformed values are rejected", func(t *testing.T) {
		cases := []struct{ name, value string }{
			{"PHASETEN_SEED", "not-a-number"},
			{"PHASETEN_PLAYERS", "three"},
			{"PHASETEN_HAND_SIZE", "10.5"},
			{"PHASETEN_DEBUG", "sometimes"},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				t.Setenv(c.name, c.value)
				cfg, err := Load()
				utils.AssertErrored(t, err)
				assert.Equal(t, Config{}, cfg)
			})
		}
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want error
	}{
		{"ok", Default(), nil},
		{"one player", Config{Players: 1, HandSize: 10}, ErrPlayerCount},
		{"too many players", Config{Players: 7, HandSize: 10}, ErrPlayerCount},
		{"empty hand", Config{Players: 2, HandSize: 0}, ErrHandSize},
		{"huge hand", Config{Players: 6, HandSize: 17}, ErrHandSize},
		{"too many names", Config{Players: 2, HandSize: 10, Names: []string{"a", "b", "c"}}, ErrNameCount},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.cfg.Validate()
			if c.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, c.want)
		})
	}
}
