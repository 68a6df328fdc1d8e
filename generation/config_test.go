package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	cfg := Config{Width: 50, Height: 50}.withDefaults()

	assert.Equal(t, 8, cfg.RoomCount)
	assert.Equal(t, Size{W: 4, H: 4}, cfg.MinRoomSize)
	assert.Equal(t, Size{W: 10, H: 10}, cfg.MaxRoomSize)
	assert.Equal(t, 1, cfg.CorridorWidth)
	assert.Equal(t, 1000, cfg.MaxIterations)
	assert.Equal(t, 4, cfg.BSPDepth)
}

func TestConfigValidation(t *testing.T) {
	valid := Config{Width: 50, Height: 50}.withDefaults()
	assert.NoError(t, valid.validate())

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"one room", func(c *Config) { c.RoomCount = 1 }},
		{"min exceeds max", func(c *Config) { c.MinRoomSize = Size{W: 12, H: 12} }},
		{"room larger than grid", func(c *Config) {
			c.MinRoomSize = Size{W: 50, H: 50}
			c.MaxRoomSize = Size{W: 50, H: 50}
		}},
		{"negative corridor width", func(c *Config) { c.CorridorWidth = -1 }},
		{"corridor wider than grid", func(c *Config) { c.CorridorWidth = 50 }},
		{"negative margin", func(c *Config) { c.RoomMargin = -1 }},
		{"loop chance above one", func(c *Config) { c.LoopChance = 1.5 }},
		{"negative treasure count", func(c *Config) { c.TreasureRooms = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			err := cfg.validate()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
