package adorn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	aerrors "github.com/FocuswithJustin/adorner/core/errors"
)

func TestDefaultConfigValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"empty id attribute", func(c *Config) { c.IDAttribute = "" }, "id_attribute"},
		{"unknown scheme", func(c *Config) { c.Scheme = Scheme(9) }, "scheme"},
		{"zero spacing", func(c *Config) { c.Spacing = 0 }, "spacing"},
		{"negative width", func(c *Config) { c.MinIDWidth = -1 }, "min_id_width"},
		{"negative page size", func(c *Config) { c.PseudoPageSize = -5 }, "pseudo_page_size"},
		{"bad boundary", func(c *Config) { c.SentenceBoundary = SentenceBoundary(3) }, "sentence_boundary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()

			var verr *aerrors.ValidationError
			if assert.ErrorAs(t, err, &verr) {
				assert.Equal(t, tt.field, verr.Field)
			}
			assert.ErrorIs(t, err, aerrors.ErrInvalidInput)
		})
	}
}

func TestPruneModeEnabled(t *testing.T) {
	assert.False(t, PruneMode{}.Enabled())
	assert.True(t, PruneMode{EOS: true}.Enabled())
}

func TestPrimarySubtag(t *testing.T) {
	assert.Equal(t, "en", primarySubtag("en-GB"))
	assert.Equal(t, "la", primarySubtag(" LA "))
	assert.Equal(t, "zh", primarySubtag("zh_Hant"))
}
