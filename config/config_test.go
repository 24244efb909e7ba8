package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wd_utils_go/models"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"WD_DATE_FORMAT", "WD_TIME_MODE", "WD_TIMEZONE", "WD_LANGUAGE", "WD_VERBOSE"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, models.DateFormatBR, cfg.DateFormat)
	assert.Equal(t, models.TimeNone, cfg.TimeMode)
	assert.Equal(t, "Local", cfg.Timezone)
	assert.Equal(t, "pt-BR", cfg.Language)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, time.Local, cfg.Location())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("WD_DATE_FORMAT", "usa")
	t.Setenv("WD_TIME_MODE", "andSeconds")
	t.Setenv("WD_TIMEZONE", "UTC")
	t.Setenv("WD_LANGUAGE", "en")
	t.Setenv("WD_VERBOSE", "yes")

	cfg := Load()

	assert.Equal(t, models.DateFormatUSA, cfg.DateFormat)
	assert.Equal(t, models.TimeWithSeconds, cfg.TimeMode)
	assert.Equal(t, "en", cfg.Language)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "UTC", cfg.Location().String())
	assert.Equal(t, time.UTC.String(), cfg.Now().Location().String())
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("WD_DATE_FORMAT", "ISO")
	t.Setenv("WD_TIME_MODE", "sometimes")
	t.Setenv("WD_TIMEZONE", "Mars/Olympus_Mons")
	t.Setenv("WD_VERBOSE", "maybe")

	cfg := Load()

	assert.Equal(t, models.DateFormatBR, cfg.DateFormat)
	assert.Equal(t, models.TimeNone, cfg.TimeMode)
	assert.Equal(t, time.Local, cfg.Location())
	assert.False(t, cfg.Verbose)
}

func TestLocationWithoutLoad(t *testing.T) {
	cfg := &Config{Timezone: "America/Sao_Paulo"}
	loc := cfg.Location()
	assert.NotNil(t, loc)
	assert.Same(t, loc, cfg.Location())
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{"", true, true},
		{"1", false, true},
		{"ON", false, true},
		{"off", true, false},
		{"no", true, false},
		{"garbage", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("WD_TEST_BOOL", tt.value)
			assert.Equal(t, tt.want, getEnvBool("WD_TEST_BOOL", tt.def))
		})
	}
}
