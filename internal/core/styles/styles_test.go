package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/courtside/internal/core/notify"
)

func TestThemeNames_sorted_and_resolvable(t *testing.T) {
	names := ThemeNames()
	assert.Equal(t, []string{"courtside", "gruvbox", "tokyo-night"}, names)

	for _, name := range names {
		_, ok := GetPalette(name)
		assert.True(t, ok, name)
	}

	_, ok := GetPalette("nope")
	assert.False(t, ok)
}

func TestSeverityIcon(t *testing.T) {
	assert.Equal(t, IconSuccess, SeverityIcon(notify.SeveritySuccess))
	assert.Equal(t, IconError, SeverityIcon(notify.SeverityError))
	assert.Equal(t, IconInfo, SeverityIcon(notify.SeverityInfo))
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, _ := GetPalette("courtside")
	SetTheme(p)

	assert.Equal(t, p, CurrentPalette)
	assert.Len(t, ConsoleSeverityStyles, 3)
}
