package themes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupIcons(t *testing.T) {
	tests := []struct {
		tag       string
		wantArrow string
		wantErr   bool
	}{
		{tag: "unicode", wantArrow: "→"},
		{tag: "ascii", wantArrow: "->"},
		{tag: "emoji", wantErr: true},
		{tag: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			set, err := LookupIcons(tt.tag)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unicode")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.tag, set.Name())
			assert.Equal(t, tt.wantArrow, set.Get(IconArrow))
		})
	}
}

func TestIconSet_EveryIconDefined(t *testing.T) {
	icons := []Icon{IconArrow, IconDot, IconRadioOn, IconRadioOff, IconCopy, IconSearch, IconChevron, IconCheck, IconWarning}

	for _, name := range IconSetNames() {
		set, err := LookupIcons(name)
		require.NoError(t, err)
		for _, icon := range icons {
			assert.NotEqual(t, "?", set.Get(icon), "%s is missing %s", name, icon)
		}
	}
}

func TestIconSet_Fallbacks(t *testing.T) {
	partial := IconSet{name: "partial", glyphs: map[Icon]string{IconArrow: "=>"}}

	assert.Equal(t, "=>", partial.Get(IconArrow))
	assert.Equal(t, "(*)", partial.Get(IconRadioOn), "missing glyphs come from the ascii set")
	assert.Equal(t, "?", partial.Get(Icon("unknown")))
}

func TestGetTheme(t *testing.T) {
	assert.Equal(t, Default.Primary, GetTheme("default").Primary)
	assert.Equal(t, CatppuccinMocha.Primary, GetTheme("catppuccin-mocha").Primary)
	assert.Equal(t, Default.Primary, GetTheme("no-such-theme").Primary)

	assert.Equal(t, Default.Success, Default.StatusColor(true))
	assert.Equal(t, Default.Pending, Default.StatusColor(false))
}
