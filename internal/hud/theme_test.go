package hud

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/hudkit/internal/geometry"
	"github.com/schmitthub/hudkit/internal/scheduler/schedulertest"
)

func TestResolve_Defaults(t *testing.T) {
	dark := Resolve(Appearance{}, Theme{}, true)
	assert.Equal(t, DefaultDarkColor, dark.Color)
	assert.Equal(t, DefaultDarkColor, dark.ProgressTint)
	assert.Equal(t, DefaultDarkColor, dark.ActivityColor)
	assert.Equal(t, DefaultDarkColor, dark.TitleColor)
	assert.Equal(t, DefaultDarkColor, dark.DetailsColor)
	assert.True(t, IsClear(dark.TrackTint), "track defaults to clear")
	assert.True(t, IsClear(dark.BackgroundColor))

	light := Resolve(Appearance{}, Theme{}, false)
	assert.Equal(t, DefaultLightColor, light.Color)
}

func TestResolve_ThreeLevels(t *testing.T) {
	red, green, blue := lipgloss.Color("1"), lipgloss.Color("2"), lipgloss.Color("4")

	theme := Theme{Color: green, TrackTint: blue}
	instance := Appearance{ProgressTint: red}

	got := Resolve(instance, theme, true)
	assert.Equal(t, green, got.Color, "theme beats default")
	assert.Equal(t, red, got.ProgressTint, "instance beats theme")
	assert.Equal(t, blue, got.TrackTint)
	assert.Equal(t, green, got.TitleColor, "labels derive from the resolved base color")

	instance.Color = red
	got = Resolve(instance, theme, true)
	assert.Equal(t, red, got.Color)
	assert.Equal(t, red, got.DetailsColor)
}

func TestResolve_ExplicitClearIsKept(t *testing.T) {
	got := Resolve(Appearance{TitleColor: lipgloss.NoColor{}}, Theme{TitleColor: lipgloss.Color("2")}, true)
	assert.True(t, IsClear(got.TitleColor))
}

func TestHUD_Colors(t *testing.T) {
	h := New(schedulertest.New(), WithTheme(Theme{Color: lipgloss.Color("5")}))
	assert.Equal(t, lipgloss.Color("5"), h.Colors(true).ProgressTint)

	h.SetAppearance(Appearance{ProgressTint: lipgloss.Color("6")})
	assert.Equal(t, lipgloss.Color("6"), h.Colors(true).ProgressTint)
	assert.Equal(t, lipgloss.Color("5"), h.Colors(true).ActivityColor)
}

func TestParseStyle(t *testing.T) {
	for in, want := range map[string]Style{
		"activity": StyleActivityIndicator,
		"spinner":  StyleActivityIndicator,
		"Linear":   StyleLinearProgress,
		"donut":    StyleDoughnutProgress,
		"pie":      StylePieProgress,
		"text":     StyleTextLabel,
		"custom":   StyleCustomView,
	} {
		got, err := ParseStyle(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseStyle("wheel")
	assert.Error(t, err)
}

func TestParseAnimationType(t *testing.T) {
	for in, want := range map[string]AnimationType{
		"fade":     AnimationFade,
		"zoom":     AnimationZoom,
		"zoom-in":  AnimationZoomIn,
		"zoom_out": AnimationZoomOut,
		"zoomin":   AnimationZoomIn,
	} {
		got, err := ParseAnimationType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseAnimationType("slide")
	assert.Error(t, err)
}

func TestAnimationType_Resolve(t *testing.T) {
	assert.Equal(t, AnimationZoomIn, AnimationZoom.resolve(true))
	assert.Equal(t, AnimationZoomOut, AnimationZoom.resolve(false))
	assert.Equal(t, AnimationFade, AnimationFade.resolve(false))
	assert.Equal(t, AnimationZoomIn, AnimationZoomIn.resolve(false))
}

func TestNewIndicator_ContentSizes(t *testing.T) {
	tests := []struct {
		style Style
		shape geometry.Shape
		size  geometry.Size
	}{
		{StyleLinearProgress, geometry.ShapeLinear, LinearContentSize},
		{StyleDoughnutProgress, geometry.ShapeDoughnut, DoughnutContentSize},
		{StylePieProgress, geometry.ShapePie, PieContentSize},
	}
	for _, tt := range tests {
		ind, ok := newIndicator(tt.style, 0.25, nil).(Determinate)
		require.True(t, ok, tt.style.String())
		assert.Equal(t, tt.style, ind.Style())
		assert.Equal(t, tt.shape, ind.Shape())
		assert.Equal(t, tt.size, ind.ContentSize())

		bg, fill := ind.Paths()
		assert.False(t, bg.IsEmpty())
		assert.False(t, fill.IsEmpty())
	}
}

func TestSetIndicatorFraction_OnlyOnChange(t *testing.T) {
	ind := newIndicator(StylePieProgress, 0, nil)
	assert.False(t, setIndicatorFraction(ind, 0))
	assert.True(t, setIndicatorFraction(ind, 0.5))
	_, fill := ind.(*Pie).Paths()
	assert.False(t, fill.IsEmpty())

	assert.False(t, setIndicatorFraction(newIndicator(StyleTextLabel, 0, nil), 0.5))
}
