package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkoosis/lastrun/pkg/design"
)

func TestCompile_DefaultsToDefaultTheme(t *testing.T) {
	ct := Compile(nil)

	assert.Equal(t, "default", ct.Base.Name)
	assert.Equal(t, "lastrun", ct.TitleText)
	assert.Equal(t, defaultSpinnerFrames, ct.SpinnerFrames)
}

func TestCompile_Monochrome(t *testing.T) {
	ct := Compile(design.MonochromeTheme())

	assert.True(t, ct.Base.Monochrome)
	for _, f := range ct.SpinnerFrames {
		assert.Len(t, f, 1, "mono spinner frames are ASCII")
	}
	assert.Equal(t, "x", ct.ErrorStyle.Render("x"))
}

func TestSpinnerFrame_Wraps(t *testing.T) {
	ct := Compile(design.DefaultTheme())
	n := len(ct.SpinnerFrames)

	assert.Equal(t, ct.spinnerFrame(0), ct.spinnerFrame(n))
	assert.NotEqual(t, ct.spinnerFrame(0), ct.spinnerFrame(1))
	assert.Empty(t, (&CompiledTheme{}).spinnerFrame(3))
}

func TestKeyMapHelp(t *testing.T) {
	assert.Equal(t, "↑/k up • ↓/j down • r reload • q quit", defaultKeyMap().help())
}
