package seleniumcfg

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"

	"github.com/popupless/popupless"
)

func TestCapabilities(t *testing.T) {
	cfg := popupless.DisabledPopupOptions()
	caps := Capabilities(cfg)

	require.Equal(t, cfg.Args, caps.Args)
	require.Equal(t, cfg.Prefs.Map(), caps.Prefs)
	require.Len(t, caps.Prefs, 5)
}

func TestCapabilitiesAttach(t *testing.T) {
	cfg := popupless.DisabledPopupOptions()

	seleniumCaps := selenium.Capabilities{"browserName": "chrome"}
	seleniumCaps.AddChrome(Capabilities(cfg))

	attached, ok := seleniumCaps[chrome.CapabilitiesKey].(chrome.Capabilities)
	require.True(t, ok)
	require.Equal(t, cfg.Args, attached.Args)
	require.Equal(t, false, attached.Prefs[popupless.PrefPasswordManagerEnabled])
}
