package chromedpcfg

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/require"

	"github.com/popupless/popupless"
)

func TestSplitFlags(t *testing.T) {
	pairs := splitFlags([]string{
		"--disable-blink-features=AutomationControlled",
		"--disable-extensions",
	})

	require.Equal(t, []flagPair{
		{name: "disable-blink-features", value: "AutomationControlled"},
		{name: "disable-extensions", value: true},
	}, pairs)
}

func TestAllocatorOptions(t *testing.T) {
	cfg := popupless.DisabledPopupOptions()
	opts := AllocatorOptions(cfg, true)

	// chromedp defaults, the headless toggle, then one option per switch.
	require.Len(t, opts, len(chromedp.DefaultExecAllocatorOptions)+1+len(cfg.Args))
}

func TestWriteUserDataDir(t *testing.T) {
	dir := t.TempDir()
	cfg := popupless.DisabledPopupOptions()

	require.NoError(t, WriteUserDataDir(dir, cfg.Prefs))

	data, err := os.ReadFile(filepath.Join(dir, "Default", "Preferences"))
	require.NoError(t, err)

	var prefs map[string]any
	require.NoError(t, json.Unmarshal(data, &prefs))

	require.Equal(t, false, prefs["credentials_enable_service"])
	require.Equal(t, false, prefs["password_manager_leak_detection"])

	profile, ok := prefs["profile"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, false, profile["password_manager_enabled"])
	require.Equal(t, false, profile["password_manager_leak_detection"])

	settings, ok := profile["default_content_setting_values"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(popupless.ContentSettingBlock), settings["notifications"])
}

func TestNestKeysSharesPrefix(t *testing.T) {
	nested := nestKeys(map[string]any{
		"profile.a":   1,
		"profile.b.c": 2,
		"top":         3,
	})

	require.Equal(t, map[string]any{
		"profile": map[string]any{
			"a": 1,
			"b": map[string]any{"c": 2},
		},
		"top": 3,
	}, nested)
}
