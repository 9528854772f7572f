// Package playwrightcfg renders the popup-free launch configuration as
// playwright-go Chromium launch options.
package playwrightcfg

import (
	"github.com/playwright-community/playwright-go"

	"github.com/popupless/popupless"
)

// LaunchOptions returns Chromium launch options carrying the config's
// argument switches. Playwright's launch surface has no preferences
// channel; when the preference suppression matters, launch a persistent
// context against a user data dir prepared by chromedpcfg.WriteUserDataDir.
func LaunchOptions(cfg popupless.Config, headless bool) playwright.BrowserTypeLaunchOptions {
	return playwright.BrowserTypeLaunchOptions{
		Args:     cfg.Args,
		Headless: playwright.Bool(headless),
	}
}
