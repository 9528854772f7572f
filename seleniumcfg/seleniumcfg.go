// Package seleniumcfg renders the popup-free launch configuration as
// Selenium WebDriver Chrome capabilities.
package seleniumcfg

import (
	"github.com/tebeka/selenium/chrome"

	"github.com/popupless/popupless"
)

// Capabilities returns Chrome capabilities carrying the config's argument
// switches and preference entries. Attach them to the session capabilities
// with AddChrome:
//
//	caps := selenium.Capabilities{"browserName": "chrome"}
//	caps.AddChrome(seleniumcfg.Capabilities(cfg))
func Capabilities(cfg popupless.Config) chrome.Capabilities {
	return chrome.Capabilities{
		Args:  cfg.Args,
		Prefs: cfg.Prefs.Map(),
	}
}
