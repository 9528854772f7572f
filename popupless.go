// Package popupless builds the Chrome launch configuration used by automated
// UI test sessions to suppress password-manager prompts, leak-detection
// dialogs and notification popups that would otherwise block scripted
// interaction.
package popupless

// Preference keys understood by Chrome's preference store.
const (
	PrefCredentialsEnableService = "credentials_enable_service"
	PrefPasswordManagerEnabled   = "profile.password_manager_enabled"
	PrefNotifications            = "profile.default_content_setting_values.notifications"
	PrefPasswordLeakDetection    = "profile.password_manager_leak_detection"

	// Older chromedriver builds read the leak-detection key without the
	// profile namespace, so both spellings must be populated.
	PrefPasswordLeakDetectionLegacy = "password_manager_leak_detection"
)

// ContentSettingBlock is Chrome's content-setting enum value for "block".
const ContentSettingBlock = 2

// Command-line switches passed to the browser at launch.
const (
	FlagDisableBlinkAutomation    = "--disable-blink-features=AutomationControlled"
	FlagDisableExtensions         = "--disable-extensions"
	FlagDisablePopupBlocking      = "--disable-popup-blocking"
	FlagDisableInfobars           = "--disable-infobars"
	FlagDisableSavePasswordBubble = "--disable-save-password-bubble"
)

// Preferences holds the browser preference entries the configuration sets.
// Only these five are ever populated, so they are a closed record rather
// than an open map; Map renders them for drivers that want the map form.
type Preferences struct {
	CredentialsEnableService bool
	PasswordManagerEnabled   bool
	Notifications            int
	PasswordLeakDetection    bool

	// LegacyPasswordLeakDetection mirrors PasswordLeakDetection under the
	// unnamespaced key. Keep both; dropping either changes behavior on
	// some chromedriver versions.
	LegacyPasswordLeakDetection bool
}

// Map renders the preferences as the dotted-key map browser drivers consume.
// The map is freshly allocated on every call.
func (p Preferences) Map() map[string]any {
	return map[string]any{
		PrefCredentialsEnableService:    p.CredentialsEnableService,
		PrefPasswordManagerEnabled:      p.PasswordManagerEnabled,
		PrefNotifications:               p.Notifications,
		PrefPasswordLeakDetection:       p.PasswordLeakDetection,
		PrefPasswordLeakDetectionLegacy: p.LegacyPasswordLeakDetection,
	}
}

// Config describes how an automated browser session should be launched:
// preference entries plus command-line switches. It is a plain value;
// callers own their copy and may extend it before handing it to a driver.
type Config struct {
	Prefs Preferences
	Args  []string
}

// DisabledPopupOptions returns the launch configuration with the password
// manager, leak detection and notification popups disabled. Each call
// allocates a fresh Config, so callers can append to Args without affecting
// later calls.
func DisabledPopupOptions() Config {
	return Config{
		Prefs: Preferences{
			CredentialsEnableService:    false,
			PasswordManagerEnabled:      false,
			Notifications:               ContentSettingBlock,
			PasswordLeakDetection:       false,
			LegacyPasswordLeakDetection: false,
		},
		Args: []string{
			FlagDisableBlinkAutomation,
			FlagDisableExtensions,
			FlagDisablePopupBlocking,
			FlagDisableInfobars,
			FlagDisableSavePasswordBubble,
		},
	}
}
