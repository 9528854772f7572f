// Package chromedpcfg renders the popup-free launch configuration for
// chromedp sessions.
package chromedpcfg

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chromedp/chromedp"

	"github.com/popupless/popupless"
)

// AllocatorOptions returns chromedp allocator options carrying the config's
// suppression switches on top of chromedp's defaults. All browser instances
// in a test run should use this to get a consistent popup-free session.
func AllocatorOptions(cfg popupless.Config, headless bool) []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
	)
	for _, f := range splitFlags(cfg.Args) {
		opts = append(opts, chromedp.Flag(f.name, f.value))
	}
	return opts
}

type flagPair struct {
	name  string
	value any
}

// splitFlags turns "--name=value" argv entries into chromedp flag pairs;
// bare "--name" switches become boolean flags. chromedp reassembles the
// same argv when it spawns the browser.
func splitFlags(args []string) []flagPair {
	pairs := make([]flagPair, 0, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
		if !ok {
			pairs = append(pairs, flagPair{name: name, value: true})
			continue
		}
		pairs = append(pairs, flagPair{name: name, value: value})
	}
	return pairs
}

// WriteUserDataDir writes the preference entries into dir so Chrome picks
// them up when launched with chromedp.UserDataDir(dir). chromedp has no
// preferences channel of its own; Chrome reads them from the profile's
// Preferences file, with dotted keys stored as nested objects.
func WriteUserDataDir(dir string, prefs popupless.Preferences) error {
	data, err := json.MarshalIndent(nestKeys(prefs.Map()), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}

	profileDir := filepath.Join(dir, "Default")
	if err := os.MkdirAll(profileDir, 0700); err != nil {
		return fmt.Errorf("creating profile directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(profileDir, "Preferences"), data, 0600); err != nil {
		return fmt.Errorf("writing preferences file: %w", err)
	}
	return nil
}

// nestKeys expands dotted preference keys into the nested object form
// Chrome's preference store uses on disk.
func nestKeys(flat map[string]any) map[string]any {
	root := make(map[string]any)
	for key, value := range flat {
		node := root
		parts := strings.Split(key, ".")
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = value
	}
	return root
}
