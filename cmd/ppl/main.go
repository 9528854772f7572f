// Command ppl is a dev CLI for inspecting and auditing the popup-free
// browser configuration.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/chromedp/chromedp"

	"github.com/popupless/popupless"
	"github.com/popupless/popupless/chromedpcfg"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "dump":
		runDump()
	case "bot-test":
		runBotTest()
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: ppl <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  dump      Print the browser switches and preferences as JSON")
	fmt.Println("  bot-test  Open bot.sannysoft.com to audit the browser fingerprint")
}

func runDump() {
	cfg := popupless.DisabledPopupOptions()

	out, err := json.MarshalIndent(struct {
		Args  []string       `json:"args"`
		Prefs map[string]any `json:"prefs"`
	}{cfg.Args, cfg.Prefs.Map()}, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode config: %v", err)
	}
	fmt.Println(string(out))
}

func runBotTest() {
	log.Println("Opening bot.sannysoft.com with popup suppression options...")

	cfg := popupless.DisabledPopupOptions()

	dataDir, err := os.MkdirTemp("", "ppl-bot-test")
	if err != nil {
		log.Fatalf("Failed to create user data dir: %v", err)
	}
	if err := chromedpcfg.WriteUserDataDir(dataDir, cfg.Prefs); err != nil {
		log.Fatalf("Failed to write preferences: %v", err)
	}

	opts := append(
		chromedpcfg.AllocatorOptions(cfg, false), // non-headless so you can see it
		chromedp.UserDataDir(dataDir),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancel()

	ctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	go func() {
		err := chromedp.Run(ctx,
			chromedp.Navigate("https://bot.sannysoft.com"),
		)
		if err != nil {
			log.Printf("Failed to navigate: %v", err)
		}
	}()

	fmt.Println("Press Enter to end program...")
	fmt.Scanln()

	log.Println("Done.")
}
