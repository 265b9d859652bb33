package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/contentdeck/internal/config"
	"github.com/jask/contentdeck/internal/llm"
	"github.com/jask/contentdeck/internal/prefs"
	"github.com/jask/contentdeck/internal/sheets"
	"github.com/jask/contentdeck/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Sheet.ID == "" {
		log.Fatalf("no sheet configured: set sheet.id in config.toml or CONTENTDECK_SHEET_ID")
	}

	view, found, err := prefs.Load()
	if err != nil {
		log.Printf("warn: ignoring saved view state: %v", err)
	}
	if !found {
		view.Target = cfg.UI.Target
		view.Theme = cfg.UI.Theme
		view = view.Normalize()
	}

	client := sheets.NewClient(cfg.Sheet.ID, cfg.Sheet.Name)
	provider := llmProvider(cfg)

	p := tea.NewProgram(tui.New(ctx, cfg, client, provider, view), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func llmProvider(cfg config.Config) llm.Provider {
	apiKey := cfg.APIKey()
	if apiKey == "" {
		return llm.NewOfflineProvider()
	}
	switch strings.ToLower(strings.TrimSpace(cfg.LLM.Provider)) {
	case "anthropic", "":
		return llm.NewAnthropicProvider(apiKey, cfg.LLM.Model)
	default:
		return llm.NewOfflineProvider()
	}
}
