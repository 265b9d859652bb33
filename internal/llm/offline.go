package llm

import (
	"context"
	"fmt"
	"strings"
)

// OfflineProvider is a lightweight, offline-friendly implementation used when
// no API key is configured. It produces templated but mode-aware output so the
// assistant panel stays usable without network access.
type OfflineProvider struct{}

func NewOfflineProvider() *OfflineProvider { return &OfflineProvider{} }

func (o *OfflineProvider) Name() string { return "offline" }

func (o *OfflineProvider) Generate(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	topic := strings.TrimSpace(req.Prompt)
	if topic == "" {
		topic = "your next post"
	}
	niche := req.Niche
	if niche == "" {
		niche = "your niche"
	}
	platform := req.Platform
	if platform == "" {
		platform = "your main platform"
	}

	var b strings.Builder
	b.WriteString("(offline draft — set an API key for real generations)\n\n")
	switch req.Mode {
	case ModeCaption:
		fmt.Fprintf(&b, "1. %s — here's what nobody tells you. Save this for later.\n", topic)
		fmt.Fprintf(&b, "2. POV: you finally cracked %s. Comment \"HOW\" and I'll share the playbook.\n", topic)
		fmt.Fprintf(&b, "3. Three mistakes everyone in %s makes with %s. Number two cost me months.\n", niche, topic)
	case ModeScript:
		fmt.Fprintf(&b, "HOOK: Stop scrolling if you care about %s.\n", topic)
		fmt.Fprintf(&b, "BODY: Break %s into three beats, each under ten seconds, spoken straight to camera.\n", topic)
		b.WriteString("CTA: Follow for the next part.\n")
	case ModeHook:
		fmt.Fprintf(&b, "- The %s advice I'd give my younger self\n", topic)
		fmt.Fprintf(&b, "- I tested %s for 30 days. Here's what happened\n", topic)
		fmt.Fprintf(&b, "- Why most %s content fails on %s\n", niche, platform)
	case ModeCalendar:
		for day := 1; day <= 5; day++ {
			fmt.Fprintf(&b, "Day %d: %s — angle %d, short-form for %s\n", day, topic, day, platform)
		}
		b.WriteString("...continue the pattern through day 30, rotating angles.\n")
	case ModeIdeas:
		fmt.Fprintf(&b, "1. A beginner's-mistakes breakdown on %s\n", topic)
		fmt.Fprintf(&b, "2. Behind-the-scenes of how you handle %s\n", topic)
		fmt.Fprintf(&b, "3. A myth-vs-fact carousel for %s in %s\n", topic, niche)
	case ModeFix:
		fmt.Fprintf(&b, "BEFORE: %s\n", topic)
		fmt.Fprintf(&b, "AFTER: %s — tightened, fronted with the payoff, tuned for %s.\n", topic, platform)
	default:
		fmt.Fprintf(&b, "Ideas around: %s\n", topic)
	}
	return b.String(), nil
}
