package llm

import (
	"context"
	"strings"
)

// Generation modes offered by the assistant panel.
const (
	ModeCaption  = "caption"
	ModeScript   = "script"
	ModeHook     = "hook"
	ModeCalendar = "calendar"
	ModeIdeas    = "ideas"
	ModeFix      = "fix"
)

// Modes lists the generation modes in display order.
var Modes = []string{ModeCaption, ModeScript, ModeHook, ModeCalendar, ModeIdeas, ModeFix}

// Provider generates assistant output for a request.
type Provider interface {
	Generate(ctx context.Context, req Request) (string, error)
	Name() string
}

// Request carries the prompt plus the creator-context fields that shape the
// system prompt.
type Request struct {
	Mode     string
	Prompt   string
	Niche    string
	Platform string
	Tone     string
	Length   string // short, medium or long; empty means medium
	Brand    string
}

const basePrompt = "You are an elite content strategist and copywriter for short-form and social content. You speak clearly, avoid fluff, and format results for easy copy-paste."

var modeInstructions = map[string]string{
	ModeCaption:  "You write multiple social media captions optimized for engagement (hooks, CTAs, relatable tone). Return bullet points or numbered list.",
	ModeScript:   "You write short-form video scripts (Reels/TikTok/Shorts) with hook, body and CTA. Keep them punchy and spoken-language friendly.",
	ModeHook:     "You generate only hooks/headlines that stop scroll. Make them sharp, curiosity-driven and niche-specific.",
	ModeCalendar: "You create a 30-day content calendar. Return a structured list with Day, Topic, Angle and suggested format. Keep it compact but clear.",
	ModeIdeas:    "You generate a bank of specific, non-generic content ideas. Each idea should be clear enough to brief a creator.",
	ModeFix:      "You improve or rewrite the provided text to match the requested tone and platform. Show before/after if useful.",
}

// SystemPrompt assembles the system message for the request's mode and
// context fields. Empty context fields contribute nothing.
func (r Request) SystemPrompt() string {
	lengthText := "Keep outputs balanced in length."
	switch r.Length {
	case "short":
		lengthText = "Keep outputs very concise."
	case "long":
		lengthText = "You may write in more depth where helpful."
	}

	parts := []string{basePrompt}
	if instr, ok := modeInstructions[r.Mode]; ok {
		parts = append(parts, instr)
	}
	parts = append(parts, lengthText)

	if r.Niche != "" {
		parts = append(parts, "The niche/offer is: "+r.Niche+".")
	}
	if r.Platform != "" {
		parts = append(parts, "The main platform is: "+r.Platform+". Adjust style accordingly.")
	}
	if r.Tone != "" {
		parts = append(parts, "Desired tone: "+r.Tone+".")
	}
	if r.Brand != "" {
		parts = append(parts, "Brand rules / memory: "+r.Brand+". Follow these closely.")
	}
	return strings.Join(parts, " ")
}

// UserPrompt returns the user message, with a nudge when the prompt is empty.
func (r Request) UserPrompt() string {
	if p := strings.TrimSpace(r.Prompt); p != "" {
		return p
	}
	return "Generate useful suggestions for this mode even if the prompt is light."
}
