package systems

import (
	"strings"
	"unicode/utf8"

	"github.com/automoto/retrofolio/components"
	cfg "github.com/automoto/retrofolio/config"
	"github.com/yohamta/donburi/ecs"
)

// ShowMessage replaces the banner. Only one banner is visible at a time.
func ShowMessage(e *ecs.ECS, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	state := getMessageState(e)
	state.Text = text
	state.Timer = cfg.Message.Duration
}

// Reveal shows revealed content: short text floats up from the source, anything longer than
// the threshold goes to the banner.
func Reveal(e *ecs.ECS, text string, x, y float64) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if utf8.RuneCountInString(text) > cfg.Message.FloatingThreshold {
		ShowMessage(e, text)
		return
	}
	SpawnText(e, text, x, y)
}

// UpdateMessage counts the banner down.
func UpdateMessage(e *ecs.ECS) {
	state := getMessageState(e)
	if state.Timer <= 0 {
		return
	}
	state.Timer -= GetGame(e).DT
	if state.Timer <= 0 {
		state.Timer = 0
		state.Text = ""
	}
}

// ResetMessageState clears the banner.
func ResetMessageState(e *ecs.ECS) {
	state := getMessageState(e)
	state.Text = ""
	state.Timer = 0
}

func getMessageState(e *ecs.ECS) *components.MessageStateData {
	return components.MessageState.Get(components.MessageState.MustFirst(e.World))
}

// WrapText breaks text into lines of at most maxChars runes on word boundaries. Explicit
// newlines are kept. Words longer than a line are placed on a line of their own.
func WrapText(text string, maxChars int) []string {
	if maxChars < 1 {
		maxChars = 1
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if utf8.RuneCountInString(line)+1+utf8.RuneCountInString(w) > maxChars {
				lines = append(lines, line)
				line = w
				continue
			}
			line += " " + w
		}
		lines = append(lines, line)
	}
	return lines
}
