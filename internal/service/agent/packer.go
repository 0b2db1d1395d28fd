package agent

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"

	"github.com/Jayani-123/tasbot/internal/core"
)

// perMessageOverhead approximates the framing tokens (role, separators)
// each chat message costs on top of its content.
const perMessageOverhead = 4

// Packer trims conversation history to a token budget. System messages
// always survive; history is kept newest-first until the budget runs out.
type Packer struct {
	budget int
	enc    *tiktoken.Tiktoken
}

func NewPacker(encoding string, budget int) (*Packer, error) {
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to load tokenizer %q: %w", encoding, err)
	}
	return &Packer{budget: budget, enc: enc}, nil
}

func (p *Packer) countTokens(text string) int {
	if text == "" {
		return 0
	}
	return len(p.enc.Encode(text, nil, nil))
}

func (p *Packer) messageTokens(msg core.Message) int {
	n := perMessageOverhead + p.countTokens(msg.Content)
	for _, tc := range msg.ToolCalls {
		n += p.countTokens(tc.Function.Name) + p.countTokens(tc.Function.Arguments)
	}
	return n
}

// Pack returns system followed by the newest history messages that fit
// the budget. A budget <= 0 keeps everything.
func (p *Packer) Pack(system []core.Message, history []core.Message) []core.Message {
	start := 0
	if p.budget > 0 {
		used := 0
		for _, msg := range system {
			used += p.messageTokens(msg)
		}

		start = len(history)
		for i := len(history) - 1; i >= 0; i-- {
			cost := p.messageTokens(history[i])
			if used+cost > p.budget {
				break
			}
			used += cost
			start = i
		}

		// the newest message survives no matter how tight the budget is
		if start == len(history) && len(history) > 0 {
			start = len(history) - 1
		}
	}

	out := make([]core.Message, 0, len(system)+len(history)-start)
	out = append(out, system...)
	out = append(out, history[start:]...)
	return out
}
