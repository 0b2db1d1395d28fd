package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jayani-123/tasbot/internal/core"
)

func testMessages(contents ...string) []core.Message {
	msgs := make([]core.Message, 0, len(contents))
	for _, c := range contents {
		msgs = append(msgs, core.Message{Role: core.RoleUser, Content: c})
	}
	return msgs
}

func TestPacker_KeepsEverythingUnderBudget(t *testing.T) {
	p, err := NewPacker("cl100k_base", 6000)
	require.NoError(t, err)

	system := testMessages("Hello")
	system[0].Role = core.RoleSystem
	history := testMessages("Hello", "Hello", "Hello")

	out := p.Pack(system, history)
	require.Len(t, out, 4)
	require.Equal(t, core.RoleSystem, out[0].Role)
}

func TestPacker_DropsOldestFirst(t *testing.T) {
	// "Hello" encodes to a single cl100k_base token, so each message costs
	// perMessageOverhead+1.
	msgCost := perMessageOverhead + 1
	p, err := NewPacker("cl100k_base", 3*msgCost)
	require.NoError(t, err)

	system := []core.Message{{Role: core.RoleSystem, Content: "Hello"}}
	history := []core.Message{
		{Role: core.RoleUser, Content: "Hello", Reasoning: "oldest"},
		{Role: core.RoleUser, Content: "Hello", Reasoning: "middle"},
		{Role: core.RoleUser, Content: "Hello", Reasoning: "newest"},
	}

	out := p.Pack(system, history)
	require.Len(t, out, 3)
	require.Equal(t, core.RoleSystem, out[0].Role)
	require.Equal(t, "middle", out[1].Reasoning)
	require.Equal(t, "newest", out[2].Reasoning)
}

func TestPacker_NewestMessageAlwaysSurvives(t *testing.T) {
	p, err := NewPacker("cl100k_base", 1)
	require.NoError(t, err)

	history := testMessages("Hello", "Hello")
	history[1].Reasoning = "newest"

	out := p.Pack(nil, history)
	require.Len(t, out, 1)
	require.Equal(t, "newest", out[0].Reasoning)
}

func TestPacker_NoBudgetKeepsAll(t *testing.T) {
	p, err := NewPacker("cl100k_base", 0)
	require.NoError(t, err)

	out := p.Pack(testMessages("Hello"), testMessages("Hello", "Hello"))
	require.Len(t, out, 3)
}

func TestPacker_ToolCallArgumentsCount(t *testing.T) {
	p, err := NewPacker("cl100k_base", 100)
	require.NoError(t, err)

	plain := core.Message{Role: core.RoleAssistant, Content: "Hello"}
	withCall := plain
	withCall.ToolCalls = []core.ToolCall{{
		ID:       "call_1",
		Type:     "function",
		Function: core.FunctionCall{Name: "tassie_search", Arguments: `{"query":"hostels in Hobart"}`},
	}}

	require.Greater(t, p.messageTokens(withCall), p.messageTokens(plain))
}

func TestPacker_UnknownEncoding(t *testing.T) {
	_, err := NewPacker("no_such_encoding", 100)
	require.Error(t, err)
}
