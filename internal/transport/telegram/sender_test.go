package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitHTML_ShortTextSingleChunk(t *testing.T) {
	chunks := splitHTML("hello", 100)
	require.Equal(t, []string{"hello"}, chunks)
}

func TestSplitHTML_BreaksAtNewline(t *testing.T) {
	text := strings.Repeat("a", 60) + "\n" + strings.Repeat("b", 60)

	chunks := splitHTML(text, 100)
	require.Len(t, chunks, 2)
	require.Equal(t, strings.Repeat("a", 60), chunks[0])
	require.Equal(t, strings.Repeat("b", 60), chunks[1])
}

func TestSplitHTML_HardCutWithoutNewline(t *testing.T) {
	text := strings.Repeat("x", 250)

	chunks := splitHTML(text, 100)
	require.Len(t, chunks, 3)
	require.Equal(t, 100, len(chunks[0]))
	require.Equal(t, 100, len(chunks[1]))
	require.Equal(t, 50, len(chunks[2]))
}

func TestSplitHTML_IgnoresEarlyNewline(t *testing.T) {
	// A newline in the first third is a worse split than a hard cut.
	text := "ab\n" + strings.Repeat("c", 200)

	chunks := splitHTML(text, 100)
	require.Equal(t, 100, len(chunks[0]))
}

func TestSplitHTML_EveryWordSurvives(t *testing.T) {
	text := strings.Repeat("line one\nline two\n", 50)

	chunks := splitHTML(text, 100)
	for _, chunk := range chunks {
		require.LessOrEqual(t, len(chunk), 100)
	}
	require.Equal(t, strings.Fields(text), strings.Fields(strings.Join(chunks, " ")))
}
