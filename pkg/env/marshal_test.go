package env

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarshal_SortsKeys(t *testing.T) {
	out := Marshal(map[string]string{
		"ZED":   "3",
		"ALPHA": "1",
		"MID":   "2",
	})
	require.Equal(t, "ALPHA=1\nMID=2\nZED=3\n", out)
}

func TestMarshal_PlainValuesUnquoted(t *testing.T) {
	out := Marshal(map[string]string{"TELEGRAM_TOKEN": "123456:ABC-def"})
	require.Equal(t, "TELEGRAM_TOKEN=123456:ABC-def\n", out)
}

func TestMarshal_QuotesRiskyValues(t *testing.T) {
	out := Marshal(map[string]string{"WEATHER_DEFAULT_LOCATION": "Hobart, AU and beyond"})
	require.Equal(t, "WEATHER_DEFAULT_LOCATION=\"Hobart, AU and beyond\"\n", out)
}

func TestMarshal_EscapesQuotes(t *testing.T) {
	out := Marshal(map[string]string{"KEY": `say "hi"`})
	require.Equal(t, "KEY=\"say \\\"hi\\\"\"\n", out)
}

func TestMarshal_Empty(t *testing.T) {
	require.Equal(t, "", Marshal(nil))
}
