package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Jayani-123/tasbot/internal/config"
	"github.com/Jayani-123/tasbot/internal/core"
	"github.com/Jayani-123/tasbot/internal/providers/rag"
	"github.com/Jayani-123/tasbot/internal/providers/search"
	"github.com/Jayani-123/tasbot/internal/providers/tools"
	"github.com/Jayani-123/tasbot/internal/providers/weather"
	"github.com/Jayani-123/tasbot/internal/service/agent"
	"github.com/Jayani-123/tasbot/internal/storage/memory"
)

type fakeAI struct {
	replies []core.Message
	err     error

	calls        int
	lastMessages []core.Message
}

func (f *fakeAI) Chat(ctx context.Context, history []core.Message, tls []core.Tool) (core.Message, error) {
	f.calls++
	f.lastMessages = history
	if f.err != nil {
		return core.Message{}, f.err
	}
	idx := f.calls - 1
	if idx >= len(f.replies) {
		idx = len(f.replies) - 1
	}
	return f.replies[idx], nil
}

func (f *fakeAI) Models(ctx context.Context) ([]core.Model, error) {
	return nil, nil
}

type fakeRegistry struct {
	observation string
	calls       []string
}

func (r *fakeRegistry) GetTools(ctx context.Context) ([]core.Tool, error) {
	return []core.Tool{{Type: "function", Function: core.Function{Name: "tassie_search"}}}, nil
}

func (r *fakeRegistry) CallTool(ctx context.Context, name string, args string) (string, error) {
	r.calls = append(r.calls, name)
	return r.observation, nil
}

type fakeGuide struct {
	factQueries []string
}

func (g *fakeGuide) Answer(ctx context.Context, query string) (rag.Response, error) {
	return rag.Response{Answer: "From the guides."}, nil
}

func (g *fakeGuide) Facts(ctx context.Context, query string) (string, error) {
	g.factQueries = append(g.factQueries, query)
	switch {
	case strings.Contains(query, "accommodation"):
		return "Dorm beds are around $70 per night in Hobart.", nil
	case strings.Contains(query, "food"):
		return "Plan on $50 a day for food.", nil
	default:
		return "Car hire from aud 60 per day.", nil
	}
}

type fakeConditions struct {
	called int
}

func (c *fakeConditions) Current(ctx context.Context, location string) (weather.Conditions, error) {
	c.called++
	return weather.Conditions{
		Location:    location,
		Description: "light rain",
		TempC:       11.5,
		FeelsLikeC:  9.8,
		TempMinC:    8.0,
		TempMaxC:    13.0,
		Humidity:    72,
		WindSpeed:   4.1,
		WindDeg:     210,
		CloudCover:  80,
	}, nil
}

type fakeForecast struct {
	located []string
}

func (f *fakeForecast) Locate(ctx context.Context, name string) (weather.Place, bool, error) {
	f.located = append(f.located, name)
	return weather.Place{Name: name, Latitude: -41.4, Longitude: 147.1}, true, nil
}

func (f *fakeForecast) DailyForecast(ctx context.Context, lat, lon float64) (weather.Daily, error) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var d weather.Daily
	for i := 0; i < 4; i++ {
		d.Dates = append(d.Dates, base.AddDate(0, 0, i))
		d.MinC = append(d.MinC, 4.0+float64(i))
		d.MaxC = append(d.MaxC, 12.0+float64(i))
		d.RainMM = append(d.RainMM, 0.5)
	}
	return d, nil
}

type fakeSearcher struct {
	queries []string
}

func (s *fakeSearcher) Search(ctx context.Context, query string, maxResults int) ([]search.Result, error) {
	s.queries = append(s.queries, query)
	return []search.Result{
		{Title: "Tasmania travel", Snippet: "Everything about Tasmania.", URL: "https://example.com/tas"},
	}, nil
}

type fixture struct {
	ai       *fakeAI
	registry *fakeRegistry
	guide    *fakeGuide
	cond     *fakeConditions
	fc       *fakeForecast
	searcher *fakeSearcher
	store    *memory.Store
	asst     *Assistant
}

func newFixture(t *testing.T, cfg *config.AssistantConfig) *fixture {
	t.Helper()

	if cfg == nil {
		cfg = &config.AssistantConfig{TurnLimit: 4, Deadline: 5 * time.Second}
	}

	f := &fixture{
		ai:       &fakeAI{},
		registry: &fakeRegistry{},
		guide:    &fakeGuide{},
		cond:     &fakeConditions{},
		fc:       &fakeForecast{},
		searcher: &fakeSearcher{},
		store:    memory.NewStore(),
	}

	packer, err := agent.NewPacker("cl100k_base", 6000)
	require.NoError(t, err)

	facade := tools.NewTools(f.guide, f.cond, f.fc, f.searcher, 3)
	appCfg := &config.AppConfig{RuntimePath: t.TempDir(), ContextWindowSize: 30}
	f.asst = New(cfg, appCfg, f.ai, f.registry, facade, f.store, packer, config.DefaultKeywords())
	return f
}

func TestAssistant_WeatherFastPath(t *testing.T) {
	f := newFixture(t, nil)

	reply := f.asst.Process(context.Background(), "s1", "what is the weather in hobart")
	require.Equal(t, "WeatherTool", reply.Sources)
	require.Contains(t, reply.Answer, "Current Weather for Hobart")
	require.Equal(t, 1, f.cond.called)
	require.Zero(t, f.ai.calls)

	// fast-path turns leave no trace in history
	msgs, err := f.store.Messages(context.Background(), "s1", 0)
	require.NoError(t, err)
	require.Empty(t, msgs)
}

func TestAssistant_ForecastFastPath(t *testing.T) {
	f := newFixture(t, nil)

	reply := f.asst.Process(context.Background(), "s1", "weather forecast for launceston")
	require.Equal(t, "WeatherTool", reply.Sources)
	require.Contains(t, reply.Answer, "3-Day Forecast for Launceston")
	require.Contains(t, reply.Answer, "Low:")
	require.Equal(t, []string{"Launceston"}, f.fc.located)
	require.Zero(t, f.cond.called)
	require.Zero(t, f.ai.calls)
}

func TestAssistant_WeatherBeatsBudget(t *testing.T) {
	f := newFixture(t, nil)

	reply := f.asst.Process(context.Background(), "s1", "trip plan and weather for strahan")
	require.Equal(t, "WeatherTool", reply.Sources)
	require.Equal(t, 1, f.cond.called)
	require.Empty(t, f.guide.factQueries)
}

func TestAssistant_BudgetFastPath(t *testing.T) {
	f := newFixture(t, nil)

	reply := f.asst.Process(context.Background(), "s1", "calculate a 5 day trip budget for hobart")
	require.Equal(t, "TripBudgetPlanner Tool", reply.Sources)
	require.Contains(t, reply.Answer, "**Trip Budget & Planner for Hobart (5 days)**")
	require.Contains(t, reply.Answer, "**Estimated Total: $900 AUD**")
	require.Len(t, f.guide.factQueries, 3)
	require.Zero(t, f.ai.calls)

	msgs, err := f.store.Messages(context.Background(), "s1", 0)
	require.NoError(t, err)
	require.Empty(t, msgs)
}

func TestAssistant_GeneralPathSuccess(t *testing.T) {
	f := newFixture(t, nil)
	f.registry.observation = "**Answer:** The Overland Track takes about six days.\n\nSource: backpacker2.pdf\nSource: https://parks.tas.gov.au"
	f.ai.replies = []core.Message{
		{
			Role: core.RoleAssistant,
			ToolCalls: []core.ToolCall{{
				ID:       "call_1",
				Type:     "function",
				Function: core.FunctionCall{Name: "tassie_search", Arguments: `{"query":"overland track"}`},
			}},
		},
		{Role: core.RoleAssistant, Content: "  The Overland Track takes about six days end to end.  "},
	}

	reply := f.asst.Process(context.Background(), "s1", "how long does the overland track take")
	require.Equal(t, "The Overland Track takes about six days end to end.", reply.Answer)
	require.Equal(t, "backpacker2.pdf\nhttps://parks.tas.gov.au", reply.Sources)
	require.Equal(t, []string{"tassie_search"}, f.registry.calls)

	msgs, err := f.store.Messages(context.Background(), "s1", 0)
	require.NoError(t, err)
	require.Len(t, msgs, 4) // user, assistant+calls, tool, assistant
}

func TestAssistant_QualityGateFallsBackToWebSearch(t *testing.T) {
	f := newFixture(t, nil)
	f.ai.replies = []core.Message{
		{Role: core.RoleAssistant, Content: "No answer generated."},
	}

	query := "how much is the bruny island ferry"
	reply := f.asst.Process(context.Background(), "s1", query)

	require.Equal(t, "DuckDuckGo Search ", reply.Sources)
	require.Contains(t, reply.Answer, "Search Results:")
	require.Contains(t, reply.Answer, "https://example.com/tas")

	// the loop saw the budget steering, the fallback search did not
	require.Equal(t, []string{query}, f.searcher.queries)
	var lastUser string
	for _, msg := range f.ai.lastMessages {
		if msg.Role == core.RoleUser {
			lastUser = msg.Content
		}
	}
	require.Contains(t, lastUser, query)
	require.Contains(t, lastUser, "itemized cost breakdown")
}

func TestAssistant_ShortAnswerFallsBack(t *testing.T) {
	f := newFixture(t, nil)
	f.ai.replies = []core.Message{
		{Role: core.RoleAssistant, Content: "Yes."},
	}

	reply := f.asst.Process(context.Background(), "s1", "is the overland track open")
	require.Equal(t, "DuckDuckGo Search ", reply.Sources)
}

func TestAssistant_TurnLimitFallsBack(t *testing.T) {
	f := newFixture(t, &config.AssistantConfig{TurnLimit: 1, Deadline: 5 * time.Second})
	f.registry.observation = "partial info"
	f.ai.replies = []core.Message{
		{
			Role: core.RoleAssistant,
			ToolCalls: []core.ToolCall{{
				ID:       "call_1",
				Type:     "function",
				Function: core.FunctionCall{Name: "tassie_search", Arguments: `{"query":"x"}`},
			}},
		},
	}

	reply := f.asst.Process(context.Background(), "s1", "tell me about wineglass bay")
	require.Equal(t, "DuckDuckGo Search  (timeout fallback)", reply.Sources)
	require.Contains(t, reply.Answer, "Search Results:")
}

func TestAssistant_UnexpectedErrorHasNoFallback(t *testing.T) {
	f := newFixture(t, nil)
	f.ai.err = errors.New("provider exploded")

	reply := f.asst.Process(context.Background(), "s1", "tell me about cradle mountain")
	require.True(t, strings.HasPrefix(reply.Answer, "Unexpected error:"))
	require.Contains(t, reply.Answer, "provider exploded")
	require.Equal(t, "No sources due to error.", reply.Sources)
	require.Empty(t, f.searcher.queries)
}

func TestAssistant_ChatFormatsReply(t *testing.T) {
	f := newFixture(t, nil)

	out := f.asst.Chat(context.Background(), "s1", "what is the weather in hobart")
	require.True(t, strings.HasPrefix(out, "**Answer:** Current Weather for Hobart"))
	require.Contains(t, out, "\n\n**Sources:** WeatherTool")
}

func TestAssistant_ChatOmitsEmptySources(t *testing.T) {
	f := newFixture(t, nil)
	f.ai.replies = []core.Message{
		{Role: core.RoleAssistant, Content: "Plenty of time to explore the east coast."},
	}

	out := f.asst.Chat(context.Background(), "s1", "what should I pack for hiking")
	require.NotContains(t, out, "**Sources:**")
}

func TestAssistant_SessionIsolationAndReset(t *testing.T) {
	f := newFixture(t, nil)
	f.ai.replies = []core.Message{
		{Role: core.RoleAssistant, Content: "A solid first stop is the Salamanca Market."},
	}

	f.asst.Process(context.Background(), "alice", "where should I go first")
	f.asst.Process(context.Background(), "bob", "where should I go first")

	aliceMsgs, err := f.store.Messages(context.Background(), "alice", 0)
	require.NoError(t, err)
	require.Len(t, aliceMsgs, 2)

	confirmation := f.asst.Reset(context.Background(), "alice")
	require.Equal(t, "Chat memory cleared.", confirmation)

	aliceMsgs, err = f.store.Messages(context.Background(), "alice", 0)
	require.NoError(t, err)
	require.Empty(t, aliceMsgs)

	bobMsgs, err := f.store.Messages(context.Background(), "bob", 0)
	require.NoError(t, err)
	require.Len(t, bobMsgs, 2)
}

func TestReply_Format(t *testing.T) {
	withSources := Reply{Answer: "Go east.", Sources: "backpacker2.pdf"}
	require.Equal(t, "**Answer:** Go east.\n\n**Sources:** backpacker2.pdf", withSources.Format())

	bare := Reply{Answer: "Go east."}
	require.Equal(t, "**Answer:** Go east.", bare.Format())
}
