package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jayani-123/tasbot/internal/config"
)

func TestNewSearcher(t *testing.T) {
	s, err := NewSearcher(&config.SearchConfig{Backend: "duckduckgo"})
	require.NoError(t, err)
	assert.IsType(t, &DuckDuckGo{}, s)

	s, err = NewSearcher(&config.SearchConfig{Backend: ""})
	require.NoError(t, err)
	assert.IsType(t, &DuckDuckGo{}, s)

	s, err = NewSearcher(&config.SearchConfig{Backend: "tavily", TavilyAPIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &Tavily{}, s)

	_, err = NewSearcher(&config.SearchConfig{Backend: "tavily"})
	require.Error(t, err)

	_, err = NewSearcher(&config.SearchConfig{Backend: "bing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown search backend")
}

func TestDuckDuckGo_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tasmania devil", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		_, _ = w.Write([]byte(`{
			"Heading": "Tasmanian devil",
			"AbstractText": "The Tasmanian devil is a carnivorous marsupial.",
			"AbstractSource": "Wikipedia",
			"AbstractURL": "https://en.wikipedia.org/wiki/Tasmanian_devil",
			"RelatedTopics": [
				{"Text": "Sarcophilus - genus of the devil", "FirstURL": "https://example.com/sarcophilus"},
				{"Text": "", "FirstURL": ""},
				{"Text": "Devil facial tumour disease", "FirstURL": "https://example.com/dftd"},
				{"Text": "Extra topic beyond the cap", "FirstURL": "https://example.com/extra"}
			]
		}`))
	}))
	defer srv.Close()

	d := NewDuckDuckGo()
	d.baseURL = srv.URL

	results, err := d.Search(context.Background(), "tasmania devil", 3)

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "Wikipedia", results[0].Title)
	assert.Equal(t, "The Tasmanian devil is a carnivorous marsupial.", results[0].Snippet)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Tasmanian_devil", results[0].URL)
	assert.Equal(t, "https://example.com/sarcophilus", results[1].URL)
	assert.Equal(t, "https://example.com/dftd", results[2].URL)
}

func TestDuckDuckGo_SearchEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"AbstractText": "", "RelatedTopics": []}`))
	}))
	defer srv.Close()

	d := NewDuckDuckGo()
	d.baseURL = srv.URL

	results, err := d.Search(context.Background(), "qzxv", 3)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDuckDuckGo_FlattensHTMLAbstract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"Heading": "Hobart",
			"AbstractText": "",
			"Abstract": "<b>Hobart</b> is the capital of Tasmania.",
			"AbstractURL": "https://en.wikipedia.org/wiki/Hobart",
			"Results": [
				{"Text": "Official site", "Result": "<a href=\"https://hobartcity.com.au\">Official site</a>", "FirstURL": "https://hobartcity.com.au"}
			]
		}`))
	}))
	defer srv.Close()

	d := NewDuckDuckGo()
	d.baseURL = srv.URL

	results, err := d.Search(context.Background(), "hobart", 3)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.NotContains(t, results[0].Snippet, "<b>")
	assert.Contains(t, results[0].Snippet, "Hobart")
	assert.NotContains(t, results[1].Snippet, "<a")
}

func TestTavily_Search(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{
			"results": [
				{"title": "MONA", "url": "https://mona.net.au", "content": "Museum of Old and New Art in Hobart."}
			]
		}`))
	}))
	defer srv.Close()

	tv := NewTavily("secret")
	tv.baseURL = srv.URL

	results, err := tv.Search(context.Background(), "mona hobart", 3)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "MONA", results[0].Title)
	assert.Equal(t, "https://mona.net.au", results[0].URL)
	assert.Equal(t, "secret", gotBody["api_key"])
	assert.Equal(t, float64(3), gotBody["max_results"])
	assert.Equal(t, "basic", gotBody["search_depth"])
}

func TestTavily_SearchAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	tv := NewTavily("bad")
	tv.baseURL = srv.URL

	_, err := tv.Search(context.Background(), "q", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 401")
}
