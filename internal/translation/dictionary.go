package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

const (
	dictionaryAPIURL  = "https://api.dictionaryapi.dev/api/v2/entries/de/"
	dictionaryTimeout = 10 * time.Second
)

// Dictionary looks up German word definitions from the free dictionary API.
// Calls go through a circuit breaker so a flaky upstream stops costing a
// timeout per word; the breaker needs several consecutive failures before it
// opens, a single timeout does not block the next lookup.
type Dictionary struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

// dictionaryEntry mirrors the relevant part of the API response.
type dictionaryEntry struct {
	Word     string `json:"word"`
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string `json:"definition"`
		} `json:"definitions"`
	} `json:"meanings"`
}

// NewDictionary creates a dictionary client.
func NewDictionary() *Dictionary {
	return &Dictionary{
		baseURL:    dictionaryAPIURL,
		httpClient: &http.Client{Timeout: dictionaryTimeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "dictionary",
			Timeout: 30 * time.Second,
		}),
	}
}

// Lookup fetches a short gloss for a German word. An unknown word returns an
// empty string without error.
func (d *Dictionary) Lookup(ctx context.Context, word string) (string, error) {
	result, err := d.breaker.Execute(func() (interface{}, error) {
		return d.fetch(ctx, word)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (d *Dictionary) fetch(ctx context.Context, word string) (string, error) {
	reqURL := d.baseURL + url.PathEscape(strings.ToLower(word))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("dictionary request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("dictionary API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var entries []dictionaryEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return "", fmt.Errorf("failed to parse dictionary response: %w", err)
	}
	if len(entries) == 0 {
		return "", nil
	}

	return formatMeanings(entries[0]), nil
}

// formatMeanings condenses an entry into "pos: def; def | pos: def" form,
// capped at two meanings with two definitions each.
func formatMeanings(entry dictionaryEntry) string {
	var meanings []string
	for _, meaning := range entry.Meanings {
		var defs []string
		for i, def := range meaning.Definitions {
			if i >= 2 {
				break
			}
			defs = append(defs, def.Definition)
		}
		if meaning.PartOfSpeech != "" && len(defs) > 0 {
			meanings = append(meanings, fmt.Sprintf("%s: %s", meaning.PartOfSpeech, strings.Join(defs, "; ")))
		}
		if len(meanings) >= 2 {
			break
		}
	}
	return strings.Join(meanings, " | ")
}
