package translation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const dictionaryFixture = `[
  {
    "word": "apfel",
    "meanings": [
      {
        "partOfSpeech": "noun",
        "definitions": [
          {"definition": "apple"},
          {"definition": "fruit of the apple tree"},
          {"definition": "a third definition that should be dropped"}
        ]
      },
      {
        "partOfSpeech": "verb",
        "definitions": [{"definition": "nonsense entry"}]
      },
      {
        "partOfSpeech": "adjective",
        "definitions": [{"definition": "should be capped away"}]
      }
    ]
  }
]`

func newTestDictionary(handler http.HandlerFunc) (*Dictionary, *httptest.Server) {
	server := httptest.NewServer(handler)
	d := NewDictionary()
	d.baseURL = server.URL + "/"
	return d, server
}

func TestDictionaryLookup(t *testing.T) {
	d, server := newTestDictionary(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/apfel") {
			t.Errorf("Expected lowercased word in path, got %s", r.URL.Path)
		}
		w.Write([]byte(dictionaryFixture))
	})
	defer server.Close()

	meaning, err := d.Lookup(context.Background(), "Apfel")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	if !strings.Contains(meaning, "noun: apple; fruit of the apple tree") {
		t.Errorf("Unexpected meaning format: %q", meaning)
	}
	if strings.Contains(meaning, "third definition") {
		t.Errorf("Definitions beyond two must be dropped, got %q", meaning)
	}
	if strings.Contains(meaning, "adjective") {
		t.Errorf("Meanings beyond two must be dropped, got %q", meaning)
	}
}

func TestDictionaryLookup_NotFound(t *testing.T) {
	d, server := newTestDictionary(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer server.Close()

	meaning, err := d.Lookup(context.Background(), "xyzzy")
	if err != nil {
		t.Fatalf("Unknown words should not error, got: %v", err)
	}
	if meaning != "" {
		t.Errorf("Expected empty meaning for unknown word, got %q", meaning)
	}
}

func TestDictionaryLookup_ServerError(t *testing.T) {
	d, server := newTestDictionary(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer server.Close()

	if _, err := d.Lookup(context.Background(), "apfel"); err == nil {
		t.Error("Expected error for server failure")
	}
}

func TestDictionaryLookup_SingleFailureDoesNotOpenBreaker(t *testing.T) {
	calls := 0
	d, server := newTestDictionary(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(dictionaryFixture))
	})
	defer server.Close()

	if _, err := d.Lookup(context.Background(), "apfel"); err == nil {
		t.Fatal("Expected first lookup to fail")
	}

	// The next lookup must still reach the upstream.
	meaning, err := d.Lookup(context.Background(), "apfel")
	if err != nil {
		t.Fatalf("Second lookup failed: %v", err)
	}
	if meaning == "" {
		t.Error("Expected a meaning from the recovered upstream")
	}
	if calls != 2 {
		t.Errorf("Expected 2 upstream calls, got %d", calls)
	}
}
