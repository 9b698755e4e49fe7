package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/turkmorph/turkmorph"
	"github.com/turkmorph/turkmorph/customdict"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	base, err := turkmorph.LoadLines("kitap", "Ankara", "gelmek")
	if err != nil {
		t.Fatal(err)
	}
	store, err := customdict.OpenBolt(filepath.Join(t.TempDir(), "custom.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	s := &server{base: base, store: store}
	if err := s.reload(context.Background()); err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(s.routes())
	t.Cleanup(ts.Close)
	return ts
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return v
}

func TestAnalyzeEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/analyze?word=" + url.QueryEscape("kitabı"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body := decode[struct {
		Analyses []struct {
			Text string `json:"text"`
			Stem string `json:"stem"`
		} `json:"analyses"`
	}](t, resp)
	if len(body.Analyses) == 0 {
		t.Fatal("no analyses for kitabı")
	}
	for _, a := range body.Analyses {
		t.Logf("%s", a.Text)
		if a.Stem != "kitab" {
			t.Errorf("stem = %q", a.Stem)
		}
	}

	resp, err = http.Get(ts.URL + "/api/analyze?word=xyzzy")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown word status = %d, want 404", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/api/analyze")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing word status = %d, want 400", resp.StatusCode)
	}
}

func TestAnalyzeTextEndpoint(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Post(ts.URL+"/api/analyze/text", "application/json",
		strings.NewReader(`{"text":"Ankara'da kitap geldi."}`))
	if err != nil {
		t.Fatal(err)
	}
	body := decode[textResponse](t, resp)
	if len(body.Results) != 3 {
		t.Fatalf("results = %d, want 3", len(body.Results))
	}
	for _, r := range body.Results {
		if len(r.Analyses) == 0 {
			t.Errorf("%s: no analyses", r.Input)
		}
	}
}

func TestCustomEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/custom", "application/json",
		strings.NewReader(`{"line":"zekâ"}`))
	if err != nil {
		t.Fatal(err)
	}
	body := decode[customResponse](t, resp)
	if len(body.Lines) != 1 || body.Lines[0] != "zekâ" {
		t.Errorf("lines = %q", body.Lines)
	}

	resp, err = http.Get(ts.URL + "/api/analyze?word=" + url.QueryEscape("zekâ"))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("zekâ after adding: status %d", resp.StatusCode)
	}

	resp, err = http.Post(ts.URL+"/api/custom", "application/json",
		strings.NewReader(`{"line":"ev [P:Bogus]"}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("invalid line status = %d, want 400", resp.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/api/custom?line="+url.QueryEscape("zekâ"), nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	if body := decode[customResponse](t, resp); len(body.Lines) != 0 {
		t.Errorf("lines after delete = %q", body.Lines)
	}
	resp, err = http.Get(ts.URL + "/api/analyze?word=" + url.QueryEscape("zekâ"))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("zekâ after removal: status %d, want 404", resp.StatusCode)
	}
}

func TestLexiconAndHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/lexicon?lemma=gelmek&pos=Verb")
	if err != nil {
		t.Fatal(err)
	}
	lex := decode[struct {
		Items []struct {
			ID   string `json:"id"`
			Root string `json:"root"`
		} `json:"items"`
	}](t, resp)
	if len(lex.Items) != 1 || lex.Items[0].Root != "gel" {
		t.Errorf("items = %+v", lex.Items)
	}

	resp, err = http.Get(ts.URL + "/api/lexicon?lemma=gelmek&pos=Bogus")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad pos status = %d", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatal(err)
	}
	h := decode[healthResponse](t, resp)
	if h.Status != "ok" || h.LexiconSize != 3 || h.Cache == nil {
		t.Errorf("health = %+v", h)
	}
}
