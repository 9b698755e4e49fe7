// Command server exposes the Turkish morphological analyzer as a JSON REST API.
//
// Endpoints:
//
//	GET    /api/analyze?word=<word>
//	POST   /api/analyze/text   body: {"text":"..."}
//	GET    /api/lexicon?lemma=<lemma>[&pos=<Primary>]
//	GET    /api/custom
//	POST   /api/custom         body: {"line":"Tübitak [P:Abbrv]"}
//	DELETE /api/custom?line=<line>
//	GET    /api/health
//
// Configuration comes from flags, then from the environment (a .env file
// is loaded when present): TURKMORPH_ADDR, TURKMORPH_LEXICON (comma
// separated files), TURKMORPH_COMPILED, TURKMORPH_CUSTOM_DB,
// TURKMORPH_CACHE_SIZE, TURKMORPH_IGNORE_DIACRITICS, REDIS_ADDR,
// REDIS_PASSWORD, REDIS_DB. With REDIS_ADDR set custom dictionary lines
// live in Redis, otherwise in a bolt file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/turkmorph/turkmorph"
	"github.com/turkmorph/turkmorph/customdict"
	"github.com/turkmorph/turkmorph/lexfile"
)

// ---- JSON response types ------------------------------------------------

type analysisJSON struct {
	*turkmorph.SingleAnalysis
	Text string `json:"text"`
}

type wordResponse struct {
	Input      string         `json:"input"`
	Normalized string         `json:"normalized"`
	Analyses   []analysisJSON `json:"analyses"`
}

type textResponse struct {
	Results []wordResponse `json:"results"`
}

type lexiconResponse struct {
	Lemma string                      `json:"lemma"`
	Items []*turkmorph.DictionaryItem `json:"items"`
}

type customResponse struct {
	Lines []string `json:"lines"`
}

type healthResponse struct {
	Status           string                `json:"status"`
	LexiconSize      int                   `json:"lexicon_size"`
	IgnoreDiacritics bool                  `json:"ignore_diacritics"`
	Cache            *turkmorph.CacheStats `json:"cache,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toWordResponse(wa *turkmorph.WordAnalysis) wordResponse {
	out := make([]analysisJSON, 0, len(wa.Analyses))
	for _, a := range wa.Analyses {
		out = append(out, analysisJSON{SingleAnalysis: a, Text: a.String()})
	}
	return wordResponse{Input: wa.Input, Normalized: wa.Normalized, Analyses: out}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return def
}

// ---- server state -------------------------------------------------------

// server holds the current Morphology. Changing the custom dictionary
// builds a new one and swaps it in; requests in flight keep the old one.
type server struct {
	base  *turkmorph.RootLexicon
	store customdict.Store
	cfg   turkmorph.Config

	morph   atomic.Pointer[turkmorph.Morphology]
	rebuild sync.Mutex
}

// reload rebuilds the Morphology from the base lexicon and the custom
// dictionary.
func (s *server) reload(ctx context.Context) error {
	s.rebuild.Lock()
	defer s.rebuild.Unlock()

	custom, err := customdict.Lexicon(ctx, s.store)
	if err != nil {
		return fmt.Errorf("custom dictionary: %w", err)
	}
	cfg := s.cfg
	cfg.Lexicon = s.base.Merge(custom)
	m, err := turkmorph.New(cfg)
	if err != nil {
		return err
	}
	s.morph.Store(m)
	log.Printf("morphology ready: %d items (%d custom)", cfg.Lexicon.Len(), custom.Len())
	return nil
}

// ---- handlers -----------------------------------------------------------

func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	word := r.URL.Query().Get("word")
	if word == "" {
		writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
		return
	}
	wa := s.morph.Load().Analyze(word)
	status := http.StatusOK
	if !wa.IsCorrect() {
		status = http.StatusNotFound
	}
	writeJSON(w, status, toWordResponse(wa))
}

func (s *server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
		writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
		return
	}
	results := s.morph.Load().AnalyzeText(body.Text)
	out := make([]wordResponse, 0, len(results))
	for _, wa := range results {
		out = append(out, toWordResponse(wa))
	}
	writeJSON(w, http.StatusOK, textResponse{Results: out})
}

func (s *server) handleLexicon(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	lemma := r.URL.Query().Get("lemma")
	if lemma == "" {
		writeError(w, http.StatusBadRequest, "missing 'lemma' query parameter")
		return
	}
	lex := s.morph.Load().Lexicon()
	var items []*turkmorph.DictionaryItem
	if name := r.URL.Query().Get("pos"); name != "" {
		pos, ok := turkmorph.ParsePrimaryPos(name)
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown part of speech %q", name))
			return
		}
		items = lex.Find(lemma, pos)
	} else {
		items = lex.Lookup(lemma)
	}
	if len(items) == 0 {
		writeError(w, http.StatusNotFound, fmt.Sprintf("lemma %q not found", lemma))
		return
	}
	writeJSON(w, http.StatusOK, lexiconResponse{Lemma: lemma, Items: items})
}

func (s *server) handleCustom(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	switch r.Method {
	case http.MethodGet:
	case http.MethodPost:
		var body struct {
			Line string `json:"line"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Line) == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'line' field")
			return
		}
		if err := s.store.Add(ctx, body.Line); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	case http.MethodDelete:
		line := r.URL.Query().Get("line")
		if line == "" {
			writeError(w, http.StatusBadRequest, "missing 'line' query parameter")
			return
		}
		if err := s.store.Remove(ctx, line); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	default:
		writeError(w, http.StatusMethodNotAllowed, "GET, POST or DELETE required")
		return
	}

	if r.Method != http.MethodGet {
		if err := s.reload(ctx); err != nil {
			log.Printf("reload: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}
	lines, err := s.store.All(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, customResponse{Lines: lines})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	m := s.morph.Load()
	resp := healthResponse{
		Status:           "ok",
		LexiconSize:      m.Lexicon().Len(),
		IgnoreDiacritics: m.IgnoresDiacritics(),
	}
	if stats, ok := m.CacheStats(); ok {
		resp.Cache = &stats
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze/text", s.handleAnalyzeText)
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/lexicon", s.handleLexicon)
	mux.HandleFunc("/api/custom", s.handleCustom)
	mux.HandleFunc("/api/health", s.handleHealth)

	c := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(mux)
}

// ---- main ---------------------------------------------------------------

func loadBase(files, compiled string) (*turkmorph.RootLexicon, error) {
	var lex *turkmorph.RootLexicon
	if compiled != "" {
		l, err := lexfile.Load(compiled)
		if err != nil {
			return nil, err
		}
		lex = l
	}
	if files != "" {
		l, err := turkmorph.LoadFiles(strings.Split(files, ",")...)
		if err != nil {
			return nil, err
		}
		lex = lex.Merge(l)
	}
	if lex == nil {
		lex = turkmorph.NewRootLexicon()
	}
	return lex, nil
}

func openStore(boltPath string) (customdict.Store, error) {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("redis %s: %w", addr, err)
		}
		log.Printf("custom dictionary in redis %s", addr)
		return customdict.NewRedis(client), nil
	}
	log.Printf("custom dictionary in %s", boltPath)
	return customdict.OpenBolt(boltPath)
}

func main() {
	_ = godotenv.Load()

	addr := flag.String("addr", getenv("TURKMORPH_ADDR", ":8080"), "listen address")
	files := flag.String("lexicon", getenv("TURKMORPH_LEXICON", ""), "comma separated dictionary files (.txt, .yaml)")
	compiled := flag.String("compiled", getenv("TURKMORPH_COMPILED", ""), "compiled lexicon file")
	customDB := flag.String("custom-db", getenv("TURKMORPH_CUSTOM_DB", "custom.db"), "bolt file for custom dictionary lines")
	ignore := flag.Bool("ignore-diacritics", getEnvBool("TURKMORPH_IGNORE_DIACRITICS", false), "let ASCII letters match Turkish ones")
	cacheSize := flag.Int("cache-size", getEnvInt("TURKMORPH_CACHE_SIZE", turkmorph.DefaultCacheSize), "analysis cache size")
	flag.Parse()

	log.Printf("loading lexicon …")
	base, err := loadBase(*files, *compiled)
	if err != nil {
		log.Fatalf("failed to load lexicon: %v", err)
	}
	store, err := openStore(*customDB)
	if err != nil {
		log.Fatalf("failed to open custom dictionary: %v", err)
	}
	defer store.Close()

	s := &server{
		base:  base,
		store: store,
		cfg: turkmorph.Config{
			IgnoreDiacritics: *ignore,
			CacheSize:        *cacheSize,
		},
	}
	if err := s.reload(context.Background()); err != nil {
		log.Fatalf("failed to build morphology: %v", err)
	}

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, s.routes()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
