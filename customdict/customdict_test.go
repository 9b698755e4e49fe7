package customdict

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/redis/go-redis/v9"
)

func openBolt(t *testing.T) *BoltStore {
	t.Helper()
	s, err := OpenBolt(filepath.Join(t.TempDir(), "custom.db"))
	if err != nil {
		t.Fatalf("OpenBolt: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// exercise runs the Store contract against s, which must start empty.
func exercise(t *testing.T, s Store) {
	ctx := context.Background()
	for _, line := range []string{"Tübitak [P:Abbrv]", "  kitap  ", "kitap", "zekâ"} {
		if err := s.Add(ctx, line); err != nil {
			t.Fatalf("Add(%q): %v", line, err)
		}
	}
	got, err := s.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Tübitak [P:Abbrv]", "kitap", "zekâ"}
	if !slices.Equal(got, want) {
		t.Errorf("All() = %q, want %q", got, want)
	}

	if err := s.Add(ctx, "kitap [P:Bogus]"); err == nil {
		t.Error("Add accepted an invalid line")
	}

	if err := s.Remove(ctx, "kitap"); err != nil {
		t.Fatal(err)
	}
	if err := s.Remove(ctx, "absent"); err != nil {
		t.Fatalf("Remove(absent): %v", err)
	}
	lex, err := Lexicon(ctx, s)
	if err != nil {
		t.Fatal(err)
	}
	if lex.Len() != 2 || lex.Contains("kitap") {
		t.Errorf("Lexicon() = %v", lex.Items())
	}
}

func TestBoltStore(t *testing.T) {
	exercise(t, openBolt(t))
}

func TestBoltStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.db")
	s, err := OpenBolt(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Add(context.Background(), "Ankara"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = OpenBolt(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	lines, err := s.All(context.Background())
	if err != nil || !slices.Equal(lines, []string{"Ankara"}) {
		t.Errorf("reopened store = %q, %v", lines, err)
	}
}

func TestValidate(t *testing.T) {
	if got, err := Validate("  ev "); err != nil || got != "ev" {
		t.Errorf("Validate(ev) = %q, %v", got, err)
	}
	for _, line := range []string{"", "ev [A:Nope]", "[P:Noun]"} {
		if _, err := Validate(line); err == nil {
			t.Errorf("Validate(%q) succeeded", line)
		}
	}
}

// TestRedisStore needs a disposable Redis; set TURKMORPH_TEST_REDIS to
// its address to run it. The test deletes the custom_dict key.
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("TURKMORPH_TEST_REDIS")
	if addr == "" {
		t.Skip("TURKMORPH_TEST_REDIS not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx := context.Background()
	if err := client.Del(ctx, Key).Err(); err != nil {
		t.Fatalf("reset %s: %v", Key, err)
	}
	s := NewRedis(client)
	defer s.Close()
	exercise(t, s)
}
