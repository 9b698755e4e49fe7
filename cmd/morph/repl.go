package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"

	"github.com/turkmorph/turkmorph"
)

// maxSuggestions bounds the lemma completions shown at once.
const maxSuggestions = 20

type repl struct {
	m       *turkmorph.Morphology
	lemmas  []prompt.Suggest
	command []prompt.Suggest
}

func newReplCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Analyze words interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := opts.morphology(cmd)
			if err != nil {
				return err
			}
			r := newRepl(m)
			fmt.Println("Turkish morphological analyzer")
			r.printHelp()

			p := prompt.New(
				r.executor,
				r.completer,
				prompt.OptionPrefix("morph >> "),
				prompt.OptionTitle("morph"),
			)
			p.Run()
			return nil
		},
	}
}

func newRepl(m *turkmorph.Morphology) *repl {
	r := &repl{
		m: m,
		command: []prompt.Suggest{
			{Text: ":lemma", Description: "show dictionary items of a lemma"},
			{Text: ":text", Description: "analyze the rest of the line as text"},
			{Text: ":stats", Description: "lexicon and cache statistics"},
			{Text: ":help", Description: "show help"},
			{Text: ":quit", Description: "exit"},
		},
	}
	for _, it := range m.Lexicon().Items() {
		r.lemmas = append(r.lemmas, prompt.Suggest{
			Text:        it.Lemma,
			Description: it.Primary.String(),
		})
	}
	sort.Slice(r.lemmas, func(i, j int) bool { return r.lemmas[i].Text < r.lemmas[j].Text })
	return r
}

func (r *repl) printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  <word> [word...]   - Analyze words")
	fmt.Println("  :text <sentence>   - Analyze running text")
	fmt.Println("  :lemma <lemma>     - Show dictionary items")
	fmt.Println("  :stats             - Lexicon and cache statistics")
	fmt.Println("  :help              - Show this help")
	fmt.Println("  :quit              - Exit")
}

func (r *repl) executor(input string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}
	parts := strings.Fields(input)
	if !strings.HasPrefix(parts[0], ":") {
		analyzeInputs(os.Stdout, r.m, parts, false)
		return
	}

	switch parts[0] {
	case ":text":
		analyzeInputs(os.Stdout, r.m, parts[1:], true)
	case ":lemma":
		if len(parts) < 2 {
			fmt.Println("Usage: :lemma <lemma>")
			return
		}
		items := r.m.Lexicon().Lookup(parts[1])
		if len(items) == 0 {
			fmt.Println(dimStyle.Render("not found"))
		}
		for _, it := range items {
			fmt.Println("  " + lemmaStyle.Render(it.ID) + "  " + it.String())
		}
	case ":stats":
		fmt.Printf("lexicon: %d items\n", r.m.Lexicon().Len())
		if s, ok := r.m.CacheStats(); ok {
			fmt.Printf("cache: %d entries, %d hits, %d misses\n", s.Len, s.Hits, s.Misses)
		}
	case ":help":
		r.printHelp()
	case ":quit", ":exit":
		fmt.Println("Hoşça kal!")
		os.Exit(0)
	default:
		fmt.Printf("Unknown command: %s\n", parts[0])
	}
}

func (r *repl) completer(d prompt.Document) []prompt.Suggest {
	word := d.GetWordBeforeCursor()
	if word == "" {
		return nil
	}
	if strings.HasPrefix(word, ":") {
		return prompt.FilterHasPrefix(r.command, word, true)
	}
	out := prompt.FilterHasPrefix(r.lemmas, word, true)
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
