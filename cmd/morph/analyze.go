package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/turkmorph/turkmorph"
)

var (
	wordStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	lemmaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newAnalyzeCmd(opts *options) *cobra.Command {
	var text bool
	cmd := &cobra.Command{
		Use:   "analyze [words...]",
		Short: "Print every analysis of each word; reads stdin lines without arguments",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := opts.morphology(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				analyzeInputs(out, m, args, text)
				return nil
			}
			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				line := strings.TrimSpace(sc.Text())
				if line == "" {
					continue
				}
				analyzeInputs(out, m, []string{line}, true)
			}
			return sc.Err()
		},
	}
	cmd.Flags().BoolVar(&text, "text", false, "treat arguments as running text")
	return cmd
}

func analyzeInputs(w io.Writer, m *turkmorph.Morphology, inputs []string, text bool) {
	if text {
		for _, wa := range m.AnalyzeText(strings.Join(inputs, " ")) {
			render(w, wa)
		}
		return
	}
	for _, word := range inputs {
		render(w, m.Analyze(word))
	}
}

// render prints the word, then one line per analysis with the lemma
// highlighted.
func render(w io.Writer, wa *turkmorph.WordAnalysis) {
	fmt.Fprintln(w, wordStyle.Render(wa.Input))
	if !wa.IsCorrect() {
		fmt.Fprintln(w, "  "+dimStyle.Render("(no analysis)"))
		return
	}
	for _, a := range wa.Analyses {
		s := a.String()
		if end := strings.Index(s, "]"); end >= 0 {
			s = lemmaStyle.Render(s[:end+1]) + s[end+1:]
		}
		fmt.Fprintln(w, "  "+s)
	}
}
