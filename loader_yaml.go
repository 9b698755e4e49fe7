package turkmorph

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlItem is one entry of a YAML dictionary.
type yamlItem struct {
	Lemma         string   `yaml:"lemma"`
	Pos           string   `yaml:"pos"`
	Secondary     string   `yaml:"secondary"`
	Attributes    []string `yaml:"attributes"`
	Pronunciation string   `yaml:"pronunciation"`
	Root          string   `yaml:"root"`
}

// line renders the entry in dictionary line format so both formats share
// one parser and one set of inference rules.
func (y yamlItem) line() string {
	var fields []string
	if y.Pos != "" {
		p := "P:" + y.Pos
		if y.Secondary != "" {
			p += "," + y.Secondary
		}
		fields = append(fields, p)
	}
	if len(y.Attributes) > 0 {
		fields = append(fields, "A:"+strings.Join(y.Attributes, ","))
	}
	if y.Pronunciation != "" {
		fields = append(fields, "Pr:"+y.Pronunciation)
	}
	if y.Root != "" {
		fields = append(fields, "R:"+y.Root)
	}
	if len(fields) == 0 {
		return y.Lemma
	}
	return y.Lemma + " [" + strings.Join(fields, ";") + "]"
}

// ParseYAML reads a dictionary in YAML form:
//
//	items:
//	  - lemma: dört
//	    pos: Num
//	    secondary: Card
//	    attributes: [Voicing]
//	  - lemma: Tübitak
//	    pos: Abbrv
func ParseYAML(data []byte) (*RootLexicon, error) {
	var doc struct {
		Items []yamlItem `yaml:"items"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	items := make([]*DictionaryItem, 0, len(doc.Items))
	for i, y := range doc.Items {
		if strings.TrimSpace(y.Lemma) == "" {
			return nil, fmt.Errorf("item %d: missing lemma", i+1)
		}
		item, err := ParseLine(y.line())
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		items = append(items, item)
	}
	return NewRootLexicon(items...), nil
}

// LoadYAML reads a YAML dictionary file.
func LoadYAML(path string) (*RootLexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	lex, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lex, nil
}
