package turkmorph

import "testing"

func TestSpokenReadings(t *testing.T) {
	tests := []struct {
		name string
		r    Spoken
		stem string
		want string
	}{
		{"roman", RomanRecognizer{}, "XXIV", "yirmi dört"},
		{"roman ordinal", RomanRecognizer{}, "XXIV.", "yirmi dördüncü"},
		{"date", DateRecognizer, "1.1.2014", "bir bir iki bin on dört"},
		{"date slash", DateRecognizer, "01/02/2014", "bir iki iki bin on dört"},
		{"date iso", DateRecognizer, "2014-01-02", "iki bin on dört bir iki"},
		{"date bad month", DateRecognizer, "1.13.2014", ""},
		{"date mixed separators", DateRecognizer, "1.1/2014", ""},
		{"clock", ClockRecognizer, "20:30", "yirmi otuz"},
		{"clock full hour", ClockRecognizer, "20:00", "yirmi"},
		{"clock seconds", ClockRecognizer, "09:05:07", "dokuz beş yedi"},
		{"clock bad hour", ClockRecognizer, "24:00", ""},
		{"ratio", RatioRecognizer, "1/2", "bir bölü iki"},
		{"range", RangeRecognizer, "3-5", "üç beş"},
		{"percentage", PercentageRecognizer, "%2,5", "yüzde iki virgül beş"},
		{"percentage integer", PercentageRecognizer, "%50", "yüzde elli"},
		{"integer", NumberRecognizer{}, "2014", "iki bin on dört"},
		{"thousands", NumberRecognizer{}, "1.000.000", "bir milyon"},
		{"real", NumberRecognizer{}, "2,5", "iki virgül beş"},
		{"ordinal", NumberRecognizer{}, "3.", "üçüncü"},
		{"not a number", NumberRecognizer{}, "3a", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Spoken(tt.stem); got != tt.want {
				t.Errorf("Spoken(%q) = %q, want %q", tt.stem, got, tt.want)
			}
		})
	}
}

func TestNumberSecondary(t *testing.T) {
	for stem, want := range map[string]SecondaryPos{
		"2014": SecCardinal,
		"2,5":  SecReal,
		"3.":   SecOrdinal,
	} {
		it := NumberRecognizer{}.Synthesize(stem)
		if it == nil || it.Secondary != want || !it.HasAttribute(AttrDummy) {
			t.Errorf("Synthesize(%q) = %v, want secondary %s", stem, it, want)
		}
	}
}

func TestPatternRecognizers(t *testing.T) {
	tests := []struct {
		r     Recognizer
		match []string
		miss  []string
	}{
		{EmoticonRecognizer{}, []string{":)", ":-(", "<3"}, []string{":))", "ev"}},
		{EmailRecognizer, []string{"ali@example.com", "ayşe.k@posta.com.tr"}, []string{"ali@", "@ali", "ali@com"}},
		{URLRecognizer, []string{"https://example.com/a?b=c", "www.example.com"}, []string{"example.com", "www.example.com'a"}},
		{HashTagRecognizer, []string{"#türkiye", "#go_lang"}, []string{"#", "#a-b"}},
		{MentionRecognizer, []string{"@ali", "@ayşe_k"}, []string{"@", "ali"}},
	}
	for _, tt := range tests {
		for _, s := range tt.match {
			if !tt.r.Matches(s) {
				t.Errorf("%s: %q does not match", tt.r.Category(), s)
			}
			if it := tt.r.Synthesize(s); it == nil || it.Secondary != tt.r.Category() {
				t.Errorf("%s: Synthesize(%q) = %v", tt.r.Category(), s, it)
			}
		}
		for _, s := range tt.miss {
			if tt.r.Matches(s) {
				t.Errorf("%s: %q matches", tt.r.Category(), s)
			}
		}
	}
}

func TestProperNounRecognizer(t *testing.T) {
	r := ProperNounRecognizer{Lexicon: mustLines(t, "Ankara")}
	for _, s := range []string{"ABD", "Blah-Foo", "Tübitak", "u.s.a"} {
		if !r.Matches(s) {
			t.Errorf("%q does not match", s)
		}
	}
	for _, s := range []string{"", "Ankara", "kitap", "XIV", "A4", "--"} {
		if r.Matches(s) {
			t.Errorf("%q matches", s)
		}
	}

	abd := r.Synthesize("ABD")
	if abd.Secondary != SecAbbreviation || abd.Pronunciation != "abede" {
		t.Errorf("ABD = %+v", abd)
	}
	if !abd.allowsApostrophe() {
		t.Error("synthesized abbreviation does not allow an apostrophe")
	}
	if it := r.Synthesize("Blah-Foo"); it.Secondary != SecProperNoun || it.Pronunciation != "" {
		t.Errorf("Blah-Foo = %+v", it)
	}
	if _, ok := Recognizer(r).(ApostropheOnly); !ok {
		t.Error("proper noun recognizer applies without an apostrophe")
	}
}

func TestDefaultRecognizersOrder(t *testing.T) {
	rs := DefaultRecognizers(nil)
	if rs[0].Category() != SecRomanNumeral {
		t.Errorf("first recognizer = %s", rs[0].Category())
	}
	if last := rs[len(rs)-1]; last.Category() != SecProperNoun {
		t.Errorf("last recognizer = %s", last.Category())
	}
}
