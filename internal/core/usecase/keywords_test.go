package usecase

import (
	"strings"
	"testing"
)

func TestExtractKeywordsFiltersAndDeduplicates(t *testing.T) {
	text := "La nostra azienda offre consulenza, consulenza e formazione. Sono servizi per le aziende che hanno bisogno di innovazione."

	keywords := extractKeywords(text)

	want := []string{"nostra", "azienda", "offre", "consulenza", "formazione", "servizi", "aziende", "bisogno", "innovazione"}
	if len(keywords) != len(want) {
		t.Fatalf("expected %v, got %v", want, keywords)
	}
	for i, kw := range want {
		if keywords[i] != kw {
			t.Fatalf("expected keyword %q at %d, got %q", kw, i, keywords[i])
		}
	}
}

func TestExtractKeywordsDropsShortWordsAndStopwords(t *testing.T) {
	for _, kw := range extractKeywords("sono come la le di e che questo tutte with have from") {
		t.Fatalf("expected no keywords, got %q", kw)
	}
}

func TestExtractKeywordsCapsAtTwenty(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 30; i++ {
		b.WriteString("parola")
		b.WriteString(strings.Repeat("x", i+1))
		b.WriteString(" ")
	}

	keywords := extractKeywords(b.String())
	if len(keywords) != maxKeywordsPerChunk {
		t.Fatalf("expected %d keywords, got %d", maxKeywordsPerChunk, len(keywords))
	}
}

func TestExtractEntitiesJoinsCapitalizedRuns(t *testing.T) {
	text := "Il team di Metodo Innova ha sede a Milano e collabora con Studio Rossi Associati dal 2021. IBM non è un cliente."

	entities := extractEntities(text)

	want := []string{"Il", "Metodo Innova", "Milano", "Studio Rossi Associati"}
	if len(entities) != len(want) {
		t.Fatalf("expected %v, got %v", want, entities)
	}
	for i, e := range want {
		if entities[i] != e {
			t.Fatalf("expected entity %q at %d, got %q", e, i, entities[i])
		}
	}
}

func TestExtractEntitiesSkipsAcronyms(t *testing.T) {
	for _, e := range extractEntities("NASA IBM API") {
		t.Fatalf("expected no entities for acronyms, got %q", e)
	}
}

func TestJaccardSimilarity(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "analisi dei dati aziendali", "analisi dei dati aziendali", 1},
		{"disjoint", "analisi dati", "formazione personale", 0},
		{"empty side", "", "qualcosa", 0},
		{"half overlap", "alfa beta", "beta gamma", 1.0 / 3.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := jaccardSimilarity(tc.a, tc.b)
			if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("jaccardSimilarity(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestJaccardSimilarityIgnoresPunctuationAndCase(t *testing.T) {
	if got := jaccardSimilarity("Analisi, dei DATI!", "analisi dei dati"); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
}
