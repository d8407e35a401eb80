package engagement

import (
	"strings"
	"testing"
)

func TestExtractKeywordCounts(t *testing.T) {
	t.Run("counts across suggestions", func(t *testing.T) {
		texts := []string{
			"More flexible office hours please",
			"Office coffee machine is broken",
			"office plants would be nice",
		}
		keywords := extractKeywordCounts(texts, MAX_KEYWORD_RESULTS)
		if len(keywords) == 0 {
			t.Fatal("expected keywords")
		}
		if keywords[0].Word != "office" || keywords[0].Count != 3 {
			t.Errorf("top keyword = %+v, want office x3", keywords[0])
		}
	})

	t.Run("stop words and short tokens are dropped", func(t *testing.T) {
		texts := []string{"the and for it is a an we do no"}
		keywords := extractKeywordCounts(texts, MAX_KEYWORD_RESULTS)
		if len(keywords) != 0 {
			t.Errorf("expected no keywords, got %+v", keywords)
		}
	})

	t.Run("punctuation and digits are stripped", func(t *testing.T) {
		texts := []string{"upgrade monitors!!! 27inch (please) up-grade"}
		keywords := extractKeywordCounts(texts, MAX_KEYWORD_RESULTS)
		for _, kw := range keywords {
			if strings.ContainsAny(kw.Word, "0123456789!-()") {
				t.Errorf("token not cleaned: %q", kw.Word)
			}
		}
	})

	t.Run("result capped at max", func(t *testing.T) {
		words := make([]string, 0, 50)
		for i := 0; i < 50; i++ {
			words = append(words, "keyword"+strings.Repeat("x", i+1))
		}
		keywords := extractKeywordCounts([]string{strings.Join(words, " ")}, MAX_KEYWORD_RESULTS)
		if len(keywords) != MAX_KEYWORD_RESULTS {
			t.Errorf("expected %d keywords, got %d", MAX_KEYWORD_RESULTS, len(keywords))
		}
	})

	t.Run("empty input yields empty list", func(t *testing.T) {
		keywords := extractKeywordCounts(nil, MAX_KEYWORD_RESULTS)
		if len(keywords) != 0 {
			t.Errorf("expected no keywords, got %+v", keywords)
		}
	})

	t.Run("sorted descending by count", func(t *testing.T) {
		texts := []string{
			"parking parking parking",
			"cafeteria cafeteria",
			"gym",
		}
		keywords := extractKeywordCounts(texts, MAX_KEYWORD_RESULTS)
		if len(keywords) != 3 {
			t.Fatalf("expected 3 keywords, got %d", len(keywords))
		}
		for i := 1; i < len(keywords); i++ {
			if keywords[i].Count > keywords[i-1].Count {
				t.Errorf("keywords not sorted: %+v", keywords)
			}
		}
		if keywords[0].Word != "parking" {
			t.Errorf("top keyword = %s, want parking", keywords[0].Word)
		}
	})
}
