package engagement

import (
	"errors"
	"regexp"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	engagementdb "github.com/engage-framework/engage-backend/pkg/db/engagement"
	engagementTypes "github.com/engage-framework/engage-backend/pkg/engagement/types"
)

const MAX_KEYWORD_RESULTS = 30

type NewSuggestion struct {
	Text     string   `json:"text"`
	Tags     []string `json:"tags,omitempty"`
	Category string   `json:"category,omitempty"`
	UserID   string   `json:"userId,omitempty"`
}

type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

var validSuggestionStatuses = []string{
	engagementTypes.SUGGESTION_STATUS_OPEN,
	engagementTypes.SUGGESTION_STATUS_IN_PROGRESS,
	engagementTypes.SUGGESTION_STATUS_RESOLVED,
	engagementTypes.SUGGESTION_STATUS_DISMISSED,
}

// CreateSuggestion stores a new suggestion. The channel is anonymous by
// default, the submitter is only recorded when explicitly provided.
func CreateSuggestion(tenantID string, suggestionDef NewSuggestion) (suggestion engagementTypes.Suggestion, err error) {
	if strings.TrimSpace(suggestionDef.Text) == "" {
		return suggestion, NewInvalidInputError("suggestion text is required")
	}

	suggestion = engagementTypes.Suggestion{
		Text:      suggestionDef.Text,
		Tags:      suggestionDef.Tags,
		Category:  suggestionDef.Category,
		Status:    engagementTypes.SUGGESTION_STATUS_OPEN,
		UserID:    suggestionDef.UserID,
		CreatedAt: time.Now(),
	}
	if err := engagementDBService.CreateSuggestion(tenantID, &suggestion); err != nil {
		return suggestion, err
	}
	return suggestion, nil
}

func GetSuggestions(tenantID string, status string, page int64, limit int64) ([]engagementTypes.Suggestion, *engagementdb.PaginationInfos, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return engagementDBService.GetSuggestions(tenantID, filter, page, limit)
}

func GetSuggestion(tenantID string, suggestionID string) (engagementTypes.Suggestion, error) {
	suggestion, err := engagementDBService.GetSuggestionByID(tenantID, suggestionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return suggestion, NewNotFoundError("suggestion not found")
		}
		return suggestion, err
	}
	return suggestion, nil
}

func UpdateSuggestionStatus(tenantID string, suggestionID string, status string, adminNote string) error {
	valid := false
	for _, s := range validSuggestionStatuses {
		if s == status {
			valid = true
			break
		}
	}
	if !valid {
		return NewInvalidInputError("unknown suggestion status")
	}

	err := engagementDBService.UpdateSuggestionStatus(tenantID, suggestionID, status, adminNote)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return NewNotFoundError("suggestion not found")
		}
		return err
	}
	return nil
}

// GetKeywordFrequency tokenizes all suggestion texts of the tenant into a
// keyword frequency table.
func GetKeywordFrequency(tenantID string) ([]KeywordCount, error) {
	suggestions, err := engagementDBService.GetAllSuggestions(tenantID)
	if err != nil {
		return nil, err
	}

	texts := make([]string, len(suggestions))
	for i, suggestion := range suggestions {
		texts[i] = suggestion.Text
	}
	return extractKeywordCounts(texts, MAX_KEYWORD_RESULTS), nil
}

var nonLetterPattern = regexp.MustCompile(`[^a-z\s]`)

// Common English function words that carry no signal in the frequency table.
var keywordStopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "any": {}, "can": {}, "had": {}, "her": {},
	"him": {}, "his": {}, "its": {}, "our": {}, "she": {}, "was": {},
	"who": {}, "why": {}, "how": {}, "out": {}, "has": {}, "have": {},
	"this": {}, "that": {}, "with": {}, "they": {}, "them": {}, "their": {},
	"there": {}, "then": {}, "than": {}, "from": {}, "what": {}, "when": {},
	"where": {}, "which": {}, "will": {}, "would": {}, "could": {}, "should": {},
	"been": {}, "being": {}, "were": {}, "into": {}, "about": {}, "because": {},
	"some": {}, "such": {}, "also": {}, "just": {}, "more": {}, "most": {},
	"other": {}, "only": {}, "over": {}, "very": {}, "your": {}, "ours": {},
	"yours": {}, "these": {}, "those": {},
}

// extractKeywordCounts lowercases each text, strips everything outside
// [a-z\s], splits on whitespace and keeps tokens longer than two characters
// that are not stop words. Malformed tokens are simply dropped.
func extractKeywordCounts(texts []string, max int) []KeywordCount {
	counts := map[string]int{}

	for _, text := range texts {
		cleaned := nonLetterPattern.ReplaceAllString(strings.ToLower(text), "")
		for _, token := range strings.Fields(cleaned) {
			if len(token) <= 2 {
				continue
			}
			if _, isStopWord := keywordStopWords[token]; isStopWord {
				continue
			}
			counts[token]++
		}
	}

	keywords := make([]KeywordCount, 0, len(counts))
	for word, count := range counts {
		keywords = append(keywords, KeywordCount{Word: word, Count: count})
	}
	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Word < keywords[j].Word
	})

	if len(keywords) > max {
		keywords = keywords[:max]
	}
	return keywords
}
