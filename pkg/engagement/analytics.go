package engagement

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	directorydb "github.com/engage-framework/engage-backend/pkg/db/directory"
	engagementTypes "github.com/engage-framework/engage-backend/pkg/engagement/types"
)

const (
	DEFAULT_TREND_MONTHS      = 12
	DEFAULT_QUESTION_RANK_LEN = 5
)

type MonthlyEngagement struct {
	Month         string  `json:"month"`
	AverageScore  float64 `json:"averageScore"`
	ResponseCount int     `json:"responseCount"`
}

type CoreValueScore struct {
	Label        string  `json:"label"`
	AverageScore float64 `json:"averageScore"`
	AnswerCount  int     `json:"answerCount"`
}

type DepartmentHeatmapEntry struct {
	DepartmentID   string           `json:"departmentId"`
	DepartmentName string           `json:"departmentName"`
	MemberCount    int              `json:"memberCount"`
	Scores         []CoreValueScore `json:"scores"`
}

type SurveyCompletionRate struct {
	SurveyID       string     `json:"surveyId"`
	Title          string     `json:"title"`
	PublishedAt    *time.Time `json:"publishedAt,omitempty"`
	Assignments    int64      `json:"assignments"`
	Responses      int64      `json:"responses"`
	CompletionRate int        `json:"completionRate"`
}

type QuestionScore struct {
	QuestionID    string  `json:"questionId"`
	SurveyID      string  `json:"surveyId"`
	Text          string  `json:"text"`
	AverageScore  float64 `json:"averageScore"`
	ResponseCount int     `json:"responseCount"`
}

type TopBottomQuestions struct {
	Top    []QuestionScore `json:"top"`
	Bottom []QuestionScore `json:"bottom"`
}

type RecognitionStat struct {
	CoreValueID string `json:"coreValueId"`
	ValueName   string `json:"valueName"`
	Count       int    `json:"count"`
}

// GetEngagementTrend averages numeric answer values per calendar month over
// the response creation time, going back the given number of months.
func GetEngagementTrend(tenantID string, months int) ([]MonthlyEngagement, error) {
	if months <= 0 {
		months = DEFAULT_TREND_MONTHS
	}
	since := time.Now().UTC().AddDate(0, -months, 0)

	responses, err := engagementDBService.GetResponsesSince(tenantID, since)
	if err != nil {
		return nil, err
	}
	return buildEngagementTrend(responses), nil
}

// buildEngagementTrend buckets responses by UTC calendar month. Every
// non-null numeric answer contributes to the bucket average individually;
// months without responses produce no bucket at all.
func buildEngagementTrend(responses []engagementTypes.SurveyResponse) []MonthlyEngagement {
	type monthBucket struct {
		scores        scoreAccumulator
		responseCount int
	}

	order := []string{}
	buckets := map[string]*monthBucket{}

	for _, response := range responses {
		month := response.CreatedAt.UTC().Format("2006-01")
		bucket, ok := buckets[month]
		if !ok {
			bucket = &monthBucket{}
			buckets[month] = bucket
			order = append(order, month)
		}
		bucket.responseCount++
		for _, answer := range response.Answers {
			bucket.scores.AddIfPresent(answer.NumericValue)
		}
	}

	trend := make([]MonthlyEngagement, 0, len(order))
	for _, month := range order {
		bucket := buckets[month]
		trend = append(trend, MonthlyEngagement{
			Month:         month,
			AverageScore:  bucket.scores.Average(),
			ResponseCount: bucket.responseCount,
		})
	}
	return trend
}

// GetDepartmentHeatmap averages numeric answers per core value for every
// department with at least one member. Only attributed responses can be
// assigned to a department, so anonymous submissions never contribute.
func GetDepartmentHeatmap(tenantID string) ([]DepartmentHeatmapEntry, error) {
	departments, err := directoryDBService.GetDepartments(tenantID)
	if err != nil {
		return nil, err
	}

	membersByDepartment := map[string][]string{}
	for _, department := range departments {
		users, err := directoryDBService.GetUsersOfDepartment(tenantID, department.ID.Hex())
		if err != nil {
			return nil, err
		}
		userIDs := make([]string, len(users))
		for i, user := range users {
			userIDs[i] = user.ID.Hex()
		}
		membersByDepartment[department.ID.Hex()] = userIDs
	}

	responses, err := engagementDBService.GetAttributedResponses(tenantID)
	if err != nil {
		return nil, err
	}

	surveys, err := engagementDBService.GetAllSurveys(tenantID)
	if err != nil {
		return nil, err
	}
	coreValues, err := engagementDBService.GetCoreValues(tenantID, false)
	if err != nil {
		return nil, err
	}
	questionLabels := questionCoreValueLabels(surveys, coreValueNameIndex(coreValues))

	return buildDepartmentHeatmap(departments, membersByDepartment, responses, questionLabels), nil
}

// questionCoreValueLabels maps every question ID to the name of its core
// value, "General" for questions without one and "Unknown" for values that
// no longer exist in the catalog.
func questionCoreValueLabels(surveys []engagementTypes.Survey, valueNames map[string]string) map[string]string {
	labels := map[string]string{}
	for _, survey := range surveys {
		for _, question := range survey.Questions {
			if question.CoreValueID == "" {
				labels[question.ID.Hex()] = engagementTypes.GENERAL_CORE_VALUE_LABEL
				continue
			}
			name, ok := valueNames[question.CoreValueID]
			if !ok {
				name = engagementTypes.UNKNOWN_CORE_VALUE_LABEL
			}
			labels[question.ID.Hex()] = name
		}
	}
	return labels
}

func buildDepartmentHeatmap(
	departments []directorydb.Department,
	membersByDepartment map[string][]string,
	responses []engagementTypes.SurveyResponse,
	questionLabels map[string]string,
) []DepartmentHeatmapEntry {
	departmentByUser := map[string]string{}
	for departmentID, members := range membersByDepartment {
		for _, userID := range members {
			departmentByUser[userID] = departmentID
		}
	}

	type labelScores struct {
		order []string
		accs  map[string]*scoreAccumulator
	}
	scoresByDepartment := map[string]*labelScores{}

	for _, response := range responses {
		departmentID, ok := departmentByUser[response.UserID]
		if !ok {
			continue
		}
		scores, ok := scoresByDepartment[departmentID]
		if !ok {
			scores = &labelScores{accs: map[string]*scoreAccumulator{}}
			scoresByDepartment[departmentID] = scores
		}
		for _, answer := range response.Answers {
			if answer.NumericValue == nil {
				continue
			}
			label, ok := questionLabels[answer.QuestionID]
			if !ok {
				label = engagementTypes.GENERAL_CORE_VALUE_LABEL
			}
			acc, ok := scores.accs[label]
			if !ok {
				acc = &scoreAccumulator{}
				scores.accs[label] = acc
				scores.order = append(scores.order, label)
			}
			acc.Add(*answer.NumericValue)
		}
	}

	heatmap := []DepartmentHeatmapEntry{}
	for _, department := range departments {
		departmentID := department.ID.Hex()
		members := membersByDepartment[departmentID]
		// departments without members are left out entirely
		if len(members) == 0 {
			continue
		}

		entry := DepartmentHeatmapEntry{
			DepartmentID:   departmentID,
			DepartmentName: department.Name,
			MemberCount:    len(members),
			Scores:         []CoreValueScore{},
		}
		if scores, ok := scoresByDepartment[departmentID]; ok {
			for _, label := range scores.order {
				acc := scores.accs[label]
				entry.Scores = append(entry.Scores, CoreValueScore{
					Label:        label,
					AverageScore: acc.Average(),
					AnswerCount:  acc.Count(),
				})
			}
		}
		heatmap = append(heatmap, entry)
	}
	return heatmap
}

// GetSurveyCompletionRates lists response-per-assignment rates for every
// survey that has ever been published, most recently published first.
func GetSurveyCompletionRates(tenantID string) ([]SurveyCompletionRate, error) {
	surveys, err := engagementDBService.GetNonDraftSurveys(tenantID)
	if err != nil {
		return nil, err
	}

	rates := make([]SurveyCompletionRate, 0, len(surveys))
	for _, survey := range surveys {
		surveyID := survey.ID.Hex()
		assignments, err := engagementDBService.CountSurveyAssignments(tenantID, bson.M{"surveyID": surveyID})
		if err != nil {
			return nil, err
		}
		responses, err := engagementDBService.CountSurveyResponses(tenantID, bson.M{"surveyID": surveyID})
		if err != nil {
			return nil, err
		}
		rates = append(rates, SurveyCompletionRate{
			SurveyID:       surveyID,
			Title:          survey.Title,
			PublishedAt:    survey.PublishedAt,
			Assignments:    assignments,
			Responses:      responses,
			CompletionRate: completionRate(assignments, responses),
		})
	}
	return rates, nil
}

// GetTopBottomQuestions ranks scorable questions by their mean answer value.
func GetTopBottomQuestions(tenantID string, limit int) (TopBottomQuestions, error) {
	if limit <= 0 {
		limit = DEFAULT_QUESTION_RANK_LEN
	}

	surveys, err := engagementDBService.GetAllSurveys(tenantID)
	if err != nil {
		return TopBottomQuestions{}, err
	}
	responses, err := engagementDBService.GetAllSurveyResponses(tenantID)
	if err != nil {
		return TopBottomQuestions{}, err
	}
	return rankQuestions(surveys, responses, limit), nil
}

// rankQuestions sorts all scored questions descending by mean. Top takes the
// first limit entries, bottom the last limit entries reversed, so with fewer
// than 2*limit scored questions the two lists overlap. That is the slicing
// rule, not an accident to be corrected here.
func rankQuestions(surveys []engagementTypes.Survey, responses []engagementTypes.SurveyResponse, limit int) TopBottomQuestions {
	type questionInfo struct {
		surveyID string
		text     string
	}

	order := []string{}
	infos := map[string]questionInfo{}
	accs := map[string]*scoreAccumulator{}

	for _, survey := range surveys {
		for _, question := range survey.Questions {
			if !engagementTypes.IsScorableQuestionType(question.Type) {
				continue
			}
			questionID := question.ID.Hex()
			order = append(order, questionID)
			infos[questionID] = questionInfo{surveyID: survey.ID.Hex(), text: question.Text}
			accs[questionID] = &scoreAccumulator{}
		}
	}

	for _, response := range responses {
		for _, answer := range response.Answers {
			if acc, ok := accs[answer.QuestionID]; ok {
				acc.AddIfPresent(answer.NumericValue)
			}
		}
	}

	scored := []QuestionScore{}
	for _, questionID := range order {
		acc := accs[questionID]
		if acc.Count() == 0 {
			continue
		}
		info := infos[questionID]
		scored = append(scored, QuestionScore{
			QuestionID:    questionID,
			SurveyID:      info.surveyID,
			Text:          info.text,
			AverageScore:  acc.Average(),
			ResponseCount: acc.Count(),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].AverageScore > scored[j].AverageScore
	})

	topLen := limit
	if topLen > len(scored) {
		topLen = len(scored)
	}
	top := make([]QuestionScore, topLen)
	copy(top, scored[:topLen])

	bottomStart := len(scored) - limit
	if bottomStart < 0 {
		bottomStart = 0
	}
	bottomSlice := scored[bottomStart:]
	bottom := make([]QuestionScore, len(bottomSlice))
	for i, entry := range bottomSlice {
		bottom[len(bottomSlice)-1-i] = entry
	}

	return TopBottomQuestions{Top: top, Bottom: bottom}
}

// GetRecognitionStats counts recognitions per core value, optionally only
// those received by one user. Ids without a catalog entry resolve to the
// "Unknown" label instead of failing.
func GetRecognitionStats(tenantID string, receiverID string) ([]RecognitionStat, error) {
	filter := bson.M{}
	if receiverID != "" {
		filter["receiverID"] = receiverID
	}

	recognitions, err := engagementDBService.GetRecognitionsByFilter(tenantID, filter)
	if err != nil {
		return nil, err
	}
	coreValues, err := engagementDBService.GetCoreValues(tenantID, false)
	if err != nil {
		return nil, err
	}
	return buildRecognitionStats(recognitions, coreValueNameIndex(coreValues)), nil
}

func buildRecognitionStats(recognitions []engagementTypes.Recognition, valueNames map[string]string) []RecognitionStat {
	order := []string{}
	counts := map[string]int{}

	for _, recognition := range recognitions {
		if _, ok := counts[recognition.CoreValueID]; !ok {
			order = append(order, recognition.CoreValueID)
		}
		counts[recognition.CoreValueID]++
	}

	stats := make([]RecognitionStat, 0, len(order))
	for _, coreValueID := range order {
		valueName, ok := valueNames[coreValueID]
		if !ok {
			valueName = engagementTypes.UNKNOWN_CORE_VALUE_LABEL
		}
		stats = append(stats, RecognitionStat{
			CoreValueID: coreValueID,
			ValueName:   valueName,
			Count:       counts[coreValueID],
		})
	}
	return stats
}
