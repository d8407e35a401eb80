package engagement

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	directorydb "github.com/engage-framework/engage-backend/pkg/db/directory"
	engagementTypes "github.com/engage-framework/engage-backend/pkg/engagement/types"
)

func numericAnswer(questionID string, value float64) engagementTypes.SurveyAnswer {
	return engagementTypes.SurveyAnswer{QuestionID: questionID, NumericValue: &value}
}

func responseAt(createdAt time.Time, userID string, answers ...engagementTypes.SurveyAnswer) engagementTypes.SurveyResponse {
	return engagementTypes.SurveyResponse{
		UserID:    userID,
		Answers:   answers,
		CreatedAt: createdAt,
	}
}

func TestBuildEngagementTrend(t *testing.T) {
	jan := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)

	responses := []engagementTypes.SurveyResponse{
		responseAt(jan, "u1", numericAnswer("q1", 4), numericAnswer("q2", 5)),
		responseAt(jan.Add(24*time.Hour), "u2", numericAnswer("q1", 3)),
		responseAt(jan.Add(48*time.Hour), "u3", engagementTypes.SurveyAnswer{QuestionID: "q3", TextValue: "fine"}),
		responseAt(feb, "u1", numericAnswer("q1", 5)),
		responseAt(feb.Add(time.Hour), "u2", numericAnswer("q1", 5)),
	}

	trend := buildEngagementTrend(responses)
	if len(trend) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(trend))
	}

	if trend[0].Month != "2026-01" {
		t.Errorf("month = %s, want 2026-01", trend[0].Month)
	}
	if trend[0].AverageScore != 4 {
		t.Errorf("averageScore = %v, want 4", trend[0].AverageScore)
	}
	if trend[0].ResponseCount != 3 {
		t.Errorf("responseCount = %d, want 3", trend[0].ResponseCount)
	}

	if trend[1].Month != "2026-02" {
		t.Errorf("month = %s, want 2026-02", trend[1].Month)
	}
	if trend[1].AverageScore != 5 {
		t.Errorf("averageScore = %v, want 5", trend[1].AverageScore)
	}
	if trend[1].ResponseCount != 2 {
		t.Errorf("responseCount = %d, want 2", trend[1].ResponseCount)
	}
}

func TestBuildEngagementTrendEmptyInput(t *testing.T) {
	trend := buildEngagementTrend(nil)
	if len(trend) != 0 {
		t.Errorf("expected no buckets, got %d", len(trend))
	}
}

func TestRankQuestions(t *testing.T) {
	surveyID := primitive.NewObjectID()
	q1 := primitive.NewObjectID()
	q2 := primitive.NewObjectID()
	q3 := primitive.NewObjectID()
	qText := primitive.NewObjectID()

	surveys := []engagementTypes.Survey{
		{
			ID: surveyID,
			Questions: []engagementTypes.SurveyQuestion{
				{ID: q1, Text: "Workload is manageable", Type: engagementTypes.QUESTION_TYPE_LIKERT_SCALE},
				{ID: q2, Text: "I feel valued", Type: engagementTypes.QUESTION_TYPE_LIKERT_SCALE},
				{ID: q3, Text: "Would you recommend us", Type: engagementTypes.QUESTION_TYPE_YES_NO},
				{ID: qText, Text: "Anything else", Type: engagementTypes.QUESTION_TYPE_OPEN_TEXT},
			},
		},
	}
	responses := []engagementTypes.SurveyResponse{
		responseAt(time.Now(), "u1",
			numericAnswer(q1.Hex(), 5),
			numericAnswer(q2.Hex(), 4),
			numericAnswer(q3.Hex(), 2),
		),
		responseAt(time.Now(), "u2",
			numericAnswer(q1.Hex(), 5),
			numericAnswer(q2.Hex(), 4),
			numericAnswer(q3.Hex(), 2),
		),
	}

	result := rankQuestions(surveys, responses, 2)

	if len(result.Top) != 2 {
		t.Fatalf("expected 2 top entries, got %d", len(result.Top))
	}
	if result.Top[0].QuestionID != q1.Hex() || result.Top[1].QuestionID != q2.Hex() {
		t.Errorf("unexpected top order: %s, %s", result.Top[0].QuestionID, result.Top[1].QuestionID)
	}
	if result.Top[0].AverageScore != 5 || result.Top[0].ResponseCount != 2 {
		t.Errorf("unexpected top score: %+v", result.Top[0])
	}

	if len(result.Bottom) != 2 {
		t.Fatalf("expected 2 bottom entries, got %d", len(result.Bottom))
	}
	// lowest score first
	if result.Bottom[0].QuestionID != q3.Hex() {
		t.Errorf("bottom[0] = %s, want %s", result.Bottom[0].QuestionID, q3.Hex())
	}
	// with 3 scored questions and limit 2, the middle question shows up in
	// both lists
	if result.Bottom[1].QuestionID != q2.Hex() {
		t.Errorf("bottom[1] = %s, want %s", result.Bottom[1].QuestionID, q2.Hex())
	}
}

func TestRankQuestionsSkipsUnanswered(t *testing.T) {
	surveyID := primitive.NewObjectID()
	answered := primitive.NewObjectID()
	unanswered := primitive.NewObjectID()

	surveys := []engagementTypes.Survey{
		{
			ID: surveyID,
			Questions: []engagementTypes.SurveyQuestion{
				{ID: answered, Type: engagementTypes.QUESTION_TYPE_LIKERT_SCALE},
				{ID: unanswered, Type: engagementTypes.QUESTION_TYPE_LIKERT_SCALE},
			},
		},
	}
	responses := []engagementTypes.SurveyResponse{
		responseAt(time.Now(), "u1", numericAnswer(answered.Hex(), 3)),
	}

	result := rankQuestions(surveys, responses, 5)
	if len(result.Top) != 1 {
		t.Fatalf("expected 1 scored question, got %d", len(result.Top))
	}
	if result.Top[0].QuestionID != answered.Hex() {
		t.Errorf("unexpected question: %s", result.Top[0].QuestionID)
	}
}

func TestBuildDepartmentHeatmap(t *testing.T) {
	engineering := directorydb.Department{ID: primitive.NewObjectID(), Name: "Engineering"}
	sales := directorydb.Department{ID: primitive.NewObjectID(), Name: "Sales"}
	empty := directorydb.Department{ID: primitive.NewObjectID(), Name: "Dormant"}
	departments := []directorydb.Department{engineering, sales, empty}

	membersByDepartment := map[string][]string{
		engineering.ID.Hex(): {"u1", "u2"},
		sales.ID.Hex():       {"u3"},
		empty.ID.Hex():       {},
	}

	questionLabels := map[string]string{
		"q1": "Integrity",
		"q2": engagementTypes.GENERAL_CORE_VALUE_LABEL,
	}

	responses := []engagementTypes.SurveyResponse{
		responseAt(time.Now(), "u1", numericAnswer("q1", 4), numericAnswer("q2", 2)),
		responseAt(time.Now(), "u2", numericAnswer("q1", 5)),
	}

	heatmap := buildDepartmentHeatmap(departments, membersByDepartment, responses, questionLabels)

	if len(heatmap) != 2 {
		t.Fatalf("expected 2 departments, got %d", len(heatmap))
	}

	eng := heatmap[0]
	if eng.DepartmentName != "Engineering" || eng.MemberCount != 2 {
		t.Errorf("unexpected first entry: %+v", eng)
	}
	if len(eng.Scores) != 2 {
		t.Fatalf("expected 2 score groups, got %d", len(eng.Scores))
	}
	if eng.Scores[0].Label != "Integrity" || eng.Scores[0].AverageScore != 4.5 || eng.Scores[0].AnswerCount != 2 {
		t.Errorf("unexpected Integrity score: %+v", eng.Scores[0])
	}
	if eng.Scores[1].Label != engagementTypes.GENERAL_CORE_VALUE_LABEL || eng.Scores[1].AverageScore != 2 {
		t.Errorf("unexpected General score: %+v", eng.Scores[1])
	}

	// members but no answers: present with empty scores
	salesEntry := heatmap[1]
	if salesEntry.DepartmentName != "Sales" {
		t.Errorf("unexpected second entry: %+v", salesEntry)
	}
	if len(salesEntry.Scores) != 0 {
		t.Errorf("expected empty scores, got %+v", salesEntry.Scores)
	}

	// zero-member department never appears
	for _, entry := range heatmap {
		if entry.DepartmentName == "Dormant" {
			t.Error("zero-member department present in heatmap")
		}
	}
}

func TestBuildRecognitionStats(t *testing.T) {
	valueNames := map[string]string{
		"cv1": "Integrity",
	}
	recognitions := []engagementTypes.Recognition{
		{CoreValueID: "cv1"},
		{CoreValueID: "cv1"},
		{CoreValueID: "deleted"},
	}

	stats := buildRecognitionStats(recognitions, valueNames)
	if len(stats) != 2 {
		t.Fatalf("expected 2 stats, got %d", len(stats))
	}
	if stats[0].ValueName != "Integrity" || stats[0].Count != 2 {
		t.Errorf("unexpected first stat: %+v", stats[0])
	}
	if stats[1].ValueName != engagementTypes.UNKNOWN_CORE_VALUE_LABEL || stats[1].Count != 1 {
		t.Errorf("unexpected second stat: %+v", stats[1])
	}
}

func TestQuestionCoreValueLabels(t *testing.T) {
	qWithValue := primitive.NewObjectID()
	qWithout := primitive.NewObjectID()
	qDeleted := primitive.NewObjectID()

	surveys := []engagementTypes.Survey{
		{
			ID: primitive.NewObjectID(),
			Questions: []engagementTypes.SurveyQuestion{
				{ID: qWithValue, CoreValueID: "cv1"},
				{ID: qWithout},
				{ID: qDeleted, CoreValueID: "gone"},
			},
		},
	}
	labels := questionCoreValueLabels(surveys, map[string]string{"cv1": "Integrity"})

	if labels[qWithValue.Hex()] != "Integrity" {
		t.Errorf("label = %s, want Integrity", labels[qWithValue.Hex()])
	}
	if labels[qWithout.Hex()] != engagementTypes.GENERAL_CORE_VALUE_LABEL {
		t.Errorf("label = %s, want %s", labels[qWithout.Hex()], engagementTypes.GENERAL_CORE_VALUE_LABEL)
	}
	if labels[qDeleted.Hex()] != engagementTypes.UNKNOWN_CORE_VALUE_LABEL {
		t.Errorf("label = %s, want %s", labels[qDeleted.Hex()], engagementTypes.UNKNOWN_CORE_VALUE_LABEL)
	}
}
