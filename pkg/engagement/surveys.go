package engagement

import (
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	engagementTypes "github.com/engage-framework/engage-backend/pkg/engagement/types"
)

type NewSurveyQuestion struct {
	Text        string   `json:"text"`
	Type        string   `json:"type"`
	IsRequired  *bool    `json:"isRequired,omitempty"`
	SortOrder   *int     `json:"sortOrder,omitempty"`
	CoreValueID string   `json:"coreValueId,omitempty"`
	Options     []string `json:"options,omitempty"`
}

type NewSurvey struct {
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	IsAnonymous bool                `json:"isAnonymous"`
	ClosesAt    *time.Time          `json:"closesAt,omitempty"`
	Questions   []NewSurveyQuestion `json:"questions"`
}

type SurveyPatch struct {
	Title       *string             `json:"title,omitempty"`
	Description *string             `json:"description,omitempty"`
	IsAnonymous *bool               `json:"isAnonymous,omitempty"`
	ClosesAt    *time.Time          `json:"closesAt,omitempty"`
	Questions   []NewSurveyQuestion `json:"questions,omitempty"`
}

type CompletionRate struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Rate      int   `json:"rate"`
}

// CreateSurvey persists a new survey in draft status together with its
// question list.
func CreateSurvey(tenantID string, authorID string, surveyDef NewSurvey) (survey engagementTypes.Survey, err error) {
	if surveyDef.Title == "" {
		return survey, NewInvalidInputError("survey title is required")
	}

	survey = engagementTypes.Survey{
		Title:       surveyDef.Title,
		Description: surveyDef.Description,
		AuthorID:    authorID,
		Status:      engagementTypes.SURVEY_STATUS_DRAFT,
		IsAnonymous: surveyDef.IsAnonymous,
		Questions:   prepareSurveyQuestions(surveyDef.Questions),
		CreatedAt:   time.Now(),
		ClosesAt:    surveyDef.ClosesAt,
	}

	if err := engagementDBService.CreateSurvey(tenantID, &survey); err != nil {
		slog.Error("Error creating survey", slog.String("tenantID", tenantID), slog.String("error", err.Error()))
		return survey, err
	}
	return survey, nil
}

// prepareSurveyQuestions applies authoring defaults: sortOrder falls back to
// the position in the input list, isRequired to true.
func prepareSurveyQuestions(inputs []NewSurveyQuestion) []engagementTypes.SurveyQuestion {
	questions := make([]engagementTypes.SurveyQuestion, len(inputs))
	for i, input := range inputs {
		isRequired := true
		if input.IsRequired != nil {
			isRequired = *input.IsRequired
		}
		sortOrder := i
		if input.SortOrder != nil {
			sortOrder = *input.SortOrder
		}
		questions[i] = engagementTypes.SurveyQuestion{
			ID:          primitive.NewObjectID(),
			Text:        input.Text,
			Type:        input.Type,
			IsRequired:  isRequired,
			SortOrder:   sortOrder,
			CoreValueID: input.CoreValueID,
			Options:     input.Options,
		}
	}
	return questions
}

func GetSurvey(tenantID string, surveyID string) (engagementTypes.Survey, error) {
	survey, err := engagementDBService.GetSurveyByID(tenantID, surveyID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return survey, NewNotFoundError("survey not found")
		}
		return survey, err
	}
	return survey, nil
}

// UpdateSurvey patches survey fields. Closed surveys cannot be edited and
// the status is never writable through this path.
func UpdateSurvey(tenantID string, surveyID string, patch SurveyPatch) error {
	survey, err := GetSurvey(tenantID, surveyID)
	if err != nil {
		return err
	}
	if survey.IsClosed() {
		return NewInvalidStateError("closed surveys cannot be edited")
	}

	update := bson.M{}
	if patch.Title != nil {
		if *patch.Title == "" {
			return NewInvalidInputError("survey title cannot be empty")
		}
		update["title"] = *patch.Title
	}
	if patch.Description != nil {
		update["description"] = *patch.Description
	}
	if patch.IsAnonymous != nil {
		update["isAnonymous"] = *patch.IsAnonymous
	}
	if patch.ClosesAt != nil {
		update["closesAt"] = *patch.ClosesAt
	}
	if patch.Questions != nil {
		update["questions"] = prepareSurveyQuestions(patch.Questions)
	}
	if len(update) == 0 {
		return nil
	}

	return engagementDBService.UpdateSurveyFields(tenantID, surveyID, update)
}

// PublishSurvey moves a draft survey to published and stamps publishedAt.
func PublishSurvey(tenantID string, surveyID string) (engagementTypes.Survey, error) {
	survey, err := GetSurvey(tenantID, surveyID)
	if err != nil {
		return survey, err
	}

	if err := survey.Publish(time.Now()); err != nil {
		return survey, NewInvalidStateError("only draft surveys can be published")
	}

	update := bson.M{
		"status":      survey.Status,
		"publishedAt": survey.PublishedAt,
	}
	if err := engagementDBService.UpdateSurveyFields(tenantID, surveyID, update); err != nil {
		return survey, err
	}
	return survey, nil
}

// CloseSurvey closes the survey from any non-terminal status. Re-closing is
// a no-op; publishedAt is never touched.
func CloseSurvey(tenantID string, surveyID string) error {
	survey, err := GetSurvey(tenantID, surveyID)
	if err != nil {
		return err
	}
	if survey.IsClosed() {
		return nil
	}
	if err := survey.Close(); err != nil {
		return NewInvalidStateError(err.Error())
	}

	return engagementDBService.UpdateSurveyFields(tenantID, surveyID, bson.M{
		"status": survey.Status,
	})
}

// DeleteSurvey removes a survey permanently. Only drafts can be deleted;
// published or closed surveys are kept for their response history.
func DeleteSurvey(tenantID string, surveyID string) error {
	survey, err := GetSurvey(tenantID, surveyID)
	if err != nil {
		return err
	}
	if survey.Status != engagementTypes.SURVEY_STATUS_DRAFT {
		return NewInvalidStateError("only draft surveys can be deleted")
	}

	return engagementDBService.DeleteSurvey(tenantID, surveyID)
}

// AssignSurvey creates pending assignments for the given users. Pairs that
// already exist are skipped, not treated as an error.
func AssignSurvey(tenantID string, surveyID string, userIDs []string) error {
	if len(userIDs) == 0 {
		return NewInvalidInputError("at least one user must be assigned")
	}
	survey, err := GetSurvey(tenantID, surveyID)
	if err != nil {
		return err
	}
	if survey.IsClosed() {
		return NewInvalidStateError("closed surveys cannot be assigned")
	}

	now := time.Now()
	for _, userID := range userIDs {
		if err := engagementDBService.UpsertSurveyAssignment(tenantID, surveyID, userID, now); err != nil {
			slog.Error("Error assigning survey", slog.String("tenantID", tenantID), slog.String("surveyID", surveyID), slog.String("userID", userID), slog.String("error", err.Error()))
			return err
		}
	}
	return nil
}

// SubmitResponse stores a response to a published survey. For anonymous
// surveys the submitter is dropped at write time; the submitter's assignment
// is completed either way, fulfillment is tracked independently of
// attribution.
func SubmitResponse(tenantID string, surveyID string, userID string, answers []engagementTypes.SurveyAnswer) (response engagementTypes.SurveyResponse, err error) {
	survey, err := GetSurvey(tenantID, surveyID)
	if err != nil {
		return response, err
	}
	if survey.Status != engagementTypes.SURVEY_STATUS_PUBLISHED {
		return response, NewInvalidStateError("survey is not open for responses")
	}

	response = engagementTypes.SurveyResponse{
		SurveyID:  surveyID,
		UserID:    responseAttribution(survey.IsAnonymous, userID),
		Answers:   answers,
		CreatedAt: time.Now(),
	}

	if err := engagementDBService.AddSurveyResponse(tenantID, &response); err != nil {
		slog.Error("Error saving survey response", slog.String("tenantID", tenantID), slog.String("surveyID", surveyID), slog.String("error", err.Error()))
		return response, err
	}

	if userID != "" {
		if err := engagementDBService.MarkAssignmentCompleted(tenantID, surveyID, userID, time.Now()); err != nil {
			slog.Error("Error completing assignment", slog.String("tenantID", tenantID), slog.String("surveyID", surveyID), slog.String("userID", userID), slog.String("error", err.Error()))
		}
	}
	return response, nil
}

// responseAttribution returns the user ID to persist on a response.
// Anonymous surveys never store a submitter, even when they are known.
func responseAttribution(isAnonymous bool, userID string) string {
	if isAnonymous {
		return ""
	}
	return userID
}

func GetSurveyAssignments(tenantID string, surveyID string) ([]engagementTypes.SurveyAssignment, error) {
	if _, err := GetSurvey(tenantID, surveyID); err != nil {
		return nil, err
	}
	return engagementDBService.GetAssignmentsForSurvey(tenantID, surveyID)
}

func GetSurveyCompletionRate(tenantID string, surveyID string) (result CompletionRate, err error) {
	if _, err := GetSurvey(tenantID, surveyID); err != nil {
		return result, err
	}

	total, err := engagementDBService.CountSurveyAssignments(tenantID, bson.M{"surveyID": surveyID})
	if err != nil {
		return result, err
	}
	completed, err := engagementDBService.CountSurveyAssignments(tenantID, bson.M{
		"surveyID": surveyID,
		"status":   engagementTypes.ASSIGNMENT_STATUS_COMPLETED,
	})
	if err != nil {
		return result, err
	}

	return CompletionRate{
		Total:     total,
		Completed: completed,
		Rate:      completionRate(total, completed),
	}, nil
}
