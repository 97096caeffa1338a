package screening

import "LittleSteps/pkg/response"

var (
	ErrScreeningNotFound       = response.NewError(404, "screening not found")
	ErrScreeningNotOwned       = response.NewError(403, "screening does not belong to parent")
	ErrScreeningAlreadyDone    = response.NewError(409, "screening already finalized")
	ErrScreeningIncomplete     = response.NewError(422, "screening inputs incomplete")
	ErrInvalidQuestionnaire    = response.NewError(400, "questionnaire must contain exactly 20 responses")
	ErrQuestionnaireNotAllowed = response.NewError(409, "questionnaire cannot be changed on a finalized screening")
	ErrCreateScreening         = response.NewError(500, "failed to create screening")
	ErrUpdateScreening         = response.NewError(500, "failed to update screening")
)
