package child

import "LittleSteps/pkg/response"

var (
	ErrChildNotFound      = response.NewError(404, "child not found")
	ErrChildNotOwned      = response.NewError(403, "child does not belong to parent")
	ErrInvalidSex         = response.NewError(400, "invalid sex value")
	ErrInvalidBirthDate   = response.NewError(400, "birth date must be in YYYY-MM-DD format")
	ErrBirthDateInFuture  = response.NewError(400, "birth date cannot be in the future")
	ErrCreateChild        = response.NewError(500, "failed to create child profile")
	ErrUpdateChild        = response.NewError(500, "failed to update child profile")
	ErrDeleteChild        = response.NewError(500, "failed to delete child profile")
	ErrInvalidPhotoFile   = response.NewError(400, "invalid photo file type")
	ErrFailedToUploadFile = response.NewError(500, "failed to upload photo")
)
