package child

type CreateChildRequest struct {
	Name             string `json:"name" validate:"required,min=1,max=100"`
	BirthDate        string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Sex              string `json:"sex" validate:"required,sex"`
	JaundiceAtBirth  bool   `json:"jaundice_at_birth"`
	FamilyASDHistory bool   `json:"family_asd_history"`
}

type UpdateChildRequest struct {
	Name             string `json:"name" validate:"required,min=1,max=100"`
	BirthDate        string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Sex              string `json:"sex" validate:"required,sex"`
	JaundiceAtBirth  bool   `json:"jaundice_at_birth"`
	FamilyASDHistory bool   `json:"family_asd_history"`
}

type ChildResponse struct {
	ID               string `json:"id"`
	ParentID         string `json:"parent_id"`
	Name             string `json:"name"`
	BirthDate        string `json:"birth_date"`
	Sex              string `json:"sex"`
	AgeMonths        int    `json:"age_months"`
	InScreeningRange bool   `json:"in_screening_range"`
	JaundiceAtBirth  bool   `json:"jaundice_at_birth"`
	FamilyASDHistory bool   `json:"family_asd_history"`
	PhotoURL         string `json:"photo_url,omitempty"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}
