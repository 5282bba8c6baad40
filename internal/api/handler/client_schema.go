package handler

type upsertClientRequest struct {
	Name        string `json:"name"         validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required,min=6"`
	Purpose     string `json:"purpose"      validate:"required"`
}

type upsertResult struct {
	ID string `json:"id"`
}

type upsertClientResponse struct {
	Message   string        `json:"message"`
	Inserted  bool          `json:"inserted,omitempty"`
	Updated   bool          `json:"updated,omitempty"`
	Duplicate bool          `json:"duplicate,omitempty"`
	Result    *upsertResult `json:"result,omitempty"`
}
