package user

// UpdateProfileDTO is the request body for self-service profile edits.
type UpdateProfileDTO struct {
	Name     *string `json:"name"`
	Avatar   *string `json:"avatar"`
	Password *string `json:"password"`
}
