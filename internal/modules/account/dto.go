package account

// CreateAdminDTO is the request body for provisioning an admin account.
type CreateAdminDTO struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateAdminDTO is the request body for updating an admin account.
type UpdateAdminDTO struct {
	Name     *string `json:"name"`
	Avatar   *string `json:"avatar"`
	Password *string `json:"password"`
	IsActive *bool   `json:"isActive"`
}

// UpdateUserDTO is the request body for managing a regular account. Role may
// only move between user and admin.
type UpdateUserDTO struct {
	IsActive *bool   `json:"isActive"`
	Role     *string `json:"role"`
}

// Stats summarizes the managed account population.
type Stats struct {
	Total    int64 `bson:"total"    json:"total"`
	Active   int64 `bson:"active"   json:"active"`
	Inactive int64 `bson:"inactive" json:"inactive"`
}
