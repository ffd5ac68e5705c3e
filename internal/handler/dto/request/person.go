package request

type RegisterPersonRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	Role          string `json:"role" binding:"required,oneof=customer employee admin"`
	LicenseNumber string `json:"license_number"`
	BadgeNumber   string `json:"badge_number"`
}
