// File: internal/user/model.go
package user

// ProfileInput carries the editable profile fields.
type ProfileInput struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

// AddressInput carries a delivery address.
type AddressInput struct {
	Title    string `json:"title" binding:"required,max=50"`
	FullName string `json:"fullName" binding:"required,min=2,max=100"`
	Phone    string `json:"phone" binding:"required"`
	City     string `json:"city" binding:"required"`
	District string `json:"district" binding:"required"`
	Line1    string `json:"line1" binding:"required"`
	Line2    string `json:"line2"`
}

// ProfileView is the profile screen view model.
type ProfileView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// AddressView is one delivery address.
type AddressView struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	District string `json:"district"`
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
}
