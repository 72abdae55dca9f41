package models

const (
	RoleCustomer = "user"
	RoleAdmin    = "admin"
)

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
