package entity

type UserRole string

const (
	RoleUser   UserRole = "user"
	RoleMember UserRole = "member"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	Base
	Username     string   `db:"username"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Phone        *string  `db:"phone"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
}

type RentalKind string

const (
	RentalKindRent   RentalKind = "rent"
	RentalKindBorrow RentalKind = "borrow"
)

// RentalKindForRole maps the requester's role to the approval channel:
// plain users rent, everyone else (members, admins) borrows.
func RentalKindForRole(role UserRole) RentalKind {
	if role == RoleUser {
		return RentalKindRent
	}
	return RentalKindBorrow
}
