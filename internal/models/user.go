package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleTutor Role = "tutor"
	RoleAdmin Role = "admin"
)

type User struct {
	ID          int64           `json:"-" db:"id"`
	Login       string          `json:"username" db:"login"`
	Email       string          `json:"email,omitempty" db:"email"`
	DateOfBirth *time.Time      `json:"date_of_birth,omitempty" db:"date_of_birth"`
	Password    string          `json:"-" db:"password_hash"`
	Role        Role            `json:"role" db:"role"`
	Balance     decimal.Decimal `json:"balance" db:"balance"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

type Review struct {
	Rating    int       `json:"rating" db:"rating"`
	Timestamp time.Time `json:"timestamp" db:"created_at"`
}

type RegisterRequest struct {
	Username    string `json:"username" validate:"required,username"`
	Email       string `json:"email" validate:"required,email"`
	DateOfBirth string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Password    string `json:"password" validate:"required,min=6"`
}

// TutorProfile is the tutor's own dashboard view.
type TutorProfile struct {
	Username        string          `json:"username"`
	Email           string          `json:"email"`
	Balance         decimal.Decimal `json:"balance"`
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
	Reviews         []Review        `json:"reviews"`
	AverageRating   float64         `json:"average_rating"`
	SuccessRate     float64         `json:"success_rate"`
	Stars           string          `json:"stars"`
}
