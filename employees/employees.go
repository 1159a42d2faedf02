package employees

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// RoleType represents an employee's access level.
type RoleType string

const (
	RoleAdmin RoleType = "ADMIN"
	RoleUser  RoleType = "USER"
)

type Employee struct {
	ID           string   `gorm:"primarykey" json:"id"`
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"` // never serialize
	Role         RoleType `gorm:"not null;default:USER" json:"role"`

	// Contracted working hours, "HH:MM" clock strings. Informational only,
	// the lifecycle engine does not enforce them.
	WorkStartTime string `json:"work_start_time"`
	WorkEndTime   string `json:"work_end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
