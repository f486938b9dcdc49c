package auth

import "time"

// User is an HR staff account. Only the bcrypt hash of the password is kept.
type User struct {
	ID           uint   `gorm:"column:user_id;primaryKey"`
	Username     string `gorm:"size:255;not null;uniqueIndex:uq_hr_users_username"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
}

func (User) TableName() string {
	return "hr_users"
}
