package users

import "time"

// AdminUser is a content-manager account. The public site has no
// end-user accounts; only the admin write path authenticates.
type AdminUser struct {
	ID       uint   `gorm:"primaryKey"`
	Email    string `gorm:"not null;uniqueIndex:idx_admin_users_email"`
	Password string `gorm:"not null"` // bcrypt hash
	Role     string `gorm:"type:varchar(20);not null;default:'admin'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
