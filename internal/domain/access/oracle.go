package access

import "gorm.io/gorm"

// IsAdmin asks the database whether the user holds the administrator
// capability. The check lives in a SQL function so the same definition
// backs row-level policies and this gate.
func IsAdmin(db *gorm.DB, userID string) (bool, error) {
	var isAdmin bool
	err := db.Raw("SELECT is_admin(?::uuid)", userID).Scan(&isAdmin).Error
	if err != nil {
		return false, err
	}
	return isAdmin, nil
}
