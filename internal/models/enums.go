package models

// GalleryCategories is the closed set of values a gallery image may use.
var GalleryCategories = []string{
	"chapel", "vehicles", "staff", "ceo", "office", "showroom", "building", "other",
}

func IsGalleryCategory(value string) bool {
	for _, category := range GalleryCategories {
		if category == value {
			return true
		}
	}
	return false
}

// StaffRoles is the closed set of roster roles.
var StaffRoles = []string{"CEO", "Leadership", "Administrator", "Staff", "Other"}

const DefaultStaffRole = "Staff"

func IsStaffRole(value string) bool {
	for _, role := range StaffRoles {
		if role == value {
			return true
		}
	}
	return false
}

// Page content formats. A page uses exactly one of the two shapes and the
// format column records which.
const (
	PageFormatSections = "sections"
	PageFormatDocument = "document"
)
