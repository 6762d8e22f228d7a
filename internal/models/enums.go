package models

// Allowed values for the status and category fields. Values are validated
// on write; transitions between them are free-form.
var (
	ResidentStatuses     = []string{"aktif", "pindah", "meninggal"}
	MailStatuses         = []string{"pending", "diproses", "selesai", "ditolak"}
	FinanceCategories    = []string{"pemasukan", "pengeluaran"}
	AnnouncementPriority = []string{"rendah", "sedang", "tinggi"}
	AnnouncementStatuses = []string{"draft", "published"}
	ActivityStatuses     = []string{"planned", "ongoing", "completed", "cancelled"}
	SecurityStatuses     = []string{"open", "in-progress", "resolved"}
	ReportPriority       = []string{"rendah", "sedang", "tinggi"}
	ReportStatuses       = []string{"open", "in-progress", "resolved", "closed"}
	UserRoles            = []string{"super-admin", "admin", "pengurus"}
	UserStatuses         = []string{"aktif", "nonaktif"}
)

// FinanceCategory values referenced directly in export and recap logic.
const (
	FinancePemasukan   = "pemasukan"
	FinancePengeluaran = "pengeluaran"
)

// User role values referenced by the authorization middleware.
const (
	RoleSuperAdmin = "super-admin"
	RoleAdmin      = "admin"
	RolePengurus   = "pengurus"
)

// IsOneOf reports whether value is in the allowed set
func IsOneOf(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}
