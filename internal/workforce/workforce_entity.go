package workforce

import "time"

// RecruitmentFunnel holds a department's historical hiring funnel. The
// per-hire ratios derived from it drive recruitment planning.
type RecruitmentFunnel struct {
	DepartmentID uint `gorm:"primaryKey;autoIncrement:false"`
	Applicants   int  `gorm:"not null;default:0;check:chk_funnel_applicants,applicants >= 0"`
	Interviews   int  `gorm:"not null;default:0;check:chk_funnel_interviews,interviews >= 0"`
	Offers       int  `gorm:"not null;default:0;check:chk_funnel_offers,offers >= 0"`
	Hires        int  `gorm:"not null;default:0;check:chk_funnel_hires,hires >= 0"`
	UpdatedAt    time.Time
}

// FunnelRow is a funnel joined with its department name.
type FunnelRow struct {
	DepartmentID   uint
	DepartmentName string
	Applicants     int
	Interviews     int
	Offers         int
	Hires          int
}
