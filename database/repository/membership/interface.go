package membershipRepo

import "pickbook/models"

// MembershipRepository defines read operations for membership plans.
type MembershipRepository interface {
	GetPlansByArea(areaID string) ([]models.MembershipPlan, error)
	GetMembershipAreas() ([]models.MembershipArea, error)
}
