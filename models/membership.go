package models

// MembershipPlan is a subscription plan offered by an area.
type MembershipPlan struct {
	ID             string   `bson:"id" json:"id"`
	AreaID         string   `bson:"area_id" json:"areaId"`
	MembershipType string   `bson:"membership_type" json:"membershipType"` // Monthly, Quarterly, Yearly
	Price          int      `bson:"price" json:"price"`
	Duration       string   `bson:"duration" json:"duration"` // "1 Month", "3 Months", "12 Months"
	Benefits       []string `bson:"benefits" json:"benefits"`
	Popular        bool     `bson:"popular,omitempty" json:"popular,omitempty"`
}

// MembershipArea is the per-area summary shown on the membership page.
type MembershipArea struct {
	AreaID       string `bson:"area_id" json:"areaId"`
	AreaName     string `bson:"area_name" json:"areaName"`
	AreaImageURL string `bson:"area_image_url,omitempty" json:"areaImageUrl,omitempty"`
	PlanCount    int    `bson:"plan_count" json:"planCount"`
	StartingAt   int    `bson:"starting_at" json:"startingAt"` // cheapest plan price
}
