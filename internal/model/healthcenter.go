package model

// HealthCenter is a care-providing location a patient can be matched to.
type HealthCenter struct {
	Base
	Name     string `db:"name" json:"name"`
	Location string `db:"location" json:"location"`
}

type FindHealthCentersRequest struct {
	UserLocation string `json:"user_location" form:"user_location"`
}
