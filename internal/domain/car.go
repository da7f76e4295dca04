package domain

import "time"

// Car is the persisted form of a vehicle. The nested values (features, engine,
// warranty, maintenance dates and dimensions) are kept in their encoded text
// form exactly as stored; the service layer decodes them on the way out.
type Car struct {
	ID     int64
	MakeID int64
	// Make is the resolved make record. Stores populate it on reads.
	Make             *Lookup
	Model            string
	Year             int
	Price            float64
	IsElectric       bool
	Features         string
	EngineSpecs      string
	PreviousOwner    int
	Warranty         string
	MaintenanceDates string
	Dimensions       string
	Status           string
	CreatedAt        int64
	UpdatedAt        *int64
}

// MakeName returns the name of the attached make, or "" when none is attached.
func (c *Car) MakeName() string {
	if c.Make == nil {
		return ""
	}
	return c.Make.Name
}

// SetStatus replaces the lifecycle status and stamps the update time.
func (c *Car) SetStatus(status CarStatus, now time.Time) {
	c.Status = string(status)
	c.Touch(now)
}

// Touch stamps the update time in epoch seconds.
func (c *Car) Touch(now time.Time) {
	updated := now.UTC().Unix()
	c.UpdatedAt = &updated
}

// Engine describes a car's power unit.
type Engine struct {
	Type       string `json:"type"`
	Horsepower int    `json:"horsepower"`
	Torque     int    `json:"torque"`
}

// Warranty holds the warranty terms of a car.
type Warranty struct {
	Basic      string `json:"basic"`
	Powertrain string `json:"powertrain"`
}

// Dimensions holds the physical measurements of a car.
type Dimensions struct {
	Length int `json:"length"`
	Width  int `json:"width"`
	Height int `json:"height"`
	Weight int `json:"weight"`
}
