package dto

import (
	"time"

	"github.com/kevinaldroniya/crudSonarCube/internal/domain"
)

// CarRequest is the payload for creating or replacing a car.
// Nil nested values and nil slices stand for JSON null.
type CarRequest struct {
	Make             string             `json:"make"`
	Model            string             `json:"model"`
	Year             int                `json:"year"`
	Price            float64            `json:"price"`
	IsElectric       bool               `json:"isElectric"`
	Features         []string           `json:"features"`
	Engine           *domain.Engine     `json:"engine"`
	PreviousOwner    int                `json:"previousOwner"`
	Warranty         *domain.Warranty   `json:"warranty"`
	MaintenanceDates []domain.Date      `json:"maintenanceDates"`
	Dimensions       *domain.Dimensions `json:"dimensions"`
}

// CarResponse is the API representation of a stored car.
type CarResponse struct {
	ID               int64             `json:"id"`
	Make             string            `json:"make"`
	Model            string            `json:"model"`
	Year             int               `json:"year"`
	Price            float64           `json:"price"`
	IsElectric       bool              `json:"isElectric"`
	Features         []string          `json:"features"`
	Engine           domain.Engine     `json:"engine"`
	PreviousOwner    int               `json:"previousOwner"`
	Warranty         domain.Warranty   `json:"warranty"`
	Dimensions       domain.Dimensions `json:"dimensions"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        *time.Time        `json:"updatedAt"`
	MaintenanceDates []domain.Date     `json:"maintenanceDates"`
	Status           domain.CarStatus  `json:"status"`
}

// CarStatusRequest is the payload for changing a car's status.
type CarStatusRequest struct {
	CarStatus domain.CarStatus `json:"carStatus" validate:"required"`
}
