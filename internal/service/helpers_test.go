package service

import (
	"time"

	"github.com/kevinaldroniya/crudSonarCube/internal/domain"
	"github.com/kevinaldroniya/crudSonarCube/internal/dto"
)

var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

// validCarRequest returns a request that passes every validation rule.
func validCarRequest() *dto.CarRequest {
	return &dto.CarRequest{
		Make:          "Toyota",
		Model:         "Corolla",
		Year:          2022,
		Price:         20000,
		IsElectric:    false,
		Features:      []string{"a", "b"},
		Engine:        &domain.Engine{Type: "I4", Horsepower: 130, Torque: 150},
		PreviousOwner: 0,
		Warranty:      &domain.Warranty{Basic: "3yr", Powertrain: "5yr"},
		MaintenanceDates: []domain.Date{
			domain.NewDate(2023, time.January, 10),
			domain.NewDate(2023, time.July, 12),
		},
		Dimensions: &domain.Dimensions{Length: 1, Width: 1, Height: 1, Weight: 1},
	}
}

func toyota() *domain.Lookup {
	return &domain.Lookup{ID: 1, Name: "Toyota", IsActive: true, CreatedAt: fixedNow.Unix()}
}

// storedCar returns a car as a store would return it.
func storedCar(id int64) *domain.Car {
	return &domain.Car{
		ID:               id,
		MakeID:           1,
		Make:             toyota(),
		Model:            "Corolla",
		Year:             2022,
		Price:            20000,
		Features:         `["a","b"]`,
		EngineSpecs:      `{"type":"I4","horsepower":130,"torque":150}`,
		Warranty:         `{"basic":"3yr","powertrain":"5yr"}`,
		MaintenanceDates: `["2023-01-10","2023-07-12"]`,
		Dimensions:       `{"length":1,"width":1,"height":1,"weight":1}`,
		Status:           "active",
		CreatedAt:        fixedNow.Unix(),
	}
}
