package service

import (
	"strconv"
	"strings"

	"github.com/kevinaldroniya/crudSonarCube/internal/domain"
	"github.com/kevinaldroniya/crudSonarCube/internal/dto"
)

// Bounds enforced by ValidateCarRequest.
const (
	MinCarYear          = 1950
	MaxCarYear          = 2024
	MinFeatures         = 2
	MaxFeatures         = 10
	MinMaintenanceDates = 2
	MaxMaintenanceDates = 10

	// MaxPrice and PriceScale match the price NUMERIC(14,2) column.
	MaxPrice   = 1e12
	PriceScale = 2
)

// ValidateCarRequest checks a create or update payload and returns an
// *domain.InvalidRequestError describing the first violated rule. Rules are
// checked field by field in a fixed order: make, model, year, price,
// features, engine, previousOwner, warranty, maintenanceDates, dimensions.
func ValidateCarRequest(req *dto.CarRequest) error {
	if req == nil {
		return domain.NewInvalidRequestError("request body must not be null")
	}

	if isBlank(req.Make) {
		return invalid("'make' must not be empty")
	}
	if isBlank(req.Model) {
		return invalid("'model' must not be empty")
	}

	if req.Year < MinCarYear {
		return invalid("'year' must be greater than or equal to 1950")
	}
	if req.Year > MaxCarYear {
		return invalid("'year' must be less than or equal to 2024")
	}

	if req.Price <= 0 {
		return invalid("'price' must be greater than 0")
	}
	if req.Price >= MaxPrice {
		return invalid("'price' must be less than 1000000000000")
	}
	if decimalPlaces(req.Price) > PriceScale {
		return invalid("'price' must have at most 2 decimal places")
	}

	if req.Features == nil || len(req.Features) < MinFeatures || len(req.Features) > MaxFeatures {
		return invalid("'features' size must be between 2 and 10")
	}

	if err := validateEngine(req.Engine); err != nil {
		return err
	}

	if req.PreviousOwner < 0 {
		return invalid("'previousOwner' must be greater than or equal to 0")
	}

	if err := validateWarranty(req.Warranty); err != nil {
		return err
	}

	if req.MaintenanceDates == nil {
		return invalid("'maintenanceDates' must not be null")
	}
	if n := len(req.MaintenanceDates); n < MinMaintenanceDates || n > MaxMaintenanceDates {
		return invalid("'maintenanceDates' must be between 2 and 10")
	}

	return validateDimensions(req.Dimensions)
}

func validateEngine(engine *domain.Engine) error {
	switch {
	case engine == nil:
		return invalid("'engine' must not be null")
	case isBlank(engine.Type):
		return invalid("'engine.type' must not be empty")
	case engine.Torque < 0:
		return invalid("'engine.torque' must be greater than or equal to 0")
	case engine.Horsepower < 0:
		return invalid("'engine.horsepower' must be greater than or equal to 0")
	}
	return nil
}

func validateWarranty(warranty *domain.Warranty) error {
	switch {
	case warranty == nil:
		return invalid("'warranty' must not be null")
	case isBlank(warranty.Basic):
		return invalid("'warranty.basic' must not be empty")
	case isBlank(warranty.Powertrain):
		return invalid("'warranty.powertrain' must not be empty")
	}
	return nil
}

func validateDimensions(dimensions *domain.Dimensions) error {
	if dimensions == nil {
		return invalid("'dimensions' must not be empty")
	}

	fields := []struct {
		name  string
		value int
	}{
		{"length", dimensions.Length},
		{"width", dimensions.Width},
		{"height", dimensions.Height},
		{"weight", dimensions.Weight},
	}
	for _, f := range fields {
		if f.value < 0 {
			return invalid("'dimensions." + f.name + "' must be greater than or equal to 0")
		}
	}
	return nil
}

// decimalPlaces counts the fraction digits of the shortest decimal form of v.
func decimalPlaces(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func invalid(message string) error {
	return domain.NewInvalidRequestError(message)
}
