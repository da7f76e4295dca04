package domain

import (
	"encoding/json"
	"reflect"
	"strings"
)

// CarStatus represents the lifecycle state of a car.
type CarStatus string

// Possible car status values
const (
	CarStatusActive  CarStatus = "active"
	CarStatusSold    CarStatus = "sold"
	CarStatusArchive CarStatus = "archive"
	CarStatusDeleted CarStatus = "deleted"
)

// CarStatuses lists every valid status.
var CarStatuses = []CarStatus{CarStatusActive, CarStatusSold, CarStatusArchive, CarStatusDeleted}

// ParseCarStatus matches s case-insensitively against the known statuses.
// Unknown values are a conversion failure.
func ParseCarStatus(s string) (CarStatus, error) {
	if status, ok := lookupCarStatus(s); ok {
		return status, nil
	}
	return "", NewConversionError(ResourceCar, ResourceCarDtoResponse, nil)
}

// ParseCarStatusOrDefault behaves like ParseCarStatus but falls back to
// CarStatusActive for unknown values. It is used for search parameters.
func ParseCarStatusOrDefault(s string) CarStatus {
	if status, ok := lookupCarStatus(s); ok {
		return status
	}
	return CarStatusActive
}

func lookupCarStatus(s string) (CarStatus, bool) {
	for _, status := range CarStatuses {
		if strings.EqualFold(s, string(status)) {
			return status, true
		}
	}
	return "", false
}

// IsValid reports whether s is one of the known statuses.
func (s CarStatus) IsValid() bool {
	_, ok := lookupCarStatus(string(s))
	return ok
}

// UnmarshalJSON accepts any known status regardless of case. Anything else is
// reported as a type error so that decoders can name the offending field.
func (s *CarStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	status, ok := lookupCarStatus(raw)
	if !ok {
		return &json.UnmarshalTypeError{
			Value: "string " + raw,
			Type:  reflect.TypeOf(CarStatusActive),
		}
	}
	*s = status
	return nil
}
