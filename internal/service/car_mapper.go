package service

import (
	"github.com/kevinaldroniya/crudSonarCube/internal/codec"
	"github.com/kevinaldroniya/crudSonarCube/internal/domain"
	"github.com/kevinaldroniya/crudSonarCube/internal/dto"
)

// conversion names the two sides of a mapping for error reporting.
type conversion struct {
	source string
	target string
}

var (
	// Reads translate stored cars into responses.
	readConversion = conversion{source: domain.ResourceCar, target: domain.ResourceCarDto}
	// Writes translate requests into stored cars and echo them back.
	writeConversion = conversion{source: domain.ResourceCarDto, target: domain.ResourceCar}
)

func (c conversion) fail(err error) error {
	return domain.NewConversionError(c.source, c.target, err)
}

// toCarRecord encodes req into a car referencing carMake. ID, status and
// timestamps are left for the caller.
func toCarRecord(req *dto.CarRequest, carMake *domain.Lookup) (*domain.Car, error) {
	car := &domain.Car{
		MakeID:        carMake.ID,
		Make:          carMake,
		Model:         req.Model,
		Year:          req.Year,
		Price:         req.Price,
		IsElectric:    req.IsElectric,
		PreviousOwner: req.PreviousOwner,
	}

	encoded := []struct {
		dst   *string
		value any
	}{
		{&car.Features, req.Features},
		{&car.EngineSpecs, req.Engine},
		{&car.Warranty, req.Warranty},
		{&car.MaintenanceDates, req.MaintenanceDates},
		{&car.Dimensions, req.Dimensions},
	}
	for _, e := range encoded {
		text, err := codec.Encode(e.value)
		if err != nil {
			return nil, writeConversion.fail(err)
		}
		*e.dst = text
	}

	return car, nil
}

// toCarResponse decodes the stored columns of car. Any failure yields a
// single ConversionError named after conv.
func toCarResponse(car *domain.Car, conv conversion) (*dto.CarResponse, error) {
	features, err := codec.Decode[[]string](car.Features)
	if err != nil {
		return nil, conv.fail(err)
	}
	engine, err := codec.Decode[domain.Engine](car.EngineSpecs)
	if err != nil {
		return nil, conv.fail(err)
	}
	warranty, err := codec.Decode[domain.Warranty](car.Warranty)
	if err != nil {
		return nil, conv.fail(err)
	}
	dates, err := codec.Decode[[]domain.Date](car.MaintenanceDates)
	if err != nil {
		return nil, conv.fail(err)
	}
	dimensions, err := codec.Decode[domain.Dimensions](car.Dimensions)
	if err != nil {
		return nil, conv.fail(err)
	}
	status, err := domain.ParseCarStatus(car.Status)
	if err != nil {
		return nil, conv.fail(err)
	}

	return &dto.CarResponse{
		ID:               car.ID,
		Make:             car.MakeName(),
		Model:            car.Model,
		Year:             car.Year,
		Price:            car.Price,
		IsElectric:       car.IsElectric,
		Features:         features,
		Engine:           engine,
		PreviousOwner:    car.PreviousOwner,
		Warranty:         warranty,
		Dimensions:       dimensions,
		CreatedAt:        dto.FromEpoch(car.CreatedAt),
		UpdatedAt:        dto.FromEpochPtr(car.UpdatedAt),
		MaintenanceDates: dates,
		Status:           status,
	}, nil
}

func toCarResponses(cars []*domain.Car, conv conversion) ([]*dto.CarResponse, error) {
	responses := make([]*dto.CarResponse, 0, len(cars))
	for _, car := range cars {
		resp, err := toCarResponse(car, conv)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func toLookupResponse(lookup *domain.Lookup) *dto.LookupResponse {
	return &dto.LookupResponse{
		ID:        lookup.ID,
		Name:      lookup.Name,
		IsActive:  lookup.IsActive,
		CreatedAt: dto.FromEpoch(lookup.CreatedAt),
		UpdatedAt: dto.FromEpochPtr(lookup.UpdatedAt),
		DeletedAt: dto.FromEpochPtr(lookup.DeletedAt),
	}
}
