package dtos

import "github.com/propwise/manager-api/internal/models"

type UnitsEnvelope struct {
	Units []*models.Unit `json:"units"`
}

type UnitsResponse struct {
	Status  string        `json:"status"`
	Results int           `json:"results"`
	Data    UnitsEnvelope `json:"data"`
}

func NewUnitsResponse(units []*models.Unit) UnitsResponse {
	return UnitsResponse{
		Status:  "success",
		Results: len(units),
		Data:    UnitsEnvelope{Units: units},
	}
}

type ApartmentUnitsEnvelope struct {
	ApartmentUnits []*models.ApartmentUnit `json:"apartmentUnits"`
}

type ApartmentUnitsResponse struct {
	Status  string                 `json:"status"`
	Results int                    `json:"results"`
	Data    ApartmentUnitsEnvelope `json:"data"`
}

func NewApartmentUnitsResponse(units []*models.ApartmentUnit) ApartmentUnitsResponse {
	return ApartmentUnitsResponse{
		Status:  "success",
		Results: len(units),
		Data:    ApartmentUnitsEnvelope{ApartmentUnits: units},
	}
}

type HealthCheckResponse struct {
	Status string `json:"status"`
}
