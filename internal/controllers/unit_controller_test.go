package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propwise/manager-api/internal/dtos"
	"github.com/propwise/manager-api/internal/models"
	"github.com/propwise/manager-api/internal/utils"
)

type fakeUnitRepo struct {
	units []*models.Unit
	err   error
}

func (f *fakeUnitRepo) ListAll(_ context.Context) ([]*models.Unit, error) {
	return f.units, f.err
}

type fakeApartmentUnitRepo struct {
	units []*models.ApartmentUnit
	err   error
}

func (f *fakeApartmentUnitRepo) ListAll(_ context.Context) ([]*models.ApartmentUnit, error) {
	return f.units, f.err
}

func TestGetAllUnitsEnvelope(t *testing.T) {
	units := []*models.Unit{
		{ID: uuid.New(), BuildingID: uuid.New(), UnitNumber: "101", Rent: 1200, CreatedAt: time.Now()},
		{ID: uuid.New(), BuildingID: uuid.New(), UnitNumber: "102", Rent: 1350, CreatedAt: time.Now()},
	}
	ctrl := NewUnitController(&fakeUnitRepo{units: units}, &fakeApartmentUnitRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/units", nil)
	rec := httptest.NewRecorder()
	ctrl.GetAllUnits(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dtos.UnitsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 2, resp.Results)
	require.Len(t, resp.Data.Units, 2)
	assert.Equal(t, "101", resp.Data.Units[0].UnitNumber)
}

func TestGetAllUnitsEmptyList(t *testing.T) {
	ctrl := NewUnitController(&fakeUnitRepo{}, &fakeApartmentUnitRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/units", nil)
	rec := httptest.NewRecorder()
	ctrl.GetAllUnits(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dtos.UnitsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 0, resp.Results)
}

func TestGetAllUnitsStoreFailure(t *testing.T) {
	ctrl := NewUnitController(&fakeUnitRepo{err: errors.New("connection refused")}, &fakeApartmentUnitRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/units", nil)
	rec := httptest.NewRecorder()
	ctrl.GetAllUnits(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp utils.FailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "fail", resp.Status)
	// Store errors are never leaked to the client.
	assert.Equal(t, "An unexpected error has occurred", resp.Message)
}

func TestGetAllApartmentUnitsEnvelope(t *testing.T) {
	units := []*models.ApartmentUnit{
		{ID: uuid.New(), BuildingID: uuid.New(), ApartmentNumber: "A-7", Bedrooms: 2, Rent: 1800, CreatedAt: time.Now()},
	}
	ctrl := NewUnitController(&fakeUnitRepo{}, &fakeApartmentUnitRepo{units: units})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/apartment-units", nil)
	rec := httptest.NewRecorder()
	ctrl.GetAllApartmentUnits(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dtos.ApartmentUnitsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 1, resp.Results)
	require.Len(t, resp.Data.ApartmentUnits, 1)
	assert.Equal(t, "A-7", resp.Data.ApartmentUnits[0].ApartmentNumber)
}
