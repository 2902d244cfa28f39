package controllers

import (
	"net/http"

	"github.com/propwise/manager-api/internal/dtos"
	"github.com/propwise/manager-api/internal/repositories"
	"github.com/propwise/manager-api/internal/utils"
)

// UnitController serves the read-only unit listings. The queries are thin
// enough that the controller talks to the repositories directly.
type UnitController struct {
	unitRepo          repositories.UnitRepository
	apartmentUnitRepo repositories.ApartmentUnitRepository
}

func NewUnitController(
	unitRepo repositories.UnitRepository,
	apartmentUnitRepo repositories.ApartmentUnitRepository,
) *UnitController {
	return &UnitController{
		unitRepo:          unitRepo,
		apartmentUnitRepo: apartmentUnitRepo,
	}
}

func (c *UnitController) GetAllUnits(w http.ResponseWriter, r *http.Request) {
	units, err := c.unitRepo.ListAll(r.Context())
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewUnitsResponse(units))
}

func (c *UnitController) GetAllApartmentUnits(w http.ResponseWriter, r *http.Request) {
	units, err := c.apartmentUnitRepo.ListAll(r.Context())
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewApartmentUnitsResponse(units))
}
