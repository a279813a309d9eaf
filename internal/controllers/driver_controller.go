package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"delivery_admin/internal/services"
)

// updateLocationInput is the position report sent by the driver app.
type updateLocationInput struct {
	Longitude float64 `json:"longitude" binding:"required"`
	Latitude  float64 `json:"latitude" binding:"required"`
	Address   string  `json:"address"`
}

type DriverController struct {
	drivers *services.DriverService
}

func NewDriverController(drivers *services.DriverService) *DriverController {
	return &DriverController{drivers: drivers}
}

func (dc *DriverController) Create(c *gin.Context) {
	var input services.CreateDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	driver, err := dc.drivers.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "driver created", driver)
}

func (dc *DriverController) List(c *gin.Context) {
	page, limit := pageQuery(c)
	drivers, total, err := dc.drivers.FindAll(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "ok", pagedData(drivers, total, page, limit))
}

func (dc *DriverController) Search(c *gin.Context) {
	var filter services.DriverFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	drivers, total, err := dc.drivers.Search(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "ok", gin.H{"list": drivers, "total": total})
}

func (dc *DriverController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	driver, err := dc.drivers.FindByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "ok", driver)
}

func (dc *DriverController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input services.UpdateDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	driver, err := dc.drivers.Update(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "driver updated", driver)
}

// UpdateLocation stores the driver's latest reported position.
func (dc *DriverController) UpdateLocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input updateLocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	driver, err := dc.drivers.UpdateLocation(id, input.Longitude, input.Latitude, input.Address)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "location updated", driver)
}

func (dc *DriverController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	snapshot, err := dc.drivers.Remove(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "driver deleted", snapshot)
}
