package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"delivery_admin/internal/services"
)

type CheckinController struct {
	checkins *services.CheckinService
	hub      *CheckinHub
}

func NewCheckinController(checkins *services.CheckinService, hub *CheckinHub) *CheckinController {
	return &CheckinController{checkins: checkins, hub: hub}
}

func (cc *CheckinController) Create(c *gin.Context) {
	var input services.CreateCheckinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	record, err := cc.checkins.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	cc.hub.Publish(*record)
	respond(c, http.StatusCreated, "check-in recorded", record)
}

func (cc *CheckinController) List(c *gin.Context) {
	page, limit := pageQuery(c)
	records, total, err := cc.checkins.FindAll(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "ok", pagedData(records, total, page, limit))
}

func (cc *CheckinController) Search(c *gin.Context) {
	var filter services.CheckinFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	records, total, err := cc.checkins.Search(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "ok", gin.H{"list": records, "total": total})
}

func (cc *CheckinController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	record, err := cc.checkins.FindByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "ok", record)
}

func (cc *CheckinController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input services.UpdateCheckinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	record, err := cc.checkins.Update(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "check-in updated", record)
}

func (cc *CheckinController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	snapshot, err := cc.checkins.Remove(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "check-in deleted", snapshot)
}
