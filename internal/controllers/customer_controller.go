package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"delivery_admin/internal/services"
)

type CustomerController struct {
	customers *services.CustomerService
}

func NewCustomerController(customers *services.CustomerService) *CustomerController {
	return &CustomerController{customers: customers}
}

func (cc *CustomerController) Create(c *gin.Context) {
	var input services.CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	customer, err := cc.customers.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "customer created", customer)
}

func (cc *CustomerController) List(c *gin.Context) {
	page, limit := pageQuery(c)
	customers, total, err := cc.customers.FindAll(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "ok", pagedData(customers, total, page, limit))
}

func (cc *CustomerController) Search(c *gin.Context) {
	var filter services.CustomerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	customers, total, err := cc.customers.Search(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "ok", gin.H{"list": customers, "total": total})
}

func (cc *CustomerController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	customer, err := cc.customers.FindByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "ok", customer)
}

func (cc *CustomerController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input services.UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	customer, err := cc.customers.Update(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "customer updated", customer)
}

func (cc *CustomerController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	snapshot, err := cc.customers.Remove(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "customer deleted", snapshot)
}

// Navigation builds an amap multi-stop navigation URL for the given
// customer ids, in request order.
func (cc *CustomerController) Navigation(c *gin.Context) {
	var body struct {
		IDs []uint `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	url, err := cc.customers.GenerateNavigationURL(body.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "ok", gin.H{"url": url})
}
