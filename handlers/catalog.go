package handlers

import (
	"net/http"

	"github.com/satheeshds/billing/catalog"
	"github.com/satheeshds/billing/gst"
)

// GetCatalog lists the product catalog
// @Summary      Product catalog
// @Description  Categories in display order, each with its products and HSN codes. "Others" takes a free-text product name.
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  Response{data=[]catalog.Category}
// @Router       /catalog [get]
func GetCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Default())
}

// GetRates lists the supported GST rates
// @Summary      GST rates
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  Response{data=[]int}
// @Router       /catalog/rates [get]
func GetRates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, gst.Rates())
}
