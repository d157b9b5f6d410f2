package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/satheeshds/billing/gst"
	"github.com/satheeshds/billing/models"
	"github.com/satheeshds/billing/render"
	"github.com/satheeshds/billing/store"
)

// ListInvoices lists the caller's saved invoices
// @Summary      List invoices
// @Description  Saved invoices of the signed-in account, newest bill date first.
// @Tags         invoices
// @Produce      json
// @Success      200  {object}  Response{data=[]models.Invoice}
// @Failure      403  {object}  Response{error=string}
// @Router       /invoices [get]
// @Security     BearerAuth
func ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := Store.ListInvoices(r.Context(), currentUser(r).ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, invoices)
}

func loadInvoice(r *http.Request) (models.Invoice, []gst.LineItem, error) {
	userID, id := currentUser(r).ID, chi.URLParam(r, "id")
	inv, err := Store.GetInvoice(r.Context(), userID, id)
	if err != nil {
		return models.Invoice{}, nil, err
	}
	items, err := Store.ListInvoiceItems(r.Context(), userID, id)
	if err != nil {
		return models.Invoice{}, nil, err
	}
	return inv, items, nil
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "invoice not found")
	} else {
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// GetInvoice retrieves a saved invoice with its items
// @Summary      Get invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  Response{data=models.InvoiceDetail}
// @Failure      404  {object}  Response{error=string}
// @Router       /invoices/{id} [get]
// @Security     BearerAuth
func GetInvoice(w http.ResponseWriter, r *http.Request) {
	inv, items, err := loadInvoice(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.NewInvoiceDetail(inv, items))
}

// InvoicePDF re-renders a saved invoice as an A4 PDF
// @Summary      Download saved tax invoice
// @Tags         invoices
// @Produce      application/pdf
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  Response{error=string}
// @Router       /invoices/{id}/invoice.pdf [get]
// @Security     BearerAuth
func InvoicePDF(w http.ResponseWriter, r *http.Request) {
	inv, items, err := loadInvoice(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writePDF(w, "invoice-"+inv.ID+".pdf", func(out io.Writer) error {
		return render.TaxInvoice(out, render.FromInvoice(inv, items), Render)
	})
}

// InvoiceReceiptPDF re-renders a saved invoice as a thermal receipt
// @Summary      Download saved thermal receipt
// @Tags         invoices
// @Produce      application/pdf
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  Response{error=string}
// @Router       /invoices/{id}/receipt.pdf [get]
// @Security     BearerAuth
func InvoiceReceiptPDF(w http.ResponseWriter, r *http.Request) {
	inv, items, err := loadInvoice(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writePDF(w, "receipt-"+inv.ID+".pdf", func(out io.Writer) error {
		return render.ThermalReceipt(out, render.FromInvoice(inv, items), Render)
	})
}

// ExportInvoices downloads the invoice register
// @Summary      Export invoices
// @Description  XLSX workbook with one row per saved invoice.
// @Tags         invoices
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    binary
// @Router       /invoices/export.xlsx [get]
// @Security     BearerAuth
func ExportInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := Store.ListInvoices(r.Context(), currentUser(r).ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	var buf bytes.Buffer
	if err := render.InvoiceRegister(&buf, invoices); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to export invoices")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"invoices_%s.xlsx\"", Now().Format("20060102")))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
