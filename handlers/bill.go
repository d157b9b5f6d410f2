package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/satheeshds/billing/bill"
	"github.com/satheeshds/billing/gst"
	"github.com/satheeshds/billing/models"
	"github.com/satheeshds/billing/render"
)

// GetBill returns the active bill
// @Summary      Active bill
// @Description  The caller's unsaved bill with line items and recomputed totals.
// @Tags         bill
// @Produce      json
// @Success      200  {object}  Response{data=bill.Bill}
// @Router       /bill [get]
// @Security     BearerAuth
func GetBill(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Sessions.Get(currentUser(r).ID))
}

// ResetBill discards the active bill
// @Summary      Start a new bill
// @Tags         bill
// @Produce      json
// @Success      200  {object}  Response{data=bill.Bill}
// @Router       /bill [delete]
// @Security     BearerAuth
func ResetBill(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Sessions.Reset(currentUser(r).ID))
}

// SetBusiness sets the seller details
// @Summary      Set business details
// @Tags         bill
// @Accept       json
// @Produce      json
// @Param        business  body      models.BusinessInput  true  "Seller details"
// @Success      200       {object}  Response{data=bill.Bill}
// @Failure      400       {object}  Response{error=string}
// @Router       /bill/business [put]
// @Security     BearerAuth
func SetBusiness(w http.ResponseWriter, r *http.Request) {
	var input models.BusinessInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	b, _ := Sessions.Update(currentUser(r).ID, func(b bill.Bill) (bill.Bill, error) {
		return bill.SetBusiness(b, input.Details()), nil
	})
	writeJSON(w, http.StatusOK, b)
}

// SetCustomer sets the buyer details
// @Summary      Set customer details
// @Description  An empty bill_date keeps the bill's current date.
// @Tags         bill
// @Accept       json
// @Produce      json
// @Param        customer  body      models.CustomerInput  true  "Buyer details"
// @Success      200       {object}  Response{data=bill.Bill}
// @Failure      400       {object}  Response{error=string}
// @Router       /bill/customer [put]
// @Security     BearerAuth
func SetCustomer(w http.ResponseWriter, r *http.Request) {
	var input models.CustomerInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	b, _ := Sessions.Update(currentUser(r).ID, func(b bill.Bill) (bill.Bill, error) {
		return bill.SetCustomer(b, input.Details(b.Customer.BillDate)), nil
	})
	writeJSON(w, http.StatusOK, b)
}

// AddItem prices and appends a line item
// @Summary      Add item
// @Description  Quantity and unit price are decimal strings. For inclusive items the unit price includes GST.
// @Tags         bill
// @Accept       json
// @Produce      json
// @Param        item  body      gst.ItemInput  true  "Item as entered"
// @Success      201   {object}  Response{data=bill.Bill}
// @Failure      400   {object}  Response{error=string}
// @Router       /bill/items [post]
// @Security     BearerAuth
func AddItem(w http.ResponseWriter, r *http.Request) {
	var input gst.ItemInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	b, err := Sessions.Update(currentUser(r).ID, func(b bill.Bill) (bill.Bill, error) {
		return bill.AddItem(b, input)
	})
	if err != nil {
		writeBillError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

// EditItem returns an item as it should be shown in the edit form
// @Summary      Reopen item for editing
// @Description  Inclusive items come back with their GST-inclusive unit price.
// @Tags         bill
// @Produce      json
// @Param        itemID  path      string  true  "Item ID"
// @Success      200     {object}  Response{data=gst.EditableItem}
// @Failure      404     {object}  Response{error=string}
// @Router       /bill/items/{itemID}/edit [get]
// @Security     BearerAuth
func EditItem(w http.ResponseWriter, r *http.Request) {
	it, err := bill.Reopen(Sessions.Get(currentUser(r).ID), chi.URLParam(r, "itemID"))
	if err != nil {
		writeBillError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// UpdateItem reprices an item
// @Summary      Update item
// @Tags         bill
// @Accept       json
// @Produce      json
// @Param        itemID  path      string         true  "Item ID"
// @Param        item    body      gst.EditInput  true  "New quantity, price, rate and mode"
// @Success      200     {object}  Response{data=bill.Bill}
// @Failure      400     {object}  Response{error=string}
// @Failure      404     {object}  Response{error=string}
// @Router       /bill/items/{itemID} [put]
// @Security     BearerAuth
func UpdateItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "itemID")
	var input gst.EditInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	b, err := Sessions.Update(currentUser(r).ID, func(b bill.Bill) (bill.Bill, error) {
		return bill.UpdateItem(b, id, input)
	})
	if err != nil {
		writeBillError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// PatchItem edits descriptive fields of an item
// @Summary      Patch item
// @Description  Changes product name, HSN code or details without repricing.
// @Tags         bill
// @Accept       json
// @Produce      json
// @Param        itemID  path      string         true  "Item ID"
// @Param        patch   body      bill.ItemPatch  true  "Fields to change"
// @Success      200     {object}  Response{data=bill.Bill}
// @Failure      400     {object}  Response{error=string}
// @Failure      404     {object}  Response{error=string}
// @Router       /bill/items/{itemID} [patch]
// @Security     BearerAuth
func PatchItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "itemID")
	var patch bill.ItemPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	b, err := Sessions.Update(currentUser(r).ID, func(b bill.Bill) (bill.Bill, error) {
		return bill.PatchItem(b, id, patch)
	})
	if err != nil {
		writeBillError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// RemoveItem deletes an item
// @Summary      Remove item
// @Tags         bill
// @Produce      json
// @Param        itemID  path      string  true  "Item ID"
// @Success      200     {object}  Response{data=bill.Bill}
// @Failure      404     {object}  Response{error=string}
// @Router       /bill/items/{itemID} [delete]
// @Security     BearerAuth
func RemoveItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "itemID")
	b, err := Sessions.Update(currentUser(r).ID, func(b bill.Bill) (bill.Bill, error) {
		return bill.RemoveItem(b, id)
	})
	if err != nil {
		writeBillError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func saveBill(r *http.Request, b bill.Bill) (models.Invoice, error) {
	u := currentUser(r)
	rec, err := bill.Snapshot(b, u.ID, Now())
	if err != nil {
		return models.Invoice{}, err
	}
	inv, err := Store.CreateInvoice(r.Context(), rec)
	if err != nil {
		return models.Invoice{}, err
	}
	slog.Info("invoice saved", "user_id", u.ID, "invoice_id", inv.ID, "items", len(rec.Items))
	return inv, nil
}

// SaveBill persists the active bill
// @Summary      Save bill
// @Description  Stores the bill and its items as an invoice. Guests cannot save.
// @Tags         bill
// @Produce      json
// @Success      201  {object}  Response{data=models.Invoice}
// @Failure      400  {object}  Response{error=string}
// @Failure      403  {object}  Response{error=string}
// @Router       /bill/save [post]
// @Security     BearerAuth
func SaveBill(w http.ResponseWriter, r *http.Request) {
	inv, err := saveBill(r, Sessions.Get(currentUser(r).ID))
	if err != nil {
		writeBillError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}

// BillInvoicePDF saves the bill for signed-in users and returns the A4 PDF
// @Summary      Save and download tax invoice
// @Description  Account holders get the bill saved first; if saving fails nothing is rendered. Guests only get the PDF.
// @Tags         bill
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      400  {object}  Response{error=string}
// @Failure      500  {object}  Response{error=string}
// @Router       /bill/invoice.pdf [post]
// @Security     BearerAuth
func BillInvoicePDF(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	b := Sessions.Get(u.ID)
	if len(b.Items) == 0 {
		writeBillError(w, bill.ErrEmptyBill)
		return
	}
	if !u.Anonymous {
		inv, err := saveBill(r, b)
		if err != nil {
			slog.Error("saving invoice failed", "user_id", u.ID, "error", err)
			writeCodedError(w, http.StatusInternalServerError, "SaveFailed", "Save Failed: Could not save the invoice. Please try again.")
			return
		}
		w.Header().Set("X-Invoice-ID", inv.ID)
	}
	writePDF(w, "invoice.pdf", func(out io.Writer) error {
		return render.TaxInvoice(out, render.FromBill(b), Render)
	})
}

// BillReceiptPDF returns the thermal receipt of the active bill
// @Summary      Download thermal receipt
// @Tags         bill
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      400  {object}  Response{error=string}
// @Router       /bill/receipt.pdf [post]
// @Security     BearerAuth
func BillReceiptPDF(w http.ResponseWriter, r *http.Request) {
	b := Sessions.Get(currentUser(r).ID)
	if len(b.Items) == 0 {
		writeBillError(w, bill.ErrEmptyBill)
		return
	}
	writePDF(w, "thermal-receipt.pdf", func(out io.Writer) error {
		return render.ThermalReceipt(out, render.FromBill(b), Render)
	})
}

// writePDF renders into memory first so a failure still gets a JSON error.
func writePDF(w http.ResponseWriter, filename string, fn func(io.Writer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		slog.Error("rendering failed", "file", filename, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to render document")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
