package handlers

import "github.com/go-chi/chi/v5"

// Routes mounts the API on r, which main serves under /api/v1.
func Routes(r chi.Router) {
	// Public
	r.Post("/auth/signup", SignUp)
	r.Post("/auth/login", SignIn)
	r.Post("/auth/guest", GuestSignIn)
	r.Get("/catalog", GetCatalog)
	r.Get("/catalog/rates", GetRates)

	r.Group(func(r chi.Router) {
		r.Use(RequireAuth)

		r.Get("/auth/me", Me)
		r.Post("/auth/logout", SignOut)

		// Active bill
		r.Get("/bill", GetBill)
		r.Delete("/bill", ResetBill)
		r.Put("/bill/business", SetBusiness)
		r.Put("/bill/customer", SetCustomer)
		r.Post("/bill/items", AddItem)
		r.Get("/bill/items/{itemID}/edit", EditItem)
		r.Put("/bill/items/{itemID}", UpdateItem)
		r.Patch("/bill/items/{itemID}", PatchItem)
		r.Delete("/bill/items/{itemID}", RemoveItem)
		r.Post("/bill/invoice.pdf", BillInvoicePDF)
		r.Post("/bill/receipt.pdf", BillReceiptPDF)

		// Saved invoices need a real account
		r.Group(func(r chi.Router) {
			r.Use(RequireAccount)

			r.Post("/bill/save", SaveBill)
			r.Get("/invoices", ListInvoices)
			r.Get("/invoices/export.xlsx", ExportInvoices)
			r.Get("/invoices/{id}", GetInvoice)
			r.Get("/invoices/{id}/invoice.pdf", InvoicePDF)
			r.Get("/invoices/{id}/receipt.pdf", InvoiceReceiptPDF)
		})
	})
}
