package models

import (
	"regexp"
	"strings"
	"time"
)

var gstinPattern = regexp.MustCompile(`^[0-9A-Z]{15}$`)

// BusinessInput is used for setting the seller details of the active bill.
type BusinessInput struct {
	BusinessName string `json:"business_name"`
	OwnerName    string `json:"owner_name"`
	GSTIN        string `json:"gstin"`
	Address      string `json:"address"`
}

func (b *BusinessInput) Validate() string {
	b.BusinessName = strings.TrimSpace(b.BusinessName)
	b.OwnerName = strings.TrimSpace(b.OwnerName)
	b.Address = strings.TrimSpace(b.Address)
	b.GSTIN = strings.ToUpper(strings.TrimSpace(b.GSTIN))
	if b.GSTIN != "" && !gstinPattern.MatchString(b.GSTIN) {
		return "gstin must be 15 letters or digits"
	}
	return ""
}

func (b BusinessInput) Details() BusinessDetails {
	return BusinessDetails(b)
}

// CustomerInput is used for setting the buyer details of the active bill.
// BillDate accepts RFC 3339 or YYYY-MM-DD; empty keeps the current date.
type CustomerInput struct {
	CustomerName  string `json:"customer_name"`
	CustomerGSTIN string `json:"customer_gstin"`
	BillDate      string `json:"bill_date"`

	billDate time.Time
}

func (c *CustomerInput) Validate() string {
	c.CustomerName = strings.TrimSpace(c.CustomerName)
	c.CustomerGSTIN = strings.ToUpper(strings.TrimSpace(c.CustomerGSTIN))
	if c.CustomerGSTIN != "" && !gstinPattern.MatchString(c.CustomerGSTIN) {
		return "customer_gstin must be 15 letters or digits"
	}
	c.billDate = time.Time{}
	if s := strings.TrimSpace(c.BillDate); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			t, err = time.Parse("2006-01-02", s)
		}
		if err != nil {
			return "bill_date must be RFC 3339 or YYYY-MM-DD"
		}
		c.billDate = t
	}
	return ""
}

// Details returns the validated customer details. A zero bill date is
// replaced by fallback.
func (c CustomerInput) Details(fallback time.Time) CustomerDetails {
	d := c.billDate
	if d.IsZero() {
		d = fallback
	}
	return CustomerDetails{
		CustomerName:  c.CustomerName,
		CustomerGSTIN: c.CustomerGSTIN,
		BillDate:      d,
	}
}

// SignUpInput is used for creating an email/password account.
type SignUpInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// SignInInput is used for email/password sign-in.
type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
