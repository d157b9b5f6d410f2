package models

import (
	"testing"
	"time"

	"github.com/satheeshds/billing/gst"
)

func TestBusinessInputValidate(t *testing.T) {
	in := BusinessInput{BusinessName: "  Kanstruction Traders ", GSTIN: " 29abcde1234f1z5 "}
	if msg := in.Validate(); msg != "" {
		t.Fatalf("Validate() = %q", msg)
	}
	if in.GSTIN != "29ABCDE1234F1Z5" || in.BusinessName != "Kanstruction Traders" {
		t.Errorf("not normalized: %+v", in)
	}

	bad := BusinessInput{GSTIN: "29ABC"}
	if msg := bad.Validate(); msg == "" {
		t.Error("short gstin accepted")
	}

	empty := BusinessInput{}
	if msg := empty.Validate(); msg != "" {
		t.Errorf("empty gstin rejected: %q", msg)
	}
}

func TestCustomerInputValidate(t *testing.T) {
	fallback := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		in      CustomerInput
		wantErr bool
		want    time.Time
	}{
		{"empty date", CustomerInput{CustomerName: "Ravi"}, false, fallback},
		{"plain date", CustomerInput{BillDate: "2025-02-14"}, false, time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", CustomerInput{BillDate: "2025-02-14T09:30:00Z"}, false, time.Date(2025, 2, 14, 9, 30, 0, 0, time.UTC)},
		{"garbage", CustomerInput{BillDate: "14/02/2025"}, true, time.Time{}},
		{"bad gstin", CustomerInput{CustomerGSTIN: "x"}, true, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.in.Validate()
			if (msg != "") != tt.wantErr {
				t.Fatalf("Validate() = %q, wantErr %v", msg, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := tt.in.Details(fallback).BillDate; !got.Equal(tt.want) {
				t.Errorf("bill date = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewInvoiceDetailSplitsGST(t *testing.T) {
	inv := Invoice{Totals: gst.Totals{Subtotal: 300, TotalGST: 54, GrandTotal: 354}}
	d := NewInvoiceDetail(inv, nil)
	if d.CGST != 27 || d.SGST != 27 {
		t.Errorf("split = %v/%v", d.CGST, d.SGST)
	}
	if d.Items == nil {
		t.Error("items should be an empty slice")
	}
}
