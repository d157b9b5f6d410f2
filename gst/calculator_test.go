package gst

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

func closeTo(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-9*math.Max(math.Abs(a), math.Abs(b))
}

func TestPriceItem_Exclusive(t *testing.T) {
	it, err := PriceItem(ItemInput{
		Category:    "Cement",
		ProductName: "PPC",
		HSNCode:     "252329",
		Quantity:    "2",
		UnitPrice:   "100",
		Rate:        18,
	})
	if err != nil {
		t.Fatalf("PriceItem() error = %v", err)
	}
	if it.TaxableValue != 200 || it.GSTAmount != 36 || it.Total != 236 {
		t.Errorf("got taxable=%v gst=%v total=%v, want 200/36/236", it.TaxableValue, it.GSTAmount, it.Total)
	}
	if it.UnitPrice.Float() != 100 {
		t.Errorf("unit price = %v, want 100", it.UnitPrice.Float())
	}
	if it.ID == "" {
		t.Error("expected a generated id")
	}
	if it.HSNCode != "252329" || it.Category != "Cement" {
		t.Errorf("passthrough fields lost: %+v", it)
	}
}

func TestPriceItem_Inclusive(t *testing.T) {
	it, err := PriceItem(ItemInput{
		ProductName: "OPC",
		Quantity:    "2",
		UnitPrice:   "118",
		Rate:        18,
		Inclusive:   true,
	})
	if err != nil {
		t.Fatalf("PriceItem() error = %v", err)
	}
	if !closeTo(it.UnitPrice.Float(), 100) {
		t.Errorf("stored unit price = %v, want 100", it.UnitPrice.Float())
	}
	if !closeTo(it.TaxableValue, 200) || !closeTo(it.Total, 236) || !closeTo(it.GSTAmount, 36) {
		t.Errorf("got taxable=%v gst=%v total=%v, want 200/36/236", it.TaxableValue, it.GSTAmount, it.Total)
	}
}

func TestPriceItem_OthersUsesCustomName(t *testing.T) {
	it, err := PriceItem(ItemInput{
		Category:          OthersCategory,
		ProductName:       "ignored",
		CustomProductName: "Sand (per load)",
		Quantity:          "1",
		UnitPrice:         "1500",
		Rate:              5,
	})
	if err != nil {
		t.Fatalf("PriceItem() error = %v", err)
	}
	if it.ProductName != "Sand (per load)" {
		t.Errorf("product name = %q", it.ProductName)
	}

	_, err = PriceItem(ItemInput{
		Category:    OthersCategory,
		ProductName: "ignored",
		Quantity:    "1",
		UnitPrice:   "10",
		Rate:        5,
	})
	if !errors.Is(err, ErrInvalidItem) {
		t.Errorf("empty custom name: error = %v, want ErrInvalidItem", err)
	}
}

func TestPriceItem_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		it, err := PriceItem(ItemInput{ProductName: "MCB", Quantity: "1", UnitPrice: "10", Rate: 18})
		if err != nil {
			t.Fatal(err)
		}
		if seen[it.ID] {
			t.Fatalf("duplicate id %s", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestRejectionBoundary(t *testing.T) {
	base := LineItem{ID: "x", ProductName: "Locks", Quantity: 1, UnitPrice: UnitPriceFromStore(10), Rate: 18}

	tests := []struct {
		name      string
		qty       string
		price     string
		createOK  bool
		editOK    bool
		wantField string
	}{
		{"zero quantity", "0", "10", false, false, "quantity"},
		{"negative quantity", "-1", "10", false, false, "quantity"},
		{"text quantity", "abc", "10", false, false, "quantity"},
		{"empty quantity", "", "10", false, false, "quantity"},
		{"NaN quantity", "NaN", "10", false, false, "quantity"},
		{"zero price", "1", "0", false, true, "unit_price"},
		{"negative price", "1", "-1", false, false, "unit_price"},
		{"text price", "1", "ten", false, false, "unit_price"},
		{"infinite price", "1", "1e400", false, false, "unit_price"},
		{"overflowing total", "1e200", "1e200", false, false, "quantity"},
		{"overflowing gst", "1e300", "1e8", false, false, "quantity"},
		{"large but finite", "1e150", "1e150", true, true, ""},
		{"valid", "1.5", "10.25", true, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PriceItem(ItemInput{ProductName: "Locks", Quantity: tt.qty, UnitPrice: tt.price, Rate: 18})
			if (err == nil) != tt.createOK {
				t.Errorf("PriceItem() error = %v, want ok=%v", err, tt.createOK)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidItem) {
					t.Errorf("PriceItem() error = %v, want ErrInvalidItem", err)
				}
				var ie *InvalidItemError
				if errors.As(err, &ie) && ie.Field != tt.wantField {
					t.Errorf("field = %q, want %q", ie.Field, tt.wantField)
				}
			}

			_, err = ApplyEdit(base, EditInput{Quantity: tt.qty, UnitPrice: tt.price, Rate: 18})
			if (err == nil) != tt.editOK {
				t.Errorf("ApplyEdit() error = %v, want ok=%v", err, tt.editOK)
			}
			if err != nil && !errors.Is(err, ErrInvalidItem) {
				t.Errorf("ApplyEdit() error = %v, want ErrInvalidItem", err)
			}
		})
	}
}

func TestUnsupportedRate(t *testing.T) {
	_, err := PriceItem(ItemInput{ProductName: "Putty", Quantity: "1", UnitPrice: "10", Rate: 7})
	if !errors.Is(err, ErrInvalidItem) {
		t.Errorf("error = %v, want ErrInvalidItem", err)
	}
	for _, r := range Rates() {
		if !r.Valid() {
			t.Errorf("rate %d reported invalid", r)
		}
	}
}

func TestReopenForEdit_RoundTrip(t *testing.T) {
	prices := []float64{0.01, 1, 99.99, 118, 250.5, 1234.56, 98765.4321}
	quantities := []float64{1, 2.5, 10, 0.333}
	for _, r := range Rates() {
		for _, p := range prices {
			for _, q := range quantities {
				in := ItemInput{
					ProductName: "TMT Bars (Fe 500D)",
					Quantity:    strconv.FormatFloat(q, 'f', -1, 64),
					UnitPrice:   strconv.FormatFloat(p, 'f', -1, 64),
					Rate:        r,
					Inclusive:   true,
				}
				it, err := PriceItem(in)
				if err != nil {
					t.Fatalf("PriceItem(%+v) error = %v", in, err)
				}
				ed := ReopenForEdit(it)
				shown, err := strconv.ParseFloat(ed.UnitPrice, 64)
				if err != nil {
					t.Fatalf("displayed price %q not numeric", ed.UnitPrice)
				}
				if !closeTo(shown, p) {
					t.Errorf("rate %d price %v: displayed %v", r, p, shown)
				}
				if ed.Quantity != in.Quantity {
					t.Errorf("quantity text = %q, want %q", ed.Quantity, in.Quantity)
				}
			}
		}
	}
}

func TestReopenForEdit_RepeatedCyclesDoNotDrift(t *testing.T) {
	it, err := PriceItem(ItemInput{ProductName: "Primer (1L)", Quantity: "3", UnitPrice: "349.99", Rate: 28, Inclusive: true})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		ed := ReopenForEdit(it)
		it, err = ApplyEdit(it, EditInput{Quantity: ed.Quantity, UnitPrice: ed.UnitPrice, Rate: ed.Rate, Inclusive: ed.Inclusive})
		if err != nil {
			t.Fatal(err)
		}
	}
	shown, _ := strconv.ParseFloat(ReopenForEdit(it).UnitPrice, 64)
	if !closeTo(shown, 349.99) {
		t.Errorf("after 20 edit cycles displayed price = %v", shown)
	}
}

func TestReopenForEdit_Exclusive(t *testing.T) {
	it, err := PriceItem(ItemInput{ProductName: "Hinges (pair)", Quantity: "4", UnitPrice: "55.5", Rate: 12})
	if err != nil {
		t.Fatal(err)
	}
	ed := ReopenForEdit(it)
	if ed.UnitPrice != "55.5" || ed.Quantity != "4" {
		t.Errorf("got price %q qty %q", ed.UnitPrice, ed.Quantity)
	}
}

func TestApplyEdit_PreservesIdentity(t *testing.T) {
	it, err := PriceItem(ItemInput{Category: "Paint", ProductName: "Putty (1kg)", HSNCode: "321410", Details: "white", Quantity: "1", UnitPrice: "40", Rate: 18})
	if err != nil {
		t.Fatal(err)
	}
	got, err := ApplyEdit(it, EditInput{Quantity: "5", UnitPrice: "0", Rate: 5, Inclusive: true})
	if err != nil {
		t.Fatalf("ApplyEdit() error = %v", err)
	}
	if got.ID != it.ID || got.Category != "Paint" || got.ProductName != "Putty (1kg)" || got.HSNCode != "321410" || got.Details != "white" {
		t.Errorf("identity fields changed: %+v", got)
	}
	if got.Quantity != 5 || got.Rate != 5 || !got.Inclusive {
		t.Errorf("edited fields not applied: %+v", got)
	}
	if got.TaxableValue != 0 || got.GSTAmount != 0 || got.Total != 0 {
		t.Errorf("zero price should give zero totals: %+v", got)
	}
}

func TestExclusiveInclusiveEquivalence(t *testing.T) {
	for _, r := range Rates() {
		for _, u := range []float64{1, 100, 42.42, 1999} {
			for _, q := range []string{"1", "3", "7.5"} {
				ex, err := PriceItem(ItemInput{ProductName: "Wires (per meter)", Quantity: q, UnitPrice: strconv.FormatFloat(u, 'f', -1, 64), Rate: r})
				if err != nil {
					t.Fatal(err)
				}
				gross := u * (1 + float64(r)/100)
				in, err := PriceItem(ItemInput{ProductName: "Wires (per meter)", Quantity: q, UnitPrice: strconv.FormatFloat(gross, 'f', -1, 64), Rate: r, Inclusive: true})
				if err != nil {
					t.Fatal(err)
				}
				if !closeTo(ex.Total, in.Total) {
					t.Errorf("rate %d u %v q %s: exclusive total %v, inclusive total %v", r, u, q, ex.Total, in.Total)
				}
			}
		}
	}
}

func TestDerivedFieldInvariants(t *testing.T) {
	it, err := PriceItem(ItemInput{ProductName: "Ceiling Fans", Quantity: "3", UnitPrice: "1875.40", Rate: 28})
	if err != nil {
		t.Fatal(err)
	}
	if it.TaxableValue != it.UnitPrice.Float()*it.Quantity {
		t.Error("taxableValue != unitPrice * quantity")
	}
	if it.GSTAmount != it.TaxableValue*float64(it.Rate)/100 {
		t.Error("gstAmount != taxableValue * rate / 100")
	}
	if it.Total != it.TaxableValue+it.GSTAmount {
		t.Error("total != taxableValue + gstAmount")
	}
}

func TestAggregate(t *testing.T) {
	if got := Aggregate(nil); got != (Totals{}) {
		t.Errorf("Aggregate(nil) = %+v, want zero", got)
	}

	a, _ := PriceItem(ItemInput{ProductName: "PPC", Quantity: "2", UnitPrice: "100", Rate: 18})
	b, _ := PriceItem(ItemInput{ProductName: "OPC", Quantity: "1", UnitPrice: "100", Rate: 18})
	got := Aggregate([]LineItem{a, b})
	if got.Subtotal != 300 || got.TotalGST != 54 || got.GrandTotal != 354 {
		t.Errorf("Aggregate() = %+v, want 300/54/354", got)
	}

	c, _ := PriceItem(ItemInput{ProductName: "MCB", Quantity: "0.7", UnitPrice: "33.33", Rate: 12, Inclusive: true})
	items := []LineItem{a, b, c}
	got = Aggregate(items)
	var sub, tax float64
	for _, it := range items {
		sub += it.TaxableValue
		tax += it.GSTAmount
	}
	if got.Subtotal != sub || got.TotalGST != tax {
		t.Errorf("sums differ: %+v vs %v/%v", got, sub, tax)
	}
	if got.GrandTotal != got.Subtotal+got.TotalGST {
		t.Errorf("grand total %v != %v + %v", got.GrandTotal, got.Subtotal, got.TotalGST)
	}
}

func TestSplit(t *testing.T) {
	for _, g := range []float64{0, 36, 54, 0.01, 12345.67, 1.0 / 3} {
		tot := Totals{TotalGST: g}
		if tot.CGST() != g/2 || tot.SGST() != g/2 {
			t.Errorf("split of %v = %v/%v", g, tot.CGST(), tot.SGST())
		}
		if tot.CGST()+tot.SGST() != g {
			t.Errorf("halves of %v do not sum back", g)
		}
	}
}

func TestUnitPriceJSON(t *testing.T) {
	b, err := UnitPriceFromStore(12.5).MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "12.5" {
		t.Errorf("MarshalJSON() = %s", b)
	}

	var p UnitPrice
	if err := p.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if p.Float() != 12.5 {
		t.Errorf("UnmarshalJSON() = %v, want 12.5", p.Float())
	}
	if err := p.UnmarshalJSON([]byte(`"12.5"`)); err == nil {
		t.Error("UnmarshalJSON(string) error = nil")
	}
}
