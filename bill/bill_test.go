package bill

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/satheeshds/billing/gst"
	"github.com/satheeshds/billing/models"
)

var day = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

func mustAdd(t *testing.T, b Bill, in gst.ItemInput) Bill {
	t.Helper()
	next, err := AddItem(b, in)
	if err != nil {
		t.Fatalf("AddItem(%+v) error = %v", in, err)
	}
	return next
}

func checkTotals(t *testing.T, b Bill) {
	t.Helper()
	if want := gst.Aggregate(b.Items); b.Totals != want {
		t.Errorf("totals = %+v, want %+v", b.Totals, want)
	}
}

func TestAddItemRecomputesTotals(t *testing.T) {
	b := New(day)
	if b.Totals != (gst.Totals{}) || len(b.Items) != 0 {
		t.Fatalf("new bill not empty: %+v", b)
	}
	b = mustAdd(t, b, gst.ItemInput{Category: "Cement", ProductName: "PPC", Quantity: "2", UnitPrice: "100", Rate: 18})
	b = mustAdd(t, b, gst.ItemInput{Category: "Cement", ProductName: "OPC", Quantity: "1", UnitPrice: "118", Rate: 18, Inclusive: true})
	checkTotals(t, b)
	if b.Totals.Subtotal != 300 || b.Totals.TotalGST != 54 || b.Totals.GrandTotal != 354 {
		t.Errorf("totals = %+v, want 300/54/354", b.Totals)
	}
}

func TestAddItemFillsHSNFromCatalog(t *testing.T) {
	b := mustAdd(t, New(day), gst.ItemInput{Category: "Steel", ProductName: "MS Rods", Quantity: "1", UnitPrice: "60", Rate: 18})
	if b.Items[0].HSNCode != "721499" {
		t.Errorf("hsn = %q", b.Items[0].HSNCode)
	}
	b = mustAdd(t, b, gst.ItemInput{Category: "Steel", ProductName: "MS Rods", HSNCode: "7214", Quantity: "1", UnitPrice: "60", Rate: 18})
	if b.Items[1].HSNCode != "7214" {
		t.Errorf("explicit hsn overwritten: %q", b.Items[1].HSNCode)
	}
}

func TestAddItemRejections(t *testing.T) {
	b := New(day)
	tests := []gst.ItemInput{
		{Category: "Tiles", ProductName: "Floor", Quantity: "1", UnitPrice: "1", Rate: 18},
		{ProductName: "", Quantity: "1", UnitPrice: "1", Rate: 18},
		{ProductName: "PPC", Quantity: "0", UnitPrice: "1", Rate: 18},
		{ProductName: "PPC", Quantity: "1", UnitPrice: "0", Rate: 18},
	}
	for _, in := range tests {
		next, err := AddItem(b, in)
		if !errors.Is(err, gst.ErrInvalidItem) {
			t.Errorf("AddItem(%+v) error = %v, want ErrInvalidItem", in, err)
		}
		if len(next.Items) != 0 {
			t.Errorf("rejected item was appended")
		}
	}
}

func TestUpdateItemIsPure(t *testing.T) {
	b := mustAdd(t, New(day), gst.ItemInput{ProductName: "Locks", Quantity: "1", UnitPrice: "250", Rate: 18})
	b = mustAdd(t, b, gst.ItemInput{ProductName: "Screws (box)", Quantity: "2", UnitPrice: "80", Rate: 18})
	id := b.Items[0].ID

	next, err := UpdateItem(b, id, gst.EditInput{Quantity: "3", UnitPrice: "250", Rate: 18})
	if err != nil {
		t.Fatalf("UpdateItem() error = %v", err)
	}
	if b.Items[0].Quantity != 1 {
		t.Error("original bill was mutated")
	}
	if next.Items[0].Quantity != 3 || next.Items[0].ID != id {
		t.Errorf("updated item = %+v", next.Items[0])
	}
	checkTotals(t, next)

	if _, err := UpdateItem(b, "nope", gst.EditInput{Quantity: "1", UnitPrice: "1", Rate: 18}); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("unknown id error = %v", err)
	}
	if _, err := UpdateItem(b, id, gst.EditInput{Quantity: "-1", UnitPrice: "1", Rate: 18}); !errors.Is(err, gst.ErrInvalidItem) {
		t.Errorf("bad quantity error = %v", err)
	}
}

func TestReopenAndUpdateRoundTrip(t *testing.T) {
	b := mustAdd(t, New(day), gst.ItemInput{ProductName: "GreenPly", Quantity: "2", UnitPrice: "118", Rate: 18, Inclusive: true})
	id := b.Items[0].ID
	ed, err := Reopen(b, id)
	if err != nil {
		t.Fatal(err)
	}
	if ed.UnitPrice != "118" {
		t.Errorf("displayed price = %q, want 118", ed.UnitPrice)
	}
	next, err := UpdateItem(b, id, gst.EditInput{Quantity: ed.Quantity, UnitPrice: ed.UnitPrice, Rate: ed.Rate, Inclusive: ed.Inclusive})
	if err != nil {
		t.Fatal(err)
	}
	if next.Totals != b.Totals {
		t.Errorf("unchanged edit moved totals: %+v vs %+v", next.Totals, b.Totals)
	}
	if _, err := Reopen(b, "missing"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("Reopen(missing) error = %v", err)
	}
}

func TestPatchItem(t *testing.T) {
	b := mustAdd(t, New(day), gst.ItemInput{ProductName: "Switches", Quantity: "10", UnitPrice: "35", Rate: 18})
	id := b.Items[0].ID
	details := " modular, white "
	next, err := PatchItem(b, id, ItemPatch{Details: &details})
	if err != nil {
		t.Fatal(err)
	}
	if next.Items[0].Details != "modular, white" {
		t.Errorf("details = %q", next.Items[0].Details)
	}
	if next.Totals != b.Totals {
		t.Error("patch changed totals")
	}
	blank := " "
	if _, err := PatchItem(b, id, ItemPatch{ProductName: &blank}); !errors.Is(err, gst.ErrInvalidItem) {
		t.Errorf("blank name error = %v", err)
	}
}

func TestRemoveItem(t *testing.T) {
	b := mustAdd(t, New(day), gst.ItemInput{ProductName: "LED Bulbs", Quantity: "4", UnitPrice: "99", Rate: 12})
	b = mustAdd(t, b, gst.ItemInput{ProductName: "MCB", Quantity: "1", UnitPrice: "180", Rate: 18})
	next, err := RemoveItem(b, b.Items[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(next.Items) != 1 || next.Items[0].ProductName != "MCB" {
		t.Errorf("items = %+v", next.Items)
	}
	checkTotals(t, next)
	if len(b.Items) != 2 {
		t.Error("original bill was mutated")
	}

	empty, err := RemoveItem(next, next.Items[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if empty.Totals != (gst.Totals{}) {
		t.Errorf("empty bill totals = %+v", empty.Totals)
	}
}

func TestSnapshot(t *testing.T) {
	if _, err := Snapshot(New(day), "u1", day); !errors.Is(err, ErrEmptyBill) {
		t.Errorf("empty snapshot error = %v", err)
	}

	b := New(day)
	b = SetBusiness(b, models.BusinessDetails{BusinessName: "Kanstruction", GSTIN: "29ABCDE1234F1Z5"})
	b = SetCustomer(b, models.CustomerDetails{CustomerName: "Ravi", BillDate: day})
	b = mustAdd(t, b, gst.ItemInput{ProductName: "PPC", Quantity: "2", UnitPrice: "100", Rate: 18})

	rec, err := Snapshot(b, "u1", day.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if rec.UserID != "u1" || rec.BusinessName != "Kanstruction" || rec.CustomerName != "Ravi" {
		t.Errorf("snapshot header = %+v", rec.Invoice)
	}
	if rec.Totals != b.Totals {
		t.Errorf("snapshot totals %+v != bill totals %+v", rec.Totals, b.Totals)
	}
	rec.Items[0].ProductName = "changed"
	if b.Items[0].ProductName != "PPC" {
		t.Error("snapshot shares item storage with the bill")
	}
}

func TestSessions(t *testing.T) {
	s := NewSessions(func() time.Time { return day }, 0)
	if got := s.Get("a"); got.Customer.BillDate != day || len(got.Items) != 0 {
		t.Errorf("fresh bill = %+v", got)
	}

	_, err := s.Update("a", func(b Bill) (Bill, error) {
		return AddItem(b, gst.ItemInput{ProductName: "PPC", Quantity: "1", UnitPrice: "10", Rate: 5})
	})
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.Update("a", func(b Bill) (Bill, error) {
		return AddItem(b, gst.ItemInput{ProductName: "PPC", Quantity: "x", UnitPrice: "10", Rate: 5})
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if n := len(s.Get("a").Items); n != 1 {
		t.Errorf("failed update changed the bill: %d items", n)
	}
	if n := len(s.Get("b").Items); n != 0 {
		t.Errorf("bills leak across users: %d items", n)
	}
	if n := len(s.Reset("a").Items); n != 0 {
		t.Errorf("reset left %d items", n)
	}
}

func TestSessionsConcurrentUpdates(t *testing.T) {
	s := NewSessions(nil, time.Hour)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Update("a", func(b Bill) (Bill, error) {
				return AddItem(b, gst.ItemInput{ProductName: "Nails (per kg)", Quantity: "1", UnitPrice: "90", Rate: 18})
			})
		}()
	}
	wg.Wait()
	b := s.Get("a")
	if len(b.Items) != 20 {
		t.Errorf("items = %d, want 20", len(b.Items))
	}
	checkTotals(t, b)
}

func TestBillTotalOverflowRejected(t *testing.T) {
	big := gst.ItemInput{Category: gst.OthersCategory, CustomProductName: "Bulk", Quantity: "1e154", UnitPrice: "1e154", Rate: 0}
	b := mustAdd(t, New(day), big)

	_, err := AddItem(b, big)
	if !errors.Is(err, gst.ErrInvalidItem) {
		t.Fatalf("AddItem() error = %v, want ErrInvalidItem", err)
	}

	small := mustAdd(t, b, gst.ItemInput{Category: gst.OthersCategory, CustomProductName: "Pins", Quantity: "1", UnitPrice: "1", Rate: 18})
	_, err = UpdateItem(small, small.Items[1].ID, gst.EditInput{Quantity: "1e154", UnitPrice: "1e154", Rate: 0})
	if !errors.Is(err, gst.ErrInvalidItem) {
		t.Fatalf("UpdateItem() error = %v, want ErrInvalidItem", err)
	}
	if _, err := json.Marshal(small); err != nil {
		t.Errorf("json.Marshal() error = %v", err)
	}
}

func TestBillJSONRoundTrip(t *testing.T) {
	b := mustAdd(t, New(day), gst.ItemInput{Category: "Cement", ProductName: "PPC", Quantity: "3", UnitPrice: "349.99", Rate: 28, Inclusive: true})
	b = mustAdd(t, b, gst.ItemInput{Category: gst.OthersCategory, CustomProductName: "Sand", Quantity: "2.5", UnitPrice: "1200", Rate: 5})

	raw, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	var got Bill
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if len(got.Items) != len(b.Items) {
		t.Fatalf("items = %d, want %d", len(got.Items), len(b.Items))
	}
	for i := range b.Items {
		if got.Items[i] != b.Items[i] {
			t.Errorf("item %d = %+v, want %+v", i, got.Items[i], b.Items[i])
		}
	}
	if got.Totals != b.Totals {
		t.Errorf("totals = %+v, want %+v", got.Totals, b.Totals)
	}
	checkTotals(t, got)
}

func TestSessionsExpireIdleBills(t *testing.T) {
	clock := day
	s := NewSessions(func() time.Time { return clock }, time.Hour)

	add := func(user string) {
		t.Helper()
		_, err := s.Update(user, func(b Bill) (Bill, error) {
			return AddItem(b, gst.ItemInput{ProductName: "PPC", Category: "Cement", Quantity: "1", UnitPrice: "10", Rate: 5})
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	add("guest-1")
	add("guest-2")
	s.Get("guest-3")
	if n := s.Len(); n != 3 {
		t.Fatalf("held = %d, want 3", n)
	}

	clock = clock.Add(45 * time.Minute)
	if n := len(s.Get("guest-1").Items); n != 1 {
		t.Errorf("active bill lost before idle limit: %d items", n)
	}

	clock = clock.Add(30 * time.Minute)
	if n := len(s.Get("guest-4").Items); n != 0 {
		t.Errorf("new bill has %d items", n)
	}
	if n := s.Len(); n != 2 {
		t.Errorf("held after sweep = %d, want 2 (guest-1 and guest-4)", n)
	}

	clock = clock.Add(2 * time.Hour)
	got := s.Get("guest-1")
	if len(got.Items) != 0 || !got.Customer.BillDate.Equal(clock) {
		t.Errorf("expired bill came back: %+v", got)
	}
}
