// Package invoice renders order invoices as PDF documents.
package invoice

import (
	"context"
	"fmt"
	"io"

	"github.com/go-faster/errors"
	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/sustainafood/grocery-orders/internal/domain/order"
)

// ContentType is the media type of rendered invoices.
const ContentType = "application/pdf"

// FileName returns the attachment name of the invoice of orderID.
func FileName(orderID string) string {
	return fmt.Sprintf("invoice-%s.pdf", orderID)
}

// column widths of the line-item table, in millimeters.
var columns = [4]float64{95, 25, 35, 35}

// Renderer renders invoices with the store's branding.
type Renderer struct {
	store   string
	tagline string
}

var _ order.InvoiceRenderer = (*Renderer)(nil)

// NewRenderer creates a PDF renderer for the given store name.
func NewRenderer(store, tagline string) *Renderer {
	return &Renderer{store: store, tagline: tagline}
}

// Render writes the invoice of o to w.
func (r *Renderer) Render(ctx context.Context, w io.Writer, o *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Invoice "+o.ID), false)
	pdf.SetCreator(tr(r.store), false)
	pdf.SetCreationDate(o.UpdatedAt)
	pdf.SetModificationDate(o.UpdatedAt)
	pdf.SetCatalogSort(true)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, tr(r.store), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, "Invoice", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	heading := func(s string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, tr(s), "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.Ln(1)
	}
	line := func(label, value string) {
		if value == "" {
			value = "-"
		}
		pdf.CellFormat(40, 6, tr(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(value), "", 1, "L", false, 0, "")
	}

	heading("Invoice details")
	line("Invoice number", o.ID)
	line("Order date", o.OrderDate.Format("2006-01-02"))
	line("Order status", string(o.Status))
	line("Payment method", string(o.PaymentMethod))
	line("Payment status", string(o.PaymentStatus))
	if o.PaymentID != "" {
		line("Payment reference", o.PaymentID)
	}
	pdf.Ln(4)

	heading("Delivery address")
	line("Address", o.Address.Address)
	line("City", o.Address.City)
	line("Postal code", o.Address.Pincode)
	line("Phone", o.Address.Phone)
	line("Notes", o.Address.Notes)
	pdf.Ln(4)

	heading("Items")
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range []string{"Product", "Quantity", "Unit price", "Total"} {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(columns[i], 7, h, "B", 0, align, false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range o.Items {
		unit := it.Unit
		if unit == "" {
			unit = "pcs"
		}
		pdf.CellFormat(columns[0], 7, tr(it.Title), "", 0, "L", false, 0, "")
		pdf.CellFormat(columns[1], 7, fmt.Sprintf("%d %s", it.Quantity, unit), "", 0, "R", false, 0, "")
		pdf.CellFormat(columns[2], 7, money(it.Price), "", 0, "R", false, 0, "")
		pdf.CellFormat(columns[3], 7, money(it.Subtotal()), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(columns[0]+columns[1]+columns[2], 9, "Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(columns[3], 9, money(o.TotalAmount), "T", 1, "R", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 6, "Thank you for your order!", "", 1, "C", false, 0, "")
	if r.tagline != "" {
		pdf.CellFormat(0, 6, tr(r.tagline), "", 1, "C", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(err, "write pdf")
	}
	return nil
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
