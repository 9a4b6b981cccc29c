package utils

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/vastracart/vastra-api/models"
)

// BuildReceiptPDF renders a one-page order receipt: order id, date, customer
// and address, line items and the grand total.
func BuildReceiptPDF(order *models.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Order Receipt")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Order ID: "+order.OrderID)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Date: "+order.CreatedAt.Format("02 Jan 2006 15:04"))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Payment: "+string(order.PaymentMethod)+" ("+string(order.PaymentStatus)+")")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 6, "Customer")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, order.Address.FullName)
	pdf.Ln(6)
	street := order.Address.Street
	if order.Address.Apartment != "" {
		street += ", " + order.Address.Apartment
	}
	pdf.Cell(0, 6, street)
	pdf.Ln(6)
	cityLine := order.Address.City
	if order.Address.State != "" {
		cityLine += ", " + order.Address.State
	}
	cityLine += " " + order.Address.Postcode
	pdf.Cell(0, 6, cityLine)
	pdf.Ln(6)
	pdf.Cell(0, 6, order.Address.Country)
	pdf.Ln(6)
	pdf.Cell(0, 6, order.Address.Phone+"  "+order.Address.Email)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(80, 8, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Size", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Subtotal", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, item := range order.Items {
		pdf.CellFormat(80, 8, item.ProductName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, item.Size, "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", item.Price*float64(item.Quantity)), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(155, 10, "Total", "0", 0, "R", false, 0, "")
	pdf.CellFormat(35, 10, fmt.Sprintf("%.2f", order.TotalAmount), "1", 1, "R", false, 0, "")

	if order.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, "Notes: "+order.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering receipt: %w", err)
	}
	return buf.Bytes(), nil
}
