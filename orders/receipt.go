package orders

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"freshmart/db"
	"freshmart/globals"
	"freshmart/models"
	"freshmart/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

// ReceiptQRPayload returns "orderID|userID|timestamp|signature"; the HMAC
// lets a scanner verify the receipt was issued by this service.
func ReceiptQRPayload(orderID, userID string, issuedAt time.Time) string {
	data := fmt.Sprintf("%s|%s|%d", orderID, userID, issuedAt.Unix())

	h := hmac.New(sha256.New, globals.JwtSecret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s|%s", data, sig)
}

// DownloadReceipt renders a PDF receipt for an owned order, with a signed
// QR code for delivery verification.
func DownloadReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	var order models.Order
	err := db.OrderCollection.FindOne(ctx, bson.M{
		"orderid": ps.ByName("id"),
		"userid":  userID,
	}).Decode(&order)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "order_not_found", "Order not found")
		return
	}

	var user models.User
	_ = db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user)

	qrPNG, err := qrcode.Encode(ReceiptQRPayload(order.OrderID, userID, time.Now()), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to generate QR code")
		return
	}

	buf, err := RenderReceiptPDF(order, user, qrPNG)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=receipt-"+order.OrderID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// RenderReceiptPDF lays out the order receipt. qrPNG may be nil to skip the
// QR block.
func RenderReceiptPDF(order models.Order, user models.User, qrPNG []byte) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "FreshMart Order Receipt")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Order ID: %s", order.OrderID))
	pdf.Ln(7)
	if user.FirstName != "" || user.LastName != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Customer: %s %s", user.FirstName, user.LastName))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Placed: %s", order.CreatedAt.Format("02 Jan 2006 15:04")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deliver to: %s, %s, %s %s, %s",
		order.DeliveryStreet, order.DeliveryCity, order.DeliveryState,
		order.DeliveryPostalCode, order.DeliveryCountry))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(90, 8, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Subtotal", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, item := range order.Items {
		pdf.CellFormat(90, 8, item.ProductName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%.2f", item.ProductPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", item.Subtotal), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.Cell(0, 7, fmt.Sprintf("Subtotal: %.2f", order.Subtotal))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Delivery fee: %.2f", order.DeliveryFee))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Tax: %.2f", order.Tax))
	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %.2f", order.Total))

	if qrPNG != nil {
		imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
		pdf.ImageOptions("qr", 150, 30, 40, 40, false, imageOpts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}
