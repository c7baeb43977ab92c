package bookings

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"oyow/logger"
	"oyow/store"
)

// GetTicket renders a PDF confirmation with an embedded QR code for a
// persisted booking. Temporary ids were never saved, so they come back 404.
func (h *Handler) GetTicket(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), store.Timeout)
	defer cancel()

	booking, err := h.Bookings.FindByID(ctx, bookingID)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch booking", http.StatusInternalServerError)
		return
	}

	qrData := fmt.Sprintf("bid=%s&tour=%s&ts=%d", booking.BookingID, booking.TourID, time.Now().Unix())
	qrPNG, err := qrcode.Encode(qrData, qrcode.Medium, 128)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, "Oyow Tours Booking Confirmation", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 10, fmt.Sprintf(
		"Name: %s\nBooking ID: %s\nTour: %s\nTravel date: %s\nTotal: %.2f\nStatus: %s",
		booking.Name,
		booking.BookingID,
		booking.TourID,
		booking.Date.Format("02 Jan 2006"),
		booking.TotalAmount,
		booking.Status,
	), "", "L", false)

	imgOpts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 60, 40, 40, false, imgOpts, 0, "")

	pdf.SetY(-30)
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(0, 10, "Show this confirmation to your guide at the meeting point.", "T", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		logger.Log.Error().Err(err).Msg("ticket render failed")
		http.Error(w, "Failed to generate ticket", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=booking-"+bookingID+".pdf")
	w.Write(buf.Bytes())
}
