package notification

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"voyago/models"
)

var bookingTmpl = template.Must(template.New("booking").Parse(`<html>
<body>
    <h2>Booking Confirmation</h2>
    <p>Dear {{.Booking.UserName}},</p>
    <p>Your booking has been confirmed successfully!</p>

    <h3>Booking Details:</h3>
    <ul>
        <li><strong>Property:</strong> {{.Listing.Title}}</li>
        <li><strong>Location:</strong> {{.Listing.Location}}</li>
        <li><strong>Check-in:</strong> {{.Booking.CheckIn}}</li>
        <li><strong>Check-out:</strong> {{.Booking.CheckOut}}</li>
        <li><strong>Price per night:</strong> ${{printf "%.2f" .Listing.PricePerNight}}</li>
        <li><strong>Booking ID:</strong> {{.Booking.ID}}</li>
    </ul>

    <p>Thank you for choosing our travel platform!</p>
    <p>Best regards,<br>The Voyago Team</p>
</body>
</html>`))

var paymentTmpl = template.Must(template.New("payment").Parse(`<html>
<body>
    <h2>Payment Confirmation</h2>
    <p>Your payment has been processed successfully!</p>

    <h3>Payment Details:</h3>
    <ul>
        <li><strong>Booking Reference:</strong> {{.BookingReference}}</li>
        <li><strong>Transaction ID:</strong> {{.TransactionID}}</li>
        <li><strong>Amount:</strong> ${{printf "%.2f" .Amount}}</li>
        <li><strong>Status:</strong> {{.Status}}</li>
        <li><strong>Date:</strong> {{.Date}}</li>
    </ul>

    <p>Thank you for your payment!</p>
    <p>Best regards,<br>The Voyago Team</p>
</body>
</html>`))

func renderBookingConfirmation(booking *models.Booking, listing *models.Listing) (Message, error) {
	var html strings.Builder
	data := struct {
		Booking *models.Booking
		Listing *models.Listing
	}{booking, listing}
	if err := bookingTmpl.Execute(&html, data); err != nil {
		return Message{}, err
	}

	text := fmt.Sprintf(
		"Dear %s,\n\nYour booking has been confirmed successfully!\n\n"+
			"Property: %s\nLocation: %s\nCheck-in: %s\nCheck-out: %s\n"+
			"Price per night: $%.2f\nBooking ID: %s\n\n"+
			"Thank you for choosing our travel platform!\nThe Voyago Team\n",
		booking.UserName, listing.Title, listing.Location,
		booking.CheckIn, booking.CheckOut, listing.PricePerNight, booking.ID,
	)

	return Message{
		To:      booking.UserEmail,
		Subject: fmt.Sprintf("Booking Confirmation - %s", listing.Title),
		HTML:    html.String(),
		Text:    text,
	}, nil
}

func renderPaymentConfirmation(payment *models.Payment) (Message, error) {
	var html strings.Builder
	data := struct {
		BookingReference string
		TransactionID    string
		Amount           float64
		Status           string
		Date             string
	}{
		BookingReference: payment.BookingReference,
		TransactionID:    payment.TransactionID,
		Amount:           payment.Amount,
		Status:           payment.Status,
		Date:             payment.CreatedAt.Format(time.RFC1123),
	}
	if err := paymentTmpl.Execute(&html, data); err != nil {
		return Message{}, err
	}

	text := fmt.Sprintf(
		"Your payment has been processed successfully!\n\n"+
			"Booking Reference: %s\nTransaction ID: %s\nAmount: $%.2f\n"+
			"Status: %s\nDate: %s\n\n"+
			"Thank you for your payment!\nThe Voyago Team\n",
		payment.BookingReference, payment.TransactionID, payment.Amount,
		payment.Status, data.Date,
	)

	return Message{
		To:      payment.Email,
		Subject: fmt.Sprintf("Payment Confirmation - %s", payment.BookingReference),
		HTML:    html.String(),
		Text:    text,
	}, nil
}
