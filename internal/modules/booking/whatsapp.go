// README: WhatsApp deep link for the booking handoff.
package booking

import (
	"fmt"
	"net/url"
	"strings"

	"jatriwheels/internal/modules/quote"
)

// HandoffLink builds the wa.me deep link a customer follows after
// submitting a booking. number is the business line in E.164 format.
func HandoffLink(number string, b *Booking) string {
	tripType := "One Way"
	if b.TripType == quote.RoundTrip {
		tripType = "Round Trip"
	}

	var msg strings.Builder
	msg.WriteString("*I want to book a ride from Jatri Wheels*\n\n")
	msg.WriteString("*Here are my details*\n")
	fmt.Fprintf(&msg, "Name: %s\nEmail: %s\nPhone: %s\n\n", b.Name, b.Email, b.Phone)
	msg.WriteString("*Journey Details*\n")
	fmt.Fprintf(&msg, "From: %s\nTo: %s\n", b.PickupLocation, b.DropoffLocation)
	fmt.Fprintf(&msg, "Date: %s\nTime: %s\n", b.JourneyDate, b.JourneyTime)
	fmt.Fprintf(&msg, "Trip Type: %s\n", tripType)
	fmt.Fprintf(&msg, "Passengers: %d\nLuggage: %d\n", b.Passengers, b.Luggage)
	fmt.Fprintf(&msg, "Distance: %.1f km\n", b.DistanceKm)
	fmt.Fprintf(&msg, "Order Number: %s", b.OrderNumber)

	return "https://wa.me/" + number + "?text=" + url.QueryEscape(msg.String())
}
