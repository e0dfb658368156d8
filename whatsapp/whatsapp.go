// Package whatsapp builds the wa.me handoff link the storefront opens after
// checkout, so the bakery receives the order as a pre-filled chat message.
package whatsapp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"salt-n-sugar-backend/models"
)

// OrderMessage renders an order as the WhatsApp chat text.
func OrderMessage(order *models.Order) string {
	var b strings.Builder
	b.WriteString("🎂 *Salt N Sugar - New Order* 🎂\n\n")
	fmt.Fprintf(&b, "*Order Number:* %s\n", order.OrderNumber)
	b.WriteString("*Order Details:*\n")
	b.WriteString("━━━━━━━━━━━━━━━━\n\n")

	for i, item := range order.Items {
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, item.ProductName)
		fmt.Fprintf(&b, "   Size: %s\n", item.Size)
		fmt.Fprintf(&b, "   Quantity: %d\n", item.Quantity)
		fmt.Fprintf(&b, "   Price: Rs.%s\n\n", FormatAmount(item.Price*float64(item.Quantity)))
	}

	b.WriteString("━━━━━━━━━━━━━━━━\n")
	fmt.Fprintf(&b, "*Total: Rs.%s*\n\n", FormatAmount(order.TotalAmount))
	fmt.Fprintf(&b, "*Name:* %s\n", order.CustomerName)
	fmt.Fprintf(&b, "*Phone:* %s\n", order.CustomerPhone)
	fmt.Fprintf(&b, "*Address:* %s\n", order.DeliveryAddress)
	if order.Notes != "" {
		fmt.Fprintf(&b, "*Notes:* %s\n", order.Notes)
	}
	return b.String()
}

// OrderURL returns the wa.me link carrying the order message, ready for the
// client to open.
func OrderURL(number string, order *models.Order) string {
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(OrderMessage(order))
}

// FormatAmount renders a rupee amount with thousands separators, dropping
// the fraction when it is whole.
func FormatAmount(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot:]
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 && intPart[i-1] != '-' {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return b.String() + fracPart
}
