// Package whatsapp builds wa.me deep links for purchase inquiries and lead
// follow-up. Pure string transforms, no network calls.
package whatsapp

import (
	"fmt"
	"net/url"
)

// InquiryMessage is the canned message behind the public "Message on WhatsApp"
// button.
const InquiryMessage = "Hello Sir, I would like to inquire about A/L ICT classes."

// Link builds a WhatsApp deep link that opens a chat with the given number
// and the message pre-filled.
func Link(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}

// PurchaseMessage templates the purchase confirmation message a visitor sends
// after a manual bank transfer.
func PurchaseMessage(className, bankDetails string) string {
	return fmt.Sprintf(
		"Hello Sir, I want to purchase %s content. Here are the bank details I received:\n\n%s",
		className, bankDetails,
	)
}

// PurchaseLink builds the full deep link for a class purchase inquiry.
func PurchaseLink(number, className, bankDetails string) string {
	return Link(number, PurchaseMessage(className, bankDetails))
}

// InquiryLink builds the generic class inquiry deep link.
func InquiryLink(number string) string {
	return Link(number, InquiryMessage)
}
