package utils

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const currencySymbol = "₹"

type WhatsAppConfig struct {
	// ShopPhone is the shop's number in international format without "+".
	ShopPhone     string
	APIURL        string
	APIToken      string
	PhoneNumberID string
}

// CheckoutLine is one product line of a checkout summary.
type CheckoutLine struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
}

func (l CheckoutLine) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type CheckoutSummary struct {
	CustomerName string
	OrderID      string
	Lines        []CheckoutLine
}

func (s CheckoutSummary) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.Lines {
		total = total.Add(l.Total())
	}
	return total
}

type CheckoutLink struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// WhatsApp hands checkouts over to the shop's WhatsApp number. The wa.me link
// always works. The Cloud API notification only runs when credentials are set.
type WhatsApp struct {
	config WhatsAppConfig
	client *resty.Client
}

func NewWhatsApp(config WhatsAppConfig) *WhatsApp {
	client := resty.New().
		SetBaseURL(strings.TrimRight(config.APIURL, "/")).
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	return &WhatsApp{config: config, client: client}
}

func (w *WhatsApp) NotificationsEnabled() bool {
	return w.config.APIToken != "" && w.config.PhoneNumberID != ""
}

func (w *WhatsApp) Message(summary CheckoutSummary) string {
	name := summary.CustomerName
	if name == "" {
		name = "Guest"
	}

	lines := make([]string, 0, len(summary.Lines))
	for _, l := range summary.Lines {
		lines = append(lines, fmt.Sprintf("%s x%d — %s%s", l.Name, l.Quantity, currencySymbol, l.Total().String()))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hello! My name is %s.\n\n", name)
	if summary.OrderID != "" {
		fmt.Fprintf(&b, "Order ID: %s\n\n", summary.OrderID)
	}
	fmt.Fprintf(&b, "I'd like to order:\n%s\n\n", strings.Join(lines, "\n"))
	fmt.Fprintf(&b, "Subtotal: %s%s\n\n", currencySymbol, summary.Subtotal().String())
	b.WriteString("Please share payment & delivery details.")
	return b.String()
}

func (w *WhatsApp) Link(summary CheckoutSummary) CheckoutLink {
	message := w.Message(summary)
	return CheckoutLink{
		URL:     "https://wa.me/" + w.config.ShopPhone + "?text=" + encodeText(message),
		Message: message,
	}
}

// encodeText escapes spaces as %20, the form wa.me links use.
func encodeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// NotifyShop sends summary to the shop's own number through the WhatsApp Cloud API.
func (w *WhatsApp) NotifyShop(ctx context.Context, summary CheckoutSummary) error {
	if !w.NotificationsEnabled() {
		return nil
	}

	body := map[string]any{
		"messaging_product": "whatsapp",
		"to":                w.config.ShopPhone,
		"type":              "text",
		"text":              map[string]any{"body": w.Message(summary)},
	}

	resp, err := w.client.R().
		SetContext(ctx).
		SetAuthToken(w.config.APIToken).
		SetBody(body).
		Post("/" + w.config.PhoneNumberID + "/messages")
	if err != nil {
		return fmt.Errorf("whatsapp request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("whatsapp request failed with status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
