package notifier

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// WhatsApp sends messages through the Twilio WhatsApp messaging API.
type WhatsApp struct {
	AccountSID string
	AuthToken  string
	From       string
	To         string
	Client     *http.Client
}

// NewWhatsApp creates a Twilio-backed WhatsApp notifier. From/To take phone
// numbers with or without the "whatsapp:" prefix.
func NewWhatsApp(accountSID, authToken, from, to, proxyURL string) *WhatsApp {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &WhatsApp{
		AccountSID: accountSID,
		AuthToken:  authToken,
		From:       whatsappNumber(from),
		To:         whatsappNumber(to),
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (w *WhatsApp) Name() string { return "whatsapp" }

// Send posts one message to the Twilio Messages endpoint.
func (w *WhatsApp) Send(ctx context.Context, text string) error {
	apiURL := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", w.AccountSID)
	form := url.Values{}
	form.Set("Body", text)
	form.Set("From", w.From)
	form.Set("To", w.To)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(w.AccountSID, w.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := w.Client.Do(req)
	if err != nil {
		return fmt.Errorf("send whatsapp message: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("twilio API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

func whatsappNumber(n string) string {
	if n == "" || strings.HasPrefix(n, "whatsapp:") {
		return n
	}
	return "whatsapp:" + n
}
