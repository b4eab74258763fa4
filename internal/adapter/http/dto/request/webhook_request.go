package request

import (
	"bytes"
	"encoding/json"
	"strings"
)

// MercadoPagoNotification is the webhook body sent by Mercado Pago, e.g.
// {"type":"payment","action":"payment.updated","data":{"id":"123"}}.
type MercadoPagoNotification struct {
	Type   string `json:"type"`
	Topic  string `json:"topic"`
	Action string `json:"action"`
	Data   struct {
		ID NotificationID `json:"id"`
	} `json:"data"`
}

// NotificationID accepts ids sent either as JSON strings or numbers.
type NotificationID string

func (id *NotificationID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = NotificationID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = NotificationID(n.String())
	return nil
}

// Resolve returns the topic and payment id, falling back to the query string
// used by IPN-style notifications (?topic=payment&id=123 or ?type=payment&data.id=123).
func (n MercadoPagoNotification) Resolve(queryTopic, queryID string) (topic, paymentID string) {
	topic = firstNonEmpty(n.Type, n.Topic, queryTopic)
	paymentID = firstNonEmpty(string(n.Data.ID), queryID)
	return topic, paymentID
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
