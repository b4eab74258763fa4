package request

import "strings"

// SelectionRequest carries the photos a client picked in a gallery.
type SelectionRequest struct {
	PhotoIDs   []string `json:"photo_ids" example:"IMG_0001,IMG_0002"`
	PayerEmail string   `json:"payer_email" example:"ana@example.com"`
	DeviceID   string   `json:"device_id"`
}

func (r SelectionRequest) ResolvePhotoIDs() []string {
	out := make([]string, 0, len(r.PhotoIDs))
	for _, id := range r.PhotoIDs {
		if v := strings.TrimSpace(id); v != "" {
			out = append(out, v)
		}
	}
	return out
}
