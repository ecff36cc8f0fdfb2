// File: internal/returns/model.go
package returns

import "huglu_mobile_backend/internal/display"

// Return request statuses the backend sends.
const (
	StatusPending    = "pending"
	StatusApproved   = "approved"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusRejected   = "rejected"
)

var statusTable = display.NewTable(map[string]display.Descriptor{
	StatusPending:    {Label: "Pending", Color: "#F59E0B", Icon: "clock"},
	StatusApproved:   {Label: "Approved", Color: "#3B82F6", Icon: "check-circle"},
	StatusProcessing: {Label: "Processing", Color: "#8B5CF6", Icon: "refresh-cw"},
	StatusCompleted:  {Label: "Completed", Color: "#10B981", Icon: "check"},
	StatusRejected:   {Label: "Rejected", Color: "#EF4444", Icon: "x-circle"},
}, display.Descriptor{Label: "Return", Color: "#6B7280", Icon: "package"})

// StatusDescriptor returns the display tuple for a return status.
func StatusDescriptor(status string) display.Descriptor {
	return statusTable.Lookup(status)
}

// Item is one screen-ready return request.
type Item struct {
	ID           string             `json:"id"`
	Status       string             `json:"status"`
	Display      display.Descriptor `json:"display"`
	CreatedAt    string             `json:"createdAt"`
	ItemCount    int                `json:"itemCount"`
	RefundAmount float64            `json:"refundAmount"`
	Reason       string             `json:"reason"`
	CanCancel    bool               `json:"canCancel"`
}

// List is the returns screen view model.
type List struct {
	Items []Item `json:"items"`
}
