package types

import (
	"time"

	"github.com/google/uuid"
)

// TV is a registry entry for one display device. Name is the immutable
// identifier displays poll with; everything else is admin-editable.
type TV struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"displayName"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TVRequest is the admin payload for creating or updating a TV.
type TVRequest struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Active      bool   `json:"active"`
}

// Validate checks the TV request.
func (r *TVRequest) Validate() error {
	if r.Name == "" {
		return &Error{Code: "InvalidTV", Message: "name is required"}
	}
	if r.DisplayName == "" {
		return &Error{Code: "InvalidTV", Message: "displayName is required"}
	}
	return nil
}

// TVStatus is the unauthenticated active-state probe displays use.
type TVStatus struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}
