package models

// Contacts is the single admin-editable contact card shown to clients.
type Contacts struct {
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
