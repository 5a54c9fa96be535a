package models

// Contact is an address-book entry. Number is the join key against
// Message.Address and CallRecord.Number.
type Contact struct {
	DisplayName string `json:"display_name"`
	Number      string `json:"number"`
}
