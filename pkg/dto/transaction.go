// Package dto holds the flat, primitive-typed record shapes used at the
// storage and wire boundary. Temporal fields are RFC 3339 strings, amounts
// are plain main-unit numbers. Validation lives in the domain layer; a DTO
// carries whatever the boundary handed over.
package dto

// Beneficiary is the wire shape of a receiving party.
type Beneficiary struct {
	Name     string `json:"name"`
	IBAN     string `json:"iban"`
	BankName string `json:"bankName"`
}

// StatusHistoryEntry is the wire shape of one status transition.
type StatusHistoryEntry struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Reason    string `json:"reason,omitempty"`
}

// Transaction is the wire shape of a transaction record.
type Transaction struct {
	ID            string               `json:"id"`
	Reference     string               `json:"reference"`
	Amount        float64              `json:"amount"`
	Currency      string               `json:"currency"`
	Status        string               `json:"status"`
	Beneficiary   Beneficiary          `json:"beneficiary"`
	CreatedAt     string               `json:"createdAt"`
	UpdatedAt     string               `json:"updatedAt"`
	StatusHistory []StatusHistoryEntry `json:"statusHistory"`
	FailureReason string               `json:"failureReason,omitempty"`
}
