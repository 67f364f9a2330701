package domain

// PartyKind distinguishes the two sides of the ledger: customers owe the
// merchant, the merchant owes vendors.
type PartyKind string

const (
	PartyCustomer PartyKind = "CUSTOMER"
	PartyVendor   PartyKind = "VENDOR"
)

// Party is a customer or vendor record. Both share the same shape; Kind
// decides which documents and payment directions apply to them.
type Party struct {
	PartyID string    `json:"partyID"` // Primary Key (UUID)
	Kind    PartyKind `json:"kind"`
	Name    string    `json:"name"`
	Phone   string    `json:"phone,omitempty"`
	Email   string    `json:"email,omitempty"`
	Address string    `json:"address,omitempty"`
	GSTIN   string    `json:"gstin,omitempty"`
	AuditFields
}
