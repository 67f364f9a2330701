package models

// Party is the persistence shape of a customer or vendor record.
type Party struct {
	PartyID string `json:"partyID"`
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	GSTIN   string `json:"gstin"`
	AuditFields
}
