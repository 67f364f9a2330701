package dto

import (
	"time"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
)

// CreatePartyRequest defines the data needed to create a customer or vendor.
// The kind comes from the route, not the body.
type CreatePartyRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
	GSTIN   string `json:"gstin" binding:"omitempty,gstin"`
}

// UpdatePartyRequest defines the data allowed for updating a party.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdatePartyRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"address"`
	GSTIN   *string `json:"gstin" binding:"omitempty,gstin"`
}

// PartyResponse defines the data returned for a customer or vendor record.
type PartyResponse struct {
	PartyID       string           `json:"partyID"`
	Kind          domain.PartyKind `json:"kind"`
	Name          string           `json:"name"`
	Phone         string           `json:"phone,omitempty"`
	Email         string           `json:"email,omitempty"`
	Address       string           `json:"address,omitempty"`
	GSTIN         string           `json:"gstin,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// ListPartiesResponse wraps the list of parties of one kind.
type ListPartiesResponse struct {
	Parties []PartyResponse `json:"parties"`
}

// ToPartyResponse converts a domain.Party to PartyResponse DTO
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID:       p.PartyID,
		Kind:          p.Kind,
		Name:          p.Name,
		Phone:         p.Phone,
		Email:         p.Email,
		Address:       p.Address,
		GSTIN:         p.GSTIN,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListPartiesResponse converts a slice of domain.Party to the list DTO
func ToListPartiesResponse(parties []domain.Party) ListPartiesResponse {
	res := make([]PartyResponse, len(parties))
	for i, p := range parties {
		res[i] = ToPartyResponse(&p)
	}
	return ListPartiesResponse{Parties: res}
}
