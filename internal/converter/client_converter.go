package converter

import (
	"strings"

	"therapy-clinic-api/internal/delivery/dto"
	"therapy-clinic-api/internal/domain/entity"
)

// ClientToResponse converts a Client entity with its Person to ClientResponse DTO
func ClientToResponse(client *entity.Client) *dto.ClientResponse {
	if client == nil {
		return nil
	}

	return &dto.ClientResponse{
		PublicID:    client.PublicID,
		Name:        client.Person.Name,
		Lastname:    client.Person.Lastname,
		Birthdate:   FormatOptionalDate(client.Person.Birthdate),
		OnboardDate: FormatDate(client.OnboardDate),
		CreatedAt:   client.CreatedAt,
	}
}

func ClientsToResponses(clients []entity.Client) []dto.ClientResponse {
	responses := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		responses = append(responses, *ClientToResponse(&clients[i]))
	}
	return responses
}

func AddressToResponse(address *entity.Address) dto.AddressResponse {
	return dto.AddressResponse{
		ID:      address.ID,
		Street:  address.Street,
		City:    address.City,
		State:   address.State,
		Zip:     address.Zip,
		Country: address.Country,
		Type:    address.Type,
	}
}

func AddressesToResponses(addresses []entity.Address) []dto.AddressResponse {
	responses := make([]dto.AddressResponse, 0, len(addresses))
	for i := range addresses {
		responses = append(responses, AddressToResponse(&addresses[i]))
	}
	return responses
}

// AddressRequestsToEntities keeps request order; a zero id marks a new address.
func AddressRequestsToEntities(reqs []dto.AddressRequest) []entity.Address {
	addresses := make([]entity.Address, 0, len(reqs))
	for _, r := range reqs {
		addresses = append(addresses, entity.Address{
			ID:      r.ID,
			Street:  strings.TrimSpace(r.Street),
			City:    strings.TrimSpace(r.City),
			State:   strings.TrimSpace(r.State),
			Zip:     strings.TrimSpace(r.Zip),
			Country: strings.TrimSpace(r.Country),
			Type:    strings.TrimSpace(r.Type),
		})
	}
	return addresses
}

func ClientDetailsToResponse(details *entity.ClientDetails) *dto.ClientDetailsResponse {
	if details == nil {
		return nil
	}

	return &dto.ClientDetailsResponse{
		ClientResponse: *ClientToResponse(&details.Client),
		Addresses:      AddressesToResponses(details.Addresses),
		Account:        UserToResponse(details.Account),
	}
}
