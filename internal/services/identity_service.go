package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ramgate/internal/domain"
	"ramgate/internal/repos"
)

// IdentityService maps partner user ids onto customer records, provisioning
// a customer on first sight when the call site allows it.
type IdentityService struct {
	Customers *repos.CustomerRepo
	ChannelID string
}

func NewIdentityService(customers *repos.CustomerRepo, channelID string) *IdentityService {
	return &IdentityService{Customers: customers, ChannelID: channelID}
}

type ProvisionParams struct {
	ExternalID string
	Email      string
	FirstName  string
	LastName   string
}

// Resolve returns the customer linked to the external id, or nil when no link
// exists. Plain resolution never writes.
func (s *IdentityService) Resolve(externalID string) (*domain.Customer, error) {
	return s.Customers.ByLink(domain.ProviderRAM, externalID)
}

// ResolveOrCreate resolves the external id, auto-provisioning a customer when
// no link exists. requireEmail preserves the call-site asymmetry: the cart
// flow refuses to provision without an email, the wishlist flow follows the
// OAuth convention where email is optional.
//
// Creation is ordered customer-first, link-second; the identity_links primary
// key arbitrates concurrent provisioning. The loser deletes its provisional
// customer and returns the winner's.
func (s *IdentityService) ResolveOrCreate(p ProvisionParams, requireEmail bool) (*domain.Customer, error) {
	c, err := s.Resolve(p.ExternalID)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c, nil
	}

	if requireEmail && p.Email == "" {
		return nil, ErrCustomerUnresolvable
	}

	hash, err := randomPasswordHash()
	if err != nil {
		return nil, err
	}

	first := p.FirstName
	if first == "" {
		first = "Usuario"
	}
	last := p.LastName
	if last == "" {
		last = "RAM"
	}
	var email *string
	if p.Email != "" {
		email = &p.Email
	}

	cust := domain.Customer{
		ID:        uuid.NewString(),
		Email:     email,
		FirstName: first,
		LastName:  last,
		ChannelID: s.ChannelID,
		GroupID:   s.Customers.DefaultGroup(),
		Verified:  true,
		Active:    true,
		Hash:      hash,
	}
	if err := s.Customers.Create(cust); err != nil {
		return nil, err
	}

	linked, err := s.Customers.Link(domain.ProviderRAM, p.ExternalID, cust.ID)
	if err != nil {
		_ = s.Customers.Delete(cust.ID)
		return nil, err
	}
	if !linked {
		// Lost the create race: discard ours, keep the linked customer.
		_ = s.Customers.Delete(cust.ID)
		return s.Resolve(p.ExternalID)
	}
	return &cust, nil
}

// randomPasswordHash generates a throwaway credential for provisioned
// customers. It is never returned to the caller and cannot be used to log in
// through this API.
func randomPasswordHash() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("random password: %w", err)
	}
	h, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(buf)), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}
