package recipient

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
)

var ErrNotFound = errors.New("recipient not found")

// DeliveryOptions lists how a recipient can receive funds.
type DeliveryOptions struct {
	BankDeposit bool `json:"bankDeposit"`
	CardDeposit bool `json:"cardDeposit"`
	CashPickup  bool `json:"cashPickup"`
}

// RealDetails holds the unmasked banking details.
type RealDetails struct {
	AccountNumber string `json:"accountNumber"`
	SwiftBIC      string `json:"swiftBic"`
}

// Recipient represents a payee record. It holds only value fields so a
// plain copy is a full snapshot.
type Recipient struct {
	ID              uuid.UUID       `json:"id"`
	FullName        string          `json:"fullName"`
	Nickname        string          `json:"nickname,omitempty"`
	Phone           string          `json:"phone,omitempty"`
	BankName        string          `json:"bankName"`
	AccountNumber   string          `json:"accountNumber"`
	Country         string          `json:"country"`
	DeliveryOptions DeliveryOptions `json:"deliveryOptions"`
	RealDetails     RealDetails     `json:"realDetails"`
	StreetAddress   string          `json:"streetAddress,omitempty"`
	City            string          `json:"city,omitempty"`
	StateProvince   string          `json:"stateProvince,omitempty"`
	PostalCode      string          `json:"postalCode,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// DisplayName prefers the nickname.
func (r Recipient) DisplayName() string {
	if r.Nickname != "" {
		return r.Nickname
	}
	return r.FullName
}

// RecipientCreate is the input for creating a new recipient.
type RecipientCreate struct {
	FullName          string
	Nickname          string
	Phone             string
	BankName          string
	AccountNumber     string
	SwiftBIC          string
	Country           string
	CashPickupEnabled bool
	StreetAddress     string
	City              string
	StateProvince     string
	PostalCode        string
}

// RecipientUpdate carries the fields to change. Nil fields are left alone.
type RecipientUpdate struct {
	FullName      *string
	Nickname      *string
	Phone         *string
	BankName      *string
	Country       *string
	StreetAddress *string
	City          *string
	StateProvince *string
	PostalCode    *string
}

// MaskAccountNumber renders the last four characters behind bullets. It is
// shared by account and recipient numbers.
func MaskAccountNumber(number string) string {
	runes := []rune(number)
	if len(runes) <= 4 {
		return "•••• " + number
	}
	return "•••• " + string(runes[len(runes)-4:])
}

func (u RecipientUpdate) apply(r Recipient) Recipient {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&r.FullName, u.FullName)
	set(&r.Nickname, u.Nickname)
	set(&r.Phone, u.Phone)
	set(&r.BankName, u.BankName)
	set(&r.Country, u.Country)
	set(&r.StreetAddress, u.StreetAddress)
	set(&r.City, u.City)
	set(&r.StateProvince, u.StateProvince)
	set(&r.PostalCode, u.PostalCode)
	return r
}
