// Package catalog holds the static per-country sales data for the book.
// It is pure data: no mutation, no persistence, no external calls.
package catalog

import "sort"

// Agent is a third-party contact authorized to fulfil orders in countries
// without direct checkout.
type Agent struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Contact  string `json:"contact,omitempty"`
	Link     string `json:"link,omitempty"`
}

// BankDetail describes a bank transfer destination for prepaid orders.
type BankDetail struct {
	Provider      string `json:"provider"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
}

// CountryEntry is the sales configuration for a single country. DirectOrder
// decides whether checkout is self-service or agent-mediated.
type CountryEntry struct {
	Code        string       `json:"code"`
	Name        string       `json:"name"`
	Currency    string       `json:"currency"`
	Price       int64        `json:"price"`
	ShippingFee int64        `json:"shippingFee,omitempty"`
	PhonePrefix string       `json:"phonePrefix,omitempty"`
	Agents      []Agent      `json:"agents"`
	BankDetails []BankDetail `json:"bankDetails,omitempty"`
	DirectOrder bool         `json:"isDirectOrder"`
}

// Total computes the display total for a quantity: unit price times qty plus
// the shipping fee when the country defines one. Purely informational, the
// value is never persisted.
func (c CountryEntry) Total(qty int) int64 {
	return c.Price*int64(qty) + c.ShippingFee
}

// Lookup returns the entry for a country code.
func Lookup(code string) (CountryEntry, bool) {
	entry, ok := countries[code]
	return entry, ok
}

// All returns every country entry sorted by code.
func All() []CountryEntry {
	out := make([]CountryEntry, 0, len(countries))
	for _, entry := range countries {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// BookInfo describes the title being sold.
type BookInfo struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Publisher   string `json:"publisher"`
	Synopsis    string `json:"synopsis"`
	CoverImage  string `json:"coverImage"`
	StockStatus string `json:"stockStatus"`
}

// Book returns the static book information.
func Book() BookInfo {
	return book
}
