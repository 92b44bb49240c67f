package domain

import "github.com/shopspring/decimal"

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Invoice amounts are stored in cents.
type Invoice struct {
	ID         string        `db:"id"`
	CustomerID string        `db:"customer_id"`
	Amount     int64         `db:"amount"`
	Status     InvoiceStatus `db:"status"`
	Date       string        `db:"date"`
}

type Customer struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	ImageURL string `db:"image_url"`
}

type User struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	Password string `db:"password"`
}

// InvoiceInput is the validated part of an invoice form.
type InvoiceInput struct {
	CustomerID string
	Amount     decimal.Decimal
	Status     InvoiceStatus
}

type RegistrationInput struct {
	Name     string
	Email    string
	Password string
}

type Credentials struct {
	Email    string
	Password string
}

// InvoiceRow is an invoice joined with its customer, as listed on the dashboard.
type InvoiceRow struct {
	ID       string        `db:"id"`
	Amount   int64         `db:"amount"`
	Date     string        `db:"date"`
	Status   InvoiceStatus `db:"status"`
	Name     string        `db:"name"`
	Email    string        `db:"email"`
	ImageURL string        `db:"image_url"`
}

type Summary struct {
	NumberOfInvoices  int64
	NumberOfCustomers int64
	TotalPaid         int64
	TotalPending      int64
}
