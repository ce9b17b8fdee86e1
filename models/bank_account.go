package models

import "time"

// BankAccount is a destination account shown to customers for manual
// bank-transfer payment.
type BankAccount struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	BankEName     string    `gorm:"not null" json:"bank_ename"`
	BankARName    string    `json:"bank_arname"`
	AccountName   string    `gorm:"not null" json:"account_name"`
	AccountNumber string    `gorm:"not null" json:"account_number"`
	IBAN          string    `json:"iban"`
	Active        bool      `gorm:"default:true" json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}
