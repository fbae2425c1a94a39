package dto

import "time"

// BalanceResponse represents an account's balances in API responses
type BalanceResponse struct {
	UserID             string    `json:"userId"`
	WalletBalance      int64     `json:"walletBalance"`
	ZukaBalance        int64     `json:"zukaBalance"`
	VerificationStatus string    `json:"verificationStatus"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// TransactionResponse represents one ledger entry in API responses
type TransactionResponse struct {
	ID           string    `json:"id"`
	Balance      string    `json:"balance"`
	Amount       int64     `json:"amount"`
	BalanceAfter int64     `json:"balanceAfter"`
	Type         string    `json:"type"`
	Reference    string    `json:"reference,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// LimitsResponse represents the remaining daily quota for a user
type LimitsResponse struct {
	UserID    string `json:"userId"`
	Date      string `json:"date"`
	Remaining struct {
		Posts    int `json:"posts"`
		Likes    int `json:"likes"`
		Comments int `json:"comments"`
	} `json:"remaining"`
}
