package models

import (
	"time"

	usermodels "taskboard-backend/internal/features/user/models"
)

// ConnectRequest is the body of POST /wallet/connect.
// Signature is checked only when both signature and message are present.
type ConnectRequest struct {
	WalletAddress string `json:"walletAddress" example:"0x52908400098527886E0F7030069857D2E4169EE7"`
	UserID        string `json:"userId" example:"user-1"`
	Signature     string `json:"signature,omitempty" example:"0x5f1c...1b"`
	Message       string `json:"message,omitempty" example:"Link my wallet to taskboard"`
}

// DisconnectRequest is the body of DELETE /wallet/connect
type DisconnectRequest struct {
	UserID string `json:"userId" example:"user-1"`
}

// Connection describes a successful link
// @Description Wallet connection descriptor
type Connection struct {
	WalletAddress string    `json:"walletAddress" example:"0x52908400098527886E0F7030069857D2E4169EE7"`
	UserID        string    `json:"userId" example:"user-1"`
	ConnectedAt   time.Time `json:"connectedAt" example:"2025-06-05T10:30:00Z"`
	Network       string    `json:"network" example:"ethereum"`
	Balance       string    `json:"balance" example:"1.5"`
}

type ConnectResponse struct {
	Connection *Connection              `json:"connection"`
	User       *usermodels.UserResponse `json:"user"`
	Success    bool                     `json:"success" example:"true"`
	Message    string                   `json:"message" example:"Wallet connected successfully"`
}

type DisconnectResponse struct {
	User    *usermodels.UserResponse `json:"user"`
	Success bool                     `json:"success" example:"true"`
	Message string                   `json:"message" example:"Wallet disconnected successfully"`
}

// ErrorResponse mirrors the body written by the error middleware
type ErrorResponse struct {
	Success   bool   `json:"success" example:"false"`
	Error     string `json:"error" example:"Invalid wallet address format"`
	Code      string `json:"code" example:"VALIDATION_ERROR"`
	RequestID string `json:"request_id,omitempty"`
}
