// models/user.go
package models

import "time"

// User represents a customer signed in through the simulated OTP flow.
type User struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// OTPChallenge is returned when an OTP is requested.
type OTPChallenge struct {
	RequestID string    `json:"requestId"`
	Phone     string    `json:"phone"`
	ExpiresAt time.Time `json:"expiresAt"`
	DevOTP    string    `json:"devOtp,omitempty"` // Only exposed outside production, since nothing is actually sent
}

// AuthResult is returned after a successful OTP verification.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
