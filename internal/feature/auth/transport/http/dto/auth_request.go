// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq is the body of POST /auth/register.
// Role is deliberately absent: every new account starts as a user.
type RegisterReq struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// VerifyReq is the body of POST /auth/verify.
type VerifyReq struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// LoginReq is the body of POST /auth/login.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
