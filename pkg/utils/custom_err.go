package utils

import "errors"

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrPolicyNotFound       = errors.New("policy not found")
	ErrClaimNotFound        = errors.New("claim not found")
	ErrNoActiveSubscription = errors.New("no active subscription for this policy")
	ErrInvalidPlanType      = errors.New("invalid plan type")
	ErrCoverageExceeded     = errors.New("claim amount exceeds coverage")
	ErrInvalidPayoutAmount  = errors.New("invalid payout amount")
	ErrInvalidClaimStatus   = errors.New("invalid status value")
	ErrEmptyMessage         = errors.New("message body is empty")
	ErrReceiverNotFound     = errors.New("receiver not found")
	ErrDatabaseError        = errors.New("database error")
)
