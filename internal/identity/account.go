package identity

import (
	"context"
	"log"
	"strings"

	apperrors "github.com/empowereconomy/empower/internal/platform/errors"
)

// Credentials are submitted once and never retained.
type Credentials struct {
	Email    string
	Password string
}

// AccountCreator registers an email/password account with the account API.
type AccountCreator interface {
	CreateAccount(ctx context.Context, creds Credentials) error
}

// LoggingAccountCreator records the attempt and succeeds. The account API
// contract is not defined yet, so nothing is sent anywhere.
type LoggingAccountCreator struct {
	logger *log.Logger
}

// NewLoggingAccountCreator builds a creator that logs to logger, or log.Default when nil.
func NewLoggingAccountCreator(logger *log.Logger) *LoggingAccountCreator {
	if logger == nil {
		logger = log.Default()
	}
	return &LoggingAccountCreator{logger: logger}
}

// CreateAccount implements AccountCreator.
func (c *LoggingAccountCreator) CreateAccount(_ context.Context, creds Credentials) error {
	email := strings.TrimSpace(creds.Email)
	if email == "" || creds.Password == "" {
		return apperrors.New(apperrors.CodeIdentityCredentialsRequired, "email and password are required")
	}
	c.logger.Printf("account creation requested email=%s", email)
	return nil
}
