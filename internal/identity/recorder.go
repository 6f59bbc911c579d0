package identity

import (
	"context"
	"sync"
)

// SignInCall is one recorded Delegator invocation.
type SignInCall struct {
	Provider Provider
	Options  SignInOptions
}

// Recorder is a Delegator and AccountCreator that remembers every call.
// Tests and local development use it in place of real collaborators.
type Recorder struct {
	mu       sync.Mutex
	signIns  []SignInCall
	accounts []string
	// RedirectURL is returned from SignIn; defaults to the callback URL.
	RedirectURL string
	// Err, when set, is returned from every call.
	Err error
}

// SignIn implements Delegator.
func (r *Recorder) SignIn(_ context.Context, provider Provider, opts SignInOptions) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.signIns = append(r.signIns, SignInCall{Provider: provider, Options: opts})
	if r.Err != nil {
		return "", r.Err
	}
	if r.RedirectURL != "" {
		return r.RedirectURL, nil
	}
	return opts.CallbackURL, nil
}

// CreateAccount implements AccountCreator. Only the email is kept.
func (r *Recorder) CreateAccount(_ context.Context, creds Credentials) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts = append(r.accounts, creds.Email)
	return r.Err
}

// SignIns returns a copy of recorded sign-in calls.
func (r *Recorder) SignIns() []SignInCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]SignInCall, len(r.signIns))
	copy(out, r.signIns)
	return out
}

// Accounts returns the emails of recorded account-creation calls.
func (r *Recorder) Accounts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.accounts))
	copy(out, r.accounts)
	return out
}
