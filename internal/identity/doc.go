// Package identity holds the external collaborators of account creation:
// the identity provider that owns sign-in, and the account API that owns
// email/password registration. This service only triggers them.
package identity
