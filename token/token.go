// Package token mints disposable, scoped API tokens. A common use is a
// token vending machine: a web function that hands browser clients a
// short-lived token restricted to one topic or one cache key.
package token

import (
	"github.com/momentohq/functions/errors"
	"github.com/momentohq/functions/hostabi"
	"github.com/momentohq/functions/payload"
)

// DisposableToken is a minted token: the key itself, the endpoint to use
// it against, and its expiry in epoch seconds.
type DisposableToken struct {
	APIKey     string
	Endpoint   string
	ValidUntil uint64
}

// GenerateDisposableToken mints a token carrying the given grants, valid
// for validForSeconds. tokenID is optional metadata embedded in the token;
// pass "" for none.
func GenerateDisposableToken(validForSeconds uint32, permissions *Permissions, tokenID string) (DisposableToken, error) {
	message, err := permissions.marshal()
	if err != nil {
		return DisposableToken{}, &payload.EncodeError{Cause: err}
	}
	if validForSeconds == 0 {
		return DisposableToken{}, errors.New(errors.PhaseCall, errors.KindInvalidArgument).
			Op("token.generate_disposable_token").
			Detail("expiry must be at least one second").
			Build()
	}
	minted, err := hostabi.TokensAPI().GenerateDisposableToken(
		hostabi.TokenExpiry{ValidForSeconds: validForSeconds},
		message,
		tokenID,
	)
	if err != nil {
		return DisposableToken{}, err
	}
	return DisposableToken{
		APIKey:     minted.APIKey,
		Endpoint:   minted.Endpoint,
		ValidUntil: minted.ValidUntil,
	}, nil
}
