/*
Package auth issues and verifies access tokens, hashes passwords and carries the
authenticated identity through request contexts.

Tokens are HS256 JWTs whose subject is the user ID:

	tokens, _ := auth.NewTokens([]byte(secret))
	signed, _ := tokens.Issue(user)
	claims, err := tokens.Verify(signed) // errors wrap domain.ErrUnauthenticated
*/
package auth
