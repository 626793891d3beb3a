package passenger_token

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	t.Setenv("PASSENGER_TICKET_SECRET", "test-secret-key")

	uniqueTicketID := "TID-0b9c7a52-2f67-4a0f-9f2a-1f1f54f9e001"
	token, err := Issue(uniqueTicketID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uniqueTicketID, got)
}

func TestVerify_TamperedToken(t *testing.T) {
	t.Setenv("PASSENGER_TICKET_SECRET", "test-secret-key")

	token, err := Issue("TID-tampered")
	require.NoError(t, err)

	// Flip the last character of the signature.
	b := []byte(token)
	if b[len(b)-1] == 'A' {
		b[len(b)-1] = 'B'
	} else {
		b[len(b)-1] = 'A'
	}

	_, err = Verify(string(b))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Setenv("PASSENGER_TICKET_SECRET", "secret-one")
	token, err := Issue("TID-foreign")
	require.NoError(t, err)

	t.Setenv("PASSENGER_TICKET_SECRET", "secret-two")
	_, err = Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	t.Setenv("PASSENGER_TICKET_SECRET", "test-secret-key")

	for _, tok := range []string{"", "garbage", "a.b.c", "not-a-jwt-at-all"} {
		_, err := Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestVerify_MissingClaim(t *testing.T) {
	t.Setenv("PASSENGER_TICKET_SECRET", "test-secret-key")

	// Correctly signed token without the unique_ticket_id claim.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"other": "claim"})
	signed, err := token.SignedString([]byte("test-secret-key"))
	require.NoError(t, err)

	_, err = Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_UnsignedAlgorithmRejected(t *testing.T) {
	t.Setenv("PASSENGER_TICKET_SECRET", "test-secret-key")

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"unique_ticket_id": "TID-none-alg",
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
