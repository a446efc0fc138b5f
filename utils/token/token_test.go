package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/muhammadheryan/gg-motors/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestManager_IssueVerify(t *testing.T) {
	m := NewManager("secret", time.Hour)
	identity := model.Identity{UserID: primitive.NewObjectID(), Role: "admin"}

	tok, err := m.Issue(identity)
	require.NoError(t, err)

	got, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestManager_Verify(t *testing.T) {
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewManager("secret", time.Hour)
	m.now = func() time.Time { return issued }

	tok, err := m.Issue(model.Identity{UserID: primitive.NewObjectID(), Role: "user"})
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		late := NewManager("secret", time.Hour)
		late.now = func() time.Time { return issued.Add(2 * time.Hour) }
		_, err := late.Verify(tok)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewManager("other", time.Hour)
		other.now = m.now
		_, err := other.Verify(tok)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("unsigned token", func(t *testing.T) {
		none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: primitive.NewObjectID().Hex()},
		})
		raw, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = m.Verify(raw)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Verify("a.b.c")
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})
}
