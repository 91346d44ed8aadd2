package keystore

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-better-auth/internal/autherr"
	"github.com/MKhiriev/go-better-auth/internal/crypto"
	"github.com/MKhiriev/go-better-auth/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newStore(opts ...Option) *RotatingKeyStore {
	return New(crypto.NewBlake3Hasher(), crypto.Secp256r1Generator{}, opts...)
}

func publicOf(t *testing.T, key crypto.SigningKey) string {
	t.Helper()
	public, err := key.Public()
	require.NoError(t, err)
	return public
}

func TestInitialize(t *testing.T) {
	ctx := context.Background()
	hasher := crypto.NewBlake3Hasher()

	t.Run("derives identity from public key and rotation hash", func(t *testing.T) {
		s := newStore()

		identity, publicKey, rotationHash, err := s.Initialize(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, StateInitialized, s.State())

		expected, err := hasher.Sum(publicKey + rotationHash)
		require.NoError(t, err)
		assert.Equal(t, expected, identity)

		signer, err := s.Signer(ctx)
		require.NoError(t, err)
		assert.Equal(t, publicKey, publicOf(t, signer))
	})

	t.Run("extra data is appended before hashing", func(t *testing.T) {
		s := newStore()
		extra := "Erecovery"

		identity, publicKey, rotationHash, err := s.Initialize(ctx, &extra)
		require.NoError(t, err)

		expected, err := hasher.Sum(publicKey + rotationHash + extra)
		require.NoError(t, err)
		assert.Equal(t, expected, identity)
	})

	t.Run("rotation hash commits to the next key", func(t *testing.T) {
		s := newStore()

		_, _, rotationHash, err := s.Initialize(ctx, nil)
		require.NoError(t, err)

		next, _, err := s.Next(ctx)
		require.NoError(t, err)

		expected, err := hasher.Sum(publicOf(t, next))
		require.NoError(t, err)
		assert.Equal(t, expected, rotationHash)
	})

	t.Run("second initialize fails without reinitialize option", func(t *testing.T) {
		s := newStore()
		_, publicKey, _, err := s.Initialize(ctx, nil)
		require.NoError(t, err)

		_, _, _, err = s.Initialize(ctx, nil)
		assert.ErrorIs(t, err, autherr.ErrInvalidState)

		signer, err := s.Signer(ctx)
		require.NoError(t, err)
		assert.Equal(t, publicKey, publicOf(t, signer))
	})

	t.Run("reinitialize replaces the chain", func(t *testing.T) {
		s := newStore(WithReinitialize())
		_, first, _, err := s.Initialize(ctx, nil)
		require.NoError(t, err)
		_, _, err = s.Next(ctx)
		require.NoError(t, err)

		_, second, _, err := s.Initialize(ctx, nil)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
		assert.Equal(t, StateInitialized, s.State())
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		s := newStore()
		_, _, _, err := s.Initialize(cancelled, nil)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, StateUninitialized, s.State())
	})
}

func TestInitialize_GeneratorFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := mock.NewMockKeyGenerator(ctrl)
	generator.EXPECT().Generate().Return(nil, errors.New("no entropy"))

	s := New(crypto.NewBlake3Hasher(), generator)
	_, _, _, err := s.Initialize(context.Background(), nil)

	assert.ErrorContains(t, err, "no entropy")
	assert.Equal(t, StateUninitialized, s.State())
}

func TestInitialize_HasherFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mock.NewMockHasher(ctrl)
	hasher.EXPECT().Sum(gomock.Any()).Return("", errors.New("hash down"))

	s := New(hasher, crypto.Secp256r1Generator{})
	_, _, _, err := s.Initialize(context.Background(), nil)

	assert.ErrorContains(t, err, "hash down")
	assert.Equal(t, StateUninitialized, s.State())
}

func TestNext(t *testing.T) {
	ctx := context.Background()

	t.Run("uninitialized", func(t *testing.T) {
		_, _, err := newStore().Next(ctx)
		assert.ErrorIs(t, err, autherr.ErrInvalidState)
	})

	t.Run("idempotent until rotate", func(t *testing.T) {
		s := newStore()
		_, _, _, err := s.Initialize(ctx, nil)
		require.NoError(t, err)

		first, firstHash, err := s.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, StateStaged, s.State())

		second, secondHash, err := s.Next(ctx)
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, firstHash, secondHash)
	})

	t.Run("does not change the signer", func(t *testing.T) {
		s := newStore()
		_, publicKey, _, err := s.Initialize(ctx, nil)
		require.NoError(t, err)

		_, _, err = s.Next(ctx)
		require.NoError(t, err)

		signer, err := s.Signer(ctx)
		require.NoError(t, err)
		assert.Equal(t, publicKey, publicOf(t, signer))
	})

	t.Run("generator failure leaves store initialized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		generator := mock.NewMockKeyGenerator(ctrl)

		current, err := crypto.NewSecp256r1()
		require.NoError(t, err)
		next, err := crypto.NewSecp256r1()
		require.NoError(t, err)

		gomock.InOrder(
			generator.EXPECT().Generate().Return(current, nil),
			generator.EXPECT().Generate().Return(next, nil),
			generator.EXPECT().Generate().Return(nil, errors.New("no entropy")),
		)

		s := New(crypto.NewBlake3Hasher(), generator)
		_, _, _, err = s.Initialize(ctx, nil)
		require.NoError(t, err)

		_, _, err = s.Next(ctx)
		assert.ErrorContains(t, err, "no entropy")
		assert.Equal(t, StateInitialized, s.State())
	})
}

func TestRotate(t *testing.T) {
	ctx := context.Background()

	t.Run("uninitialized", func(t *testing.T) {
		err := newStore().Rotate(ctx)
		assert.ErrorIs(t, err, autherr.ErrInvalidState)
	})

	t.Run("without next fails and keeps keys", func(t *testing.T) {
		s := newStore()
		_, publicKey, _, err := s.Initialize(ctx, nil)
		require.NoError(t, err)

		err = s.Rotate(ctx)
		assert.ErrorIs(t, err, autherr.ErrInvalidState)

		signer, err := s.Signer(ctx)
		require.NoError(t, err)
		assert.Equal(t, publicKey, publicOf(t, signer))
		assert.Equal(t, StateInitialized, s.State())
	})

	t.Run("commits staged keys", func(t *testing.T) {
		s := newStore()
		_, _, _, err := s.Initialize(ctx, nil)
		require.NoError(t, err)

		next, rotationHash, err := s.Next(ctx)
		require.NoError(t, err)
		require.NoError(t, s.Rotate(ctx))
		assert.Equal(t, StateInitialized, s.State())

		signer, err := s.Signer(ctx)
		require.NoError(t, err)
		assert.Equal(t, publicOf(t, next), publicOf(t, signer))

		following, _, err := s.Next(ctx)
		require.NoError(t, err)
		hash, err := crypto.NewBlake3Hasher().Sum(publicOf(t, following))
		require.NoError(t, err)
		assert.Equal(t, rotationHash, hash)
	})

	t.Run("second rotate needs a new next", func(t *testing.T) {
		s := newStore()
		_, _, _, err := s.Initialize(ctx, nil)
		require.NoError(t, err)

		_, _, err = s.Next(ctx)
		require.NoError(t, err)
		require.NoError(t, s.Rotate(ctx))

		assert.ErrorIs(t, s.Rotate(ctx), autherr.ErrInvalidState)
	})
}

func TestResume(t *testing.T) {
	ctx := context.Background()
	extra := "Erecovery"

	t.Run("uninitialized", func(t *testing.T) {
		_, _, _, err := newStore().Resume(ctx, nil)
		assert.ErrorIs(t, err, autherr.ErrInvalidState)
	})

	t.Run("repeats initialize", func(t *testing.T) {
		s := newStore()
		identity, publicKey, rotationHash, err := s.Initialize(ctx, &extra)
		require.NoError(t, err)

		gotIdentity, gotPublicKey, gotRotationHash, err := s.Resume(ctx, &extra)
		require.NoError(t, err)
		assert.Equal(t, identity, gotIdentity)
		assert.Equal(t, publicKey, gotPublicKey)
		assert.Equal(t, rotationHash, gotRotationHash)
	})

	t.Run("staged keys do not change the result", func(t *testing.T) {
		s := newStore()
		identity, _, _, err := s.Initialize(ctx, nil)
		require.NoError(t, err)
		_, _, err = s.Next(ctx)
		require.NoError(t, err)

		gotIdentity, _, _, err := s.Resume(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, identity, gotIdentity)
	})

	t.Run("fails after rotation", func(t *testing.T) {
		s := newStore()
		_, _, _, err := s.Initialize(ctx, nil)
		require.NoError(t, err)
		_, _, err = s.Next(ctx)
		require.NoError(t, err)
		require.NoError(t, s.Rotate(ctx))

		_, _, _, err = s.Resume(ctx, nil)
		assert.ErrorIs(t, err, autherr.ErrInvalidState)
	})

	t.Run("reinitialize clears rotation", func(t *testing.T) {
		s := newStore(WithReinitialize())
		_, _, _, err := s.Initialize(ctx, nil)
		require.NoError(t, err)
		_, _, err = s.Next(ctx)
		require.NoError(t, err)
		require.NoError(t, s.Rotate(ctx))
		_, publicKey, _, err := s.Initialize(ctx, nil)
		require.NoError(t, err)

		_, gotPublicKey, _, err := s.Resume(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, publicKey, gotPublicKey)
	})
}

func TestSigner_Uninitialized(t *testing.T) {
	_, err := newStore().Signer(context.Background())
	assert.ErrorIs(t, err, autherr.ErrInvalidState)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "uninitialized", StateUninitialized.String())
	assert.Equal(t, "initialized", StateInitialized.String())
	assert.Equal(t, "staged", StateStaged.String())
	assert.Equal(t, "State(7)", State(7).String())
}
