package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-better-auth/internal/autherr"
	"github.com/MKhiriev/go-better-auth/internal/crypto"
	"github.com/MKhiriev/go-better-auth/internal/encoding"
	"github.com/MKhiriev/go-better-auth/internal/keystore"
	"github.com/MKhiriev/go-better-auth/internal/message"
	"github.com/MKhiriev/go-better-auth/internal/mock"
	"github.com/MKhiriev/go-better-auth/internal/logger"
	"github.com/MKhiriev/go-better-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	serverIdentity = "Eserver-identity"
	testIdentity   = "Eidentity"
	testDevice     = "Edevice"
	testNonce      = "0Anonce-for-test"
	otherNonce     = "0Aother-nonce"
)

// harness wires clientAuthService to mocks and real crypto.
type harness struct {
	svc *clientAuthService

	noncer           *mock.MockNoncer
	network          *mock.MockNetwork
	verificationKeys *mock.MockVerificationKeyStore
	identities       *mock.MockClientValueStore
	devices          *mock.MockClientValueStore
	accessTokens     *mock.MockClientValueStore
	authKeys         *mock.MockKeyStore
	accessKeys       *mock.MockKeyStore
	// sessionKeys is the store handed out for every session after the first
	// access store.
	sessionKeys *mock.MockKeyStore

	hasher    crypto.Hasher
	serverKey *crypto.Secp256r1
	clock     time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	serverKey, err := crypto.NewSecp256r1()
	require.NoError(t, err)

	h := &harness{
		noncer:           mock.NewMockNoncer(ctrl),
		network:          mock.NewMockNetwork(ctrl),
		verificationKeys: mock.NewMockVerificationKeyStore(ctrl),
		identities:       mock.NewMockClientValueStore(ctrl),
		devices:          mock.NewMockClientValueStore(ctrl),
		accessTokens:     mock.NewMockClientValueStore(ctrl),
		authKeys:         mock.NewMockKeyStore(ctrl),
		accessKeys:       mock.NewMockKeyStore(ctrl),
		sessionKeys:      mock.NewMockKeyStore(ctrl),
		hasher:           crypto.NewBlake3Hasher(),
		serverKey:        serverKey,
		clock:            time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	accessStores := 0
	newAccessKeys := func() keystore.KeyStore {
		accessStores++
		if accessStores == 1 {
			return h.accessKeys
		}
		return h.sessionKeys
	}

	svc, err := NewClientAuthService(Deps{
		Hasher:             h.hasher,
		Noncer:             h.noncer,
		Timestamper:        encoding.NewFixedRfc3339Nano(func() time.Time { return h.clock }),
		Verifier:           crypto.NewMultiVerifier(),
		TokenEncoder:       encoding.NewGzipTokenEncoder(),
		VerificationKeys:   h.verificationKeys,
		Network:            h.network,
		Paths:              models.DefaultPaths(),
		Identities:         h.identities,
		Devices:            h.devices,
		AccessTokens:       h.accessTokens,
		AuthenticationKeys: h.authKeys,
		NewAccessKeys:      newAccessKeys,
		Logger:             logger.Nop(),
	})
	require.NoError(t, err)
	h.svc = svc.(*clientAuthService)

	return h
}

func newKey(t *testing.T) *crypto.Secp256r1 {
	t.Helper()
	key, err := crypto.NewSecp256r1()
	require.NoError(t, err)
	return key
}

func publicOf(t *testing.T, key crypto.VerificationKey) string {
	t.Helper()
	public, err := key.Public()
	require.NoError(t, err)
	return public
}

func (h *harness) sum(t *testing.T, value string) string {
	t.Helper()
	digest, err := h.hasher.Sum(value)
	require.NoError(t, err)
	return digest
}

// reply builds a response signed by the server key.
func (h *harness) reply(t *testing.T, nonce string, response any) string {
	t.Helper()
	return signedReply(t, h.serverKey, nonce, response)
}

func signedReply(t *testing.T, key crypto.SigningKey, nonce string, response any) string {
	t.Helper()
	r := message.NewServerResponse(response, serverIdentity, nonce)
	require.NoError(t, r.Sign(key))
	serialized, err := r.Serialize()
	require.NoError(t, err)
	return serialized
}

func (h *harness) expectServerKey(t *testing.T) {
	t.Helper()
	key := crypto.NewStaticVerificationKey(publicOf(t, h.serverKey), crypto.Secp256r1Verifier{})
	h.verificationKeys.EXPECT().Get(gomock.Any(), serverIdentity).Return(key, nil)
}

func (h *harness) expectNonce() {
	h.noncer.EXPECT().Generate128().Return(testNonce, nil)
}

func (h *harness) expectIdentifiers() {
	h.identities.EXPECT().Get(gomock.Any()).Return(testIdentity, nil)
	h.devices.EXPECT().Get(gomock.Any()).Return(testDevice, nil)
}

// decodeRequest parses a signed client request and checks it was signed by
// publicKey.
func decodeRequest[T any](t *testing.T, serialized, publicKey string) *message.ClientRequest[T] {
	t.Helper()
	request, err := message.ParseClientRequest[T](serialized)
	require.NoError(t, err)
	require.NoError(t, request.Verify(crypto.NewMultiVerifier(), publicKey))
	return request
}

func sessionResult(token string) models.SessionResult {
	var result models.SessionResult
	result.Access.Token = token
	return result
}

// ── NewClientAuthService ────────────────────────────────────────────────────

func TestNewClientAuthService_MissingDependency(t *testing.T) {
	_, err := NewClientAuthService(Deps{Hasher: crypto.NewBlake3Hasher()})

	assert.ErrorIs(t, err, ErrNilDependency)
	assert.Contains(t, err.Error(), "Noncer")
}

// ── Identity / Device ───────────────────────────────────────────────────────

func TestIdentityAndDevice(t *testing.T) {
	h := newHarness(t)
	h.expectIdentifiers()

	identity, err := h.svc.Identity(context.Background())
	require.NoError(t, err)
	device, err := h.svc.Device(context.Background())
	require.NoError(t, err)

	assert.Equal(t, testIdentity, identity)
	assert.Equal(t, testDevice, device)
}

// ── CreateAccount ───────────────────────────────────────────────────────────

func TestCreateAccount_Success(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	key := newKey(t)
	publicKey := publicOf(t, key)
	device := h.sum(t, publicKey)

	h.authKeys.EXPECT().Initialize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, extraData *string) (string, string, string, error) {
			require.NotNil(t, extraData)
			assert.Equal(t, "Erecovery", *extraData)
			return testIdentity, publicKey, "Erotation", nil
		})
	h.authKeys.EXPECT().Signer(gomock.Any()).Return(key, nil)
	h.expectNonce()
	h.network.EXPECT().SendRequest(gomock.Any(), "/account/create", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, serialized string) (string, error) {
			request := decodeRequest[models.CreateAccountBody](t, serialized, publicKey)
			assert.Equal(t, testNonce, request.Nonce())
			assert.Equal(t, models.Authentication{
				Device:       device,
				Identity:     testIdentity,
				PublicKey:    publicKey,
				RecoveryHash: "Erecovery",
				RotationHash: "Erotation",
			}, request.Request().Authentication)
			return h.reply(t, request.Nonce(), models.EmptyResult{}), nil
		})
	h.expectServerKey(t)
	h.identities.EXPECT().Store(gomock.Any(), testIdentity).Return(nil)
	h.devices.EXPECT().Store(gomock.Any(), device).Return(nil)

	require.NoError(t, h.svc.CreateAccount(ctx, "Erecovery"))
}

// Stores are strict mocks without Store expectations: any write fails the
// test.
func TestCreateAccount_NoStateOnFailure(t *testing.T) {
	tests := []struct {
		name    string
		reply   func(t *testing.T, h *harness) string
		keyErr  error
		wantErr error
	}{
		{
			name: "nonce mismatch",
			reply: func(t *testing.T, h *harness) string {
				return h.reply(t, otherNonce, models.EmptyResult{})
			},
			wantErr: autherr.ErrIncorrectNonce,
		},
		{
			name: "signed by another key",
			reply: func(t *testing.T, h *harness) string {
				return signedReply(t, newKey(t), testNonce, models.EmptyResult{})
			},
			wantErr: autherr.ErrSignatureInvalid,
		},
		{
			name: "unknown server identity",
			reply: func(t *testing.T, h *harness) string {
				return h.reply(t, testNonce, models.EmptyResult{})
			},
			keyErr:  autherr.ErrNotFound,
			wantErr: autherr.ErrNotFound,
		},
		{
			name: "malformed reply",
			reply: func(t *testing.T, h *harness) string {
				return `{"payload":`
			},
			wantErr: autherr.ErrDeserialization,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			key := newKey(t)
			publicKey := publicOf(t, key)

			h.authKeys.EXPECT().Initialize(gomock.Any(), gomock.Any()).Return(testIdentity, publicKey, "Erotation", nil)
			h.authKeys.EXPECT().Signer(gomock.Any()).Return(key, nil)
			h.expectNonce()
			h.network.EXPECT().SendRequest(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.reply(t, h), nil)

			switch {
			case tt.keyErr != nil:
				h.verificationKeys.EXPECT().Get(gomock.Any(), serverIdentity).Return(nil, tt.keyErr)
			case errors.Is(tt.wantErr, autherr.ErrDeserialization):
			default:
				h.expectServerKey(t)
			}

			err := h.svc.CreateAccount(context.Background(), "Erecovery")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateAccount_NetworkError(t *testing.T) {
	h := newHarness(t)
	key := newKey(t)

	h.authKeys.EXPECT().Initialize(gomock.Any(), gomock.Any()).Return(testIdentity, publicOf(t, key), "Erotation", nil)
	h.authKeys.EXPECT().Signer(gomock.Any()).Return(key, nil)
	h.expectNonce()
	h.network.EXPECT().SendRequest(gomock.Any(), gomock.Any(), gomock.Any()).Return("", autherr.ErrConnectionFailed)

	err := h.svc.CreateAccount(context.Background(), "Erecovery")
	assert.ErrorIs(t, err, autherr.ErrConnectionFailed)
}

func TestCreateAccount_KeyStoreError(t *testing.T) {
	h := newHarness(t)
	h.authKeys.EXPECT().Initialize(gomock.Any(), gomock.Any()).Return("", "", "", autherr.InvalidState("initialize", "initialized"))
	h.identities.EXPECT().Get(gomock.Any()).Return(testIdentity, nil)

	err := h.svc.CreateAccount(context.Background(), "Erecovery")
	assert.ErrorIs(t, err, autherr.ErrInvalidState)
}

// A registration whose reply was lost left keys but no identifiers behind.
// The retry announces the same keys again.
func TestCreateAccount_RetryAfterLostReply(t *testing.T) {
	h := newHarness(t)
	key := newKey(t)
	publicKey := publicOf(t, key)
	device := h.sum(t, publicKey)

	h.authKeys.EXPECT().Initialize(gomock.Any(), gomock.Any()).Return("", "", "", autherr.InvalidState("initialize", "initialized"))
	h.identities.EXPECT().Get(gomock.Any()).Return("", autherr.ErrNotFound)
	h.authKeys.EXPECT().Resume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, extraData *string) (string, string, string, error) {
			require.NotNil(t, extraData)
			assert.Equal(t, "Erecovery", *extraData)
			return testIdentity, publicKey, "Erotation", nil
		})
	h.authKeys.EXPECT().Signer(gomock.Any()).Return(key, nil)
	h.expectNonce()
	h.network.EXPECT().SendRequest(gomock.Any(), "/account/create", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, serialized string) (string, error) {
			request := decodeRequest[models.CreateAccountBody](t, serialized, publicKey)
			assert.Equal(t, testIdentity, request.Request().Authentication.Identity)
			assert.Equal(t, "Erotation", request.Request().Authentication.RotationHash)
			return h.reply(t, request.Nonce(), models.EmptyResult{}), nil
		})
	h.expectServerKey(t)
	h.identities.EXPECT().Store(gomock.Any(), testIdentity).Return(nil)
	h.devices.EXPECT().Store(gomock.Any(), device).Return(nil)

	require.NoError(t, h.svc.CreateAccount(context.Background(), "Erecovery"))
}

func TestCreateAccount_ResumeFailsAfterRotation(t *testing.T) {
	h := newHarness(t)
	h.authKeys.EXPECT().Initialize(gomock.Any(), gomock.Any()).Return("", "", "", autherr.InvalidState("initialize", "initialized"))
	h.identities.EXPECT().Get(gomock.Any()).Return("", autherr.ErrNotFound)
	h.authKeys.EXPECT().Resume(gomock.Any(), gomock.Any()).Return("", "", "", autherr.InvalidState("resume", "rotated"))

	err := h.svc.CreateAccount(context.Background(), "Erecovery")
	assert.ErrorIs(t, err, autherr.ErrInvalidState)
}

// ── RotateDevice / ChangeRecoveryKey / DeleteAccount ────────────────────────

func TestRotateDevice_Success(t *testing.T) {
	h := newHarness(t)
	next := newKey(t)
	nextPublic := publicOf(t, next)

	h.expectIdentifiers()
	h.authKeys.EXPECT().Next(gomock.Any()).Return(next, "Efuture", nil)
	h.expectNonce()
	h.network.EXPECT().SendRequest(gomock.Any(), "/device/rotate", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, serialized string) (string, error) {
			request := decodeRequest[models.RotateDeviceBody](t, serialized, nextPublic)
			assert.Equal(t, models.Authentication{
				Device:       testDevice,
				Identity:     testIdentity,
				PublicKey:    nextPublic,
				RotationHash: "Efuture",
			}, request.Request().Authentication)
			return h.reply(t, request.Nonce(), models.EmptyResult{}), nil
		})
	h.expectServerKey(t)
	h.authKeys.EXPECT().Rotate(gomock.Any()).Return(nil)

	require.NoError(t, h.svc.RotateDevice(context.Background()))
}

func TestRotateDevice_NonceMismatchKeepsStagedKey(t *testing.T) {
	h := newHarness(t)
	next := newKey(t)

	h.expectIdentifiers()
	h.authKeys.EXPECT().Next(gomock.Any()).Return(next, "Efuture", nil)
	h.expectNonce()
	h.network.EXPECT().SendRequest(gomock.Any(), gomock.Any(), gomock.Any()).Return(h.reply(t, otherNonce, models.EmptyResult{}), nil)
	h.expectServerKey(t)

	err := h.svc.RotateDevice(context.Background())

	assert.ErrorIs(t, err, autherr.ErrIncorrectNonce)
}

func TestChangeRecoveryKey(t *testing.T) {
	h := newHarness(t)
	next := newKey(t)
	nextPublic := publicOf(t, next)

	h.expectIdentifiers()
	h.authKeys.EXPECT().Next(gomock.Any()).Return(next, "Efuture", nil)
	h.expectNonce()
	h.network.EXPECT().SendRequest(gomock.Any(), "/recovery/change", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, serialized string) (string, error) {
			request := decodeRequest[models.ChangeRecoveryKeyBody](t, serialized, nextPublic)
			assert.Equal(t, "Enew-recovery", request.Request().Authentication.RecoveryHash)
			assert.Equal(t, "Efuture", request.Request().Authentication.RotationHash)
			return h.reply(t, request.Nonce(), models.EmptyResult{}), nil
		})
	h.expectServerKey(t)
	h.authKeys.EXPECT().Rotate(gomock.Any()).Return(nil)

	require.NoError(t, h.svc.ChangeRecoveryKey(context.Background(), "Enew-recovery"))
}

func TestDeleteAccount(t *testing.T) {
	h := newHarness(t)
	next := newKey(t)

	h.expectIdentifiers()
	h.authKeys.EXPECT().Next(gomock.Any()).Return(next, "Efuture", nil)
	h.expectNonce()
	h.network.EXPECT().SendRequest(gomock.Any(), "/account/delete", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, serialized string) (string, error) {
			request := decodeRequest[models.DeleteAccountBody](t, serialized, publicOf(t, next))
			return h.reply(t, request.Nonce(), models.EmptyResult{}), nil
		})
	h.expectServerKey(t)
	h.authKeys.EXPECT().Rotate(gomock.Any()).Return(nil)

	require.NoError(t, h.svc.DeleteAccount(context.Background()))
}

// ── UnlinkDevice ────────────────────────────────────────────────────────────

func TestUnlinkDevice_RotationHash(t *testing.T) {
	tests := []struct {
		name     string
		device   string
		poisoned bool
	}{
		{name: "other device keeps rotation hash", device: "Eother-device"},
		{name: "own device poisons rotation hash", device: testDevice, poisoned: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			next := newKey(t)

			want := "Efuture"
			if tt.poisoned {
				want = h.sum(t, "Efuture")
			}

			h.expectIdentifiers()
			h.authKeys.EXPECT().Next(gomock.Any()).Return(next, "Efuture", nil)
			h.expectNonce()
			h.network.EXPECT().SendRequest(gomock.Any(), "/device/unlink", gomock.Any()).
				DoAndReturn(func(_ context.Context, _, serialized string) (string, error) {
					request := decodeRequest[models.UnlinkDeviceBody](t, serialized, publicOf(t, next))
					assert.Equal(t, want, request.Request().Authentication.RotationHash)
					assert.Equal(t, tt.device, request.Request().Link.Device)
					return h.reply(t, request.Nonce(), models.EmptyResult{}), nil
				})
			h.expectServerKey(t)
			h.authKeys.EXPECT().Rotate(gomock.Any()).Return(nil)

			require.NoError(t, h.svc.UnlinkDevice(context.Background(), tt.device))
		})
	}
}

// ── GenerateLinkContainer / LinkDevice ──────────────────────────────────────

func TestGenerateLinkContainer(t *testing.T) {
	h := newHarness(t)
	key := newKey(t)
	publicKey := publicOf(t, key)
	device := h.sum(t, publicKey)

	h.authKeys.EXPECT().Initialize(gomock.Any(), nil).Return("Eunused", publicKey, "Erotation", nil)
	h.identities.EXPECT().Store(gomock.Any(), testIdentity).Return(nil)
	h.devices.EXPECT().Store(gomock.Any(), device).Return(nil)
	h.authKeys.EXPECT().Signer(gomock.Any()).Return(key, nil)

	serialized, err := h.svc.GenerateLinkContainer(context.Background(), testIdentity)
	require.NoError(t, err)

	container, err := message.ParseLinkContainer(serialized)
	require.NoError(t, err)
	require.NoError(t, container.Verify(crypto.Secp256r1Verifier{}, publicKey))
	assert.Equal(t, models.Authentication{
		Device:       device,
		Identity:     testIdentity,
		PublicKey:    publicKey,
		RotationHash: "Erotation",
	}, container.Authentication())
}

func TestGenerateLinkContainer_Resume(t *testing.T) {
	tests := []struct {
		name    string
		stored  string
		resumed bool
	}{
		{name: "same identity resumes", stored: testIdentity, resumed: true},
		{name: "other identity does not", stored: "Eother-identity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			key := newKey(t)
			publicKey := publicOf(t, key)

			h.authKeys.EXPECT().Initialize(gomock.Any(), nil).Return("", "", "", autherr.InvalidState("initialize", "initialized"))
			h.identities.EXPECT().Get(gomock.Any()).Return(tt.stored, nil)
			if tt.resumed {
				h.authKeys.EXPECT().Resume(gomock.Any(), nil).Return("Eunused", publicKey, "Erotation", nil)
				h.identities.EXPECT().Store(gomock.Any(), testIdentity).Return(nil)
				h.devices.EXPECT().Store(gomock.Any(), h.sum(t, publicKey)).Return(nil)
				h.authKeys.EXPECT().Signer(gomock.Any()).Return(key, nil)
			}

			serialized, err := h.svc.GenerateLinkContainer(context.Background(), testIdentity)

			if !tt.resumed {
				assert.ErrorIs(t, err, autherr.ErrInvalidState)
				return
			}
			require.NoError(t, err)
			container, err := message.ParseLinkContainer(serialized)
			require.NoError(t, err)
			assert.Equal(t, publicKey, container.Authentication().PublicKey)
		})
	}
}

func newLinkContainer(t *testing.T, h *harness, identity string, signer crypto.SigningKey, announced crypto.SigningKey) string {
	t.Helper()
	publicKey := publicOf(t, announced)
	container := message.NewLinkContainer(models.Authentication{
		Device:       h.sum(t, publicKey),
		Identity:     identity,
		PublicKey:    publicKey,
		RotationHash: "Enew-rotation",
	})
	require.NoError(t, container.Sign(signer))
	serialized, err := container.Serialize()
	require.NoError(t, err)
	return serialized
}

func TestLinkDevice_Success(t *testing.T) {
	h := newHarness(t)
	newDevice := newKey(t)
	container := newLinkContainer(t, h, testIdentity, newDevice, newDevice)
	next := newKey(t)

	h.identities.EXPECT().Get(gomock.Any()).Return(testIdentity, nil).Times(2)
	h.devices.EXPECT().Get(gomock.Any()).Return(testDevice, nil)
	h.authKeys.EXPECT().Next(gomock.Any()).Return(next, "Efuture", nil)
	h.expectNonce()
	h.network.EXPECT().SendRequest(gomock.Any(), "/device/link", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, serialized string) (string, error) {
			request := decodeRequest[models.LinkDeviceBody](t, serialized, publicOf(t, next))
			assert.JSONEq(t, container, string(request.Request().Link))

			embedded, err := message.ParseLinkContainer(string(request.Request().Link))
			require.NoError(t, err)
			assert.NoError(t, embedded.Verify(crypto.Secp256r1Verifier{}, publicOf(t, newDevice)))

			return h.reply(t, request.Nonce(), models.EmptyResult{}), nil
		})
	h.expectServerKey(t)
	h.authKeys.EXPECT().Rotate(gomock.Any()).Return(nil)

	require.NoError(t, h.svc.LinkDevice(context.Background(), container))
}

func TestLinkDevice_RejectedContainer(t *testing.T) {
	t.Run("identity mismatch", func(t *testing.T) {
		h := newHarness(t)
		key := newKey(t)
		container := newLinkContainer(t, h, "Esomeone-else", key, key)
		h.identities.EXPECT().Get(gomock.Any()).Return(testIdentity, nil)

		err := h.svc.LinkDevice(context.Background(), container)
		assert.ErrorIs(t, err, autherr.ErrMismatchedIdentities)
	})

	t.Run("signed by another key", func(t *testing.T) {
		h := newHarness(t)
		container := newLinkContainer(t, h, testIdentity, newKey(t), newKey(t))

		err := h.svc.LinkDevice(context.Background(), container)
		assert.ErrorIs(t, err, autherr.ErrSignatureInvalid)
	})

	t.Run("device does not match key", func(t *testing.T) {
		h := newHarness(t)
		key := newKey(t)
		container := message.NewLinkContainer(models.Authentication{
			Device:       "Eforged-device",
			Identity:     testIdentity,
			PublicKey:    publicOf(t, key),
			RotationHash: "Enew-rotation",
		})
		require.NoError(t, container.Sign(key))
		serialized, err := container.Serialize()
		require.NoError(t, err)

		err = h.svc.LinkDevice(context.Background(), serialized)
		assert.ErrorIs(t, err, autherr.ErrInvalidDevice)
	})

	t.Run("malformed", func(t *testing.T) {
		h := newHarness(t)

		err := h.svc.LinkDevice(context.Background(), `{"payload":{}}`)
		assert.ErrorIs(t, err, autherr.ErrDeserialization)
	})
}

// ── CreateSession ───────────────────────────────────────────────────────────

func TestCreateSession_Success(t *testing.T) {
	h := newHarness(t)
	authKey := newKey(t)
	accessKey := newKey(t)
	accessPublic := publicOf(t, accessKey)

	h.expectIdentifiers()
	gomock.InOrder(
		h.noncer.EXPECT().Generate128().Return("0Arequest-nonce", nil),
		h.noncer.EXPECT().Generate128().Return("0Acreate-nonce", nil),
	)
	h.verificationKeys.EXPECT().Get(gomock.Any(), serverIdentity).
		Return(crypto.NewStaticVerificationKey(publicOf(t, h.serverKey), crypto.Secp256r1Verifier{}), nil).
		Times(2)

	h.network.EXPECT().SendRequest(gomock.Any(), "/session/request", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, serialized string) (string, error) {
			request, err := message.ParseUnsignedRequest[models.RequestSessionBody](serialized)
			require.NoError(t, err)
			assert.Equal(t, testIdentity, request.Request().Authentication.Identity)

			var result models.RequestSessionResult
			result.Authentication.Nonce = "0Achallenge"
			return h.reply(t, request.Nonce(), result), nil
		})
	h.sessionKeys.EXPECT().Initialize(gomock.Any(), nil).Return("Eaccess-id", accessPublic, "Eaccess-next", nil)
	h.authKeys.EXPECT().Signer(gomock.Any()).Return(authKey, nil)
	h.network.EXPECT().SendRequest(gomock.Any(), "/session/create", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, serialized string) (string, error) {
			request := decodeRequest[models.CreateSessionBody](t, serialized, publicOf(t, authKey))
			assert.Equal(t, models.AccessKey{PublicKey: accessPublic, RotationHash: "Eaccess-next"}, request.Request().Access)
			assert.Equal(t, models.Authentication{Device: testDevice, Nonce: "0Achallenge"}, request.Request().Authentication)
			return h.reply(t, request.Nonce(), sessionResult("token-1")), nil
		})
	h.accessTokens.EXPECT().Store(gomock.Any(), "token-1").Return(nil)

	require.NoError(t, h.svc.CreateSession(context.Background()))
	assert.Same(t, h.sessionKeys, h.svc.accessKeys)
}

func TestCreateSession_FailureKeepsRunningSession(t *testing.T) {
	h := newHarness(t)
	authKey := newKey(t)

	h.expectIdentifiers()
	gomock.InOrder(
		h.noncer.EXPECT().Generate128().Return("0Arequest-nonce", nil),
		h.noncer.EXPECT().Generate128().Return("0Acreate-nonce", nil),
	)
	h.verificationKeys.EXPECT().Get(gomock.Any(), serverIdentity).
		Return(crypto.NewStaticVerificationKey(publicOf(t, h.serverKey), crypto.Secp256r1Verifier{}), nil).
		Times(2)
	h.network.EXPECT().SendRequest(gomock.Any(), "/session/request", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, serialized string) (string, error) {
			request, err := message.ParseUnsignedRequest[models.RequestSessionBody](serialized)
			require.NoError(t, err)
			var result models.RequestSessionResult
			result.Authentication.Nonce = "0Achallenge"
			return h.reply(t, request.Nonce(), result), nil
		})
	h.sessionKeys.EXPECT().Initialize(gomock.Any(), nil).Return("Eaccess-id", publicOf(t, newKey(t)), "Eaccess-next", nil)
	h.authKeys.EXPECT().Signer(gomock.Any()).Return(authKey, nil)
	h.network.EXPECT().SendRequest(gomock.Any(), "/session/create", gomock.Any()).
		Return(h.reply(t, otherNonce, sessionResult("token-2")), nil)

	err := h.svc.CreateSession(context.Background())

	assert.ErrorIs(t, err, autherr.ErrIncorrectNonce)
	assert.Same(t, h.accessKeys, h.svc.accessKeys)
}

func TestCreateSession_EmptyChallenge(t *testing.T) {
	h := newHarness(t)

	h.expectIdentifiers()
	h.expectNonce()
	h.expectServerKey(t)
	h.network.EXPECT().SendRequest(gomock.Any(), "/session/request", gomock.Any()).
		Return(h.reply(t, testNonce, models.RequestSessionResult{}), nil)

	err := h.svc.CreateSession(context.Background())

	assert.ErrorIs(t, err, autherr.ErrInvalidMessage)
	assert.ErrorIs(t, err, ErrEmptySessionNonce)
}

func TestCreateSession_NoIdentity(t *testing.T) {
	h := newHarness(t)
	h.identities.EXPECT().Get(gomock.Any()).Return("", autherr.ErrNotFound)

	err := h.svc.CreateSession(context.Background())
	assert.ErrorIs(t, err, autherr.ErrNotFound)
}

// ── RefreshSession ──────────────────────────────────────────────────────────

func TestRefreshSession_Success(t *testing.T) {
	h := newHarness(t)
	next := newKey(t)
	nextPublic := publicOf(t, next)

	h.accessTokens.EXPECT().Get(gomock.Any()).Return("token-1", nil)
	h.accessKeys.EXPECT().Next(gomock.Any()).Return(next, "Eaccess-future", nil)
	h.expectNonce()
	h.network.EXPECT().SendRequest(gomock.Any(), "/session/refresh", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, serialized string) (string, error) {
			request := decodeRequest[models.RefreshSessionBody](t, serialized, nextPublic)
			assert.Equal(t, models.AccessKey{
				PublicKey:    nextPublic,
				RotationHash: "Eaccess-future",
				Token:        "token-1",
			}, request.Request().Access)
			return h.reply(t, request.Nonce(), sessionResult("token-2")), nil
		})
	h.expectServerKey(t)
	gomock.InOrder(
		h.accessKeys.EXPECT().Rotate(gomock.Any()).Return(nil),
		h.accessTokens.EXPECT().Store(gomock.Any(), "token-2").Return(nil),
	)

	require.NoError(t, h.svc.RefreshSession(context.Background()))
}

func TestRefreshSession_NonceMismatch(t *testing.T) {
	h := newHarness(t)

	h.accessTokens.EXPECT().Get(gomock.Any()).Return("token-1", nil)
	h.accessKeys.EXPECT().Next(gomock.Any()).Return(newKey(t), "Eaccess-future", nil)
	h.expectNonce()
	h.network.EXPECT().SendRequest(gomock.Any(), gomock.Any(), gomock.Any()).Return(h.reply(t, otherNonce, sessionResult("token-2")), nil)
	h.expectServerKey(t)

	err := h.svc.RefreshSession(context.Background())

	assert.ErrorIs(t, err, autherr.ErrIncorrectNonce)
}

func TestRefreshSession_EmptyToken(t *testing.T) {
	h := newHarness(t)

	h.accessTokens.EXPECT().Get(gomock.Any()).Return("token-1", nil)
	h.accessKeys.EXPECT().Next(gomock.Any()).Return(newKey(t), "Eaccess-future", nil)
	h.expectNonce()
	h.network.EXPECT().SendRequest(gomock.Any(), gomock.Any(), gomock.Any()).Return(h.reply(t, testNonce, sessionResult("")), nil)
	h.expectServerKey(t)

	err := h.svc.RefreshSession(context.Background())

	assert.ErrorIs(t, err, ErrEmptyAccessToken)
}

// ── RecoverAccount ──────────────────────────────────────────────────────────

func TestRecoverAccount_Success(t *testing.T) {
	h := newHarness(t)
	recoveryKey := newKey(t)
	recoveryPublic := publicOf(t, recoveryKey)
	authKey := newKey(t)
	publicKey := publicOf(t, authKey)
	device := h.sum(t, publicKey)

	h.authKeys.EXPECT().Initialize(gomock.Any(), nil).Return("Eunused", publicKey, "Erotation", nil)
	h.expectNonce()
	h.network.EXPECT().SendRequest(gomock.Any(), "/account/recover", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, serialized string) (string, error) {
			request := decodeRequest[models.RecoverAccountBody](t, serialized, recoveryPublic)
			assert.Equal(t, models.Authentication{
				Device:       device,
				Identity:     testIdentity,
				PublicKey:    publicKey,
				RecoveryHash: "Enext-recovery",
				RecoveryKey:  recoveryPublic,
				RotationHash: "Erotation",
			}, request.Request().Authentication)
			return h.reply(t, request.Nonce(), models.EmptyResult{}), nil
		})
	h.expectServerKey(t)
	h.identities.EXPECT().Store(gomock.Any(), testIdentity).Return(nil)
	h.devices.EXPECT().Store(gomock.Any(), device).Return(nil)

	require.NoError(t, h.svc.RecoverAccount(context.Background(), testIdentity, recoveryKey, "Enext-recovery"))
}

func TestRecoverAccount_NilKey(t *testing.T) {
	h := newHarness(t)

	err := h.svc.RecoverAccount(context.Background(), testIdentity, nil, "Enext-recovery")
	assert.ErrorIs(t, err, ErrNilRecoveryKey)
}

// ── MakeAccessRequest ───────────────────────────────────────────────────────

func TestMakeAccessRequest_Success(t *testing.T) {
	h := newHarness(t)
	accessKey := newKey(t)
	var reply string

	h.accessTokens.EXPECT().Get(gomock.Any()).Return("token-1", nil)
	h.expectNonce()
	h.accessKeys.EXPECT().Signer(gomock.Any()).Return(accessKey, nil)
	h.network.EXPECT().SendRequest(gomock.Any(), "/foo/bar", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, serialized string) (string, error) {
			request, err := message.ParseAccessRequest[map[string]string](serialized)
			require.NoError(t, err)
			require.NoError(t, request.Verify(crypto.Secp256r1Verifier{}, publicOf(t, accessKey)))
			assert.Equal(t, "token-1", request.Token())
			assert.Equal(t, "2026-03-01T12:00:00.000000000Z", request.Timestamp())
			assert.Equal(t, map[string]string{"foo": "bar"}, request.Request())

			reply = h.reply(t, request.Nonce(), map[string]string{"wasFoo": "bar"})
			return reply, nil
		})
	h.expectServerKey(t)

	got, err := h.svc.MakeAccessRequest(context.Background(), "/foo/bar", map[string]string{"foo": "bar"})

	require.NoError(t, err)
	assert.Equal(t, reply, got)
}

func TestMakeAccessRequest_NonceMismatch(t *testing.T) {
	h := newHarness(t)

	h.accessTokens.EXPECT().Get(gomock.Any()).Return("token-1", nil)
	h.expectNonce()
	h.accessKeys.EXPECT().Signer(gomock.Any()).Return(newKey(t), nil)
	h.network.EXPECT().SendRequest(gomock.Any(), gomock.Any(), gomock.Any()).Return(h.reply(t, otherNonce, map[string]string{}), nil)
	h.expectServerKey(t)

	_, err := h.svc.MakeAccessRequest(context.Background(), "/foo/bar", map[string]string{"foo": "bar"})

	assert.ErrorIs(t, err, autherr.ErrIncorrectNonce)
}

func TestMakeAccessRequest_NoSession(t *testing.T) {
	h := newHarness(t)
	h.accessTokens.EXPECT().Get(gomock.Any()).Return("", autherr.ErrNotFound)

	_, err := h.svc.MakeAccessRequest(context.Background(), "/foo/bar", nil)
	assert.ErrorIs(t, err, autherr.ErrNotFound)
}

// ── AccessToken ─────────────────────────────────────────────────────────────

func issueToken(t *testing.T, signer crypto.SigningKey, token models.AccessToken) string {
	t.Helper()
	object, err := message.ComposePayload(token)
	require.NoError(t, err)
	signature, err := signer.Sign(object)
	require.NoError(t, err)
	raw, err := encoding.SerializeAccessToken(object, signature, encoding.NewGzipTokenEncoder())
	require.NoError(t, err)
	return raw
}

func TestAccessToken(t *testing.T) {
	token := models.AccessToken{
		ServerIdentity: serverIdentity,
		Device:         testDevice,
		Identity:       testIdentity,
		PublicKey:      "1AAIaccess",
		RotationHash:   "Eaccess-next",
		IssuedAt:       "2026-03-01T12:00:00.000000000Z",
		Expiry:         "2026-03-01T12:15:00.000000000Z",
		RefreshExpiry:  "2026-03-02T12:00:00.000000000Z",
	}

	t.Run("valid", func(t *testing.T) {
		h := newHarness(t)
		h.accessTokens.EXPECT().Get(gomock.Any()).Return(issueToken(t, h.serverKey, token), nil)
		h.expectServerKey(t)

		got, err := h.svc.AccessToken(context.Background())

		require.NoError(t, err)
		assert.Equal(t, token, got.AccessToken)
	})

	t.Run("signed by another key", func(t *testing.T) {
		h := newHarness(t)
		h.accessTokens.EXPECT().Get(gomock.Any()).Return(issueToken(t, newKey(t), token), nil)
		h.expectServerKey(t)

		_, err := h.svc.AccessToken(context.Background())

		assert.ErrorIs(t, err, autherr.ErrSignatureInvalid)
	})

	t.Run("garbage", func(t *testing.T) {
		h := newHarness(t)
		h.accessTokens.EXPECT().Get(gomock.Any()).Return("short", nil)

		_, err := h.svc.AccessToken(context.Background())

		assert.ErrorIs(t, err, autherr.ErrInvalidToken)
	})
}
