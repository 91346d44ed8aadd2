package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-better-auth/internal/crypto"
	"github.com/MKhiriev/go-better-auth/internal/logger"
	"github.com/MKhiriev/go-better-auth/internal/mock"
	"github.com/MKhiriev/go-better-auth/internal/service"
	"github.com/MKhiriev/go-better-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type harness struct {
	auth *mock.MockClientAuthService
	job  *mock.MockSessionRefreshJob
	out  *bytes.Buffer
	app  *App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		auth: mock.NewMockClientAuthService(ctrl),
		job:  mock.NewMockSessionRefreshJob(ctrl),
		out:  &bytes.Buffer{},
	}
	services := &service.ClientServices{AuthService: h.auth, RefreshJob: h.job}
	h.app = NewApp(services, crypto.NewBlake3Hasher(), h.out, logger.Nop())
	return h
}

func (h *harness) expectWhoami() {
	h.auth.EXPECT().Identity(gomock.Any()).Return("Eidentity", nil)
	h.auth.EXPECT().Device(gomock.Any()).Return("Edevice", nil)
}

func TestRun_NoCommand(t *testing.T) {
	h := newHarness(t)

	err := h.app.Run(context.Background(), nil)

	assert.ErrorIs(t, err, ErrNoCommand)
	assert.Contains(t, err.Error(), "create-account <recoveryHash>")
}

func TestRun_UnknownCommand(t *testing.T) {
	h := newHarness(t)

	err := h.app.Run(context.Background(), []string{"fly"})

	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), `"fly"`)
}

func TestRun_MissingOperands(t *testing.T) {
	h := newHarness(t)

	err := h.app.Run(context.Background(), []string{"access", "/foo/bar"})

	assert.ErrorIs(t, err, ErrMissingOperands)
	assert.Contains(t, err.Error(), "access <path> <json>")
}

func TestRun_Chain(t *testing.T) {
	h := newHarness(t)
	gomock.InOrder(
		h.auth.EXPECT().CreateAccount(gomock.Any(), "Erecovery").Return(nil),
		h.auth.EXPECT().Identity(gomock.Any()).Return("Eidentity", nil),
		h.auth.EXPECT().Device(gomock.Any()).Return("Edevice", nil),
		h.auth.EXPECT().CreateSession(gomock.Any()).Return(nil),
		h.auth.EXPECT().MakeAccessRequest(gomock.Any(), "/foo/bar", json.RawMessage(`{"foo":"x"}`)).
			Return(`{"wasFoo":"x"}`, nil),
		h.auth.EXPECT().RefreshSession(gomock.Any()).Return(nil),
		h.auth.EXPECT().RotateDevice(gomock.Any()).Return(nil),
	)

	err := h.app.Run(context.Background(), []string{
		"create-account", "Erecovery",
		"session",
		"access", "/foo/bar", `{"foo":"x"}`,
		"refresh",
		"rotate",
	})

	require.NoError(t, err)
	assert.Equal(t, "identity Eidentity\ndevice Edevice\n{\"wasFoo\":\"x\"}\n", h.out.String())
}

func TestRun_StopsAtFirstError(t *testing.T) {
	h := newHarness(t)
	boom := errors.New("boom")
	h.auth.EXPECT().CreateSession(gomock.Any()).Return(boom)

	err := h.app.Run(context.Background(), []string{"session", "refresh"})

	assert.ErrorIs(t, err, boom)
	assert.True(t, strings.HasPrefix(err.Error(), "session: "))
}

func TestAccess_InvalidJSON(t *testing.T) {
	h := newHarness(t)

	err := h.app.Run(context.Background(), []string{"access", "/foo/bar", "{not json"})

	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestSingleOperandCommands(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		expect func(h *harness)
	}{
		{
			name: "change-recovery",
			args: []string{"change-recovery", "Enext"},
			expect: func(h *harness) {
				h.auth.EXPECT().ChangeRecoveryKey(gomock.Any(), "Enext").Return(nil)
			},
		},
		{
			name: "delete-account",
			args: []string{"delete-account"},
			expect: func(h *harness) {
				h.auth.EXPECT().DeleteAccount(gomock.Any()).Return(nil)
			},
		},
		{
			name: "link",
			args: []string{"link", "container"},
			expect: func(h *harness) {
				h.auth.EXPECT().LinkDevice(gomock.Any(), "container").Return(nil)
			},
		},
		{
			name: "unlink",
			args: []string{"unlink", "Eother"},
			expect: func(h *harness) {
				h.auth.EXPECT().UnlinkDevice(gomock.Any(), "Eother").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			tt.expect(h)

			require.NoError(t, h.app.Run(context.Background(), tt.args))
			assert.Empty(t, h.out.String())
		})
	}
}

func TestLinkContainer_PrintsContainer(t *testing.T) {
	h := newHarness(t)
	h.auth.EXPECT().GenerateLinkContainer(gomock.Any(), "Eidentity").Return(`{"payload":{}}`, nil)

	require.NoError(t, h.app.Run(context.Background(), []string{"link-container", "Eidentity"}))
	assert.Equal(t, "{\"payload\":{}}\n", h.out.String())
}

func TestToken_PrintsTimes(t *testing.T) {
	h := newHarness(t)
	h.auth.EXPECT().AccessToken(gomock.Any()).Return(&models.SignedAccessToken{AccessToken: models.AccessToken{
		IssuedAt:      "2026-03-01T12:00:00.000000000Z",
		Expiry:        "2026-03-01T12:15:00.000000000Z",
		RefreshExpiry: "2026-03-02T00:00:00.000000000Z",
	}}, nil)

	require.NoError(t, h.app.Run(context.Background(), []string{"token"}))
	assert.Contains(t, h.out.String(), "expiry 2026-03-01T12:15:00.000000000Z")
}

func TestRecoveryKeyAndRecover(t *testing.T) {
	h := newHarness(t)
	hasher := crypto.NewBlake3Hasher()

	require.NoError(t, h.app.Run(context.Background(), []string{"recovery-key", "correct horse"}))

	fields := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(h.out.String()), "\n") {
		name, value, ok := strings.Cut(line, " ")
		require.True(t, ok)
		fields[name] = value
	}
	salt, err := base64.RawURLEncoding.DecodeString(fields["salt"])
	require.NoError(t, err)
	assert.Len(t, salt, 16)
	assert.True(t, strings.HasPrefix(fields["recoveryHash"], "E"))

	h.auth.EXPECT().RecoverAccount(gomock.Any(), "Eidentity", gomock.Any(), "Enext").
		DoAndReturn(func(_ context.Context, _ string, key crypto.SigningKey, _ string) error {
			hash, err := crypto.PublicKeyHash(hasher, key)
			require.NoError(t, err)
			assert.Equal(t, fields["recoveryHash"], hash)
			return nil
		})
	h.expectWhoami()

	err = h.app.Run(context.Background(), []string{
		"recover-account", "Eidentity", "correct horse", fields["salt"], "Enext",
	})
	require.NoError(t, err)
}

func TestRecover_InvalidSalt(t *testing.T) {
	h := newHarness(t)

	err := h.app.Run(context.Background(), []string{"recover-account", "Eidentity", "pass", "!!", "Enext"})

	assert.ErrorIs(t, err, ErrInvalidSalt)
}

func TestRunWorkers_ReturnsJobError(t *testing.T) {
	h := newHarness(t)
	boom := errors.New("boom")
	h.job.EXPECT().Run(gomock.Any()).Return(boom)

	err := h.app.Run(context.Background(), []string{"run"})

	assert.ErrorIs(t, err, boom)
}

func TestRunWorkers_StopsOnCancel(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := context.WithCancel(context.Background())
	h.job.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		cancel()
		<-ctx.Done()
		return nil
	})

	assert.NoError(t, h.app.Run(ctx, []string{"run"}))
}

func TestUsage_ListsEveryCommand(t *testing.T) {
	usage := Usage()
	for name := range commands {
		assert.Contains(t, usage, name)
	}
}
