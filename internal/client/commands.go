// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/MKhiriev/go-better-auth/internal/crypto"
	"github.com/MKhiriev/go-better-auth/internal/workers"
)

type command struct {
	operands []string
	help     string
	run      func(a *App, ctx context.Context, operands []string) error
}

func (c command) usage(name string) string {
	if len(c.operands) == 0 {
		return name
	}
	return name + " <" + strings.Join(c.operands, "> <") + ">"
}

var commands = map[string]command{
	"recovery-key": {
		operands: []string{"passphrase"},
		help:     "derive a recovery key; prints its salt and hash",
		run:      (*App).recoveryKey,
	},
	"create-account": {
		operands: []string{"recoveryHash"},
		help:     "create an identity on this device",
		run:      (*App).createAccount,
	},
	"recover-account": {
		operands: []string{"identity", "passphrase", "salt", "nextRecoveryHash"},
		help:     "take over an identity with its recovery passphrase",
		run:      (*App).recoverAccount,
	},
	"change-recovery": {
		operands: []string{"recoveryHash"},
		help:     "replace the recovery commitment",
		run:      (*App).changeRecovery,
	},
	"delete-account": {
		help: "delete the identity",
		run:  (*App).deleteAccount,
	},
	"rotate": {
		help: "rotate this device's authentication key",
		run:  (*App).rotate,
	},
	"link-container": {
		operands: []string{"identity"},
		help:     "prepare this device for linking; prints the container",
		run:      (*App).linkContainer,
	},
	"link": {
		operands: []string{"container"},
		help:     "link the device that produced container",
		run:      (*App).link,
	},
	"unlink": {
		operands: []string{"device"},
		help:     "unlink a device, possibly this one",
		run:      (*App).unlink,
	},
	"session": {
		help: "create a session",
		run:  (*App).session,
	},
	"refresh": {
		help: "refresh the session",
		run:  (*App).refresh,
	},
	"access": {
		operands: []string{"path", "json"},
		help:     "send a signed access request; prints the verified reply",
		run:      (*App).access,
	},
	"whoami": {
		help: "print identity and device",
		run:  (*App).whoami,
	},
	"token": {
		help: "print the verified access token",
		run:  (*App).token,
	},
	"run": {
		help: "keep refreshing the session until interrupted",
		run:  (*App).runWorkers,
	},
}

func (a *App) recoveryKey(_ context.Context, operands []string) error {
	salt, err := a.keyChain.GenerateSalt()
	if err != nil {
		return err
	}
	key, err := a.keyChain.DeriveRecoveryKey(operands[0], salt)
	if err != nil {
		return err
	}
	hash, err := crypto.PublicKeyHash(a.hasher, key)
	if err != nil {
		return err
	}

	a.printf("salt %s\nrecoveryHash %s\n", base64.RawURLEncoding.EncodeToString(salt), hash)
	return nil
}

func (a *App) createAccount(ctx context.Context, operands []string) error {
	if err := a.services.AuthService.CreateAccount(ctx, operands[0]); err != nil {
		return err
	}
	return a.whoami(ctx, nil)
}

func (a *App) recoverAccount(ctx context.Context, operands []string) error {
	salt, err := base64.RawURLEncoding.DecodeString(operands[2])
	if err != nil {
		return ErrInvalidSalt
	}
	key, err := a.keyChain.DeriveRecoveryKey(operands[1], salt)
	if err != nil {
		return err
	}

	if err = a.services.AuthService.RecoverAccount(ctx, operands[0], key, operands[3]); err != nil {
		return err
	}
	return a.whoami(ctx, nil)
}

func (a *App) changeRecovery(ctx context.Context, operands []string) error {
	return a.services.AuthService.ChangeRecoveryKey(ctx, operands[0])
}

func (a *App) deleteAccount(ctx context.Context, _ []string) error {
	return a.services.AuthService.DeleteAccount(ctx)
}

func (a *App) rotate(ctx context.Context, _ []string) error {
	return a.services.AuthService.RotateDevice(ctx)
}

func (a *App) linkContainer(ctx context.Context, operands []string) error {
	container, err := a.services.AuthService.GenerateLinkContainer(ctx, operands[0])
	if err != nil {
		return err
	}
	a.printf("%s\n", container)
	return nil
}

func (a *App) link(ctx context.Context, operands []string) error {
	return a.services.AuthService.LinkDevice(ctx, operands[0])
}

func (a *App) unlink(ctx context.Context, operands []string) error {
	return a.services.AuthService.UnlinkDevice(ctx, operands[0])
}

func (a *App) session(ctx context.Context, _ []string) error {
	return a.services.AuthService.CreateSession(ctx)
}

func (a *App) refresh(ctx context.Context, _ []string) error {
	return a.services.AuthService.RefreshSession(ctx)
}

func (a *App) access(ctx context.Context, operands []string) error {
	if !json.Valid([]byte(operands[1])) {
		return ErrInvalidJSON
	}

	reply, err := a.services.AuthService.MakeAccessRequest(ctx, operands[0], json.RawMessage(operands[1]))
	if err != nil {
		return err
	}
	a.printf("%s\n", reply)
	return nil
}

func (a *App) whoami(ctx context.Context, _ []string) error {
	identity, err := a.services.AuthService.Identity(ctx)
	if err != nil {
		return err
	}
	device, err := a.services.AuthService.Device(ctx)
	if err != nil {
		return err
	}
	a.printf("identity %s\ndevice %s\n", identity, device)
	return nil
}

func (a *App) token(ctx context.Context, _ []string) error {
	token, err := a.services.AuthService.AccessToken(ctx)
	if err != nil {
		return err
	}
	a.printf("issuedAt %s\nexpiry %s\nrefreshExpiry %s\n", token.IssuedAt, token.Expiry, token.RefreshExpiry)
	return nil
}

// runWorkers blocks until ctx is cancelled or a worker fails.
func (a *App) runWorkers(ctx context.Context, _ []string) error {
	a.logger.Info().Msg("refresh job running, interrupt to stop")
	return workers.NewWorkers(
		workers.WorkerFunc(a.services.RefreshJob.Run),
	).Run(ctx)
}
