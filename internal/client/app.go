// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/go-better-auth/internal/crypto"
	"github.com/MKhiriev/go-better-auth/internal/logger"
	"github.com/MKhiriev/go-better-auth/internal/service"
)

type App struct {
	services *service.ClientServices
	hasher   crypto.Hasher
	keyChain *crypto.KeyChain
	out      io.Writer

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, hasher crypto.Hasher, out io.Writer, logger *logger.Logger) *App {
	return &App{
		services: services,
		hasher:   hasher,
		keyChain: crypto.NewKeyChain(),
		out:      out,
		logger:   logger.WithOp("client"),
	}
}

// Run implements Client.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrNoCommand, Usage())
	}

	for len(args) > 0 {
		name := args[0]
		cmd, ok := commands[name]
		if !ok {
			return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, name, Usage())
		}
		if len(args)-1 < len(cmd.operands) {
			return fmt.Errorf("%s: %w: usage %s", name, ErrMissingOperands, cmd.usage(name))
		}

		operands := args[1 : 1+len(cmd.operands)]
		args = args[1+len(cmd.operands):]

		a.logger.Debug().Str("command", name).Msg("running command")
		if err := cmd.run(a, ctx, operands); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}

// Usage lists every command with its operands.
func Usage() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("commands:\n")
	for _, name := range names {
		cmd := commands[name]
		fmt.Fprintf(&b, "  %-40s %s\n", cmd.usage(name), cmd.help)
	}
	return b.String()
}
