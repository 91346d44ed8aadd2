// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AccountPaths holds the account routes.
type AccountPaths struct {
	Create  string `json:"create"`
	Recover string `json:"recover"`
	Delete  string `json:"delete"`
}

// SessionPaths holds the session routes.
type SessionPaths struct {
	Request string `json:"request"`
	Create  string `json:"create"`
	Refresh string `json:"refresh"`
}

// DevicePaths holds the device routes.
type DevicePaths struct {
	Rotate string `json:"rotate"`
	Link   string `json:"link"`
	Unlink string `json:"unlink"`
}

// RecoveryPaths holds the recovery routes.
type RecoveryPaths struct {
	Change string `json:"change"`
}

// Paths is the route table used by the client. Every flow looks its path up
// here; nothing is hardcoded in the flows themselves.
type Paths struct {
	Account  AccountPaths  `json:"account"`
	Session  SessionPaths  `json:"session"`
	Device   DevicePaths   `json:"device"`
	Recovery RecoveryPaths `json:"recovery"`
}

// DefaultPaths returns the route table of the reference server deployment.
func DefaultPaths() Paths {
	return Paths{
		Account: AccountPaths{
			Create:  "/account/create",
			Recover: "/account/recover",
			Delete:  "/account/delete",
		},
		Session: SessionPaths{
			Request: "/session/request",
			Create:  "/session/create",
			Refresh: "/session/refresh",
		},
		Device: DevicePaths{
			Rotate: "/device/rotate",
			Link:   "/device/link",
			Unlink: "/device/unlink",
		},
		Recovery: RecoveryPaths{
			Change: "/recovery/change",
		},
	}
}

// Missing returns the dotted names of empty routes, e.g. "session.refresh".
func (p Paths) Missing() []string {
	var missing []string
	check := func(name, value string) {
		if value == "" {
			missing = append(missing, name)
		}
	}

	check("account.create", p.Account.Create)
	check("account.recover", p.Account.Recover)
	check("account.delete", p.Account.Delete)
	check("session.request", p.Session.Request)
	check("session.create", p.Session.Create)
	check("session.refresh", p.Session.Refresh)
	check("device.rotate", p.Device.Rotate)
	check("device.link", p.Device.Link)
	check("device.unlink", p.Device.Unlink)
	check("recovery.change", p.Recovery.Change)

	return missing
}
