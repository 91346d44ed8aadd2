// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-better-auth/models"
)

const (
	defaultHTTPAddress     = "http://localhost:8080"
	defaultRequestTimeout  = 10 * time.Second
	defaultResponseKeyPath = "/key/response"
	defaultRefreshInterval = 5 * time.Minute

	defaultListenAddress   = ":8080"
	defaultAccessLifetime  = 15 * time.Minute
	defaultRefreshLifetime = 12 * time.Hour
)

// defaultConfig matches the reference server deployment.
func defaultConfig() *StructuredConfig {
	cfg := &StructuredConfig{
		App: App{LogLevel: "info"},
		Adapter: Adapter{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ResponseKeyPath: defaultResponseKeyPath,
		},
		Workers: Workers{RefreshInterval: defaultRefreshInterval},
		Server: Server{
			ListenAddress:   defaultListenAddress,
			AccessLifetime:  defaultAccessLifetime,
			RefreshLifetime: defaultRefreshLifetime,
		},
	}
	cfg.Paths = pathsFromModel(models.DefaultPaths())

	return cfg
}

func pathsFromModel(p models.Paths) Paths {
	var out Paths
	out.Account.Create = p.Account.Create
	out.Account.Recover = p.Account.Recover
	out.Account.Delete = p.Account.Delete
	out.Session.Request = p.Session.Request
	out.Session.Create = p.Session.Create
	out.Session.Refresh = p.Session.Refresh
	out.Device.Rotate = p.Device.Rotate
	out.Device.Link = p.Device.Link
	out.Device.Unlink = p.Device.Unlink
	out.Recovery.Change = p.Recovery.Change
	return out
}

func (p Paths) model() models.Paths {
	return models.Paths{
		Account: models.AccountPaths{
			Create:  p.Account.Create,
			Recover: p.Account.Recover,
			Delete:  p.Account.Delete,
		},
		Session: models.SessionPaths{
			Request: p.Session.Request,
			Create:  p.Session.Create,
			Refresh: p.Session.Refresh,
		},
		Device: models.DevicePaths{
			Rotate: p.Device.Rotate,
			Link:   p.Device.Link,
			Unlink: p.Device.Unlink,
		},
		Recovery: models.RecoveryPaths{
			Change: p.Recovery.Change,
		},
	}
}
