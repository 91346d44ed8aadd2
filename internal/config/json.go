// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
		LogFile  string `json:"log_file"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress       string   `json:"http_address"`
		RequestTimeout    Duration `json:"request_timeout"`
		RequestsPerSecond float64  `json:"requests_per_second"`
		ResponseKey       string   `json:"response_key"`
		ResponseKeyPath   string   `json:"response_key_path"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Paths struct {
		Account struct {
			Create  string `json:"create"`
			Recover string `json:"recover"`
			Delete  string `json:"delete"`
		} `json:"account,omitempty"`
		Session struct {
			Request string `json:"request"`
			Create  string `json:"create"`
			Refresh string `json:"refresh"`
		} `json:"session,omitempty"`
		Device struct {
			Rotate string `json:"rotate"`
			Link   string `json:"link"`
			Unlink string `json:"unlink"`
		} `json:"device,omitempty"`
		Recovery struct {
			Change string `json:"change"`
		} `json:"recovery,omitempty"`
	} `json:"paths,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`

	Server struct {
		ListenAddress   string   `json:"listen_address"`
		AccessLifetime  Duration `json:"access_lifetime"`
		RefreshLifetime Duration `json:"refresh_lifetime"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel: jsonCfg.App.LogLevel,
			LogFile:  jsonCfg.App.LogFile,
		},
		Adapter: Adapter{
			HTTPAddress:       jsonCfg.Adapter.HTTPAddress,
			RequestTimeout:    time.Duration(jsonCfg.Adapter.RequestTimeout),
			RequestsPerSecond: jsonCfg.Adapter.RequestsPerSecond,
			ResponseKey:       jsonCfg.Adapter.ResponseKey,
			ResponseKeyPath:   jsonCfg.Adapter.ResponseKeyPath,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
		Server: Server{
			ListenAddress:   jsonCfg.Server.ListenAddress,
			AccessLifetime:  time.Duration(jsonCfg.Server.AccessLifetime),
			RefreshLifetime: time.Duration(jsonCfg.Server.RefreshLifetime),
		},
	}

	cfg.Paths.Account.Create = jsonCfg.Paths.Account.Create
	cfg.Paths.Account.Recover = jsonCfg.Paths.Account.Recover
	cfg.Paths.Account.Delete = jsonCfg.Paths.Account.Delete
	cfg.Paths.Session.Request = jsonCfg.Paths.Session.Request
	cfg.Paths.Session.Create = jsonCfg.Paths.Session.Create
	cfg.Paths.Session.Refresh = jsonCfg.Paths.Session.Refresh
	cfg.Paths.Device.Rotate = jsonCfg.Paths.Device.Rotate
	cfg.Paths.Device.Link = jsonCfg.Paths.Device.Link
	cfg.Paths.Device.Unlink = jsonCfg.Paths.Device.Unlink
	cfg.Paths.Recovery.Change = jsonCfg.Paths.Recovery.Change

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
