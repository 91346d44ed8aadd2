// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (without the program
// name). Positional arguments after the flags are kept for the command
// dispatcher.
//
// Flags:
//
//	-a auth server address in format [host]:[port]
//	-d local database DSN (SQLite file)
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "10s")
//	-rps outbound requests per second, 0 disables pacing
//	-response-key server response verification key
//	-refresh-interval session refresh interval (e.g., "5m")
//	-log-level log level
//	-log-file log file path
//	-listen reference server listen address
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-better-auth", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var requestsPerSecond float64
	var responseKey string
	var refreshInterval time.Duration
	var logLevel, logFile string
	var listenAddress string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	fs.Float64Var(&requestsPerSecond, "rps", 0, "Outbound requests per second")
	fs.StringVar(&responseKey, "response-key", "", "Server response verification key")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Session refresh interval (e.g., 5m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&listenAddress, "listen", "", "Reference server listen address")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
			LogFile:  logFile,
		},
		Adapter: Adapter{
			HTTPAddress:       serverAddress.String(),
			RequestTimeout:    requestTimeout,
			RequestsPerSecond: requestsPerSecond,
			ResponseKey:       responseKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		Server: Server{
			ListenAddress: listenAddress,
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
