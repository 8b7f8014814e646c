// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli is the command-line interface of the notes client.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/MKhiriev/go-route-handler/internal/adapter"
	"github.com/MKhiriev/go-route-handler/internal/config"
)

// CLI is the command line interface of the notes client.
type CLI struct {
	Register Register   `kong:"cmd,help='Create an account and print its bearer token.'"`
	Login    Login      `kong:"cmd,help='Log in and print a bearer token.'"`
	Version  VersionCmd `kong:"cmd,help='Print the server version.'"`
	Note     Note       `kong:"cmd,help='Manage notes.'"`

	ServerURL string        `kong:"name='server-url',help='Base URL of the notes server.'"`
	Timeout   time.Duration `kong:"help='Timeout of every request.'"`
	Token     string        `kong:"help='Bearer token for note commands.'"`
	LogLevel  string        `name:"log-level" enum:"debug,info,warn,error" default:"warn" help:"Client logging level."`

	ClientVersion kong.VersionFlag `kong:"name='client-version',help='Output client version and exit.'"`

	kong *kong.Kong
	kctx *kong.Context
}

// Context carries what the commands need to run.
type Context struct {
	Ctx     context.Context
	Adapter adapter.ServerAdapter
	Stdout  io.Writer
}

// New initializes the command-line interface.
func New(version string) (*CLI, error) {
	c := &CLI{}
	kparser, err := kong.New(c,
		kong.Name("notes"),
		kong.Description("Command-line client of the notes server."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		kong.Vars{"version": version},
	)
	if err != nil {
		return nil, fmt.Errorf("failed creating the Kong parser: %w", err)
	}

	c.kong = kparser

	return c, nil
}

// Parse the given command line arguments. This method must be called before
// Execute.
func (c *CLI) Parse(args []string) error {
	kctx, err := c.kong.Parse(args)
	if err != nil {
		return fmt.Errorf("failed parsing CLI arguments: %w", err)
	}
	c.kctx = kctx

	return nil
}

// Overrides returns the client settings given on the command line. Zero
// fields were not given and leave the environment value in place.
func (c *CLI) Overrides() config.ClientConfig {
	return config.ClientConfig{
		ServerURL:      c.ServerURL,
		RequestTimeout: c.Timeout,
		Token:          c.Token,
	}
}

// Execute runs the parsed command.
func (c *CLI) Execute(appCtx *Context) error {
	if c.kctx == nil {
		panic("the CLI wasn't initialized properly")
	}
	c.kong.Stdout = appCtx.Stdout

	return c.kctx.Run(appCtx)
}

// Command returns the full path of the parsed command.
func (c *CLI) Command() string {
	if c.kctx == nil {
		panic("the CLI wasn't initialized properly")
	}
	cmdPath := []string{}
	for _, p := range c.kctx.Path {
		if p.Command != nil {
			cmdPath = append(cmdPath, p.Command.Name)
		}
	}

	return strings.Join(cmdPath, " ")
}
