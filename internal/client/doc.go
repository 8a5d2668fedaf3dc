// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line vault client.
//
// It parses a subcommand, unlocks the session with the master password when
// the command needs records, and prints results. Secrets are read through a
// masked prompt on a terminal or line by line from a pipe.
package client
