// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui holds the small interactive pieces of the client: a masked
// secret prompt, a yes/no confirmation and the build info page.
package tui
