// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

var ErrNoSecretInput = errors.New("no secret on input")

// lineSecretReader reads one secret per line when stdin is not a terminal.
type lineSecretReader struct {
	r *bufio.Reader
}

func newLineSecretReader(r io.Reader) *lineSecretReader {
	return &lineSecretReader{r: bufio.NewReader(r)}
}

// PromptSecret returns the next line without its line ending.
func (l *lineSecretReader) PromptSecret(ctx context.Context, _ string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	line, err := l.r.ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read secret: %w", err)
	}
	if len(line) == 0 {
		return nil, ErrNoSecretInput
	}

	n := len(line)
	for n > 0 && (line[n-1] == '\n' || line[n-1] == '\r') {
		n--
	}
	secret := make([]byte, n)
	copy(secret, line)
	clear(line)
	return secret, nil
}
