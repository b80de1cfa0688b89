// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"bytes"
	"strings"
	"testing"

	"github.com/btcsuite/btclog"
)

// TestUseLogger ensures rejected point encodings are only logged once a logger
// has been provided.
func TestUseLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := btclog.NewBackend(&buf).Logger("SECP")
	logger.SetLevel(btclog.LevelTrace)

	if _, err := ParsePoint([]byte{0x01}); err == nil {
		t.Fatal("expected error parsing invalid point")
	}
	if buf.Len() != 0 {
		t.Fatalf("unexpected log output with logging disabled: %q",
			buf.String())
	}

	UseLogger(logger)
	defer DisableLog()

	if _, err := ParsePoint([]byte{0x01}); err == nil {
		t.Fatal("expected error parsing invalid point")
	}
	if !strings.Contains(buf.String(), "rejected 1 byte point encoding") {
		t.Fatalf("missing rejection in log output: %q", buf.String())
	}
}
