// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bytes"
	"testing"
)

func TestNewFromBytesZerosSource(t *testing.T) {
	source := []byte("hunter2hunter2")
	buffer, err := NewFromBytes(source)
	if err != nil {
		t.Fatalf("NewFromBytes: %v", err)
	}
	defer buffer.Close()

	if !bytes.Equal(buffer.Bytes(), []byte("hunter2hunter2")) {
		t.Error("buffer contents do not match source")
	}
	for index, b := range source {
		if b != 0 {
			t.Fatalf("source[%d] = %d, want 0 (source must be scrubbed)", index, b)
		}
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	buffer, err := NewFromBytes([]byte("token"))
	if err != nil {
		t.Fatalf("NewFromBytes: %v", err)
	}
	if err := buffer.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := buffer.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestBytesAfterClosePanics(t *testing.T) {
	buffer, err := NewFromBytes([]byte("token"))
	if err != nil {
		t.Fatalf("NewFromBytes: %v", err)
	}
	buffer.Close()

	defer func() {
		if recover() == nil {
			t.Error("expected panic reading a closed buffer")
		}
	}()
	buffer.Bytes()
}

func TestNewRejectsNonPositiveSize(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Error("New(0) should fail")
	}
	if _, err := NewFromBytes(nil); err == nil {
		t.Error("NewFromBytes(nil) should fail")
	}
}
