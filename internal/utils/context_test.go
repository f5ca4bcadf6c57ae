// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestSubjectIDCtxKey(t *testing.T) {
	if SubjectIDCtxKey.String() != "subjectID" {
		t.Errorf("expected 'subjectID', got '%s'", SubjectIDCtxKey.String())
	}
}

func TestWithSubjectID_RoundTrip(t *testing.T) {
	ctx := WithSubjectID(context.Background(), 42)

	subjectID, ok := GetSubjectIDFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if subjectID != 42 {
		t.Errorf("expected subjectID=42, got %d", subjectID)
	}
}

func TestGetSubjectIDFromContext_Anonymous(t *testing.T) {
	subjectID, ok := GetSubjectIDFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if subjectID != 0 {
		t.Errorf("expected subjectID=0, got %d", subjectID)
	}
}

func TestGetSubjectIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SubjectIDCtxKey, "42")

	if _, ok := GetSubjectIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetSubjectIDFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("otherKey"), int64(99))

	if _, ok := GetSubjectIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
