package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Message(t *testing.T) {
	err := InvalidParameter(PhaseRender, "stride %d below row width %d", 100, 200)

	msg := err.Error()
	if !strings.HasPrefix(msg, "[render] invalid_parameter") {
		t.Fatalf("Unexpected prefix: %s", msg)
	}
	if !strings.Contains(msg, "stride 100 below row width 200") {
		t.Fatalf("Detail not formatted: %s", msg)
	}
}

func TestError_CauseChain(t *testing.T) {
	cause := fmt.Errorf("dlopen failed")
	err := CapabilityUnavailable(PhaseLoad, "librsvg", cause)

	if !strings.Contains(err.Error(), "caused by: dlopen failed") {
		t.Fatalf("Cause not in message: %s", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("errors.Is should find the cause through Unwrap")
	}
}

func TestError_IsMatchesPhaseAndKind(t *testing.T) {
	err := ParseFailed("rejected")
	target := &Error{Phase: PhaseParse, Kind: KindParseFailed}

	if !stderrors.Is(err, target) {
		t.Fatal("Is should match on (Phase, Kind)")
	}

	other := &Error{Phase: PhaseRender, Kind: KindParseFailed}
	if stderrors.Is(err, other) {
		t.Fatal("Is should not match a different phase")
	}
}

func TestIsKind(t *testing.T) {
	err := Internal(PhaseRender, "surface creation failed")

	if !IsKind(err, KindInternal) {
		t.Fatal("IsKind should match regardless of phase")
	}
	if IsKind(err, KindInvalidParameter) {
		t.Fatal("IsKind should not match a different kind")
	}
	if IsKind(fmt.Errorf("plain"), KindInternal) {
		t.Fatal("IsKind should reject non-structured errors")
	}
}
