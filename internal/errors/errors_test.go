// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	plain := New(ApplicationFailed, "the assistant reported a failure")
	if got, want := plain.Error(), "application_failed: the assistant reported a failure"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	cause := stderrors.New("connection reset")
	wrapped := Wrap(TransportFailed, "ask the assistant", cause)
	if got, want := wrapped.Error(), "transport_failed: ask the assistant: connection reset"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !stderrors.Is(wrapped, cause) {
		t.Error("wrapped error does not unwrap to its cause")
	}
}

func TestKindOf(t *testing.T) {
	base := Wrap(UploadRejected, "only .db files are allowed", nil)
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"direct", base, UploadRejected},
		{"wrapped further", fmt.Errorf("upload: %w", base), UploadRejected},
		{"plain error", stderrors.New("boom"), ""},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %q, want %q", got, tt.want)
			}
		})
	}
}
