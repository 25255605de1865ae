// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pipeline

import "testing"

func TestStatusSuccess(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   bool
	}{
		{"zero exit", Status{Code: 0}, true},
		{"non-zero exit", Status{Code: 2}, false},
		{"signaled", Status{Code: -1, Signal: 15, Signaled: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Success(); got != tt.want {
				t.Errorf("Success() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	if got := (Status{Code: 3}).String(); got != "exit code 3" {
		t.Errorf("String() = %q, want %q", got, "exit code 3")
	}
	if got := (Status{Code: -1, Signal: 9, Signaled: true}).String(); got != "signal 9" {
		t.Errorf("String() = %q, want %q", got, "signal 9")
	}
}

func TestStageExitErrorMessage(t *testing.T) {
	err := &StageExitError{Stage: 2, Status: Status{Code: 1}}
	if got := err.Error(); got != "pipeline: stage 2 failed with exit code 1" {
		t.Errorf("Error() = %q", got)
	}

	shellErr := &StageExitError{Stage: -1, Status: Status{Code: 5}}
	if got := shellErr.Error(); got != "pipeline: failed with exit code 5" {
		t.Errorf("Error() = %q", got)
	}
}
