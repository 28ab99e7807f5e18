package service

import (
	"errors"
	"testing"

	"fleet-service/internal/model"
)

func TestValidateTransitionTargets(t *testing.T) {
	for _, target := range []model.ReviewStatus{
		model.ReviewStatusInReview,
		model.ReviewStatusApproved,
		model.ReviewStatusRejected,
	} {
		if err := ValidateTransition(target, "some reason", TransitionSourceDetail); err != nil {
			t.Fatalf("target %s from detail: unexpected error %v", target, err)
		}
	}

	if err := ValidateTransition("pending", "reason", TransitionSourceDetail); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("unknown target: expected ErrInvalidStatus, got %v", err)
	}
}

func TestValidateTransitionListRequiresReason(t *testing.T) {
	cases := []struct {
		name   string
		target model.ReviewStatus
		reason string
		want   error
	}{
		{"reject without reason", model.ReviewStatusRejected, "", ErrInvalidInput},
		{"reject with blank reason", model.ReviewStatusRejected, "   \t ", ErrInvalidInput},
		{"send back without reason", model.ReviewStatusInReview, "", ErrInvalidInput},
		{"reject with reason", model.ReviewStatusRejected, "expired license", nil},
		{"send back with reason", model.ReviewStatusInReview, "missing insurance", nil},
		{"approve without reason", model.ReviewStatusApproved, "", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTransition(tc.target, tc.reason, TransitionSourceList)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestValidateTransitionDetailSkipsReasonCheck(t *testing.T) {
	// Detail-view actions never demand a reason, even for negative targets.
	if err := ValidateTransition(model.ReviewStatusRejected, "", TransitionSourceDetail); err != nil {
		t.Fatalf("detail reject without reason: unexpected error %v", err)
	}
	if err := ValidateTransition(model.ReviewStatusInReview, "", TransitionSourceDetail); err != nil {
		t.Fatalf("detail send-back without reason: unexpected error %v", err)
	}
}
