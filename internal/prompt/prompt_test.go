package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/google/go-cmp/cmp"
)

type stubDriver struct {
	confirm    bool
	confirmErr error
	indices    []int
	selectErr  error

	selectCfg SelectConfig
	selected  bool
}

func (s *stubDriver) Confirm(context.Context, ConfirmConfig) (bool, error) {
	return s.confirm, s.confirmErr
}

func (s *stubDriver) MultiSelect(_ context.Context, cfg SelectConfig) ([]int, error) {
	s.selected = true
	s.selectCfg = cfg
	return s.indices, s.selectErr
}

func TestSelectObjects_All(t *testing.T) {
	driver := &stubDriver{confirm: true}
	got, err := SelectObjects(context.Background(), driver, []string{"Account", "Contact"})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if diff := cmp.Diff([]string{"Account", "Contact"}, got); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
	if driver.selected {
		t.Fatalf("multi-select should not run when everything is confirmed")
	}
}

func TestSelectObjects_Subset(t *testing.T) {
	driver := &stubDriver{indices: []int{2, 0, 9}}
	got, err := SelectObjects(context.Background(), driver, []string{"Account", "Contact", "Lead"})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if diff := cmp.Diff([]string{"Lead", "Account"}, got); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
	if driver.selectCfg.PageSize != defaultPageSize || len(driver.selectCfg.Options) != 3 {
		t.Fatalf("unexpected select config %+v", driver.selectCfg)
	}
}

func TestSelectObjects_Errors(t *testing.T) {
	if _, err := SelectObjects(context.Background(), &stubDriver{}, nil); !errors.Is(err, ErrNoObjects) {
		t.Fatalf("expected ErrNoObjects, got %v", err)
	}
	if _, err := SelectObjects(context.Background(), nil, []string{"Account"}); err == nil {
		t.Fatalf("expected error for nil driver")
	}

	driver := &stubDriver{confirmErr: ErrAborted}
	if _, err := SelectObjects(context.Background(), driver, []string{"Account"}); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}

	driver = &stubDriver{indices: nil}
	if _, err := SelectObjects(context.Background(), driver, []string{"Account"}); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted for empty selection, got %v", err)
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	if err := translateSurveyErr(terminal.InterruptErr); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	other := errors.New("boom")
	if err := translateSurveyErr(other); err != other {
		t.Fatalf("expected passthrough, got %v", err)
	}
}

func TestIndexHelpers(t *testing.T) {
	options := []string{"Account", "Contact", "Lead"}
	if diff := cmp.Diff([]int{0, 2}, indicesOf(options, []string{"Lead", "Account", "Missing"})); diff != "" {
		t.Fatalf("indicesOf mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Contact"}, defaultsFromIndices(options, []int{1, -1, 5})); diff != "" {
		t.Fatalf("defaultsFromIndices mismatch (-want +got):\n%s", diff)
	}
}

func TestSurveyDriver_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	driver := NewSurveyDriver()
	if _, err := driver.Confirm(ctx, ConfirmConfig{Message: "?"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := driver.MultiSelect(ctx, SelectConfig{Message: "?"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
