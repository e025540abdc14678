package prompt

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrNoObjects is returned when there is nothing to choose from.
	ErrNoObjects = errors.New("prompt: no objects discovered")
)

const defaultPageSize = 15

// SelectObjects asks which of the discovered objects to document. The user
// first confirms documenting everything; declining opens a multi-select. The
// returned names keep the order of objects.
func SelectObjects(ctx context.Context, driver Driver, objects []string) ([]string, error) {
	if driver == nil {
		return nil, errors.New("prompt: driver is required")
	}
	if len(objects) == 0 {
		return nil, ErrNoObjects
	}

	everything, err := driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("Document all %d objects?", len(objects)),
		Default: true,
	})
	if err != nil {
		return nil, err
	}
	if everything {
		return append([]string(nil), objects...), nil
	}

	indices, err := driver.MultiSelect(ctx, SelectConfig{
		Message:  "Objects to document",
		Options:  objects,
		Help:     "space toggles an object, enter confirms",
		PageSize: defaultPageSize,
	})
	if err != nil {
		return nil, err
	}

	selected := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(objects) {
			selected = append(selected, objects[idx])
		}
	}
	if len(selected) == 0 {
		return nil, ErrAborted
	}
	return selected, nil
}
