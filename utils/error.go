package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/gridbase-inc/citysift/utils/logger"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// ErrExec executes a list of functions concurrently and returns an error if any function fails.
func ErrExec(functions ...func() error) error {
	group, ctx := errgroup.WithContext(context.Background())

	for _, one := range functions {
		group.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return one()
			}
		})
	}

	return group.Wait()
}

// ErrExecSequential executes a list of functions sequentially, accumulating errors if any occur.
func ErrExecSequential(functions ...func() error) error {
	var multErr error

	for _, one := range functions {
		if err := one(); err != nil {
			multErr = multierror.Append(multErr, err)
		}
	}

	return multErr
}

// RetryExec retries a function up to a specified number of attempts with a delay between retries.
// It returns an error after all retry attempts fail.
func RetryExec(function func() error, retries int, delay time.Duration) error {
	var err error
	for i := 0; i <= retries; i++ {
		err = function()
		if err == nil {
			return nil
		}
		logger.Warnf("attempt %d failed: %s", i+1, err)
		time.Sleep(delay)
	}

	return fmt.Errorf("failed after %d retries: %w", retries, err)
}

// ErrExecFormat formats the error returned from a function according to the provided format string.
func ErrExecFormat(format string, function func() error) func() error {
	return func() error {
		if err := function(); err != nil {
			return fmt.Errorf(format, err)
		}
		return nil
	}
}
