package savetree

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignalClosesOnceRemainingReachesZero(t *testing.T) {
	sig := newSignal(3)
	select {
	case <-sig.Done():
		t.Fatal("signal closed before any completion")
	default:
	}

	sig.complete()
	sig.complete()
	select {
	case <-sig.Done():
		t.Fatal("signal closed before the final completion")
	default:
	}

	sig.complete()
	select {
	case <-sig.Done():
	case <-time.After(time.Second):
		t.Fatal("signal never closed after the final completion")
	}
}

func TestSignalWithZeroTotalClosesImmediately(t *testing.T) {
	sig := newSignal(0)
	require.NoError(t, waitClosed(sig.Done()))
}

func waitClosed(ch <-chan struct{}) error {
	select {
	case <-ch:
		return nil
	case <-time.After(time.Second):
		return errors.New("signal did not close in time")
	}
}
