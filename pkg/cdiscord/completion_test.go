/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cdiscord

import (
	"errors"
	"testing"
)

func TestCompletionDeliveredOnce(t *testing.T) {
	calls := 0
	id := bindCompletion(func(err error) {
		calls++
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	completeResult(id, ResultOk)
	// A second delivery finds nothing: the box was consumed.
	completeResult(id, ResultOk)

	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}
}

func TestCompletionFailureCode(t *testing.T) {
	var got error
	id := bindCompletion(func(err error) { got = err })

	completeResult(id, ResultServiceUnavailable)

	if !errors.Is(got, ResultServiceUnavailable) {
		t.Fatalf("got %v, want ResultServiceUnavailable", got)
	}
}

func TestDataCompletionOwnsPayload(t *testing.T) {
	var got []byte
	id := bindDataCompletion(func(data []byte, err error) {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		got = data
	})

	payload := []byte("save-game")
	completeData(id, ResultOk, &payload[0], uint32(len(payload)))

	// The callback's copy must not alias the native buffer.
	payload[0] = 'X'
	if string(got) != "save-game" {
		t.Errorf("payload not owned: %q", got)
	}
}

func TestDataCompletionFailureCarriesNoData(t *testing.T) {
	var gotData []byte
	var gotErr error
	id := bindDataCompletion(func(data []byte, err error) {
		gotData, gotErr = data, err
	})

	payload := []byte("stale")
	completeData(id, ResultInternalError, &payload[0], uint32(len(payload)))

	if gotData != nil {
		t.Errorf("failure delivered data: %q", gotData)
	}
	if !errors.Is(gotErr, ResultInternalError) {
		t.Errorf("got %v, want ResultInternalError", gotErr)
	}
}

func TestUserCompletion(t *testing.T) {
	var got User
	id := bindUserCompletion(func(user User, err error) {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		got = user
	})

	raw := User{ID: 42, Bot: true}
	copy(raw.Username[:], "nelly")
	completeUser(id, ResultOk, &raw)

	if got.ID != 42 || !got.Bot {
		t.Errorf("user not delivered: %+v", got)
	}
}

func TestUserCompletionFailure(t *testing.T) {
	var got User
	var gotErr error
	id := bindUserCompletion(func(user User, err error) {
		got, gotErr = user, err
	})

	raw := User{ID: 42}
	completeUser(id, ResultNotFound, &raw)

	if got != (User{}) {
		t.Errorf("failure delivered a user: %+v", got)
	}
	if !errors.Is(gotErr, ResultNotFound) {
		t.Errorf("got %v, want ResultNotFound", gotErr)
	}
}

func TestAbandonCompletion(t *testing.T) {
	calls := 0
	id := bindCompletion(func(error) { calls++ })

	abandonCompletion(id)
	completeResult(id, ResultOk)

	if calls != 0 {
		t.Errorf("abandoned callback ran %d times", calls)
	}
}

func TestGuardSlotAbandons(t *testing.T) {
	calls := 0
	id := bindCompletion(func(error) { calls++ })

	if err := guardSlot(0, id); !errors.Is(err, ResultInternalError) {
		t.Fatalf("got %v, want ResultInternalError", err)
	}
	completeResult(id, ResultOk)
	if calls != 0 {
		t.Errorf("callback ran %d times after failed slot check", calls)
	}
}

func TestGuardSlotPasses(t *testing.T) {
	calls := 0
	id := bindCompletion(func(error) { calls++ })
	defer abandonCompletion(id)

	if err := guardSlot(1, id); err != nil {
		t.Fatalf("got %v, want nil", err)
	}
}
