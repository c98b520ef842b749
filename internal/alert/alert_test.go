package alert

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/liftops/liftray/internal/domain"
)

// fakePlatform records calls and scripts permission outcomes.
type fakePlatform struct {
	queryResult   Permission
	requestResult Permission
	requestCalls  int
	shown         []string
	showErr       error
}

func (f *fakePlatform) QueryPermission() Permission {
	return f.queryResult
}

func (f *fakePlatform) RequestPermission() Permission {
	f.requestCalls++
	return f.requestResult
}

func (f *fakePlatform) Show(title, body, tag string) error {
	f.shown = append(f.shown, tag)
	return f.showErr
}

func notif(id string) domain.Notification {
	return domain.Notification{
		ID:        id,
		Type:      domain.TypeRequestCreated,
		Title:     "New request",
		Message:   "Elevator A-12 stuck",
		CreatedAt: time.Now(),
	}
}

func TestBridge_RequestsLazilyOnce(t *testing.T) {
	platform := &fakePlatform{queryResult: PermissionUnrequested, requestResult: PermissionGranted}
	b := NewBridge(platform)

	assert.Equal(t, PermissionUnrequested, b.Permission())

	b.Deliver(notif("1"))
	b.Deliver(notif("2"))

	assert.Equal(t, 1, platform.requestCalls)
	assert.Equal(t, PermissionGranted, b.Permission())
	assert.Equal(t, []string{"1", "2"}, platform.shown)
}

func TestBridge_DeniedNeverRepromptsOrShows(t *testing.T) {
	platform := &fakePlatform{queryResult: PermissionUnrequested, requestResult: PermissionDenied}
	b := NewBridge(platform)

	b.Deliver(notif("1"))
	b.Deliver(notif("2"))
	b.Deliver(notif("3"))

	assert.Equal(t, 1, platform.requestCalls)
	assert.Equal(t, PermissionDenied, b.Permission())
	assert.Empty(t, platform.shown)
}

func TestBridge_DuplicateIdsDoNotStack(t *testing.T) {
	platform := &fakePlatform{queryResult: PermissionGranted}
	b := NewBridge(platform)

	b.Deliver(notif("1"))
	b.Deliver(notif("1"))

	assert.Equal(t, []string{"1"}, platform.shown)
}

func TestBridge_ShowFailureIsSwallowed(t *testing.T) {
	platform := &fakePlatform{queryResult: PermissionGranted, showErr: errors.New("daemon gone")}
	b := NewBridge(platform)

	assert.NotPanics(t, func() {
		b.Deliver(notif("1"))
	})
}

func TestBridge_NilPlatformDegradesToNoop(t *testing.T) {
	b := NewBridge(nil)

	assert.NotPanics(t, func() {
		b.Deliver(notif("1"))
	})
	assert.Equal(t, PermissionDenied, b.Permission())
}

func TestNoopPlatform(t *testing.T) {
	p := NewNoopPlatform()
	assert.Equal(t, PermissionDenied, p.QueryPermission())
	assert.Equal(t, PermissionDenied, p.RequestPermission())
	assert.NoError(t, p.Show("t", "b", "tag"))
}
