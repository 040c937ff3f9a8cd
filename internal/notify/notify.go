// Package notify delivers phase reminders as desktop notifications.
package notify

import (
	"context"
	"sync"

	"github.com/akyairhashvil/standup/internal/config"
	"github.com/akyairhashvil/standup/internal/util"
	"github.com/gen2brain/beeep"
)

// DefaultTitle heads every notification.
const DefaultTitle = config.IdleTitle

// Permission mirrors the three states of a notification grant.
type Permission int

const (
	PermissionDefault Permission = iota
	PermissionGranted
	PermissionDenied
)

func (p Permission) String() string {
	switch p {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "default"
	}
}

// Notifier is the capability the reminder uses to reach the desktop.
type Notifier interface {
	Permission() Permission
	RequestPermission(ctx context.Context) (Permission, error)
	Notify(ctx context.Context, title, message string) error
}

// SendFunc delivers one notification.
type SendFunc func(title, message string) error

// Desktop sends notifications through the platform notification service.
// Permission stays undecided until first requested; the request resolves
// from the enabled flag and is then cached.
type Desktop struct {
	mu      sync.Mutex
	enabled bool
	perm    Permission
	send    SendFunc
	wg      sync.WaitGroup
}

type Option func(*Desktop)

// WithSender replaces the platform sender.
func WithSender(fn SendFunc) Option { return func(d *Desktop) { d.send = fn } }

func NewDesktop(enabled bool, opts ...Option) *Desktop {
	d := &Desktop{
		enabled: enabled,
		send:    func(title, message string) error { return beeep.Notify(title, message, "") },
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Desktop) Permission() Permission {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.perm
}

func (d *Desktop) RequestPermission(ctx context.Context) (Permission, error) {
	if err := ctx.Err(); err != nil {
		return PermissionDefault, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.perm != PermissionDefault {
		return d.perm, nil
	}
	if d.enabled {
		d.perm = PermissionGranted
	} else {
		d.perm = PermissionDenied
	}
	return d.perm, nil
}

// Notify dispatches in the background. Delivery failures are logged only.
func (d *Desktop) Notify(ctx context.Context, title, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d.Permission() != PermissionGranted {
		return nil
	}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		util.LogError("desktop notification", d.send(title, message))
	}()
	return nil
}

// Wait blocks until in-flight notifications have been handed off.
func (d *Desktop) Wait() {
	d.wg.Wait()
}
