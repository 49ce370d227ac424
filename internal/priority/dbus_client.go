package priority

import (
	"context"

	"github.com/godbus/dbus/v5"
)

const (
	rtkitName   = "org.freedesktop.RealtimeKit1"
	rtkitPath   = "/org/freedesktop/RealtimeKit1"
	rtkitMethod = rtkitName + ".MakeThreadHighPriority"
)

// DBusClient defines the RealtimeKit calls made over the system bus.
// This abstraction allows us to mock D-Bus interactions in tests.
//
//go:generate mockgen -destination=mocks/dbus_client_mock.go -package=mocks github.com/genricoloni/duoplayer/internal/priority DBusClient
type DBusClient interface {
	// Close closes the D-Bus connection
	Close() error

	// MakeThreadHighPriority asks RealtimeKit to renice the given thread
	MakeThreadHighPriority(ctx context.Context, thread uint64, priority int32) error
}

// StdDBusClient is the real implementation using godbus
type StdDBusClient struct {
	conn *dbus.Conn
}

// NewStdDBusClient creates a D-Bus client on a private system bus connection
func NewStdDBusClient() (DBusClient, error) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, err
	}
	return &StdDBusClient{conn: conn}, nil
}

// Close closes the D-Bus connection
func (c *StdDBusClient) Close() error {
	return c.conn.Close()
}

// MakeThreadHighPriority calls org.freedesktop.RealtimeKit1.MakeThreadHighPriority
func (c *StdDBusClient) MakeThreadHighPriority(ctx context.Context, thread uint64, priority int32) error {
	obj := c.conn.Object(rtkitName, dbus.ObjectPath(rtkitPath))
	return obj.CallWithContext(ctx, rtkitMethod, 0, thread, priority).Err
}
