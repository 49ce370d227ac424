//go:build linux

package priority

import (
	"errors"
	"strings"
	"testing"

	"github.com/genricoloni/duoplayer/internal/domain"
	"github.com/genricoloni/duoplayer/internal/priority/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestRaiser_Raise(t *testing.T) {
	errBus := errors.New("no system bus")
	errDenied := errors.New("permission denied")

	tests := []struct {
		name       string
		setupMock  func(*mocks.MockDBusClient)
		dialErr    error
		reniceErr  error
		wantRenice bool
		wantMsg    string
		wantErr    bool
	}{
		{
			name: "RealtimeKit grants",
			setupMock: func(m *mocks.MockDBusClient) {
				m.EXPECT().MakeThreadHighPriority(gomock.Any(), uint64(4242), int32(niceLevel)).Return(nil)
				m.EXPECT().Close().Return(nil)
			},
			wantMsg: "Process priority set to -10 via RealtimeKit",
		},
		{
			name: "RealtimeKit refuses, setpriority succeeds",
			setupMock: func(m *mocks.MockDBusClient) {
				m.EXPECT().MakeThreadHighPriority(gomock.Any(), uint64(4242), int32(niceLevel)).
					Return(errors.New("org.freedesktop.DBus.Error.AccessDenied"))
				m.EXPECT().Close().Return(nil)
			},
			wantRenice: true,
			wantMsg:    "Process priority set to -10",
		},
		{
			name:       "No bus, setpriority succeeds",
			dialErr:    errBus,
			wantRenice: true,
			wantMsg:    "Process priority set to -10",
		},
		{
			name:       "Both fail",
			dialErr:    errBus,
			reniceErr:  errDenied,
			wantRenice: true,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockDBusClient(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(client)
			}

			reniced := false
			r := newRaiser(zap.NewNop(),
				func() (DBusClient, error) {
					if tt.dialErr != nil {
						return nil, tt.dialErr
					}
					return client, nil
				},
				func(prio int) error {
					reniced = true
					if prio != niceLevel {
						t.Errorf("renice: got %d, want %d", prio, niceLevel)
					}
					return tt.reniceErr
				})
			r.pid = 4242

			msg, err := r.Raise(t.Context())
			if reniced != tt.wantRenice {
				t.Errorf("renice called: got %v, want %v", reniced, tt.wantRenice)
			}
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if domain.Kind(err) != "INTERNAL" || !strings.HasPrefix(err.Error(), failedMsg) {
					t.Errorf("unexpected error: %v (%s)", err, domain.Kind(err))
				}
				if !errors.Is(err, errDenied) || !errors.Is(err, errBus) {
					t.Errorf("expected both causes in %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if msg != tt.wantMsg {
				t.Errorf("got %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}
