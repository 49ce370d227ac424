package command

import (
	"strings"
	"testing"

	"github.com/Southclaws/fault/ftag"
	"github.com/genricoloni/duoplayer/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		line          string
		expectedName  Name
		expectedError string
		check         func(t *testing.T, cmd Command)
	}{
		{
			name:         "set_media with idx",
			line:         `{"command":"set_media","idx":1,"file":{"path":"/m/b.mp4","uuid":"u1"}}`,
			expectedName: NameSetMedia,
			check: func(t *testing.T, cmd Command) {
				c := cmd.(SetMedia)
				if c.Slot(domain.SlotA) != domain.SlotB {
					t.Errorf("expected slot 1, got %d", c.Slot(domain.SlotA))
				}
				if c.File.Path != "/m/b.mp4" || c.File.UUID != "u1" {
					t.Errorf("unexpected file: %+v", c.File)
				}
			},
		},
		{
			name:         "set_media without idx defaults",
			line:         `{"command":"set_media","file":{"path":"/m/a.mp4"}}`,
			expectedName: NameSetMedia,
			check: func(t *testing.T, cmd Command) {
				if cmd.(SetMedia).Slot(domain.SlotA) != domain.SlotA {
					t.Error("expected default slot")
				}
			},
		},
		{
			name:         "playid with image file",
			line:         `{"command":"playid","file":{"path":"/m/a.png","is_image":true,"time":5}}`,
			expectedName: NamePlayID,
			check: func(t *testing.T, cmd Command) {
				c := cmd.(PlayID)
				if c.File.IsImage == nil || !*c.File.IsImage || c.File.Time != 5 {
					t.Errorf("unexpected file: %+v", c.File)
				}
			},
		},
		{
			name:         "set_time",
			line:         `{"command":"set_time","time":1500}`,
			expectedName: NameSetTime,
			check: func(t *testing.T, cmd Command) {
				if *cmd.(SetTime).Time != 1500 {
					t.Errorf("unexpected time")
				}
			},
		},
		{
			name:         "set_tracks",
			line:         `{"command":"set_tracks","tracks":[{"path":"/a.png"},{"path":"/b.mp4"}]}`,
			expectedName: NameSetTracks,
			check: func(t *testing.T, cmd Command) {
				if len(cmd.(SetTracks).Tracks) != 2 {
					t.Errorf("expected 2 tracks")
				}
			},
		},
		{
			name:         "Unicode passes through",
			line:         `{"command":"set_audio_device","device_id":"Haut-parleurs é"}`,
			expectedName: NameSetAudioDevice,
			check: func(t *testing.T, cmd Command) {
				if cmd.(SetAudioDevice).DeviceID != "Haut-parleurs é" {
					t.Errorf("unexpected device id")
				}
			},
		},
		{name: "next", line: `{"command":"next"}`, expectedName: NameNext},
		{name: "get_status", line: `{"command":"get_status"}`, expectedName: NameGetStatus},
		{name: "Bad JSON", line: `{"command":`, expectedError: "invalid JSON received"},
		{name: "Not an object", line: `[1,2]`, expectedError: "not a JSON object"},
		{name: "Null", line: `null`, expectedError: "not a JSON object"},
		{name: "Missing command", line: `{"idx":1}`, expectedError: "missing command field"},
		{name: "Non-string command", line: `{"command":5}`, expectedError: "must be a string"},
		{name: "Unknown command", line: `{"command":"rewind"}`, expectedError: "unknown command: rewind"},
		{name: "Wrong field type", line: `{"command":"set_time","time":"soon"}`, expectedError: "invalid payload for set_time"},
		{name: "Missing required field", line: `{"command":"volume"}`, expectedError: "missing required field: volume"},
		{name: "set_media without file", line: `{"command":"set_media","idx":0}`, expectedError: "no file provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := Parse([]byte(tt.line))

			if tt.expectedError != "" {
				if err == nil {
					t.Fatalf("expected error containing '%s', got nil", tt.expectedError)
				}
				if !strings.Contains(err.Error(), tt.expectedError) {
					t.Errorf("expected error '%s' to contain '%s'", err.Error(), tt.expectedError)
				}
				if ftag.Get(err) != ftag.InvalidArgument {
					t.Errorf("expected INVALID_ARGUMENT, got %s", ftag.Get(err))
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cmd.Name() != tt.expectedName {
				t.Errorf("expected %s, got %s", tt.expectedName, cmd.Name())
			}
			if tt.check != nil {
				tt.check(t, cmd)
			}
		})
	}
}
