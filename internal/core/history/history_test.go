package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/qrforge/internal/core/qr"
)

func TestNewEntry(t *testing.T) {
	entry := NewEntry(qr.TypeWiFi, "qrforge wifi -s net", "/tmp/out.png", map[string]string{"ssid": "net"})

	assert.Len(t, entry.ID, 8)
	assert.Equal(t, qr.TypeWiFi, entry.Type)
	assert.Equal(t, "qrforge wifi -s net", entry.Command)
	assert.Equal(t, "/tmp/out.png", entry.OutputPath)
	assert.Equal(t, "net", entry.Data["ssid"])
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestNewEntry_NilData(t *testing.T) {
	entry := NewEntry(qr.TypeText, "qrforge text hi", "/tmp/out.png", nil)
	assert.NotNil(t, entry.Data)
}

func TestMaskCommand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare password masked",
			input: `qrforge wifi --ssid home --password secret123 -o out.png`,
			want:  `qrforge wifi --ssid home --password **** -o out.png`,
		},
		{
			name:  "quoted password masked",
			input: `qrforge wifi --ssid home --password "secret123" -o out.png`,
			want:  `qrforge wifi --ssid home --password "****" -o out.png`,
		},
		{
			name:  "equals form masked",
			input: `qrforge wifi --ssid home --password=secret123 -o out.png`,
			want:  `qrforge wifi --ssid home --password=**** -o out.png`,
		},
		{
			name:  "short flag masked",
			input: `qrforge wifi -s home -p secret123 -o out.png`,
			want:  `qrforge wifi -s home -p **** -o out.png`,
		},
		{
			name:  "no password untouched",
			input: `qrforge url https://example.com -o out.png`,
			want:  `qrforge url https://example.com -o out.png`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskCommand(tt.input))
		})
	}
}
