package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		allowTemplates bool
		wantErr        bool
	}{
		{"valid leaf", "Device.WiFi.Radio.1.Channel", false, false},
		{"valid object", "Device.WiFi.Radio.1.", false, false},
		{"valid root", "Device.DeviceInfo.", false, false},
		{"empty path", "", false, true},
		{"missing prefix", "WiFi.Radio.1.Channel", false, true},
		{"empty segment", "Device.WiFi..Channel", false, true},
		{"leading zero instance", "Device.WiFi.Radio.01.Channel", false, true},
		{"zero instance allowed", "Device.WiFi.Radio.0.Channel", false, false},
		{"template rejected by default", "Device.WiFi.Radio.{i}.Channel", false, true},
		{"template allowed", "Device.WiFi.Radio.{i}.Channel", true, false},
		{"malformed placeholder", "Device.WiFi.Radio.{i}x.Channel", true, true},
		{"lowercase segment", "Device.wifi.Radio.1.Channel", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path, tt.allowTemplates)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
