package vision

import "testing"

func TestValidateTranscription(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "valid payload",
			payload: `{"lines":[{"text":"SUMA PLN 21,89","confidence":0.97}]}`,
			wantErr: false,
		},
		{
			name:    "empty lines allowed",
			payload: `{"lines":[]}`,
			wantErr: false,
		},
		{
			name:    "missing lines",
			payload: `{"rows":[]}`,
			wantErr: true,
		},
		{
			name:    "confidence out of range",
			payload: `{"lines":[{"text":"x","confidence":1.5}]}`,
			wantErr: true,
		},
		{
			name:    "missing confidence",
			payload: `{"lines":[{"text":"x"}]}`,
			wantErr: true,
		},
		{
			name:    "extra property rejected",
			payload: `{"lines":[{"text":"x","confidence":0.5,"page":1}]}`,
			wantErr: true,
		},
		{
			name:    "not JSON",
			payload: `lines: []`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTranscription([]byte(tt.payload))
			if (err != nil) != tt.wantErr {
				t.Errorf("validateTranscription() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
