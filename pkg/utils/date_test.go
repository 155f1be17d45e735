package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantNil bool
		wantErr bool
	}{
		{name: "valid date", value: "2023-05-12", want: "2023-05-12"},
		{name: "empty means unset", value: "", wantNil: true},
		{name: "slashes rejected", value: "2023/05/12", wantErr: true},
		{name: "reversed format rejected", value: "12-05-2023", wantErr: true},
		{name: "impossible date rejected", value: "2023-02-30", wantErr: true},
		{name: "garbage rejected", value: "next friday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseISODate(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}
