package branch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    Branch
		wantErr bool
	}{
		{name: "centro", key: "centro", want: Centro},
		{name: "norte", key: "norte", want: Norte},
		{name: "sur", key: "sur", want: Sur},
		{name: "uppercase", key: "CENTRO", want: Centro},
		{name: "padded", key: "  norte ", want: Norte},
		{name: "unknown", key: "oeste", wantErr: true},
		{name: "empty", key: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.key)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownBranch)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiscriminants(t *testing.T) {
	// Stamped on existing rows; changing any of these corrupts routing.
	assert.Equal(t, 1, Centro.Discriminant)
	assert.Equal(t, 0, Norte.Discriminant)
	assert.Equal(t, 2, Sur.Discriminant)

	assert.Equal(t, "CENTRO", Centro.Suffix)
	assert.Equal(t, "NORTE", Norte.Suffix)
	assert.Equal(t, "SUR", Sur.Suffix)
}

func TestAllCanonicalOrder(t *testing.T) {
	assert.Equal(t, []Branch{Centro, Norte, Sur}, All())
	assert.Equal(t, []string{"centro", "norte", "sur"}, Keys())
}

func TestAllReturnsCopy(t *testing.T) {
	got := All()
	got[0] = Sur
	assert.Equal(t, Centro, All()[0])
}

func TestDefault(t *testing.T) {
	assert.Equal(t, Centro, Default())
}
