package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otdb/otdb-terminal/pkg/models"
)

func TestValidateSearchKind(t *testing.T) {
	tests := []struct {
		input   string
		want    models.SearchKind
		wantErr bool
	}{
		{"users", models.SearchUsers, false},
		{"user", models.SearchUsers, false},
		{"Mappool", models.SearchMappools, false},
		{"tournaments", models.SearchTournaments, false},
		{"beatmaps", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ValidateSearchKind(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateValidation(t *testing.T) {
	anyFn, err := ValidateValidation("any")
	require.NoError(t, err)
	assert.True(t, anyFn("whatever"))

	modFn, err := ValidateValidation("MOD")
	require.NoError(t, err)
	assert.True(t, modFn("HD1"))
	assert.False(t, modFn("HD"))

	_, err = ValidateValidation("email")
	assert.Error(t, err)
}

func TestValidateOutputFormat(t *testing.T) {
	for _, f := range []string{"text", "json", "yaml"} {
		assert.NoError(t, ValidateOutputFormat(f))
	}
	assert.Error(t, ValidateOutputFormat("xml"))
}
