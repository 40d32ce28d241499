package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkout_bot/domain/entities"
)

func TestNormalizeQuantity(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"comma separator", "0,05", "0.05"},
		{"dot separator", "1.5", "1.50"},
		{"bare integer", "2", "2.00"},
		{"surrounding whitespace", " 3,1 ", "3.10"},
		{"already two decimals", "10.25", "10.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeQuantity(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeQuantityRejectsNonNumeric(t *testing.T) {
	for _, in := range []string{"abc", "", "1,2,3", "1.2.3"} {
		_, err := NormalizeQuantity(in)

		var formatErr *entities.FormatError
		require.ErrorAs(t, err, &formatErr, "input %q", in)
		assert.Equal(t, in, formatErr.Input)
	}
}
