package slug

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"John & Jane's Wedding", "john-janes-wedding"},
		{"Summer Party", "summer-party"},
		{"  spaced   out  ", "spaced-out"},
		{"UPPER case", "upper-case"},
		{"100 Days!!", "100-days"},
		{"O'Brien–Smith", "obrien-smith"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.title))
		})
	}
}

func TestUnique(t *testing.T) {
	taken := map[string]bool{
		"john-janes-wedding":   true,
		"john-janes-wedding-1": false,
	}
	exists := func(ctx context.Context, s string) (bool, error) {
		return taken[s], nil
	}

	got, err := Unique(context.Background(), "John & Jane's Wedding", exists)
	require.NoError(t, err)
	assert.Equal(t, "john-janes-wedding-1", got)
}

func TestUniqueNoCollision(t *testing.T) {
	exists := func(ctx context.Context, s string) (bool, error) { return false, nil }

	got, err := Unique(context.Background(), "Quiet Ceremony", exists)
	require.NoError(t, err)
	assert.Equal(t, "quiet-ceremony", got)
}

func TestUniqueEmptyTitleFallsBack(t *testing.T) {
	exists := func(ctx context.Context, s string) (bool, error) { return false, nil }

	got, err := Unique(context.Background(), "!!!", exists)
	require.NoError(t, err)
	assert.Equal(t, "wedding", got)
}
