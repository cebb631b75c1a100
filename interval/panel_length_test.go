package interval

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadPanel(t *testing.T) *RegionIndex {
	idx, err := NewRegionIndexFromPath(context.Background(), "testdata/panel.bed")
	require.NoError(t, err)
	return idx
}

func TestPanelLengths(t *testing.T) {
	expect.EQ(t, PanelLengths(loadPanel(t)), []LengthFraction{
		{Length: 127, Count: 1, Fraction: 0.2},
		{Length: 109, Count: 1, Fraction: 0.4},
		{Length: 104, Count: 1, Fraction: 0.6},
		{Length: 100, Count: 1, Fraction: 0.8},
		{Length: 10, Count: 1, Fraction: 1},
	})

	idx, err := NewRegionIndex(strings.NewReader("c\t1\t11\nc\t20\t30\nd\t5\t6\n"))
	require.NoError(t, err)
	got := PanelLengths(idx)
	require.Len(t, got, 2)
	expect.EQ(t, got[0].Length, 10)
	expect.EQ(t, got[0].Count, 2)
	assert.InDelta(t, 2.0/3.0, got[0].Fraction, 1e-12)
	expect.EQ(t, got[1], LengthFraction{Length: 1, Count: 1, Fraction: 1})

	empty, err := NewRegionIndex(strings.NewReader("@HD\n"))
	require.NoError(t, err)
	assert.Nil(t, PanelLengths(empty))
}

func TestWritePanelLengths(t *testing.T) {
	fractions := PanelLengths(loadPanel(t))
	tests := []struct {
		opts PanelLengthOpts
		want string
	}{
		{
			DefaultPanelLengthOpts,
			"127\t0.2000000000\n109\t0.4000000000\n104\t0.6000000000\n100\t0.8000000000\n10\t1.0000000000\n",
		},
		{
			PanelLengthOpts{Format: "csv", LowBound: 0.5, Query: -1},
			"127,0.2000000000\n109,0.4000000000\n104,0.6000000000\n",
		},
		{
			PanelLengthOpts{Format: "table", LowBound: 0.8, Query: 105},
			"length\tpercentage\n109\t0.4000000000\n",
		},
		{
			PanelLengthOpts{Format: "csv", LowBound: 0.8, Query: 5},
			"length,percentage\n5,1\n",
		},
		{
			PanelLengthOpts{Format: "table", LowBound: 0.8, Query: 200},
			"length\tpercentage\n0\t0.0000000000\n",
		},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		require.NoError(t, WritePanelLengths(&buf, fractions, tt.opts))
		expect.EQ(t, buf.String(), tt.want, "%+v", tt.opts)
	}
}

func TestWritePanelLengthsBadFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WritePanelLengths(&buf, nil, PanelLengthOpts{Format: "json", Query: -1})
	require.Error(t, err)
	assert.True(t, errors.Is(errors.Invalid, err), "%v", err)
	expect.EQ(t, buf.Len(), 0)
}
