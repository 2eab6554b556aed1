package chart

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func testInput() Input {
	return Input{
		SeasonLabels: []string{"2022/2023", "2023/2024", "2024/2025"},
		Panels: []Panel{
			{
				Title: "adjPPG",
				Lines: []Line{
					{Label: "Bukayo Saka", Points: []Point{{0, 2.1}, {1, 2.3}, {2, 2.4}}},
					{Label: "Cole Palmer", Points: []Point{{1, 1.9}, {2, 2.2}}},
				},
			},
			{
				Title: "End Elo",
				Lines: []Line{
					{Label: "Bukayo Saka", Points: []Point{{0, 1710}, {1, 1745}, {2, 1760}}},
				},
			},
		},
	}
}

func TestRenderer_RenderGrid_ProducesPNG(t *testing.T) {
	t.Parallel()

	r := NewRenderer(2, nil, nil)

	out, err := r.RenderGrid(context.Background(), testInput())
	require.NoError(t, err)
	require.NotEmpty(t, out)

	cfg, err := png.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)

	// Square panels in a 4x2 grid, so the image is twice as wide as tall.
	require.Equal(t, gridCols*cfg.Height/gridRows, cfg.Width)
	require.Positive(t, cfg.Height)
}

func TestRenderer_RenderGrid_EmptyLinesStillRender(t *testing.T) {
	t.Parallel()

	r := NewRenderer(1, nil, nil)
	in := Input{
		SeasonLabels: []string{"2024/2025"},
		Panels:       []Panel{{Title: "GP"}},
	}

	out, err := r.RenderGrid(context.Background(), in)
	require.NoError(t, err)
	require.NotEmpty(t, out)
}

func TestRenderer_RenderGrid_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	r := NewRenderer(2, nil, nil)

	_, err := r.RenderGrid(context.Background(), Input{})
	require.Error(t, err)
}

func TestRenderer_RenderGrid_RejectsTooManyPanels(t *testing.T) {
	t.Parallel()

	r := NewRenderer(2, nil, nil)
	in := Input{SeasonLabels: []string{"2024/2025"}}
	for i := 0; i < gridRows*gridCols+1; i++ {
		in.Panels = append(in.Panels, Panel{Title: "GP"})
	}

	_, err := r.RenderGrid(context.Background(), in)
	require.Error(t, err)
}
