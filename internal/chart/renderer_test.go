package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"housebias/internal/bias"
	"housebias/internal/dataset"
)

func testRenderer(t *testing.T, colors string) *Renderer {
	t.Helper()
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}
	house := "year,state_po,district,party,candidatevotes,totalvotes\n" +
		"1976,CA,1,democrat,600,1000\n" +
		"1976,CA,1,republican,400,1000\n" +
		"1976,CA,2,democrat,400,1000\n" +
		"1976,CA,2,republican,600,1000\n" +
		"1978,CA,1,democrat,700,1000\n" +
		"1978,CA,1,republican,300,1000\n" +
		"1978,CA,2,democrat,450,1000\n" +
		"1978,CA,2,republican,550,1000\n"
	ds, err := dataset.Load(dataset.Paths{
		HouseData:    write("house.csv", house),
		NumDistricts: write("num_districts.csv", "CA 2\n"),
		Years:        write("years.csv", "1976\n1978\n"),
		Colors:       write("colors.csv", colors),
	})
	require.NoError(t, err)
	return New(ds)
}

var testSize = FigureSize{Width: 10 * vg.Inch, Height: 7 * vg.Inch}

func TestDraw(t *testing.T) {
	r := testRenderer(t, "blue\nred\n")

	fig, err := r.Draw("CA", testSize, Options{})
	require.NoError(t, err)
	require.NotNil(t, fig.Plot)

	assert.Equal(t, -1.0, fig.Plot.X.Min)
	assert.Equal(t, 1.0, fig.Plot.X.Max)
	assert.Equal(t, 0.0, fig.Plot.Y.Min)
	assert.Equal(t, 1.0, fig.Plot.Y.Max)

	path := filepath.Join(t.TempDir(), "CA.png")
	require.NoError(t, fig.Save(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestDrawDefaultsIsolatedAcrossCalls(t *testing.T) {
	r := testRenderer(t, "blue\nred\n")

	// An explicit-options call followed by a no-options call: the
	// second must see the true defaults, not anything from the first.
	custom := Options{MarkerSize: 9, StepOpacity: 0.1, GridColor: "gray"}
	_, err := r.Draw("CA", testSize, custom)
	require.NoError(t, err)

	_, err = r.Draw("CA", testSize, Options{})
	require.NoError(t, err)
	assert.Equal(t, 200.0, DefaultOptions().MarkerSize)
	assert.Equal(t, Options{MarkerSize: 9, StepOpacity: 0.1, GridColor: "gray"}, custom)
}

func TestDrawErrors(t *testing.T) {
	t.Run("unknown state", func(t *testing.T) {
		r := testRenderer(t, "blue\nred\n")
		_, err := r.Draw("ZZ", testSize, Options{})
		assert.ErrorIs(t, err, bias.ErrUnknownState)
	})

	t.Run("bad tick count", func(t *testing.T) {
		r := testRenderer(t, "blue\nred\n")
		_, err := r.Draw("CA", testSize, Options{YTickCount: 1})
		assert.ErrorIs(t, err, ErrBadOptions)
	})

	t.Run("unknown grid color", func(t *testing.T) {
		r := testRenderer(t, "blue\nred\n")
		_, err := r.Draw("CA", testSize, Options{GridColor: "notacolor"})
		assert.ErrorIs(t, err, ErrUnknownColor)
	})

	t.Run("unknown line style", func(t *testing.T) {
		r := testRenderer(t, "blue\nred\n")
		_, err := r.Draw("CA", testSize, Options{GridLineStyle: "~"})
		assert.ErrorIs(t, err, ErrUnknownLineStyle)
	})

	t.Run("unknown year color", func(t *testing.T) {
		r := testRenderer(t, "blue\nnotacolor\n")
		_, err := r.Draw("CA", testSize, Options{})
		assert.ErrorIs(t, err, ErrUnknownColor)
	})
}
