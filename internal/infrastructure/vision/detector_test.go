//go:build gocv
// +build gocv

package vision

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// newFrame создаёт чёрный трёхканальный кадр.
func newFrame(rows, cols int) gocv.Mat {
	return gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), rows, cols, gocv.MatTypeCV8UC3)
}

// encodePNG кодирует кадр в PNG для подачи в детектор.
func encodePNG(t *testing.T, mat gocv.Mat) []byte {
	t.Helper()

	buf, err := gocv.IMEncode(gocv.PNGFileExt, mat)
	require.NoError(t, err)
	defer buf.Close()

	data := make([]byte, len(buf.GetBytes()))
	copy(data, buf.GetBytes())
	return data
}

func TestOnRatio_AllBlack(t *testing.T) {
	d := NewFlareDetector(DefaultParams())

	mat := newFrame(100, 100)
	defer mat.Close()

	bw, err := d.toBinary(mat, 240)
	require.NoError(t, err)
	defer bw.Close()

	ratio, err := onRatio(bw)
	require.NoError(t, err)
	require.Equal(t, 0.0, ratio)

	flare, err := d.IsFlareLots(context.Background(), encodePNG(t, mat))
	require.NoError(t, err)
	require.False(t, flare)
}

func TestOnRatio_AllWhite(t *testing.T) {
	d := NewFlareDetector(DefaultParams())

	mat := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 0), 100, 100, gocv.MatTypeCV8UC3)
	defer mat.Close()

	bw, err := d.toBinary(mat, 240)
	require.NoError(t, err)
	defer bw.Close()

	ratio, err := onRatio(bw)
	require.NoError(t, err)
	require.Equal(t, 1.0, ratio)

	flare, err := d.IsFlareLots(context.Background(), encodePNG(t, mat))
	require.NoError(t, err)
	require.True(t, flare)
}

func TestOnRatio_EmptyMat(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()

	_, err := onRatio(empty)
	require.Error(t, err)
}

func TestToBinary_EmptyMat(t *testing.T) {
	d := NewFlareDetector(DefaultParams())

	empty := gocv.NewMat()
	defer empty.Close()

	_, err := d.toBinary(empty, 240)
	require.Error(t, err)
}

// Повышение порога не может увеличить число белых пикселей.
func TestToBinary_MonotonicCutoff(t *testing.T) {
	d := NewFlareDetector(DefaultParams())

	mat := newFrame(256, 256)
	defer mat.Close()
	for y := 0; y < 256; y++ {
		for x := 0; x < 256; x++ {
			for c := 0; c < 3; c++ {
				mat.SetUCharAt(y, x*3+c, uint8(x))
			}
		}
	}

	prev := 256 * 256
	for _, cutoff := range []float32{50, 100, 150, 200, 250} {
		bw, err := d.toBinary(mat, cutoff)
		require.NoError(t, err)
		count := gocv.CountNonZero(bw)
		bw.Close()

		require.LessOrEqual(t, count, prev)
		prev = count
	}
}

func TestIsFlareElliptical_SyntheticCircle(t *testing.T) {
	mat := newFrame(400, 400)
	defer mat.Close()
	gocv.Circle(&mat, image.Pt(200, 200), 20, white, -1)

	d := NewFlareDetector(DefaultParams())
	flare, err := d.IsFlareElliptical(context.Background(), encodePNG(t, mat))
	require.NoError(t, err)
	require.True(t, flare)
}

func TestIsFlareElliptical_EmptyFrame(t *testing.T) {
	mat := newFrame(400, 400)
	defer mat.Close()

	d := NewFlareDetector(DefaultParams())
	flare, err := d.IsFlareElliptical(context.Background(), encodePNG(t, mat))
	require.NoError(t, err)
	require.False(t, flare)
}

func TestIsFlareRays_HorizontalLineIgnored(t *testing.T) {
	mat := newFrame(400, 400)
	defer mat.Close()
	gocv.Line(&mat, image.Pt(50, 200), image.Pt(350, 200), white, 3)

	d := NewFlareDetector(DefaultParams())
	count, err := d.IsFlareRays(context.Background(), encodePNG(t, mat))
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestIsFlareRays_DiagonalLine(t *testing.T) {
	mat := newFrame(400, 400)
	defer mat.Close()
	gocv.Line(&mat, image.Pt(50, 50), image.Pt(350, 350), white, 3)

	d := NewFlareDetector(DefaultParams())
	count, err := d.IsFlareRays(context.Background(), encodePNG(t, mat))
	require.NoError(t, err)
	require.GreaterOrEqual(t, count, 1)
}

func TestIsFlareArcs_EmptyFrame(t *testing.T) {
	mat := newFrame(400, 400)
	defer mat.Close()

	d := NewFlareDetector(DefaultParams())
	flare, err := d.IsFlareArcs(context.Background(), encodePNG(t, mat))
	require.NoError(t, err)
	require.False(t, flare)
}

// Повторный запуск эвристики на том же кадре даёт тот же результат.
func TestHeuristics_Idempotent(t *testing.T) {
	mat := newFrame(400, 400)
	defer mat.Close()
	gocv.Line(&mat, image.Pt(50, 50), image.Pt(350, 350), white, 3)
	gocv.Circle(&mat, image.Pt(100, 300), 20, white, -1)

	d := NewFlareDetector(DefaultParams())
	ctx := context.Background()
	data := encodePNG(t, mat)

	first, err := d.IsFlareRays(ctx, data)
	require.NoError(t, err)
	second, err := d.IsFlareRays(ctx, data)
	require.NoError(t, err)
	require.Equal(t, first, second)

	firstBlob, err := d.IsFlareElliptical(ctx, data)
	require.NoError(t, err)
	secondBlob, err := d.IsFlareElliptical(ctx, data)
	require.NoError(t, err)
	require.Equal(t, firstBlob, secondBlob)
}

func TestDetector_InvalidImage(t *testing.T) {
	d := NewFlareDetector(DefaultParams())
	ctx := context.Background()

	_, err := d.IsFlareLots(ctx, []byte("not an image"))
	require.Error(t, err)

	_, err = d.IsFlareRays(ctx, nil)
	require.Error(t, err)
}

func TestDetector_CancelledContext(t *testing.T) {
	mat := newFrame(100, 100)
	defer mat.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewFlareDetector(DefaultParams())
	_, err := d.IsFlareLots(ctx, encodePNG(t, mat))
	require.Error(t, err)
}
