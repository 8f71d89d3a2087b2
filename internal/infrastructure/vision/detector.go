//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"path/filepath"

	"gocv.io/x/gocv"

	"flare-filter/internal/domain/entity"
	"flare-filter/internal/domain/port"
)

var errEmptyImage = errors.New("empty image")

// FlareDetector реализует эвристики поиска бликов на OpenCV.
type FlareDetector struct {
	params Params
}

// NewFlareDetector создаёт детектор с заданными порогами.
func NewFlareDetector(params Params) *FlareDetector {
	return &FlareDetector{params: params}
}

// IsFlareLots проверяет, какая доля кадра засвечена, и срабатывает,
// если доля слишком велика.
func (d *FlareDetector) IsFlareLots(ctx context.Context, imageData []byte) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	mat, err := decodeToMat(imageData)
	if err != nil {
		return false, err
	}
	defer mat.Close()

	bw, err := d.toBinary(mat, d.params.LotsCutoff)
	if err != nil {
		return false, err
	}
	defer bw.Close()

	ratio, err := onRatio(bw)
	if err != nil {
		return false, err
	}

	d.writeDebug("flare_lots.jpg", bw)

	return ratio > d.params.LotsMaxRatio, nil
}

// IsFlareElliptical ищет компактные круглые яркие пятна.
func (d *FlareDetector) IsFlareElliptical(ctx context.Context, imageData []byte) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	mat, err := decodeToMat(imageData)
	if err != nil {
		return false, err
	}
	defer mat.Close()

	bw, err := d.toBinary(mat, d.params.EllipticalCutoff)
	if err != nil {
		return false, err
	}
	defer bw.Close()

	// Инвертируем: яркие пятна становятся тёмными областями,
	// которые ищет детектор пятен.
	inverted := gocv.NewMat()
	defer inverted.Close()
	gocv.BitwiseNot(bw, &inverted)

	blobParams := gocv.NewSimpleBlobDetectorParams()
	blobParams.SetFilterByArea(true)
	blobParams.SetMinArea(d.params.BlobMinArea)
	blobParams.SetFilterByCircularity(true)
	blobParams.SetMinCircularity(d.params.BlobMinCircularity)
	blobParams.SetFilterByConvexity(true)
	blobParams.SetMinConvexity(d.params.BlobMinConvexity)
	blobParams.SetFilterByInertia(true)
	blobParams.SetMinInertiaRatio(d.params.BlobMinInertia)

	detector := gocv.NewSimpleBlobDetectorWithParams(blobParams)
	defer detector.Close()

	keypoints := detector.Detect(inverted)

	blobs := make([]entity.Blob, 0, len(keypoints))
	for _, kp := range keypoints {
		blobs = append(blobs, entity.Blob{X: kp.X, Y: kp.Y, Radius: kp.Size / 2})
	}

	if d.params.DebugDir != "" {
		overlay := gocv.NewMat()
		gocv.DrawKeyPoints(inverted, keypoints, &overlay, color.RGBA{R: 255, A: 255}, gocv.DrawRichKeyPoints)
		text := fmt.Sprintf("Number of circular blobs: %d", len(blobs))
		gocv.PutText(&overlay, text, image.Pt(20, 550), gocv.FontHersheySimplex, 1, color.RGBA{R: 255, G: 100, A: 255}, 2)
		d.writeDebug("flare_elliptical.jpg", overlay)
		overlay.Close()
	}

	return len(blobs) > 0, nil
}

// IsFlareRays ищет диагональные световые отрезки и возвращает их число.
// Горизонтальные и вертикальные линии — это края зданий и горизонт,
// они в счёт не идут.
func (d *FlareDetector) IsFlareRays(ctx context.Context, imageData []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	mat, err := decodeToMat(imageData)
	if err != nil {
		return 0, err
	}
	defer mat.Close()

	bw, err := d.toBinary(mat, d.params.RaysCutoff)
	if err != nil {
		return 0, err
	}

	bandMin, bandMax := d.params.BandMin, d.params.BandMax

	ratio, err := onRatio(bw)
	if err != nil {
		bw.Close()
		return 0, err
	}

	// Света в кадре почти нет — смягчаем порог и расширяем сектор,
	// иначе слабые лучи не находятся.
	if ratio < d.params.RaysFaintRatio {
		bw.Close()
		bw, err = d.toBinary(mat, d.params.RaysFaintCutoff)
		if err != nil {
			return 0, err
		}
		bandMin, bandMax = d.params.FaintBandMin, d.params.FaintBandMax
	}
	defer bw.Close()

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	lines := gocv.NewMat()
	defer lines.Close()
	gocv.HoughLinesPWithParams(bw, &lines, 1, float32(math.Pi/180),
		d.params.HoughVotes, d.params.HoughMinLength, d.params.HoughMaxGap)

	count := 0
	segments := make([]entity.LineSegment, 0, lines.Rows())
	for i := 0; i < lines.Rows(); i++ {
		v := lines.GetVeciAt(i, 0)
		seg := entity.LineSegment{X1: int(v[0]), Y1: int(v[1]), X2: int(v[2]), Y2: int(v[3])}
		segments = append(segments, seg)

		angle, ok := seg.Angle()
		if !ok {
			// Вертикальный отрезок: угол не определён, пропускаем
			continue
		}
		if inDiagonalBand(angle, bandMin, bandMax) {
			count++
		}
	}

	if d.params.DebugDir != "" {
		overlay := mat.Clone()
		green := color.RGBA{G: 255, A: 255}
		for _, seg := range segments {
			gocv.Line(&overlay, image.Pt(seg.X1, seg.Y1), image.Pt(seg.X2, seg.Y2), green, 2)
		}
		d.writeDebug("flare_rays_bw.jpg", bw)
		d.writeDebug("flare_rays_final.jpg", overlay)
		overlay.Close()
	}

	return count, nil
}

// IsFlareArcs ищет дуги от блика на границе стена-небо по сильно размытому
// и эродированному кадру. Экспериментальная эвристика: дуга от блика
// слишком рваная, чтобы на неё надёжно ложилась окружность, поэтому
// классификатор этот метод не вызывает.
func (d *FlareDetector) IsFlareArcs(ctx context.Context, imageData []byte) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	mat, err := decodeToMat(imageData)
	if err != nil {
		return false, err
	}
	defer mat.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	// Крупное размытие убирает текстуру, остаются только большие пятна света.
	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.Blur(gray, &blurred, image.Pt(d.params.ArcsBlurSize, d.params.ArcsBlurSize))

	bw := gocv.NewMat()
	defer bw.Close()
	gocv.Threshold(blurred, &bw, d.params.ArcsCutoff, 255, gocv.ThresholdBinary)

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(3, 3))
	defer kernel.Close()

	eroded := gocv.NewMat()
	defer eroded.Close()
	gocv.ErodeWithParams(bw, &eroded, kernel, image.Pt(-1, -1),
		d.params.ArcsErodeIterations, int(gocv.BorderConstant))

	if err := ctx.Err(); err != nil {
		return false, err
	}

	found := gocv.NewMat()
	defer found.Close()
	gocv.HoughCircles(eroded, &found, gocv.HoughGradient,
		d.params.ArcsInverseRatio, d.params.ArcsMinCenterDist)

	var circles []entity.Circle
	if !found.Empty() {
		circles = make([]entity.Circle, 0, found.Cols())
		for i := 0; i < found.Cols(); i++ {
			v := found.GetVecfAt(0, i)
			if len(v) < 3 {
				continue
			}
			circles = append(circles, entity.Circle{X: float64(v[0]), Y: float64(v[1]), Radius: float64(v[2])})
		}
	}

	if d.params.DebugDir != "" {
		overlay := mat.Clone()
		for _, c := range circles {
			x, y, r := int(c.X), int(c.Y), int(c.Radius)
			gocv.Circle(&overlay, image.Pt(x, y), r, color.RGBA{G: 255, A: 255}, 4)
			gocv.Rectangle(&overlay, image.Rect(x-5, y-5, x+5, y+5), color.RGBA{R: 255, G: 128, A: 255}, -1)
		}
		d.writeDebug("flare_arcs_bw.jpg", eroded)
		d.writeDebug("flare_arcs_final.jpg", overlay)
		overlay.Close()
	}

	return len(circles) > 0, nil
}

// toBinary переводит цветной кадр в чёрно-белый по порогу яркости.
func (d *FlareDetector) toBinary(mat gocv.Mat, cutoff float32) (gocv.Mat, error) {
	if mat.Empty() {
		return gocv.NewMat(), errEmptyImage
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	bw := gocv.NewMat()
	gocv.Threshold(gray, &bw, cutoff, 255, gocv.ThresholdBinary)
	return bw, nil
}

// onRatio возвращает долю белых пикселей бинарного кадра, от 0 до 1.
func onRatio(bw gocv.Mat) (float64, error) {
	total := bw.Cols() * bw.Rows()
	if total <= 0 {
		return 0, errEmptyImage
	}
	return float64(gocv.CountNonZero(bw)) / float64(total), nil
}

// writeDebug сохраняет промежуточный кадр в отладочный каталог.
func (d *FlareDetector) writeDebug(name string, mat gocv.Mat) {
	if d.params.DebugDir == "" {
		return
	}
	gocv.IMWrite(filepath.Join(d.params.DebugDir, name), mat)
}

// decodeToMat превращает байты изображения в gocv.Mat.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	if len(imageData) == 0 {
		return gocv.NewMat(), errEmptyImage
	}

	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), errors.New("failed to decode image")
}

// Проверка реализации интерфейса
var _ port.FlareDetector = (*FlareDetector)(nil)
