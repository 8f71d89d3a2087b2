package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"flare-filter/internal/infrastructure/vision"
)

// Config настройки приложения.
type Config struct {
	Detection vision.Params
}

// Load загружает пороги детектора из окружения.
// Незаданные переменные оставляют значения по умолчанию.
func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	p := vision.DefaultParams()

	p.LotsCutoff = envFloat32("FLARE_LOTS_CUTOFF", p.LotsCutoff)
	p.LotsMaxRatio = envFloat64("FLARE_LOTS_MAX_RATIO", p.LotsMaxRatio)

	p.EllipticalCutoff = envFloat32("FLARE_ELLIPTICAL_CUTOFF", p.EllipticalCutoff)
	p.BlobMinArea = envFloat64("FLARE_BLOB_MIN_AREA", p.BlobMinArea)
	p.BlobMinCircularity = envFloat64("FLARE_BLOB_MIN_CIRCULARITY", p.BlobMinCircularity)
	p.BlobMinConvexity = envFloat64("FLARE_BLOB_MIN_CONVEXITY", p.BlobMinConvexity)
	p.BlobMinInertia = envFloat64("FLARE_BLOB_MIN_INERTIA", p.BlobMinInertia)

	p.RaysCutoff = envFloat32("FLARE_RAYS_CUTOFF", p.RaysCutoff)
	p.RaysFaintCutoff = envFloat32("FLARE_RAYS_FAINT_CUTOFF", p.RaysFaintCutoff)
	p.RaysFaintRatio = envFloat64("FLARE_RAYS_FAINT_RATIO", p.RaysFaintRatio)
	p.BandMin = envFloat64("FLARE_BAND_MIN", p.BandMin)
	p.BandMax = envFloat64("FLARE_BAND_MAX", p.BandMax)
	p.FaintBandMin = envFloat64("FLARE_FAINT_BAND_MIN", p.FaintBandMin)
	p.FaintBandMax = envFloat64("FLARE_FAINT_BAND_MAX", p.FaintBandMax)
	p.HoughVotes = envInt("FLARE_HOUGH_VOTES", p.HoughVotes)
	p.HoughMinLength = envFloat32("FLARE_HOUGH_MIN_LENGTH", p.HoughMinLength)
	p.HoughMaxGap = envFloat32("FLARE_HOUGH_MAX_GAP", p.HoughMaxGap)

	p.ArcsCutoff = envFloat32("FLARE_ARCS_CUTOFF", p.ArcsCutoff)
	p.ArcsBlurSize = envInt("FLARE_ARCS_BLUR_SIZE", p.ArcsBlurSize)
	p.ArcsErodeIterations = envInt("FLARE_ARCS_ERODE_ITERATIONS", p.ArcsErodeIterations)
	p.ArcsInverseRatio = envFloat64("FLARE_ARCS_INVERSE_RATIO", p.ArcsInverseRatio)
	p.ArcsMinCenterDist = envFloat64("FLARE_ARCS_MIN_CENTER_DIST", p.ArcsMinCenterDist)

	p.DebugDir = envString("FLARE_DEBUG_DIR", p.DebugDir)

	return &Config{Detection: p}, nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envFloat64(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return parsed
}

func envFloat32(key string, def float32) float32 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return def
	}
	return float32(parsed)
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return parsed
}
