package renderer

import (
	"image"
	"time"
)

// RenderStats contains statistics about a trace pass
type RenderStats struct {
	TotalPixels     int           // Total number of pixels traced
	TotalSamples    int           // Total number of camera rays
	PrimaryHits     int           // Camera rays that hit a traceable
	PathNodes       int           // Rays cast including reflections and passthroughs
	MaxDepthReached int           // Deepest bounce in any pixel
	Duration        time.Duration // Wall time of the pass
}

// add accumulates the statistics of one traced pixel
func (rs *RenderStats) add(path *TracePath) {
	rs.TotalSamples += path.Samples()
	rs.PathNodes += path.Len()
	for _, root := range path.roots {
		if path.nodes[root].hit {
			rs.PrimaryHits++
		}
	}
	rs.MaxDepthReached = max(rs.MaxDepthReached, path.Depth())
}

// AverageSamples returns the mean number of camera rays per pixel
func (rs RenderStats) AverageSamples() float64 {
	if rs.TotalPixels == 0 {
		return 0
	}
	return float64(rs.TotalSamples) / float64(rs.TotalPixels)
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an image
// with channels normalized to [0,1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	count := bounds.Dx() * bounds.Dy()
	if count == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += 0.2126*float64(r)/65535.0 + 0.7152*float64(g)/65535.0 + 0.0722*float64(b)/65535.0
		}
	}
	return total / float64(count)
}
