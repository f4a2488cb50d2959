package server

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"time"

	"github.com/df07/go-raycaster/pkg/renderer"
)

// RenderResponse is the JSON result of a render
type RenderResponse struct {
	Scene     string           `json:"scene"`
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	ImageData string           `json:"imageData"` // Base64 encoded PNG
	Stats     Stats            `json:"stats"`
	Console   []ConsoleMessage `json:"console"`
	ElapsedMs int64            `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels      int     `json:"totalPixels"`
	TotalSamples     int     `json:"totalSamples"`
	AverageSamples   float64 `json:"averageSamples"`
	PrimaryHits      int     `json:"primaryHits"`
	PathNodes        int     `json:"pathNodes"`
	MaxDepthReached  int     `json:"maxDepthReached"`
	AverageLuminance float64 `json:"averageLuminance"`
}

// handleRender renders a scene. format=png returns the image itself,
// anything else a RenderResponse.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createSceneFor(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	consoleChan, webLogger := s.setupConsoleLogging()

	startTime := time.Now()
	img, stats, err := sceneObj.Render(webLogger)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Render error: %v", err))
		return
	}

	if r.URL.Query().Get("format") == "png" {
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		if err := png.Encode(w, img); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	imageData, err := s.imageToBase64PNG(img)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, RenderResponse{
		Scene:     req.Scene,
		Width:     sceneObj.Width,
		Height:    sceneObj.Height,
		ImageData: imageData,
		Stats:     toStats(stats, img),
		Console:   drainConsole(consoleChan),
		ElapsedMs: time.Since(startTime).Milliseconds(),
	})
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, *WebLogger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	return consoleChan, NewWebLogger(renderID, consoleChan).(*WebLogger)
}

func toStats(stats renderer.RenderStats, img image.Image) Stats {
	return Stats{
		TotalPixels:      stats.TotalPixels,
		TotalSamples:     stats.TotalSamples,
		AverageSamples:   stats.AverageSamples(),
		PrimaryHits:      stats.PrimaryHits,
		PathNodes:        stats.PathNodes,
		MaxDepthReached:  stats.MaxDepthReached,
		AverageLuminance: renderer.CalculateAverageLuminance(img),
	}
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
