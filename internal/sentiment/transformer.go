package sentiment

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
)

const sentimentModelName = "cardiffnlp/twitter-roberta-base-sentiment-latest"

// labelMapping folds provider-specific classifier tokens onto the three
// canonical labels; unrecognized tokens pass through lower-cased.
var labelMapping = map[string]string{
	"LABEL_0":  "negative",
	"LABEL_1":  "neutral",
	"LABEL_2":  "positive",
	"NEGATIVE": "negative",
	"NEUTRAL":  "neutral",
	"POSITIVE": "positive",
}

func canonicalLabel(raw string) string {
	if mapped, ok := labelMapping[strings.ToUpper(raw)]; ok {
		return mapped
	}
	return strings.ToLower(raw)
}

// ModelScorer is the optional second classifier. Score reports ok=false
// when the model is unavailable or inference fails; it never returns an
// error to the caller.
type ModelScorer interface {
	Score(text string) (label string, confidence float64, ok bool)
}

type transformerScorer struct {
	mu       sync.Mutex
	pipeline *pipelines.TextClassificationPipeline
}

type unavailableScorer struct{}

func (unavailableScorer) Score(string) (string, float64, bool) { return "", 0, false }

// NewModelScorer builds the transformer-backed scorer, downloading the
// ONNX model into modelsDir on first use. Any failure degrades to an
// always-unavailable scorer so the ensemble falls back to the lexicon.
func NewModelScorer(modelsDir string) ModelScorer {
	if err := os.MkdirAll(modelsDir, os.ModePerm); err != nil {
		slog.Warn("[ModelScorer] Failed to create model directory",
			slog.String("error", err.Error()))
		return unavailableScorer{}
	}

	modelPath := filepath.Join(modelsDir, strings.ReplaceAll(sentimentModelName, "/", "_"))
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		slog.Info("[ModelScorer] Model not found, downloading...",
			slog.String("model", sentimentModelName))
		downloaded, err := hugot.DownloadModel(sentimentModelName, modelsDir, hugot.NewDownloadOptions())
		if err != nil {
			slog.Warn("[ModelScorer] Failed to download model, running lexicon-only",
				slog.String("error", err.Error()))
			return unavailableScorer{}
		}
		modelPath = downloaded
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		slog.Warn("[ModelScorer] Failed to initialize Hugot session, running lexicon-only",
			slog.String("error", err.Error()))
		return unavailableScorer{}
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "sentimentClassificationPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		slog.Warn("[ModelScorer] Failed to initialize classification pipeline, running lexicon-only",
			slog.String("error", err.Error()))
		return unavailableScorer{}
	}

	slog.Info("[ModelScorer] Transformer model loaded",
		slog.String("path", modelPath))

	return &transformerScorer{pipeline: pipeline}
}

func (t *transformerScorer) Score(text string) (string, float64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	output, err := t.pipeline.RunPipeline([]string{text})
	if err != nil {
		slog.Warn("[ModelScorer] Inference failed",
			slog.String("error", err.Error()))
		return "", 0, false
	}

	if len(output.ClassificationOutputs) == 0 || len(output.ClassificationOutputs[0]) == 0 {
		slog.Warn("[ModelScorer] Empty classification output")
		return "", 0, false
	}

	best := output.ClassificationOutputs[0][0]
	return canonicalLabel(best.Label), float64(best.Score), true
}
