package services

import (
	"bufio"
	"fmt"
	"image"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"

	_ "image/jpeg"
	_ "image/png"

	"backend/utils"

	"github.com/klauspost/cpuid/v2"
	tflite "github.com/tphakala/go-tflite"
	"github.com/tphakala/go-tflite/delegates/xnnpack"
)

const (
	defaultModelPath  = "assets/food101.tflite"
	defaultLabelsPath = "assets/food101_labels.txt"
)

// imageClassifier turns image bytes on disk into a recognition result.
type imageClassifier interface {
	Classify(imagePath string) (RecognitionResult, error)
}

// sharedFoodClassifier resolves the process-wide food model handle. The
// model is constructed at most once, on first use; a construction failure
// latches the model path off for the rest of the process and every later
// call sees the same error.
var sharedFoodClassifier = onceClassifierResolver(newFoodModelClassifier)

// onceClassifierResolver wraps a classifier constructor in a one-time
// initialization guard. Concurrent first callers are serialized so they all
// observe either the fully constructed handle or the permanent failure,
// never a half-initialized state.
func onceClassifierResolver(construct func() (imageClassifier, error)) func() (imageClassifier, error) {
	var once sync.Once
	var clf imageClassifier
	var err error

	return func() (imageClassifier, error) {
		once.Do(func() {
			clf, err = construct()
			if err != nil {
				log.Printf("food model unavailable, falling back to filename heuristic: %v", err)
			}
		})
		return clf, err
	}
}

// tfliteClassifier runs a Food-101 image classification model through the
// TensorFlow Lite interpreter. Loading the weights dominates construction
// cost, so one instance is shared for the process lifetime.
type tfliteClassifier struct {
	mu          sync.Mutex // interpreter tensors are not safe for concurrent use
	interpreter *tflite.Interpreter
	labels      []string
}

func newFoodModelClassifier() (imageClassifier, error) {
	modelPath := os.Getenv("MODEL_PATH")
	if modelPath == "" {
		modelPath = defaultModelPath
	}
	labelsPath := os.Getenv("MODEL_LABELS_PATH")
	if labelsPath == "" {
		labelsPath = defaultLabelsPath
	}

	modelData, err := os.ReadFile(modelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	labels, err := loadModelLabels(labelsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load model labels: %w", err)
	}

	model := tflite.NewModel(modelData)
	if model == nil {
		return nil, fmt.Errorf("cannot load TensorFlow Lite model from %s", modelPath)
	}

	options := tflite.NewInterpreterOptions()
	threads := runtime.NumCPU()

	// Use the XNNPACK delegate when the CPU can take advantage of it,
	// otherwise stay on the plain CPU kernels.
	useDelegate := false
	if cpuid.CPU.Supports(cpuid.AVX2) || runtime.GOARCH == "arm64" {
		if delegate := xnnpack.New(xnnpack.DelegateOptions{NumThreads: int32(max(1, threads-1))}); delegate != nil {
			options.AddDelegate(delegate)
			options.SetNumThread(1)
			useDelegate = true
		} else {
			log.Println("Failed to create XNNPACK delegate, falling back to default CPU")
		}
	}
	if !useDelegate {
		options.SetNumThread(threads)
	}

	interpreter := tflite.NewInterpreter(model, options)
	if interpreter == nil {
		return nil, fmt.Errorf("cannot create interpreter")
	}
	if status := interpreter.AllocateTensors(); status != tflite.OK {
		return nil, fmt.Errorf("tensor allocation failed")
	}

	return &tfliteClassifier{interpreter: interpreter, labels: labels}, nil
}

// Classify runs one inference pass and maps the top-1 of the three best
// candidates onto the calorie reference. Runtime errors here (bad image
// data, interpreter failure) are per-call: the interpreter stays usable.
func (c *tfliteClassifier) Classify(imagePath string) (RecognitionResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	input := c.interpreter.GetInputTensor(0)
	if input == nil {
		return RecognitionResult{}, fmt.Errorf("cannot get input tensor")
	}

	// Input shape is NHWC: (1, height, width, 3).
	height := input.Dim(1)
	width := input.Dim(2)

	pixels, err := loadImageTensor(imagePath, height, width)
	if err != nil {
		return RecognitionResult{}, err
	}
	copy(input.Float32s(), pixels)

	if status := c.interpreter.Invoke(); status != tflite.OK {
		return RecognitionResult{}, fmt.Errorf("tensor invoke failed: %v", status)
	}

	output := c.interpreter.GetOutputTensor(0)
	scores := extractScores(output)

	preds, err := pairLabelsAndScores(c.labels, scores)
	if err != nil {
		return RecognitionResult{}, err
	}
	sortPredictions(preds)
	preds = trimPredictions(preds, 3)
	if len(preds) == 0 {
		return RecognitionResult{}, fmt.Errorf("model produced no predictions")
	}

	return resultFromPrediction(preds[0].Label, preds[0].Score), nil
}

// prediction pairs a raw model label with its reported probability.
type prediction struct {
	Label string
	Score float32
}

func pairLabelsAndScores(labels []string, scores []float32) ([]prediction, error) {
	if len(labels) != len(scores) {
		return nil, fmt.Errorf("mismatched labels and scores lengths: %d vs %d", len(labels), len(scores))
	}

	preds := make([]prediction, 0, len(labels))
	for i, label := range labels {
		preds = append(preds, prediction{Label: label, Score: scores[i]})
	}
	return preds, nil
}

func sortPredictions(preds []prediction) {
	sort.Slice(preds, func(i, j int) bool {
		return preds[i].Score > preds[j].Score
	})
}

func trimPredictions(preds []prediction, n int) []prediction {
	if len(preds) > n {
		return preds[:n]
	}
	return preds
}

func extractScores(tensor *tflite.Tensor) []float32 {
	size := tensor.Dim(tensor.NumDims() - 1)
	scores := make([]float32, size)
	copy(scores, tensor.Float32s())
	return scores
}

// resultFromPrediction normalizes a raw model label and attaches the
// calorie reference value when the canonical key has one.
func resultFromPrediction(label string, score float32) RecognitionResult {
	key := utils.NormalizeLabel(label)
	if key == "" {
		return UnknownResult()
	}

	confidence := float64(score)
	if confidence < 0 {
		confidence = 0
	} else if confidence > 1 {
		confidence = 1
	}

	result := RecognitionResult{FoodName: key, Confidence: confidence}
	if calories, ok := utils.LookupCalories(key); ok {
		result.Calories = &calories
	}
	return result
}

// loadModelLabels reads a labels file with one class label per line.
func loadModelLabels(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var labels []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			labels = append(labels, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("labels file %s is empty", path)
	}
	return labels, nil
}

// loadImageTensor decodes a png/jpeg image at path, resamples it to
// height x width and returns float32 pixels in NHWC order, scaled to 0-1.
func loadImageTensor(path string, height, width int) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return nil, fmt.Errorf("image %s has empty bounds", path)
	}

	// Nearest-neighbour resample, rows then columns so the memory layout
	// matches NHWC.
	out := make([]float32, height*width*3)
	for y := 0; y < height; y++ {
		srcY := bounds.Min.Y + y*srcH/height
		for x := 0; x < width; x++ {
			srcX := bounds.Min.X + x*srcW/width
			r32, g32, b32, _ := img.At(srcX, srcY).RGBA()

			base := ((y * width) + x) * 3
			out[base+0] = float32(r32>>8) / 255.0
			out[base+1] = float32(g32>>8) / 255.0
			out[base+2] = float32(b32>>8) / 255.0
		}
	}

	return out, nil
}
