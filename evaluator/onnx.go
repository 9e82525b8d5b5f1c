package evaluator

import (
	"fmt"
	"sync"

	"fanorona/game"

	ort "github.com/yalue/onnxruntime_go"
)

// Input/output tensor names expected of an exported policy+value net,
// matching the evaluator's (policy_logits, value_scalar) contract.
const (
	onnxInputName  = "position"
	onnxPolicyName = "policy_logits"
	onnxValueName  = "value"
)

// onnxEvaluator runs a policy+value network through onnxruntime. It
// mirrors the reference hex_cnn evaluator's approach: a single
// AdvancedSession with pre-bound input/output tensors sized for one
// board width, reused across calls and serialized by a mutex since the
// bound tensors are shared mutable buffers. Training loop and model
// export are handled entirely outside this package; this type only
// satisfies the evaluate() contract against whatever ONNX file it is
// pointed at.
type onnxEvaluator struct {
	mu      sync.Mutex
	session *ort.AdvancedSession
	width   int

	input  *ort.Tensor[float32]
	policy *ort.Tensor[float32]
	value  *ort.Tensor[float32]
}

// LoadONNXEvaluator initializes the onnxruntime environment and loads
// the policy+value model at modelPath, binding fixed I/O tensors sized
// for boards of the given width (5 or 9). Any failure to load or
// initialize the model is fatal at agent construction.
func LoadONNXEvaluator(modelPath string, width int) (Evaluator, error) {
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("evaluator: initialize onnxruntime environment: %w", err)
		}
	}

	planeSize := game.Rows * width
	input, err := ort.NewTensor(ort.NewShape(1, Planes, int64(game.Rows), int64(width)), make([]float32, Planes*planeSize))
	if err != nil {
		return nil, fmt.Errorf("evaluator: allocate input tensor: %w", err)
	}
	policy, err := ort.NewEmptyTensor[float32](ort.NewShape(1, game.ActionSpaceSize))
	if err != nil {
		return nil, fmt.Errorf("evaluator: allocate policy tensor: %w", err)
	}
	value, err := ort.NewEmptyTensor[float32](ort.NewShape(1, 1))
	if err != nil {
		return nil, fmt.Errorf("evaluator: allocate value tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(
		modelPath,
		[]string{onnxInputName}, []string{onnxPolicyName, onnxValueName},
		[]ort.Value{input}, []ort.Value{policy, value},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("evaluator: load model %q: %w", modelPath, err)
	}

	return &onnxEvaluator{session: session, width: width, input: input, policy: policy, value: value}, nil
}

// Close releases the underlying onnxruntime session and tensors.
func (e *onnxEvaluator) Close() {
	e.session.Destroy()
	e.input.Destroy()
	e.policy.Destroy()
	e.value.Destroy()
}

func (e *onnxEvaluator) Evaluate(board *game.Board, legalActions []game.Action) (Evaluation, error) {
	if board.Width != e.width {
		return Evaluation{}, fmt.Errorf("evaluator: model bound to width %d, got board width %d", e.width, board.Width)
	}

	encoded := Encode(board)

	e.mu.Lock()
	defer e.mu.Unlock()

	copy(e.input.GetData(), encoded.Data)
	if err := e.session.Run(); err != nil {
		return Evaluation{}, fmt.Errorf("evaluator: run inference: %w", err)
	}

	policy := maskedSoftmax(e.policy.GetData(), legalActions)
	value := float64(e.value.GetData()[0])
	if value > 1 {
		value = 1
	} else if value < -1 {
		value = -1
	}

	return Evaluation{Policy: policy, Value: value}, nil
}
