package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"task-planner.com/task-planner/internal/ai"
	model "task-planner.com/task-planner/internal/models"
)

var ErrMalformedPlan = errors.New("malformed plan from model")

// Decomposer turns a goal into task specs by asking a Provider. Output is
// validated in full; it never returns a partial task list.
type Decomposer struct {
	provider ai.Provider
}

func NewDecomposer(provider ai.Provider) *Decomposer {
	return &Decomposer{provider: provider}
}

type planPayload struct {
	Tasks []model.TaskSpec `json:"tasks"`
}

func (d *Decomposer) Decompose(ctx context.Context, goal string) ([]model.TaskSpec, error) {
	resp, err := d.provider.Complete(ctx, ai.CompletionRequest{
		Prompt:      buildPrompt(goal),
		System:      systemPrompt,
		Temperature: 0.2,
		JSON:        true,
	})
	if err != nil {
		return nil, fmt.Errorf("%s completion: %w", d.provider.ID(), err)
	}

	log.Printf("plan decomposition via %s used %d input / %d output tokens",
		d.provider.ID(), resp.Usage.InputTokens, resp.Usage.OutputTokens)

	return ParseTasks(resp.Text)
}

// ParseTasks validates a model response and decodes its task list.
func ParseTasks(text string) ([]model.TaskSpec, error) {
	payload := extractJSONPayload(text)
	if err := validateSchema(payload); err != nil {
		return nil, err
	}

	var plan planPayload
	if err := json.Unmarshal([]byte(payload), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPlan, err)
	}

	if err := validateDependencies(plan.Tasks); err != nil {
		return nil, err
	}

	return plan.Tasks, nil
}

// validateDependencies rejects duplicate ids and dependencies that do not
// point at another task of the same plan.
func validateDependencies(tasks []model.TaskSpec) error {
	ids := make(map[int]struct{}, len(tasks))
	for _, t := range tasks {
		if _, dup := ids[t.ID]; dup {
			return fmt.Errorf("%w: duplicate task id %d", ErrMalformedPlan, t.ID)
		}
		ids[t.ID] = struct{}{}
	}

	for _, t := range tasks {
		for _, dep := range t.Dependencies {
			if dep == t.ID {
				return fmt.Errorf("%w: task %d depends on itself", ErrMalformedPlan, t.ID)
			}
			if _, ok := ids[dep]; !ok {
				return fmt.Errorf("%w: task %d depends on unknown task %d", ErrMalformedPlan, t.ID, dep)
			}
		}
	}

	return nil
}
