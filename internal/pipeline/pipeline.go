package pipeline

import (
	"fmt"

	"code.cloudfoundry.org/task-dispatcher/internal/dispatch"
)

// Pipeline is a dispatch policy that routes every task through a fixed
// ordered list of stages. It is the default policy for the dispatcher
// process; embedders that need dynamic routing supply their own
// NextStage callback.
type Pipeline struct {
	stages []dispatch.ExecutorType
}

// New returns a Pipeline over the given stages, in order.
func New(stages []dispatch.ExecutorType) *Pipeline {
	return &Pipeline{
		stages: stages,
	}
}

// NextStage returns the stage after the executed path, or an empty type
// when the path has covered the whole pipeline. A path that is not a
// prefix of the pipeline means the task strayed and is an error.
func (p *Pipeline) NextStage(taskID dispatch.TaskID, payload []byte, path []dispatch.ExecutorType) (dispatch.ExecutorType, error) {
	if len(path) > len(p.stages) {
		return "", fmt.Errorf("task %s executed %d stages but the pipeline has %d", taskID, len(path), len(p.stages))
	}
	for i, eType := range path {
		if p.stages[i] != eType {
			return "", fmt.Errorf("task %s was processed by %s where the pipeline expected %s", taskID, eType, p.stages[i])
		}
	}
	if len(path) == len(p.stages) {
		return "", nil
	}

	return p.stages[len(path)], nil
}
