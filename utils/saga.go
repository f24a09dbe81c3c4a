package utils

import (
	"github.com/sirupsen/logrus"
)

// SagaStep is one unit of a multi-system operation: an action plus the
// compensation that undoes it if a later step fails. Compensate may be nil
// for steps that need no undo.
type SagaStep struct {
	Name       string
	Action     func() error
	Compensate func() error
}

// Saga runs steps in order. When a step fails, the compensations of every
// previously completed step run in reverse order. Compensation failures are
// logged at error level and never mask the original error.
type Saga struct {
	steps      []SagaStep
	failedStep string
}

func NewSaga() *Saga {
	return &Saga{}
}

func (s *Saga) AddStep(name string, action func() error, compensate func() error) {
	s.steps = append(s.steps, SagaStep{Name: name, Action: action, Compensate: compensate})
}

// FailedStep returns the name of the step that failed, or "" after a
// successful run.
func (s *Saga) FailedStep() string {
	return s.failedStep
}

func (s *Saga) Run() error {
	for i, step := range s.steps {
		if err := step.Action(); err != nil {
			s.failedStep = step.Name
			s.compensate(i - 1)
			return err
		}
	}
	return nil
}

func (s *Saga) compensate(from int) {
	for i := from; i >= 0; i-- {
		step := s.steps[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(); err != nil {
			Logger.WithFields(logrus.Fields{
				"source": "app",
				"status": "error",
				"step":   step.Name,
				"error":  err.Error(),
			}).Error("Saga compensation failed")
		}
	}
}
