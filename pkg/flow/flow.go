package flow

import "errors"

// Step is one screen in the fixed wizard sequence.
type Step string

const (
	StepUserInfo  Step = "user_info"
	StepMoodCheck Step = "mood_check"
	StepGuide     Step = "guide"
	StepChat      Step = "chat"
	StepFeedback  Step = "feedback"
)

// Steps is the canonical page order. Navigation is step-locked: a step may
// be visited only while its index is at or below the highest index reached.
var Steps = []Step{StepUserInfo, StepMoodCheck, StepGuide, StepChat, StepFeedback}

// ErrInvalidTransition covers every rejected navigation attempt. It is
// always recoverable: the caller stays on the current step and loses no data.
var ErrInvalidTransition = errors.New("invalid transition")

// ErrUnknownStep rejects a step name outside the fixed list.
var ErrUnknownStep = errors.New("unknown step")

// IndexOf returns the position of a step in the canonical order.
func IndexOf(step Step) (int, bool) {
	for i, s := range Steps {
		if s == step {
			return i, true
		}
	}
	return 0, false
}

// Progress tracks one session's position in the wizard.
type Progress struct {
	Current Step `json:"current"`
	Highest Step `json:"highest"`
}

func NewProgress() Progress {
	return Progress{Current: Steps[0], Highest: Steps[0]}
}

// Advance moves to the next step and extends the unlock frontier. The
// caller is responsible for checking the step's completion condition first
// (non-empty name for user info, a mood record for the check-in, a scored
// quiz when one is pending).
func (p *Progress) Advance() (Step, error) {
	idx, ok := IndexOf(p.Current)
	if !ok || idx+1 >= len(Steps) {
		return p.Current, ErrInvalidTransition
	}
	p.Current = Steps[idx+1]
	if hi, _ := IndexOf(p.Highest); idx+1 > hi {
		p.Highest = p.Current
	}
	return p.Current, nil
}

// JumpTo revisits an already-unlocked step. Locked steps are rejected with
// ErrInvalidTransition and the current step is left unchanged.
func (p *Progress) JumpTo(step Step) error {
	idx, ok := IndexOf(step)
	if !ok {
		return ErrUnknownStep
	}
	hi, _ := IndexOf(p.Highest)
	if idx > hi {
		return ErrInvalidTransition
	}
	p.Current = step
	return nil
}

// Unlocked reports whether a step may currently be visited.
func (p *Progress) Unlocked(step Step) bool {
	idx, ok := IndexOf(step)
	if !ok {
		return false
	}
	hi, _ := IndexOf(p.Highest)
	return idx <= hi
}

// Reset returns to the first step and relocks everything after it.
func (p *Progress) Reset() {
	p.Current = Steps[0]
	p.Highest = Steps[0]
}

// AtTerminal reports whether the session sits on the final step.
func (p *Progress) AtTerminal() bool {
	return p.Current == Steps[len(Steps)-1]
}
