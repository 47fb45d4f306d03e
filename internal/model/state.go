package model

// State is a position in the pipeline state machine.
type State string

const (
	StateStart             State = "start"
	StateTranscriptFetched State = "transcript_fetched"
	StateSummarized        State = "summarized"
	StateBulletsGenerated  State = "bullets_generated"
	StateDocumentRendered  State = "document_rendered"
	StateAudioSynthesized  State = "audio_synthesized"
	StateDone              State = "done"
	StateFailed            State = "failed"
)

// Stage names one step of the pipeline.
type Stage string

const (
	StageFetch     Stage = "fetch"
	StageSummarize Stage = "summarize"
	StageBullets   Stage = "bullets"
	StageRender    Stage = "render"
	StageNarrate   Stage = "narrate"
)

// Stages lists every stage in execution order.
var Stages = []Stage{StageFetch, StageSummarize, StageBullets, StageRender, StageNarrate}

var stageTarget = map[Stage]State{
	StageFetch:     StateTranscriptFetched,
	StageSummarize: StateSummarized,
	StageBullets:   StateBulletsGenerated,
	StageRender:    StateDocumentRendered,
	StageNarrate:   StateAudioSynthesized,
}

var stageSource = map[Stage]State{
	StageFetch:     StateStart,
	StageSummarize: StateTranscriptFetched,
	StageBullets:   StateSummarized,
	StageRender:    StateBulletsGenerated,
	StageNarrate:   StateDocumentRendered,
}

// Target returns the state reached when the stage succeeds.
func (s Stage) Target() State { return stageTarget[s] }

// Source returns the state a stage must start from.
func (s Stage) Source() State { return stageSource[s] }

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}
