package service

import (
	"errors"
	"strings"
	"sync"

	"github.com/careercracker/webclient/internal/dto"
	"github.com/rs/zerolog/log"
)

var (
	// ErrSpeechUnsupported rejects listening on a client that declared no
	// recognizer. This is a hard capability check; the view falls back to
	// text-only input.
	ErrSpeechUnsupported = errors.New("speech recognition is not supported by this client")

	ErrNotListening = errors.New("transcription is not active")
)

// TranscriptService is the transcription adapter: it owns the listening
// state per credential and rebuilds the dictation draft from recognition
// events. The draft is reconstructed from scratch on every event, final
// transcripts in arrival order plus the trailing interim, so repeated
// events never duplicate fragments.
type TranscriptService interface {
	// Configure declares the client's recognizer capability when the view
	// opens, and resets any previous transcript state.
	Configure(cred string, supported bool)
	Supported(cred string) bool
	Start(cred string) error
	Stop(cred string)
	Listening(cred string) bool
	// Apply ingests one recognition event and returns the rebuilt draft.
	// A recognizer error in the event forces listening off.
	Apply(cred string, event dto.RecognitionEventRequest) (string, error)
	Transcript(cred string) string
	// Release stops listening and drops all transcript state, e.g. on view
	// close, so no recognizer is left running.
	Release(cred string)
}

type transcriptState struct {
	supported  bool
	listening  bool
	transcript string
}

type transcriptService struct {
	mu     sync.Mutex
	states map[string]*transcriptState
}

func NewTranscriptService() TranscriptService {
	return &transcriptService{states: make(map[string]*transcriptState)}
}

func (s *transcriptService) state(cred string) *transcriptState {
	st, ok := s.states[cred]
	if !ok {
		st = &transcriptState{}
		s.states[cred] = st
	}
	return st
}

func (s *transcriptService) Configure(cred string, supported bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[cred] = &transcriptState{supported: supported}
}

func (s *transcriptService) Supported(cred string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(cred).supported
}

func (s *transcriptService) Start(cred string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(cred)
	if !st.supported {
		return ErrSpeechUnsupported
	}
	st.listening = true
	return nil
}

func (s *transcriptService) Stop(cred string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state(cred).listening = false
}

func (s *transcriptService) Listening(cred string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(cred).listening
}

func (s *transcriptService) Apply(cred string, event dto.RecognitionEventRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(cred)
	if !st.listening {
		return st.transcript, ErrNotListening
	}

	if event.Error != "" {
		log.Warn().Str("error", event.Error).Msg("Speech recognition error, stopping transcription")
		st.listening = false
		return st.transcript, nil
	}
	if len(event.Results) == 0 {
		return st.transcript, nil
	}

	st.transcript = assemble(event.Results)
	return st.transcript, nil
}

// assemble rebuilds the full response text from a recognizer's result list:
// every finalized segment in order, then the last (possibly interim) one.
func assemble(results []dto.RecognitionResultDTO) string {
	var b strings.Builder
	for i := 0; i < len(results)-1; i++ {
		if results[i].IsFinal && results[i].Transcript != "" {
			b.WriteString(results[i].Transcript)
			b.WriteString(" ")
		}
	}
	b.WriteString(results[len(results)-1].Transcript)
	return strings.TrimSpace(b.String())
}

func (s *transcriptService) Transcript(cred string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(cred).transcript
}

func (s *transcriptService) Release(cred string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, cred)
}
