package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"pin-genius/config"
	"pin-genius/generator"
	"pin-genius/models"
)

// State 는 생성 시퀀스의 진행 상태다.
type State string

const (
	StateIdle            State = "idle"
	StateGeneratingText  State = "generating_text"
	StateGeneratingImage State = "generating_image"
	StateComplete        State = "complete"
	StateFailed          State = "failed"
)

// GenericFailureMessage 는 텍스트 단계 실패나 예기치 못한 오류 시 사용자에게 보여주는 문구다.
const GenericFailureMessage = "Failed to generate content. Please try again."

var (
	ErrEmptyTopic      = errors.New("topic is empty")
	ErrInvalidCategory = errors.New("unknown category")
	ErrInvalidStyle    = errors.New("unknown style")
	ErrBusy            = errors.New("a generation is already in progress")
)

type TextGenerator interface {
	Generate(ctx context.Context, req models.GenerationRequest) (*models.PinterestContent, error)
}

type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) *models.GeneratedImage
}

type QuotaLimiter interface {
	WaitAndReserve(ctx context.Context) error
}

// Publisher 는 완료된 생성 결과를 외부로 알린다.
type Publisher interface {
	PublishPinGenerated(ctx context.Context, snap Snapshot) error
}

// Snapshot 은 특정 시점의 세션 상태 사본이다.
type Snapshot struct {
	GenerationID string                   `json:"generation_id,omitempty"`
	State        State                    `json:"state"`
	Request      models.GenerationRequest `json:"request"`
	LoadingText  bool                     `json:"loading_text"`
	LoadingImage bool                     `json:"loading_image"`
	Content      *models.PinterestContent `json:"content"`
	Image        *models.GeneratedImage   `json:"-"`
	Error        string                   `json:"error,omitempty"`
	StartedAt    time.Time                `json:"started_at,omitempty"`
	FinishedAt   time.Time                `json:"finished_at,omitempty"`
}

// CanSubmit 은 제출 버튼 활성화 여부다. 로딩 중이면 새 제출을 막는다.
func (s Snapshot) CanSubmit() bool {
	return !s.LoadingText && !s.LoadingImage
}

// ImageFailed 는 텍스트는 완료됐지만 이미지가 없는 부분 성공 상태인지 나타낸다.
func (s Snapshot) ImageFailed() bool {
	return s.State == StateComplete && s.Image == nil
}

// Session 은 하나의 결과 슬롯을 가진 생성 파이프라인이다.
// 동시에 하나의 시퀀스만 실행되며, 완료된 결과는 이전 결과를 덮어쓴다.
type Session struct {
	mu   sync.Mutex
	snap Snapshot

	text      TextGenerator
	image     ImageGenerator
	quota     QuotaLimiter
	publisher Publisher
	newID     func() string
}

type Option func(*Session)

func WithQuota(q QuotaLimiter) Option {
	return func(s *Session) { s.quota = q }
}

func WithPublisher(p Publisher) Option {
	return func(s *Session) { s.publisher = p }
}

func NewSession(text TextGenerator, image ImageGenerator, opts ...Option) *Session {
	s := &Session{
		snap:  Snapshot{State: StateIdle},
		text:  text,
		image: image,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot 은 현재 상태의 사본을 반환한다.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Validate 는 네트워크 호출 전에 입력을 검사한다.
func Validate(req models.GenerationRequest) (models.GenerationRequest, error) {
	req = req.Normalized()
	if req.Topic == "" {
		return req, ErrEmptyTopic
	}
	if req.Category == "" {
		req.Category = models.DefaultCategory()
	}
	if req.Style == "" {
		req.Style = models.DefaultStyle()
	}
	if !models.IsValidCategory(req.Category) {
		return req, fmt.Errorf("%w: %q", ErrInvalidCategory, req.Category)
	}
	if !models.IsValidStyle(req.Style) {
		return req, fmt.Errorf("%w: %q", ErrInvalidStyle, req.Style)
	}
	return req, nil
}

// Submit 은 생성 시퀀스를 끝까지 실행하고 최종 상태를 반환한다.
// 이미지가 없어도 텍스트 단계가 성공했다면 오류가 아니다.
// 호출자의 컨텍스트가 취소되어도 진행 중인 시퀀스는 중단되지 않는다.
func (s *Session) Submit(ctx context.Context, req models.GenerationRequest) (Snapshot, error) {
	id, req, err := s.begin(req)
	if err != nil {
		return s.Snapshot(), err
	}
	err = s.run(context.WithoutCancel(ctx), id, req)
	return s.Snapshot(), err
}

// Start 는 입력 검사와 상태 전환만 동기로 처리하고 시퀀스는 백그라운드에서 실행한다.
func (s *Session) Start(ctx context.Context, req models.GenerationRequest) (Snapshot, error) {
	id, req, err := s.begin(req)
	if err != nil {
		return s.Snapshot(), err
	}
	snap := s.Snapshot()
	go func() {
		_ = s.run(context.WithoutCancel(ctx), id, req)
	}()
	return snap, nil
}

func (s *Session) begin(req models.GenerationRequest) (string, models.GenerationRequest, error) {
	req, err := Validate(req)
	if err != nil {
		return "", req, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.snap.CanSubmit() {
		return "", req, ErrBusy
	}

	id := s.newID()
	s.snap = Snapshot{
		GenerationID: id,
		State:        StateGeneratingText,
		Request:      req,
		LoadingText:  true,
		StartedAt:    time.Now(),
	}
	return id, req, nil
}

func (s *Session) run(ctx context.Context, id string, req models.GenerationRequest) (err error) {
	ctx = generator.WithGenerationID(ctx, id)

	defer func() {
		if r := recover(); r != nil {
			config.Logger.Errorf("unexpected panic during generation %s: %v", id, r)
			err = &generator.GenerationError{Kind: generator.KindUnexpected, Op: "generation sequence", Err: fmt.Errorf("%v", r)}
			s.fail(err)
		}
		s.update(func(snap *Snapshot) {
			snap.LoadingText = false
			snap.LoadingImage = false
		})
	}()

	if s.quota != nil {
		if err := s.quota.WaitAndReserve(ctx); err != nil {
			config.Logger.Warnf("generation %s rejected by quota: %v", id, err)
			s.fail(err)
			return err
		}
	}

	config.Logger.Infof("generation %s started (topic=%q, category=%q, style=%q)", id, req.Topic, req.Category, req.Style)

	// 1. 텍스트/메타데이터 생성
	content, err := s.text.Generate(ctx, req)
	if err != nil {
		config.Logger.Errorf("generation %s failed at text step: %v", id, err)
		s.fail(err)
		return err
	}

	// 텍스트 결과는 이미지보다 먼저 보이도록 바로 슬롯에 반영한다.
	s.update(func(snap *Snapshot) {
		snap.Content = content
		snap.LoadingText = false
		snap.LoadingImage = true
		snap.State = StateGeneratingImage
	})

	// 2. 이미지 생성 (실패해도 전체 시퀀스는 성공)
	img := s.image.Generate(ctx, content.ImagePrompt)
	if img == nil {
		config.Logger.Warnf("generation %s completed without image", id)
	}

	s.update(func(snap *Snapshot) {
		snap.Image = img
		snap.LoadingImage = false
		snap.State = StateComplete
		snap.FinishedAt = time.Now()
	})

	if s.publisher != nil {
		if pubErr := s.publisher.PublishPinGenerated(ctx, s.Snapshot()); pubErr != nil {
			config.Logger.Warnf("failed to publish pin.generated for %s: %v", id, pubErr)
		}
	}

	config.Logger.Infof("generation %s complete (image=%t)", id, img != nil)
	return nil
}

// fail 은 슬롯을 Failed 로 전환한다. 이미지 단계에서 실패하면 이미 보인 텍스트 결과는 유지한다.
func (s *Session) fail(err error) {
	s.update(func(snap *Snapshot) {
		if snap.State != StateGeneratingImage {
			snap.Content = nil
		}
		snap.State = StateFailed
		snap.Image = nil
		snap.LoadingText = false
		snap.LoadingImage = false
		snap.Error = GenericFailureMessage
		snap.FinishedAt = time.Now()
	})
}

func (s *Session) update(fn func(snap *Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.snap)
}
