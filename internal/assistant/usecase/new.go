package usecase

import (
	"time"

	"lucas-asistente/internal/assistant"
	"lucas-asistente/internal/assistant/tools"
	"lucas-asistente/internal/store"
	pkgLog "lucas-asistente/pkg/log"
	"lucas-asistente/pkg/openai"
)

type implUsecase struct {
	l        pkgLog.Logger
	oracle   openai.IOpenAI
	registry *tools.Registry
	repo     store.ConversationRepository
	now      func() time.Time
}

// New creates the assistant use case. The oracle drives function
// calling, the registry executes the requested operations and the
// repository persists conversations.
func New(l pkgLog.Logger, oracle openai.IOpenAI, registry *tools.Registry, repo store.ConversationRepository) assistant.UseCase {
	return &implUsecase{
		l:        l,
		oracle:   oracle,
		registry: registry,
		repo:     repo,
		now:      time.Now,
	}
}
