package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"directorio/config"
	"directorio/internal/domain/constants"
	"directorio/internal/domain/entity"
	"directorio/internal/domain/hours"
	"directorio/internal/domain/service"

	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

const (
	defaultModel   = "gemini-2.0-flash"
	defaultTimeout = 15 * time.Second
)

const systemPrompt = "Eres el asistente del directorio de negocios de Gachetá, Cundinamarca. " +
	"Responde en español, en máximo tres frases, usando solo los negocios listados. " +
	"Si ninguno sirve, dilo y sugiere buscar por categoría."

var weekOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type geminiAssistant struct {
	model   generator
	timeout time.Duration
	logger  *slog.Logger
}

// Params holds dependencies for the assistant, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewAssistant creates the Gemini responder. It returns nil when no provider is configured.
func NewAssistant(params Params) (service.Assistant, error) {
	cfg := params.Config.Assistant
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("Assistant not configured, chat answers from rules")

		return nil, nil
	}
	if cfg.Provider != constants.AssistantProviderGemini {
		return nil, errors.Errorf("unsupported assistant provider: %s", cfg.Provider)
	}
	if cfg.APIKey == "" {
		return nil, errors.New("api key is required for gemini assistant")
	}

	client, err := genai.NewClient(params.Ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gemini client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	name := cfg.Model
	if name == "" {
		name = defaultModel
	}
	model := client.GenerativeModel(name)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	params.Logger.Info("Using Gemini assistant", slog.String("model", name))

	return &geminiAssistant{model: model, timeout: timeout, logger: params.Logger}, nil
}

// Answer asks the model about message with businesses as context.
func (a *geminiAssistant) Answer(ctx context.Context, message string, businesses []*entity.Business) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.model.GenerateContent(ctx, genai.Text(buildPrompt(message, businesses)))
	if err != nil {
		return "", errors.Wrap(err, "gemini generate content")
	}

	answer := responseText(resp)
	if answer == "" {
		return "", errors.New("gemini returned no text")
	}

	return answer, nil
}

func buildPrompt(message string, businesses []*entity.Business) string {
	var sb strings.Builder
	sb.WriteString("Negocios del directorio:\n")
	for _, b := range businesses {
		fmt.Fprintf(&sb, "- %s (%s). Dirección: %s, zona %s.", b.Name, b.Category.Label(), b.Address, b.Zone.Label())
		if b.Phone != "" {
			fmt.Fprintf(&sb, " Teléfono: %s.", b.Phone)
		}
		if b.Rating != nil {
			fmt.Fprintf(&sb, " Calificación: %.1f.", *b.Rating)
		}
		if h := scheduleLine(b.Hours); h != "" {
			fmt.Fprintf(&sb, " Horario: %s.", h)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "\nPregunta del usuario: %s", message)

	return sb.String()
}

func scheduleLine(s hours.Schedule) string {
	parts := make([]string, 0, len(weekOrder))
	for _, day := range weekOrder {
		desc, ok := s.For(day)
		if !ok {
			continue
		}
		parts = append(parts, hours.DayName(hours.LocaleSpanish, day)+" "+desc)
	}

	return strings.Join(parts, ", ")
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
		if sb.Len() > 0 {
			break
		}
	}

	return strings.TrimSpace(sb.String())
}
