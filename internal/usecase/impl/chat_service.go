package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"directorio/config"
	deliverycontext "directorio/internal/delivery/context"
	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/filter"
	"directorio/internal/domain/repository"
	"directorio/internal/domain/service"
	"directorio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	maxSuggestions      = 3
	maxInquiryLength    = 2000
	msgChatHelp         = "Lo siento, no entendí. Puedes preguntarme por restaurantes, cafeterías o negocios específicos."
	msgInquiryThanks    = "¡Gracias por tu mensaje! Un moderador lo revisará pronto."
	msgDirectionsPrompt = "Puedo ayudarte a encontrar la dirección. ¿Qué negocio estás buscando?"
	msgContactPrompt    = "Con gusto te doy la información de contacto. ¿Qué negocio te interesa?"
)

var (
	italianKeywords   = []string{"italian", "pasta", "pizza"}
	cafeKeywords      = []string{"cafe", "cafeteria", "coffee", "tinto"}
	directionKeywords = []string{"direccion", "ubicacion", "como llegar", "donde queda", "directions", "location"}
	contactKeywords   = []string{"contacto", "telefono", "llamar", "whatsapp", "contact", "phone"}
	searchKeywords    = []string{"muestrame", "buscar", "busco", "encuentra", "show me", "find"}
	shopKeywords      = []string{"tienda", "almacen", "shop", "store"}
)

type chatService struct {
	businessRepo repository.BusinessRepository
	inquiryRepo  repository.InquiryRepository
	assistant    service.Assistant
	publisher    service.EventPublisher
	notifier     service.InquiryNotifier
	pageSize     int
	logger       *slog.Logger
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	InquiryRepo  repository.InquiryRepository
	Assistant    service.Assistant       `optional:"true"`
	Publisher    service.EventPublisher
	Notifier     service.InquiryNotifier `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewChatService creates the directory assistant. Without a language model it answers from keyword rules.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		businessRepo: params.BusinessRepo,
		inquiryRepo:  params.InquiryRepo,
		assistant:    params.Assistant,
		publisher:    params.Publisher,
		notifier:     params.Notifier,
		pageSize:     params.Config.Directory.MaxPageSize,
		logger:       params.Logger,
	}
}

func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Reply answers one chat message.
func (srv *chatService) Reply(ctx context.Context, message string) (*usecase.ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, errors.WithStack(domainerrors.ErrEmptyMessage)
	}

	if srv.assistant != nil {
		reply, err := srv.assistantReply(ctx, message)
		if err == nil {
			return reply, nil
		}
		srv.log(ctx).Warn("Assistant failed, answering from rules", slog.Any("error", err))
	}

	return srv.ruleReply(ctx, normalizeMessage(message))
}

func (srv *chatService) assistantReply(ctx context.Context, message string) (*usecase.ChatReply, error) {
	businesses, _, err := srv.businessRepo.ListApproved(ctx, filter.Criteria{}, repository.Page{Limit: srv.pageSize})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load businesses for assistant")
	}

	answer, err := srv.assistant.Answer(ctx, message, businesses)
	if err != nil {
		return nil, err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, errors.New("assistant returned an empty answer")
	}

	lowered := strings.ToLower(answer)
	var mentioned []*entity.Business
	for _, b := range businesses {
		if strings.Contains(lowered, strings.ToLower(b.Name)) {
			mentioned = append(mentioned, b)
		}
	}

	return &usecase.ChatReply{Message: answer, Suggestions: suggestions(mentioned)}, nil
}

func (srv *chatService) ruleReply(ctx context.Context, text string) (*usecase.ChatReply, error) {
	switch {
	case containsAny(text, italianKeywords):
		restaurants, err := srv.list(ctx, filter.Criteria{Category: ptrTo(entity.CategoryRestaurants)})
		if err != nil {
			return nil, err
		}
		italian := make([]*entity.Business, 0, len(restaurants))
		for _, b := range restaurants {
			if containsAny(normalizeMessage(b.Name+" "+b.Description+" "+strings.Join(b.Tags, " ")), italianKeywords) {
				italian = append(italian, b)
			}
		}
		if len(italian) == 0 {
			return &usecase.ChatReply{Message: "Por ahora no encontré restaurantes de comida italiana en el directorio."}, nil
		}

		msg := fmt.Sprintf("Encontré %d restaurante(s) de comida italiana.", len(italian))
		if r := italian[0].Rating; r != nil {
			msg += fmt.Sprintf(" %s tiene una calificación de %.1f estrellas.", italian[0].Name, *r)
		} else {
			msg += fmt.Sprintf(" Te recomiendo %s.", italian[0].Name)
		}

		return &usecase.ChatReply{Message: msg + " ¿Quieres más detalles?", Suggestions: suggestions(italian)}, nil

	case containsAny(text, cafeKeywords):
		cafes, err := srv.list(ctx, filter.Criteria{Category: ptrTo(entity.CategoryCafes)})
		if err != nil {
			return nil, err
		}
		if len(cafes) == 0 {
			return &usecase.ChatReply{Message: "Por ahora no hay cafeterías registradas en el directorio."}, nil
		}

		msg := fmt.Sprintf("Hay %d cafetería(s) en el directorio. %s es una gran opción para los amantes del café.", len(cafes), cafes[0].Name)

		return &usecase.ChatReply{Message: msg, Suggestions: suggestions(cafes)}, nil

	case containsAny(text, directionKeywords):
		return &usecase.ChatReply{Message: msgDirectionsPrompt}, nil

	case containsAny(text, contactKeywords):
		return &usecase.ChatReply{Message: msgContactPrompt}, nil

	case containsAny(text, searchKeywords):
		return srv.searchReply(ctx, text)
	}

	return &usecase.ChatReply{Message: msgChatHelp}, nil
}

func (srv *chatService) searchReply(ctx context.Context, text string) (*usecase.ChatReply, error) {
	switch {
	case strings.Contains(text, "restaurante") || strings.Contains(text, "restaurant"):
		restaurants, err := srv.list(ctx, filter.Criteria{Category: ptrTo(entity.CategoryRestaurants)})
		if err != nil {
			return nil, err
		}
		msg := fmt.Sprintf("Puedo mostrarte %d restaurante(s). ¿Qué tipo de comida buscas?", len(restaurants))

		return &usecase.ChatReply{Message: msg, Suggestions: suggestions(restaurants)}, nil

	case containsAny(text, shopKeywords):
		shops, err := srv.list(ctx, filter.Criteria{Category: ptrTo(entity.CategoryShops)})
		if err != nil {
			return nil, err
		}
		msg := fmt.Sprintf("Hay %d tienda(s) disponibles. ¿Qué estás buscando?", len(shops))

		return &usecase.ChatReply{Message: msg, Suggestions: suggestions(shops)}, nil
	}

	return &usecase.ChatReply{Message: msgChatHelp}, nil
}

func (srv *chatService) list(ctx context.Context, criteria filter.Criteria) ([]*entity.Business, error) {
	items, _, err := srv.businessRepo.ListApproved(ctx, criteria, repository.Page{Limit: srv.pageSize})
	if err != nil {
		srv.log(ctx).Error("Failed to list businesses for chat", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrFetchFailed.WithDetails(err.Error()))
	}

	return items, nil
}

// SubmitInquiry stores a question for the moderators.
func (srv *chatService) SubmitInquiry(ctx context.Context, message, contact string) (*entity.Inquiry, string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, "", errors.WithStack(domainerrors.ErrEmptyMessage)
	}
	if len([]rune(message)) > maxInquiryLength {
		return nil, "", errors.WithStack(domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field:   "message",
			Message: fmt.Sprintf("Máximo %d caracteres", maxInquiryLength),
		}))
	}

	inquiry := &entity.Inquiry{
		Message: message,
		Contact: strings.TrimSpace(contact),
		Status:  entity.InquiryStatusPending,
	}
	if err := srv.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, "", errors.Wrap(err, "failed to create inquiry")
	}

	if srv.notifier != nil {
		srv.notifier.NotifyInquiry(inquiry)
	}

	event := &service.DirectoryEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.EventInquiryCreated,
		SubjectID:  inquiry.ID.String(),
		Title:      "Nueva consulta",
		Summary:    truncate(message, 120),
		OccurredAt: time.Now().Unix(),
	}
	if err := srv.publisher.PublishDirectoryEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish inquiry event", slog.String("inquiryID", inquiry.ID.String()), slog.Any("error", err))
	}

	return inquiry, msgInquiryThanks, nil
}

func suggestions(list []*entity.Business) []*usecase.ChatSuggestion {
	out := make([]*usecase.ChatSuggestion, 0, min(len(list), maxSuggestions))
	for _, b := range list {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, &usecase.ChatSuggestion{
			ID:       b.ID,
			Name:     b.Name,
			Category: b.Category,
			Address:  b.Address,
			Phone:    b.Phone,
		})
	}

	return out
}

// normalizeMessage lowercases s and strips diacritics.
func normalizeMessage(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}

	return folded
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}

	return false
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n]) + "…"
}

func ptrTo[T any](v T) *T {
	return &v
}
