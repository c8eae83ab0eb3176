package usecase

import (
	"context"
	"fmt"
	"log"
	"time"
	"unicode"

	"storesetup-backend/model"
	"storesetup-backend/pkg/assistant"
)

type ChatUsecase struct {
	sessionRepo  SessionStore
	storeRepo    StoreRecords
	merchantRepo MerchantStore
	msgRepo      MessageStore
	gateway      AssistantGateway
	catalogFor   CatalogClientFactory
}

func NewChatUsecase(sessionRepo SessionStore, storeRepo StoreRecords, merchantRepo MerchantStore, msgRepo MessageStore, gateway AssistantGateway, catalogFor CatalogClientFactory) *ChatUsecase {
	return &ChatUsecase{
		sessionRepo:  sessionRepo,
		storeRepo:    storeRepo,
		merchantRepo: merchantRepo,
		msgRepo:      msgRepo,
		gateway:      gateway,
		catalogFor:   catalogFor,
	}
}

// SendMessage runs one assistant turn: persist the merchant message,
// enrich with the live remote catalog, call the model, persist the
// structured reply. Both sides of the turn are always appended, even
// when the model output failed to parse.
func (u *ChatUsecase) SendMessage(ctx context.Context, merchantID, sessionID, content string) (*model.ChatMessage, *model.ChatMessage, error) {
	if content == "" {
		return nil, nil, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	session, store, err := authorizeSession(u.sessionRepo, u.storeRepo, merchantID, sessionID)
	if err != nil {
		return nil, nil, err
	}

	userMsg := &model.ChatMessage{
		ID:        newID(),
		SessionID: session.ID,
		Role:      model.RoleUser,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := u.msgRepo.CreateMessage(userMsg); err != nil {
		return nil, nil, err
	}

	// Live catalog context; a fetch failure degrades to no context
	// rather than blocking the turn.
	var categories []model.RemoteCategory
	if cats, listErr := u.catalogFor(store).ListCategories(ctx); listErr == nil {
		categories = cats
	} else {
		log.Printf("chat: listing categories for context failed: %v", listErr)
	}
	categoryIDs := make([]string, 0, len(categories))
	for _, c := range categories {
		categoryIDs = append(categoryIDs, c.ID)
	}

	history := u.historyTurns(session.ID, userMsg.ID)

	locale := u.merchantLocale(merchantID, content)
	reply, err := u.gateway.Generate(ctx, assistant.Request{
		Message:             content,
		Locale:              locale,
		StoreName:           store.Name,
		History:             history,
		ExistingCategories:  categories,
		ExistingCategoryIDs: categoryIDs,
	})
	if err != nil {
		// The merchant sees an apology in their language, never the error.
		log.Printf("chat: assistant call failed: %v", err)
		reply = &assistant.Reply{
			Message: apologyMessage(locale),
			Action:  model.AIAction{Type: model.ActionNone},
		}
	}

	aiMsg := &model.ChatMessage{
		ID:        newID(),
		SessionID: session.ID,
		Role:      model.RoleAssistant,
		Content:   reply.Message,
		CreatedAt: time.Now(),
	}
	if !reply.Action.IsNone() {
		action := reply.Action
		aiMsg.Action = &action
	}
	if err := u.msgRepo.CreateMessage(aiMsg); err != nil {
		return userMsg, nil, err
	}

	return userMsg, aiMsg, nil
}

func (u *ChatUsecase) Messages(merchantID, sessionID string) ([]model.ChatMessage, error) {
	session, _, err := authorizeSession(u.sessionRepo, u.storeRepo, merchantID, sessionID)
	if err != nil {
		return nil, err
	}
	return u.msgRepo.GetBySessionID(session.ID)
}

// historyTurns loads prior turns, excluding the message just inserted;
// the gateway applies the sliding window.
func (u *ChatUsecase) historyTurns(sessionID, excludeID string) []assistant.Turn {
	msgs, err := u.msgRepo.GetBySessionID(sessionID)
	if err != nil {
		log.Printf("chat: loading history failed: %v", err)
		return nil
	}
	var turns []assistant.Turn
	for _, m := range msgs {
		if m.ID == excludeID {
			continue
		}
		turns = append(turns, assistant.Turn{Role: m.Role, Content: m.Content})
	}
	return turns
}

// merchantLocale prefers the stored preference and falls back to
// detecting Arabic script in the message itself.
func (u *ChatUsecase) merchantLocale(merchantID, content string) string {
	if m, err := u.merchantRepo.GetByID(merchantID); err == nil && m != nil && m.PreferredLocale != "" {
		return m.PreferredLocale
	}
	if containsArabic(content) {
		return "ar"
	}
	return "en"
}

func containsArabic(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Arabic, r) {
			return true
		}
	}
	return false
}

func apologyMessage(locale string) string {
	if locale == "ar" {
		return "عذراً، حدث خطأ أثناء معالجة رسالتك. حاول مرة أخرى من فضلك."
	}
	return "Sorry, something went wrong while processing your message. Please try again."
}
